package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			first_name, last_name, email, contact_number, date_of_birth,
			job_title, gender, address, department_id, salary,
			hire_date, status, grade_name, password_hash
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING employee_id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.ContactNumber, e.DateOfBirth,
		e.JobTitle, e.Gender, e.Address, e.DepartmentID, e.Salary,
		e.HireDate, e.Status, e.GradeName, e.PasswordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%w: employees: %w", database.ErrInsert, employee.ErrEmailExists)
		}
		return 0, fmt.Errorf("%w: employees: %w", database.ErrInsert, err)
	}
	return id, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.first_name, e.last_name, e.email, e.contact_number,
			   e.date_of_birth, e.job_title, e.gender, e.address, e.department_id,
			   e.salary, e.hire_date, e.status, e.grade_name, e.password_hash,
			   e.created_at, d.department_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.department_id
		WHERE e.employee_id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.first_name, e.last_name, e.email, e.contact_number,
			   e.date_of_birth, e.job_title, e.gender, e.address, e.department_id,
			   e.salary, e.hire_date, e.status, e.grade_name, e.password_hash,
			   e.created_at, d.department_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.department_id
		ORDER BY e.employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list employees: %w", database.ErrQuery, err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list employees: %w", database.ErrQuery, err)
	}
	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.ContactNumber,
		&e.DateOfBirth, &e.JobTitle, &e.Gender, &e.Address, &e.DepartmentID,
		&e.Salary, &e.HireDate, &e.Status, &e.GradeName, &e.PasswordHash,
		&e.CreatedAt, &e.DepartmentName,
	)
	return e, err
}
