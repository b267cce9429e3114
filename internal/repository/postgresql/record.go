package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

// FindFirst implements record.RecordRepository.
func (r *recordRepositoryImpl) FindFirst(ctx context.Context, t record.Table, employeeID int64) (record.Record, error) {
	records, err := r.find(ctx, t, employeeID, 1, false)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, record.ErrRecordNotFound
	}
	return records[0], nil
}

// FindAll implements record.RecordRepository. Newest rows come first.
func (r *recordRepositoryImpl) FindAll(ctx context.Context, t record.Table, employeeID int64) ([]record.Record, error) {
	return r.find(ctx, t, employeeID, 0, true)
}

func (r *recordRepositoryImpl) find(ctx context.Context, t record.Table, employeeID int64, limit int, desc bool) ([]record.Record, error) {
	q := GetQuerier(ctx, r.db)

	direction := "ASC"
	if desc {
		direction = "DESC"
	}
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s ORDER BY %s %s, %s %s",
		ident(t.SQLName), t.EmployeeFilter, ident(t.OrderBy), direction, ident(t.PrimaryKey), direction)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", database.ErrQuery, t.SQLName, err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", database.ErrQuery, t.SQLName, err)
	}

	records := make([]record.Record, 0, len(maps))
	for _, m := range maps {
		rec := make(record.Record, len(m))
		for col, v := range m {
			rec[col] = normalizeValue(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Exists implements record.RecordRepository.
func (r *recordRepositoryImpl) Exists(ctx context.Context, t record.Table, employeeID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s)", ident(t.SQLName), t.EmployeeFilter)

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %s: %w", database.ErrQuery, t.SQLName, err)
	}
	return exists, nil
}

// Insert implements record.RecordRepository.
func (r *recordRepositoryImpl) Insert(ctx context.Context, t record.Table, values []record.ColumnValue) (int64, error) {
	q := GetQuerier(ctx, r.db)

	columns := make([]string, 0, len(values))
	placeholders := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for i, cv := range values {
		columns = append(columns, ident(cv.Column))
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, cv.Value)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		ident(t.SQLName), strings.Join(columns, ", "), strings.Join(placeholders, ", "), ident(t.PrimaryKey))

	var id int64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", database.ErrInsert, t.SQLName, err)
	}
	return id, nil
}

// Update implements record.RecordRepository.
func (r *recordRepositoryImpl) Update(ctx context.Context, t record.Table, id int64, values []record.ColumnValue) (int64, error) {
	q := GetQuerier(ctx, r.db)

	sets := make([]string, 0, len(values))
	args := make([]any, 0, len(values)+1)
	for i, cv := range values {
		sets = append(sets, fmt.Sprintf("%s = $%d", ident(cv.Column), i+1))
		args = append(args, cv.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		ident(t.SQLName), strings.Join(sets, ", "), ident(t.PrimaryKey), len(args))

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", database.ErrUpdate, t.SQLName, err)
	}
	return commandTag.RowsAffected(), nil
}

// Delete implements record.RecordRepository.
func (r *recordRepositoryImpl) Delete(ctx context.Context, t record.Table, id int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", ident(t.SQLName), ident(t.PrimaryKey))

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", database.ErrDelete, t.SQLName, err)
	}
	return commandTag.RowsAffected(), nil
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// normalizeValue turns driver values without a useful JSON form into their
// domain types.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		raw, err := val.Value()
		if err != nil {
			return v
		}
		s, ok := raw.(string)
		if !ok {
			return v
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return v
		}
		return d
	case [16]byte:
		return uuid.UUID(val)
	default:
		return v
	}
}
