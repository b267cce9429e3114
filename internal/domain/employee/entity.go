package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	DateOfBirth   time.Time
	JobTitle      string
	Gender        string
	Address       string
	DepartmentID  int64
	Salary        decimal.Decimal
	HireDate      time.Time
	Status        string
	GradeName     *string
	PasswordHash  *string
	CreatedAt     time.Time

	// Joined fields
	DepartmentName *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// DataCheck is the outcome of an existence probe on one table. Err is set when
// the probe itself failed.
type DataCheck struct {
	Table  string
	Exists bool
	Err    error
}
