package record

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tbl, err := Lookup("Payroll")
	require.NoError(t, err)
	assert.Equal(t, "payroll", tbl.SQLName)
	assert.Equal(t, "payroll_id", tbl.PrimaryKey)
	assert.True(t, tbl.CanInsert())
	assert.True(t, tbl.CanUpdate())

	_, err = Lookup("payroll")
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = Lookup("Employees; DROP TABLE employees")
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestLookup_Capabilities(t *testing.T) {
	tests := []struct {
		table     string
		readable  bool
		insert    bool
		update    bool
		deletable bool
	}{
		{"Employees", true, false, true, true},
		{"Salaries", true, false, true, true},
		{"Payroll", true, true, true, true},
		{"Taxation", true, false, false, false},
		{"Deductions", true, true, false, false},
		{"LeaveManagement", true, true, false, false},
		{"PaySlips", false, false, false, false},
		{"JobTitles", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			tbl, err := Lookup(tt.table)
			require.NoError(t, err)
			assert.Equal(t, tt.readable, tbl.Readable)
			assert.Equal(t, tt.insert, tbl.CanInsert())
			assert.Equal(t, tt.update, tbl.CanUpdate())
			assert.Equal(t, tt.deletable, tbl.Deletable)
		})
	}
}

func TestCheckedTables(t *testing.T) {
	checked := CheckedTables()

	require.Len(t, checked, 15)
	assert.Equal(t, "Employees", checked[0].Name)
	assert.Equal(t, "JobTitles", checked[len(checked)-1].Name)
	for _, tbl := range checked {
		assert.NotEmpty(t, tbl.SQLName, tbl.Name)
		assert.NotEmpty(t, tbl.EmployeeFilter, tbl.Name)
	}
}

func TestTable_UpdatableField(t *testing.T) {
	tbl, err := Lookup("Employees")
	require.NoError(t, err)

	f, ok := tbl.UpdatableField("salary")
	assert.True(t, ok)
	assert.Equal(t, KindNumber, f.Kind)

	_, ok = tbl.UpdatableField("employee_id")
	assert.False(t, ok)
}

func TestCheckPayrollTotals(t *testing.T) {
	ok := map[string]any{
		"total_earnings":   decimal.RequireFromString("1000"),
		"total_deductions": decimal.RequireFromString("150.5"),
		"net_salary":       decimal.RequireFromString("849.5"),
	}
	assert.Empty(t, checkPayrollTotals(ok))

	ok["net_salary"] = decimal.RequireFromString("900")
	errs := checkPayrollTotals(ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "net_salary", errs[0].Field)
}

func TestCheckNewLeave(t *testing.T) {
	start := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, checkNewLeave(map[string]any{
		"status":      "Pending",
		"leave_start": start,
		"leave_end":   start.AddDate(0, 0, 2),
	}))

	errs := checkNewLeave(map[string]any{
		"status":      "Approved",
		"leave_start": start,
		"leave_end":   start.AddDate(0, 0, -1),
	})
	require.Len(t, errs, 2)
	assert.Equal(t, "status", errs[0].Field)
	assert.Equal(t, "leave_end", errs[1].Field)
}
