package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// payrollTables are truncated between tests, children first.
var payrollTables = []string{
	"payslips",
	"salary_grades",
	"job_titles",
	"allowances",
	"user_roles",
	"leave_management",
	"bank_details",
	"attendance",
	"bonuses",
	"overtime",
	"deductions",
	"taxation",
	"payroll",
	"salaries",
	"employees",
}

// newTestDatabase connects to TEST_DATABASE_URL, applies migrations and
// empties the payroll tables. The test is skipped when no database is set.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, database.Migrate(ctx, db))
	truncateAll(t, db)
	return db
}

func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	for _, table := range payrollTables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
	require.NoError(t, tx.Commit(ctx))
}
