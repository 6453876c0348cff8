package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/subway-planner/migrations"
	"github.com/pkordes/subway-planner/testutil"
)

// migratedTables lists every table the migrations create.
var migratedTables = []string{"stations", "lines", "sections"}

// TestMigrations applies every migration, checks the tables exist, rolls all
// of them back and checks the tables are gone again.
// Skipped when TEST_DATABASE_URL is not set.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	// Another package's TestMain may already have migrated this shared
	// database; start from version 0 so the test is order-independent.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, len(migratedTables))
	for _, table := range migratedTables {
		assert.True(t, tableExists(t, db, table), "expected table %q to exist", table)
	}

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	for _, table := range migratedTables {
		assert.False(t, tableExists(t, db, table), "expected table %q to be dropped", table)
	}

	// Leave the schema in place for packages that run after this one.
	_, err = provider.Up(ctx)
	require.NoError(t, err, "goose up again")
}

// TestMigrations_SectionConstraints checks that storage refuses the shapes
// the ledger never produces: a branch, a loop and a non-positive distance.
func TestMigrations_SectionConstraints(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()
	require.NoError(t, testutil.Migrate(ctx, db))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	var lineID, a, b, c string
	require.NoError(t, tx.QueryRowContext(ctx, `INSERT INTO lines (name) VALUES ('constraint-test') RETURNING id`).Scan(&lineID))
	for _, st := range []struct {
		name string
		dst  *string
	}{{"ca", &a}, {"cb", &b}, {"cc", &c}} {
		require.NoError(t, tx.QueryRowContext(ctx, `INSERT INTO stations (name) VALUES ($1) RETURNING id`, st.name).Scan(st.dst))
	}

	const insert = `INSERT INTO sections (line_id, up_station_id, down_station_id, distance) VALUES ($1, $2, $3, $4)`
	_, err = tx.ExecContext(ctx, insert, lineID, a, b, 5)
	require.NoError(t, err)

	for name, args := range map[string][]any{
		"branch":   {lineID, a, c, 3},
		"loop":     {lineID, c, c, 3},
		"distance": {lineID, b, c, 0},
	} {
		_, err := tx.ExecContext(ctx, "SAVEPOINT sp")
		require.NoError(t, err)
		_, err = tx.ExecContext(ctx, insert, args...)
		assert.Error(t, err, name)
		_, err = tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT sp")
		require.NoError(t, err)
	}
}

// tableExists reports whether table is present in the public schema.
func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	err := db.QueryRowContext(context.Background(), q, table).Scan(&exists)
	require.NoError(t, err, "check table existence for %q", table)
	return exists
}
