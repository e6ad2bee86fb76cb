package migration

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQueryer struct {
	statements []string
	err        error
}

func (q *recordingQueryer) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	q.statements = append(q.statements, query)
	return nil, q.err
}

func (q *recordingQueryer) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (q *recordingQueryer) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestSnapshotStatements(t *testing.T) {
	stmts := SnapshotStatements("cometa_current_settings_one")

	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], `CREATE TABLE IF NOT EXISTS "cometa_current_settings_one"`)
	assert.Contains(t, stmts[0], `"max_daily_cost" DOUBLE PRECISION`)
	assert.Contains(t, stmts[0], `"date" DATE NOT NULL`)
	assert.Equal(t,
		`CREATE UNIQUE INDEX IF NOT EXISTS "cometa_current_settings_one_snapshot_key" ON "cometa_current_settings_one" ("date", "api_key_id", "product_id")`,
		stmts[1])
}

func TestEnsureSnapshotTable(t *testing.T) {
	q := &recordingQueryer{}
	require.NoError(t, EnsureSnapshotTable(context.Background(), q, "settings"))
	assert.Len(t, q.statements, 2)

	failing := &recordingQueryer{err: errors.New("permission denied")}
	err := EnsureSnapshotTable(context.Background(), failing, "settings")
	assert.ErrorContains(t, err, "permission denied")
	assert.Len(t, failing.statements, 1)
}
