package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

func TestBuildHistoryQuery(t *testing.T) {
	sqlQuery, args, err := buildHistoryQuery("cometa_current_settings_one", "2025-05-31")

	require.NoError(t, err)
	assert.Equal(t,
		`SELECT * FROM "cometa_current_settings_one" WHERE date = $1 AND status IS NOT NULL`,
		sqlQuery)
	assert.Equal(t, []interface{}{"2025-05-31"}, args)
}

func TestBuildSnapshotUpsert(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"api_key_id", "product_id", "status", "date"},
		Rows: [][]interface{}{
			{int64(1), int64(10), "working", "2025-06-01"},
			{int64(1), int64(20), "paused", "2025-06-01"},
		},
	}

	sqlQuery, args, err := buildSnapshotUpsert("settings", table)

	require.NoError(t, err)
	assert.Equal(t,
		`INSERT INTO "settings" ("api_key_id","product_id","status","date") VALUES ($1,$2,$3,$4),($5,$6,$7,$8) `+
			`ON CONFLICT ("date", "api_key_id", "product_id") DO UPDATE SET "status" = EXCLUDED."status"`,
		sqlQuery)
	assert.Len(t, args, 8)
	assert.Equal(t, "paused", args[6])
}

func TestSnapshotChunks_DeduplicatesByKey(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"api_key_id", "product_id", "status", "date"},
		Rows: [][]interface{}{
			{int64(1), int64(10), "working", "2025-06-01"},
			{int64(1), int64(20), "paused", "2025-06-01"},
			{int64(1), int64(10), "paused", "2025-06-01"},
			{int64(1), nil, "working", "2025-06-01"},
			{int64(1), nil, "paused", "2025-06-01"},
		},
	}

	chunks := snapshotChunks(table, maxBindParams)

	require.Len(t, chunks, 1)
	assert.Equal(t, [][]interface{}{
		{int64(1), int64(10), "paused", "2025-06-01"},
		{int64(1), int64(20), "paused", "2025-06-01"},
		{int64(1), nil, "working", "2025-06-01"},
		{int64(1), nil, "paused", "2025-06-01"},
	}, chunks[0].Rows)
}

func TestSnapshotChunks_RespectsParameterLimit(t *testing.T) {
	table := &domain.Table{Columns: []string{"api_key_id", "product_id", "status", "date"}}
	for id := int64(0); id < 10; id++ {
		table.Rows = append(table.Rows, []interface{}{int64(1), id, "working", "2025-06-01"})
	}

	chunks := snapshotChunks(table, 13)

	require.Len(t, chunks, 4)
	for _, chunk := range chunks[:3] {
		assert.Len(t, chunk.Rows, 3)
	}
	assert.Len(t, chunks[3].Rows, 1)

	for _, chunk := range chunks {
		_, args, err := buildSnapshotUpsert("settings", chunk)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(args), 13)
	}
}

func TestSnapshotChunks_FullTableFitsPostgresLimit(t *testing.T) {
	columns := []string{
		"api_key_id", "product_id", "status", "active", "target_drr", "target_drr_date",
		"target_cost_override", "target_cost", "target_cost_date", "min_rem", "deposit_type",
		"min_daily_cost", "max_daily_cost", "date",
	}
	table := &domain.Table{Columns: columns}
	for id := int64(0); id < 5000; id++ {
		row := make([]interface{}, len(columns))
		row[0], row[1], row[13] = int64(1), id, "2025-06-01"
		table.Rows = append(table.Rows, row)
	}

	chunks := snapshotChunks(table, maxBindParams)

	require.Len(t, chunks, 2)
	total := 0
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Rows)*len(columns), maxBindParams)
		total += len(chunk.Rows)
	}
	assert.Equal(t, 5000, total)
}

func TestUpsertSuffixOnlyKeys(t *testing.T) {
	assert.Equal(t,
		`ON CONFLICT ("date", "api_key_id", "product_id") DO NOTHING`,
		upsertSuffix([]string{"date", "api_key_id", "product_id"}))
}

func TestSaveEmptyTableSkipsDatabase(t *testing.T) {
	repo := NewSettingsSnapshotRepository(nil, "settings")

	assert.NoError(t, repo.Save(context.Background(), &domain.Table{Columns: []string{"date"}}))
	assert.NoError(t, repo.Save(context.Background(), nil))
}
