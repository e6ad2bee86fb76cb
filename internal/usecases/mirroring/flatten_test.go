package mirroring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestFlattenAutopilots(t *testing.T) {
	autopilots := []domain.Autopilot{
		{
			APIKeyID:           ptr(int64(7)),
			ProductID:          ptr(int64(1)),
			Status:             "working",
			Active:             ptr(true),
			TargetDRR:          []domain.TargetDRR{{Date: ptr("2025-01-01"), DRR: ptr(5.5)}},
			TargetCostOverride: []domain.TargetCost{},
			DepositType:        "account",
			MaxDailyCost:       ptr(100.0),
		},
		{
			ProductID:    ptr(int64(2)),
			Status:       domain.AutopilotStatusStopped,
			MaxDailyCost: ptr(999.0),
		},
		{
			ProductID: ptr(int64(3)),
			Status:    "underfunded",
		},
		{
			ProductID:          ptr(int64(4)),
			Status:             "target_reached",
			TargetCostOverride: []domain.TargetCost{{Date: ptr("2025-02-01"), Cost: ptr(1000.0)}},
			MinRem:             []domain.MinRemainder{{Quantity: ptr(int64(5)), Size: "M"}},
			DepositType:        []interface{}{"bonus"},
			MinDailyCost:       ptr(50.0),
			MaxDailyCost:       ptr(300.0),
		},
	}

	table := FlattenAutopilots(autopilots, "2025-06-01")

	assert.Equal(t, CurrentColumns, table.Columns)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, []interface{}{
		nil, int64(4), "target_reached", nil,
		nil, nil,
		`[{"date":"2025-02-01","cost":1000}]`, 1000.0, "2025-02-01",
		`[{"quantity":5,"size":"M"}]`, `["bonus"]`,
		50.0, 300.0, "2025-06-01",
	}, table.Rows[0])

	assert.Equal(t, []interface{}{
		int64(7), int64(1), "working", true,
		5.5, "2025-01-01",
		"[]", nil, nil,
		nil, "account",
		nil, 100.0, "2025-06-01",
	}, table.Rows[1])

	assert.Equal(t, int64(3), table.Rows[2][1])
	assert.Nil(t, table.Rows[2][12])
}

func TestFlattenAutopilotsKeepsOrderOfTies(t *testing.T) {
	table := FlattenAutopilots([]domain.Autopilot{
		{ProductID: ptr(int64(1)), MaxDailyCost: ptr(10.0)},
		{ProductID: ptr(int64(2)), MaxDailyCost: ptr(10.0)},
		{ProductID: ptr(int64(3))},
		{ProductID: ptr(int64(4))},
	}, "2025-06-01")

	ids := []interface{}{}
	for _, row := range table.Rows {
		ids = append(ids, row[1])
	}
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3), int64(4)}, ids)
}

func TestCoerceHistory(t *testing.T) {
	day := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	table := &domain.Table{
		Columns: []string{"date", "product_id", "target_drr", "status", "max_daily_cost", "active"},
		Rows: [][]interface{}{
			{day, []byte("12345"), []byte("7.5"), []byte("working"), nil, true},
			{"2025-05-31", int64(7), "abc", nil, 500.0, nil},
		},
	}

	coerced := CoerceHistory(table)

	assert.Equal(t, table.Columns, coerced.Columns)
	assert.Equal(t, []interface{}{"2025-05-31", int64(12345), 7.5, "working", "", "true"}, coerced.Rows[0])
	assert.Equal(t, []interface{}{"2025-05-31", int64(7), "", "", int64(500), ""}, coerced.Rows[1])
}

func TestSheetValuesBlanksMissingCells(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"a", "b"},
		Rows:    [][]interface{}{{nil, int64(1)}},
	}

	values := sheetValues(table)

	assert.Equal(t, [][]interface{}{{"a", "b"}, {"", int64(1)}}, values)
	assert.Nil(t, table.Rows[0][0])
}
