package sheets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXLSXSpreadsheet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "painel.xlsx")
	opener := NewXLSXOpener(path)

	sheet, err := opener.Open(ctx, "Painel")
	require.NoError(t, err)
	assert.Equal(t, "Painel", sheet.Title())

	err = sheet.WriteValues(ctx, "Текущие", [][]interface{}{
		{"product_id", "status"},
		{int64(1), "active"},
		{int64(2), "paused"},
	})
	require.NoError(t, err)

	cols, err := sheet.ColumnCount(ctx, "Текущие")
	require.NoError(t, err)
	assert.Equal(t, 3, cols)

	require.NoError(t, sheet.UpdateCell(ctx, "Текущие", 1, cols, "2026-10-18 10:00:00"))

	reopened, err := opener.Open(ctx, "Painel")
	require.NoError(t, err)

	values, err := reopened.ReadValues(ctx, "Текущие")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"product_id", "status", "2026-10-18 10:00:00"},
		{"1", "active"},
		{"2", "paused"},
	}, values)

	// regravar substitui todo o conteúdo anterior
	require.NoError(t, reopened.WriteValues(ctx, "Текущие", [][]interface{}{{"product_id"}}))

	values, err = reopened.ReadValues(ctx, "Текущие")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"product_id"}}, values)
}

func TestXLSXSpreadsheetMissingTab(t *testing.T) {
	sheet, err := NewXLSXOpener(filepath.Join(t.TempDir(), "vazio.xlsx")).Open(context.Background(), "")
	require.NoError(t, err)

	_, err = sheet.ReadValues(context.Background(), "Inexistente")
	assert.ErrorIs(t, err, ErrTabNotFound)
	assert.Equal(t, "vazio.xlsx", sheet.Title())
}
