package sheets

import (
	"context"

	"github.com/pkg/errors"
)

// TimestampLayout é o formato da célula de atualização
const TimestampLayout = "2006-01-02 15:04:05"

// PublishTable substitui o conteúdo da aba e grava o horário da atualização
// na primeira linha da última coluna da aba
func PublishTable(ctx context.Context, sheet Spreadsheet, tab string, values [][]interface{}, stamp string) error {
	if err := sheet.WriteValues(ctx, tab, values); err != nil {
		return err
	}

	cols, err := sheet.ColumnCount(ctx, tab)
	if err != nil {
		return err
	}
	if cols < 1 {
		cols = 1
	}

	if err := sheet.UpdateCell(ctx, tab, 1, cols, stamp); err != nil {
		return errors.Wrap(err, "erro ao gravar o horário da atualização")
	}
	return nil
}
