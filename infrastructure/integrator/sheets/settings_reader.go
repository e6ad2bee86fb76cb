package sheets

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

// SettingsReader lê a aba de configurações do autopiloto
type SettingsReader struct {
	opener Opener
	title  string
	tab    string
}

func NewSettingsReader(opener Opener, title, tab string) *SettingsReader {
	return &SettingsReader{
		opener: opener,
		title:  title,
		tab:    tab,
	}
}

func (r *SettingsReader) ReadSettingsRows(ctx context.Context) ([]domain.SettingsRow, error) {
	sheet, err := r.opener.Open(ctx, r.title)
	if err != nil {
		return nil, err
	}

	values, err := sheet.ReadValues(ctx, r.tab)
	if err != nil {
		return nil, errors.Wrapf(err, "planilha %s", sheet.Title())
	}

	rows := RowsFromValues(values)
	logrus.WithFields(logrus.Fields{
		"spreadsheet": sheet.Title(),
		"tab":         r.tab,
		"rows":        len(rows),
	}).Debug("Aba de configurações lida")

	return rows, nil
}
