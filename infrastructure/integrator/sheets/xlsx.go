package sheets

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// XLSXOpener usa um arquivo .xlsx local no lugar da planilha do Google.
// O título é ignorado: o arquivo configurado é sempre o documento aberto.
type XLSXOpener struct {
	path string
}

func NewXLSXOpener(path string) *XLSXOpener {
	return &XLSXOpener{path: path}
}

func (o *XLSXOpener) Open(_ context.Context, title string) (Spreadsheet, error) {
	var (
		file *excelize.File
		err  error
	)

	if _, statErr := os.Stat(o.path); statErr == nil {
		file, err = excelize.OpenFile(o.path)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao abrir %s", o.path)
		}
	} else if os.IsNotExist(statErr) {
		file = excelize.NewFile()
	} else {
		return nil, errors.Wrapf(statErr, "erro ao acessar %s", o.path)
	}

	return &XLSXSpreadsheet{
		file:  file,
		path:  o.path,
		title: title,
	}, nil
}

// XLSXSpreadsheet grava cada alteração de volta no arquivo
type XLSXSpreadsheet struct {
	file  *excelize.File
	path  string
	title string
}

func (s *XLSXSpreadsheet) Title() string {
	if s.title != "" {
		return s.title
	}
	return filepath.Base(s.path)
}

func (s *XLSXSpreadsheet) ReadValues(_ context.Context, tab string) ([][]string, error) {
	if idx, err := s.file.GetSheetIndex(tab); err != nil || idx < 0 {
		return nil, errors.Wrap(ErrTabNotFound, tab)
	}

	rows, err := s.file.GetRows(tab)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %s", tab)
	}
	return rows, nil
}

func (s *XLSXSpreadsheet) WriteValues(_ context.Context, tab string, values [][]interface{}) error {
	if err := s.resetTab(tab); err != nil {
		return err
	}

	for i, row := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := s.file.SetSheetRow(tab, cell, &row); err != nil {
			return errors.Wrapf(err, "erro ao gravar a linha %d da aba %s", i+1, tab)
		}
	}

	return s.save()
}

// ColumnCount devolve a primeira coluna livre depois da linha mais larga
func (s *XLSXSpreadsheet) ColumnCount(_ context.Context, tab string) (int, error) {
	rows, err := s.file.GetRows(tab)
	if err != nil {
		return 0, errors.Wrap(ErrTabNotFound, tab)
	}

	widest := 0
	for _, row := range rows {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return widest + 1, nil
}

func (s *XLSXSpreadsheet) UpdateCell(_ context.Context, tab string, row, col int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := s.file.SetCellValue(tab, cell, value); err != nil {
		return errors.Wrapf(err, "erro ao gravar a célula %s", cell)
	}
	return s.save()
}

// resetTab cria a aba quando não existe, ou remove todas as linhas quando existe
func (s *XLSXSpreadsheet) resetTab(tab string) error {
	idx, err := s.file.GetSheetIndex(tab)
	if err != nil {
		return err
	}
	if idx < 0 {
		_, err := s.file.NewSheet(tab)
		return err
	}

	rows, err := s.file.GetRows(tab)
	if err != nil {
		return err
	}
	for r := len(rows); r >= 1; r-- {
		if err := s.file.RemoveRow(tab, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *XLSXSpreadsheet) save() error {
	if err := s.file.SaveAs(s.path); err != nil {
		return errors.Wrapf(err, "erro ao salvar %s", s.path)
	}
	return nil
}
