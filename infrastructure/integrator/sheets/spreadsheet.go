package sheets

import (
	"context"
	"errors"
)

var (
	ErrSpreadsheetUnavailable = errors.New("spreadsheet unavailable after retries")
	ErrSpreadsheetNotFound    = errors.New("spreadsheet not found")
	ErrTabNotFound            = errors.New("worksheet not found")
)

// Spreadsheet é um documento aberto com abas nomeadas
type Spreadsheet interface {
	Title() string
	ReadValues(ctx context.Context, tab string) ([][]string, error)
	// WriteValues substitui o conteúdo da aba a partir de A1
	WriteValues(ctx context.Context, tab string, values [][]interface{}) error
	ColumnCount(ctx context.Context, tab string) (int, error)
	// UpdateCell grava uma célula; linha e coluna começam em 1
	UpdateCell(ctx context.Context, tab string, row, col int, value interface{}) error
}

// Opener abre uma planilha pelo título
type Opener interface {
	Open(ctx context.Context, title string) (Spreadsheet, error)
}
