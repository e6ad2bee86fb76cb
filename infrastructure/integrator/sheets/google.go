package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// GoogleOpener abre planilhas do Google usando uma conta de serviço
type GoogleOpener struct {
	sheets        *gsheets.Service
	drive         *drive.Service
	spreadsheetID string
}

// NewGoogleOpener cria os serviços do Sheets e do Drive a partir do arquivo de credenciais.
// Com spreadsheetID preenchido a busca por título no Drive é ignorada.
func NewGoogleOpener(ctx context.Context, credentialsFile, spreadsheetID string) (*GoogleOpener, error) {
	sheetsSvc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar serviço do Google Sheets")
	}

	driveSvc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveMetadataReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar serviço do Google Drive")
	}

	return &GoogleOpener{
		sheets:        sheetsSvc,
		drive:         driveSvc,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (o *GoogleOpener) Open(ctx context.Context, title string) (Spreadsheet, error) {
	id := o.spreadsheetID
	if id == "" {
		found, err := o.findByTitle(ctx, title)
		if err != nil {
			return nil, err
		}
		id = found
	}

	doc, err := o.sheets.Spreadsheets.Get(id).Fields("spreadsheetId", "properties.title").Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir a planilha %s", id)
	}

	return &GoogleSpreadsheet{
		service: o.sheets,
		id:      doc.SpreadsheetId,
		title:   doc.Properties.Title,
	}, nil
}

func (o *GoogleOpener) findByTitle(ctx context.Context, title string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(title, "'", `\'`), spreadsheetMimeType)

	files, err := o.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.Wrap(err, "erro ao buscar a planilha no Drive")
	}
	if len(files.Files) == 0 {
		return "", fmt.Errorf("%w: %s", ErrSpreadsheetNotFound, title)
	}

	return files.Files[0].Id, nil
}

// GoogleSpreadsheet é uma planilha aberta no Google Sheets
type GoogleSpreadsheet struct {
	service *gsheets.Service
	id      string
	title   string
}

func (s *GoogleSpreadsheet) Title() string {
	return s.title
}

func (s *GoogleSpreadsheet) ReadValues(ctx context.Context, tab string) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.id, quoteTab(tab)).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %s", tab)
	}

	values := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		values[i] = make([]string, len(row))
		for j, v := range row {
			values[i][j] = fmt.Sprint(v)
		}
	}
	return values, nil
}

func (s *GoogleSpreadsheet) WriteValues(ctx context.Context, tab string, values [][]interface{}) error {
	_, err := s.service.Spreadsheets.Values.Clear(s.id, quoteTab(tab), &gsheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao limpar a aba %s", tab)
	}

	_, err = s.service.Spreadsheets.Values.
		Update(s.id, quoteTab(tab)+"!A1", &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao gravar a aba %s", tab)
	}
	return nil
}

func (s *GoogleSpreadsheet) ColumnCount(ctx context.Context, tab string) (int, error) {
	doc, err := s.service.Spreadsheets.Get(s.id).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao obter propriedades da planilha")
	}

	for _, sheet := range doc.Sheets {
		if sheet.Properties == nil || sheet.Properties.Title != tab {
			continue
		}
		if sheet.Properties.GridProperties == nil {
			return 0, nil
		}
		return int(sheet.Properties.GridProperties.ColumnCount), nil
	}

	return 0, fmt.Errorf("%w: %s", ErrTabNotFound, tab)
}

func (s *GoogleSpreadsheet) UpdateCell(ctx context.Context, tab string, row, col int, value interface{}) error {
	ref := quoteTab(tab) + "!" + CellRef(row, col)

	_, err := s.service.Spreadsheets.Values.
		Update(s.id, ref, &gsheets.ValueRange{Values: [][]interface{}{{value}}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao gravar a célula %s", ref)
	}
	return nil
}

func quoteTab(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}

// CellRef converte linha e coluna (a partir de 1) em notação A1
func CellRef(row, col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return fmt.Sprintf("%s%d", name, row)
}
