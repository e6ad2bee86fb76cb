package sheets

import (
	"strings"

	"github.com/vfg2006/autopilot-sync/internal/domain"
)

// HeaderTranslation traduz os rótulos da aba de configurações para os campos canônicos
var HeaderTranslation = map[string]string{
	"Идентификатор юрлица": domain.FieldAPIKeyID,
	"Артикул":    domain.FieldProductID,
	"Активность": domain.FieldActive,
	"Дата, начиная с которой будет действовать целевой ДРР": domain.FieldTargetDRRAt,
	"Целевой ДРР": domain.FieldTargetDRR,
	"Дата, начиная с которой будет действовать целевой расход": domain.FieldTargetCostAt,
	"Целевой расход":      domain.FieldTargetCost,
	"Размер":              domain.FieldSize,
	"Количество":          domain.FieldQuantity,
	"Счет автопополнения": domain.FieldDepositType,
	"Минимальный расход":  domain.FieldMinDailyCost,
	"Максимальный расход": domain.FieldMaxDailyCost,
}

// TranslateHeader devolve o nome canônico da coluna; rótulos desconhecidos passam sem tradução
func TranslateHeader(label string) string {
	label = strings.TrimSpace(label)
	if field, ok := HeaderTranslation[label]; ok {
		return field
	}
	return label
}

// RowsFromValues usa a primeira linha como cabeçalho e monta uma SettingsRow por linha.
// Linhas curtas são completadas com células vazias.
func RowsFromValues(values [][]string) []domain.SettingsRow {
	if len(values) == 0 {
		return []domain.SettingsRow{}
	}

	header := make([]string, len(values[0]))
	for i, label := range values[0] {
		header[i] = TranslateHeader(label)
	}

	rows := make([]domain.SettingsRow, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(domain.SettingsRow, len(header))
		for i, field := range header {
			if field == "" {
				continue
			}
			if i < len(raw) {
				row[field] = raw[i]
			} else {
				row[field] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}
