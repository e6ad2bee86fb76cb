package settings

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/autopilot-sync/internal/domain"
)

const isoDateLayout = "2006-01-02"

// dia e mês com um ou dois dígitos
var inputDateLayouts = []string{"2006-1-2", "2.1.2006"}

// cell reconhece os marcadores de "sem valor" da planilha.
// Retorna o texto limpo e false quando a célula deve ser tratada como ausente.
func cell(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "nan") {
		return "", false
	}
	return v, true
}

// ParseInt converte um inteiro. Lixo vira ausente, nunca erro.
func ParseInt(raw string) *int64 {
	v, ok := cell(raw)
	if !ok {
		return nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ParseDecimal converte um decimal aceitando vírgula como separador
func ParseDecimal(raw string) *float64 {
	v, ok := cell(strings.ReplaceAll(raw, ",", "."))
	if !ok {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ParseBool aceita apenas "1" e "0"; qualquer outro valor é ausente
func ParseBool(raw string) *bool {
	var b bool
	switch strings.TrimSpace(raw) {
	case "1":
		b = true
	case "0":
		b = false
	default:
		return nil
	}
	return &b
}

// ParseDate aceita YYYY-MM-DD ou DD.MM.YYYY e devolve sempre YYYY-MM-DD
func ParseDate(raw string) *string {
	v, ok := cell(raw)
	if !ok {
		return nil
	}

	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			iso := t.Format(isoDateLayout)
			return &iso
		}
	}
	return nil
}

// NormalizeRow converte uma linha crua em um Override.
//
// As listas aninhadas só recebem um elemento quando o valor e a data (ou
// quantidade e tamanho) estão preenchidos; caso contrário ficam vazias e são
// convertidas em nil pelo saneamento.
func NormalizeRow(row domain.SettingsRow) domain.Override {
	o := domain.Override{
		APIKeyID:           ParseInt(row.Get(domain.FieldAPIKeyID)),
		ProductID:          ParseInt(row.Get(domain.FieldProductID)),
		Active:             ParseBool(row.Get(domain.FieldActive)),
		TargetDRR:          []domain.TargetDRR{},
		TargetCostOverride: []domain.TargetCost{},
		MinRem:             []domain.MinRemainder{},
		DepositType:        []domain.DepositType{},
		MinDailyCost:       ParseInt(row.Get(domain.FieldMinDailyCost)),
		MaxDailyCost:       ParseInt(row.Get(domain.FieldMaxDailyCost)),
	}

	if present(row, domain.FieldTargetDRR, domain.FieldTargetDRRAt) {
		o.TargetDRR = []domain.TargetDRR{{
			Date: ParseDate(row.Get(domain.FieldTargetDRRAt)),
			DRR:  ParseDecimal(row.Get(domain.FieldTargetDRR)),
		}}
	}

	if present(row, domain.FieldTargetCost, domain.FieldTargetCostAt) {
		o.TargetCostOverride = []domain.TargetCost{{
			Date: ParseDate(row.Get(domain.FieldTargetCostAt)),
			Cost: ParseDecimal(row.Get(domain.FieldTargetCost)),
		}}
	}

	if present(row, domain.FieldQuantity, domain.FieldSize) {
		size, _ := cell(row.Get(domain.FieldSize))
		o.MinRem = []domain.MinRemainder{{
			Quantity: ParseInt(row.Get(domain.FieldQuantity)),
			Size:     size,
		}}
	}

	if deposit, ok := cell(row.Get(domain.FieldDepositType)); ok {
		o.DepositType = []domain.DepositType{domain.DepositType(deposit)}
	}

	return o
}

// NormalizeRows normaliza todas as linhas preservando a ordem
func NormalizeRows(rows []domain.SettingsRow) domain.Batch {
	batch := make(domain.Batch, 0, len(rows))
	for _, row := range rows {
		batch = append(batch, NormalizeRow(row))
	}
	return batch
}

func present(row domain.SettingsRow, fields ...string) bool {
	for _, f := range fields {
		if _, ok := cell(row.Get(f)); !ok {
			return false
		}
	}
	return true
}
