package mirroring

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Colunas da aba de configurações atuais, na ordem em que são gravadas
var CurrentColumns = []string{
	"api_key_id",
	"product_id",
	"status",
	"active",
	"target_drr",
	"target_drr_date",
	"target_cost_override",
	"target_cost",
	"target_cost_date",
	"min_rem",
	"deposit_type",
	"min_daily_cost",
	"max_daily_cost",
	"date",
}

// Colunas numéricas do histórico do warehouse
var numericHistoryColumns = map[string]bool{
	"target_drr":     true,
	"min_daily_cost": true,
	"max_daily_cost": true,
	"target_cost":    true,
	"product_id":     true,
}

// FlattenAutopilots descarta os autopilotos parados, achata os campos aninhados
// e ordena por max_daily_cost decrescente (ausentes no fim)
func FlattenAutopilots(autopilots []domain.Autopilot, date string) *domain.Table {
	kept := make([]domain.Autopilot, 0, len(autopilots))
	for _, a := range autopilots {
		if a.Status == domain.AutopilotStatusStopped {
			continue
		}
		kept = append(kept, a)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i].MaxDailyCost, kept[j].MaxDailyCost
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})

	table := &domain.Table{
		Columns: CurrentColumns,
		Rows:    make([][]interface{}, 0, len(kept)),
	}
	for _, a := range kept {
		table.Rows = append(table.Rows, flattenAutopilot(a, date))
	}
	return table
}

func flattenAutopilot(a domain.Autopilot, date string) []interface{} {
	var drr, drrDate, cost, costDate interface{}
	if len(a.TargetDRR) > 0 {
		drr = floatOrNil(a.TargetDRR[0].DRR)
		drrDate = stringOrNil(a.TargetDRR[0].Date)
	}
	if len(a.TargetCostOverride) > 0 {
		cost = floatOrNil(a.TargetCostOverride[0].Cost)
		costDate = stringOrNil(a.TargetCostOverride[0].Date)
	}

	var costOverride, minRem interface{}
	if a.TargetCostOverride != nil {
		costOverride = jsonText(a.TargetCostOverride)
	}
	if a.MinRem != nil {
		minRem = jsonText(a.MinRem)
	}

	return []interface{}{
		int64OrNil(a.APIKeyID),
		int64OrNil(a.ProductID),
		string(a.Status),
		boolOrNil(a.Active),
		drr,
		drrDate,
		costOverride,
		cost,
		costDate,
		minRem,
		depositText(a.DepositType),
		floatOrNil(a.MinDailyCost),
		floatOrNil(a.MaxDailyCost),
		date,
	}
}

// depositText o serviço devolve o tipo de depósito como texto ou lista
func depositText(v interface{}) interface{} {
	switch d := v.(type) {
	case nil:
		return nil
	case string:
		return d
	default:
		return jsonText(d)
	}
}

func jsonText(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func int64OrNil(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func boolOrNil(v *bool) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func stringOrNil(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// CoerceHistory converte as colunas numéricas do histórico em números
// e as demais em texto. NULL vira texto vazio.
func CoerceHistory(table *domain.Table) *domain.Table {
	out := &domain.Table{
		Columns: table.Columns,
		Rows:    make([][]interface{}, 0, len(table.Rows)),
	}

	for _, row := range table.Rows {
		coerced := make([]interface{}, len(row))
		for i, v := range row {
			if i < len(table.Columns) && numericHistoryColumns[table.Columns[i]] {
				coerced[i] = numericValue(v)
			} else {
				coerced[i] = textValue(v)
			}
		}
		out.Rows = append(out.Rows, coerced)
	}
	return out
}

func numericValue(v interface{}) interface{} {
	var n float64
	switch x := v.(type) {
	case int64:
		return x
	case float64:
		n = x
	case []byte:
		return numericValue(string(x))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return ""
		}
		n = parsed
	default:
		return ""
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	if n == float64(int64(n)) && n < 1<<53 && n > -(1<<53) {
		return int64(n)
	}
	return n
}

func textValue(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.DateTime)
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return jsonText(x)
	}
}

// sheetValues devolve cabeçalho e linhas com células ausentes em branco
func sheetValues(table *domain.Table) [][]interface{} {
	values := table.Values()
	for r, row := range values {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			if v == nil {
				v = ""
			}
			cells[i] = v
		}
		values[r] = cells
	}
	return values
}
