package domain

// Nomes canônicos das colunas da aba de configurações
const (
	FieldAPIKeyID     = "api_key_id"
	FieldProductID    = "product_id"
	FieldActive       = "active"
	FieldTargetDRR    = "target_drr"
	FieldTargetDRRAt  = "target_drr_date"
	FieldTargetCost   = "target_cost_override"
	FieldTargetCostAt = "target_cost_date"
	FieldSize         = "size"
	FieldQuantity     = "quantity"
	FieldDepositType  = "deposit_type"
	FieldMinDailyCost = "min_daily_cost"
	FieldMaxDailyCost = "max_daily_cost"
)

// SettingsRow é uma linha da planilha já com os cabeçalhos traduzidos.
// Todos os valores chegam como texto cru.
type SettingsRow map[string]string

// Get retorna o texto cru da coluna, ou "" quando ela não existe
func (r SettingsRow) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}
