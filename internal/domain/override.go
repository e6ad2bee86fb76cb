package domain

// DepositType é a conta de onde o autopiloto retira o saldo
type DepositType string

const (
	DepositTypeAccount DepositType = "account"
	DepositTypeNet     DepositType = "net"
	DepositTypeBonus   DepositType = "bonus"
)

// IsValid informa se o valor pertence ao conjunto aceito pela API
func (d DepositType) IsValid() bool {
	switch d {
	case DepositTypeAccount, DepositTypeNet, DepositTypeBonus:
		return true
	}
	return false
}

// TargetDRR é a meta de DRR (gasto em anúncio / receita) a partir de uma data
type TargetDRR struct {
	Date *string  `json:"date"`
	DRR  *float64 `json:"drr"`
}

// TargetCost é a meta de gasto diário a partir de uma data
type TargetCost struct {
	Date *string  `json:"date"`
	Cost *float64 `json:"cost"`
}

// MinRemainder é o estoque mínimo de um tamanho para manter o autopiloto ligado
type MinRemainder struct {
	Quantity *int64 `json:"quantity"`
	Size     string `json:"size"`
}

// Override é o registro canônico enviado para POST /v1/autopilots.
//
// As listas têm no máximo um elemento. Uma lista nil é serializada como null,
// enquanto uma lista vazia ([]) é um estado intermediário que o saneamento
// sempre converte em nil antes do envio.
type Override struct {
	APIKeyID           *int64         `json:"api_key_id"`
	ProductID          *int64         `json:"product_id"`
	Active             *bool          `json:"active"`
	TargetDRR          []TargetDRR    `json:"target_drr"`
	TargetCostOverride []TargetCost   `json:"target_cost_override"`
	MinRem             []MinRemainder `json:"min_rem"`
	DepositType        []DepositType  `json:"deposit_type"`
	MinDailyCost       *int64         `json:"min_daily_cost"`
	MaxDailyCost       *int64         `json:"max_daily_cost"`
}

// ProductIDValue retorna o artigo ou 0 quando ausente, para uso em logs
func (o Override) ProductIDValue() int64 {
	if o.ProductID == nil {
		return 0
	}
	return *o.ProductID
}

// ExplicitlyInactive informa se o operador pediu para desligar o autopiloto
func (o Override) ExplicitlyInactive() bool {
	return o.Active != nil && !*o.Active
}

// Clone devolve uma cópia profunda do registro
func (o Override) Clone() Override {
	out := o
	if o.TargetDRR != nil {
		out.TargetDRR = append([]TargetDRR{}, o.TargetDRR...)
	}
	if o.TargetCostOverride != nil {
		out.TargetCostOverride = append([]TargetCost{}, o.TargetCostOverride...)
	}
	if o.MinRem != nil {
		out.MinRem = append([]MinRemainder{}, o.MinRem...)
	}
	if o.DepositType != nil {
		out.DepositType = append([]DepositType{}, o.DepositType...)
	}
	return out
}

// Batch é o lote de overrides de uma execução
type Batch []Override

// Clone devolve uma cópia independente do lote
func (b Batch) Clone() Batch {
	if b == nil {
		return nil
	}
	out := make(Batch, len(b))
	for i, o := range b {
		out[i] = o.Clone()
	}
	return out
}

// WithoutProduct devolve um novo lote sem os registros do artigo informado
func (b Batch) WithoutProduct(productID int64) (Batch, int) {
	out := make(Batch, 0, len(b))
	removed := 0
	for _, o := range b {
		if o.ProductID != nil && *o.ProductID == productID {
			removed++
			continue
		}
		out = append(out, o)
	}
	return out, removed
}
