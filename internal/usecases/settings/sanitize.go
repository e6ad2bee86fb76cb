package settings

import "github.com/vfg2006/autopilot-sync/internal/domain"

// Sanitize converte em nil os campos aninhados presentes mas incompletos,
// que a API rejeitaria. A operação é idempotente.
func Sanitize(o domain.Override) domain.Override {
	out := o.Clone()

	if !hasCompleteDRR(out.TargetDRR) {
		out.TargetDRR = nil
	}
	if !hasCompleteCost(out.TargetCostOverride) {
		out.TargetCostOverride = nil
	}
	if len(out.MinRem) == 0 || out.MinRem[0].Quantity == nil {
		out.MinRem = nil
	}
	if !hasValidDeposit(out.DepositType) {
		out.DepositType = nil
	}

	return out
}

// SanitizeBatch aplica Sanitize em cada registro do lote
func SanitizeBatch(batch domain.Batch) domain.Batch {
	out := make(domain.Batch, len(batch))
	for i, o := range batch {
		out[i] = Sanitize(o)
	}
	return out
}

func hasCompleteDRR(items []domain.TargetDRR) bool {
	for _, i := range items {
		if i.Date != nil && *i.Date != "" && i.DRR != nil {
			return true
		}
	}
	return false
}

func hasCompleteCost(items []domain.TargetCost) bool {
	for _, i := range items {
		if i.Date != nil && *i.Date != "" && i.Cost != nil {
			return true
		}
	}
	return false
}

func hasValidDeposit(items []domain.DepositType) bool {
	for _, d := range items {
		if d.IsValid() {
			return true
		}
	}
	return false
}
