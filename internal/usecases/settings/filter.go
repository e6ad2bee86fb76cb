package settings

import (
	"context"

	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/observability"
	"github.com/vfg2006/autopilot-sync/pkg/log"
)

// IsNoop informa se o registro não carrega nenhuma instrução.
// Um desligamento explícito (active=false) nunca é considerado vazio.
func IsNoop(o domain.Override) bool {
	var targetCost, targetDRR *float64
	if len(o.TargetCostOverride) > 0 {
		targetCost = o.TargetCostOverride[0].Cost
	}
	if len(o.TargetDRR) > 0 {
		targetDRR = o.TargetDRR[0].DRR
	}

	return o.MaxDailyCost == nil &&
		o.MinDailyCost == nil &&
		targetCost == nil &&
		targetDRR == nil &&
		!o.ExplicitlyInactive()
}

// FilterNoops devolve um novo lote apenas com registros que carregam instrução
// e o número de registros descartados
func FilterNoops(ctx context.Context, batch domain.Batch) (domain.Batch, int) {
	logger := log.ForContext(ctx)

	kept := make(domain.Batch, 0, len(batch))
	dropped := 0
	for _, o := range batch {
		if IsNoop(o) {
			dropped++
			logger.WithField("product_id", productIDField(o)).Info("Linha sem instrução removida do lote")
			continue
		}
		kept = append(kept, o)
	}

	observability.OverridesDroppedTotal.Add(float64(dropped))

	return kept, dropped
}

func productIDField(o domain.Override) interface{} {
	if o.ProductID == nil {
		return nil
	}
	return *o.ProductID
}
