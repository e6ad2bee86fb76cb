package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

func TestIsNoop(t *testing.T) {
	tests := []struct {
		name     string
		override domain.Override
		expected bool
	}{
		{
			name:     "Desligamento explícito sem outros campos é mantido",
			override: domain.Override{ProductID: int64Ptr(1), Active: boolPtr(false)},
			expected: false,
		},
		{
			name:     "Active ausente e nada preenchido é descartado",
			override: domain.Override{ProductID: int64Ptr(1)},
			expected: true,
		},
		{
			name:     "Active true sozinho é descartado",
			override: domain.Override{ProductID: int64Ptr(1), Active: boolPtr(true)},
			expected: true,
		},
		{
			name:     "Gasto máximo preenchido é mantido",
			override: domain.Override{MaxDailyCost: int64Ptr(500)},
			expected: false,
		},
		{
			name:     "Gasto mínimo preenchido é mantido",
			override: domain.Override{MinDailyCost: int64Ptr(50)},
			expected: false,
		},
		{
			name: "Meta de gasto com valor é mantida",
			override: domain.Override{
				TargetCostOverride: []domain.TargetCost{{Cost: float64Ptr(10)}},
			},
			expected: false,
		},
		{
			name: "Meta de DRR com valor é mantida",
			override: domain.Override{
				TargetDRR: []domain.TargetDRR{{Date: stringPtr("2025-01-01"), DRR: float64Ptr(8)}},
			},
			expected: false,
		},
		{
			name: "Meta de DRR sem valor é descartada",
			override: domain.Override{
				TargetDRR: []domain.TargetDRR{{Date: stringPtr("2025-01-01")}},
			},
			expected: true,
		},
		{
			name: "Apenas estoque mínimo e tipo de depósito é descartado",
			override: domain.Override{
				MinRem:      []domain.MinRemainder{{Quantity: int64Ptr(3), Size: "M"}},
				DepositType: []domain.DepositType{domain.DepositTypeBonus},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNoop(tt.override))
		})
	}
}

func TestFilterNoops_PreservesOrder(t *testing.T) {
	batch := domain.Batch{
		{ProductID: int64Ptr(1), MaxDailyCost: int64Ptr(10)},
		{ProductID: int64Ptr(2)},
		{ProductID: int64Ptr(3), Active: boolPtr(false)},
		{ProductID: int64Ptr(4), Active: boolPtr(true)},
	}

	kept, dropped := FilterNoops(context.Background(), batch)

	assert.Equal(t, 2, dropped)
	require.Len(t, kept, 2)
	assert.Equal(t, int64(1), kept[0].ProductIDValue())
	assert.Equal(t, int64(3), kept[1].ProductIDValue())
	assert.Len(t, batch, 4)
}
