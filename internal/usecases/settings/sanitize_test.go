package settings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.Override
		validate func(t *testing.T, o domain.Override)
	}{
		{
			name: "Listas vazias viram nil",
			input: domain.Override{
				TargetDRR:          []domain.TargetDRR{},
				TargetCostOverride: []domain.TargetCost{},
				MinRem:             []domain.MinRemainder{},
				DepositType:        []domain.DepositType{},
			},
			validate: func(t *testing.T, o domain.Override) {
				assert.Nil(t, o.TargetDRR)
				assert.Nil(t, o.TargetCostOverride)
				assert.Nil(t, o.MinRem)
				assert.Nil(t, o.DepositType)
			},
		},
		{
			name: "DRR sem data vira nil",
			input: domain.Override{
				TargetDRR: []domain.TargetDRR{{DRR: float64Ptr(10)}},
			},
			validate: func(t *testing.T, o domain.Override) {
				assert.Nil(t, o.TargetDRR)
			},
		},
		{
			name: "Meta de gasto sem valor vira nil",
			input: domain.Override{
				TargetCostOverride: []domain.TargetCost{{Date: stringPtr("2025-06-24")}},
			},
			validate: func(t *testing.T, o domain.Override) {
				assert.Nil(t, o.TargetCostOverride)
			},
		},
		{
			name: "Campos completos são mantidos",
			input: domain.Override{
				TargetDRR:          []domain.TargetDRR{{Date: stringPtr("2025-06-24"), DRR: float64Ptr(10)}},
				TargetCostOverride: []domain.TargetCost{{Date: stringPtr("2025-06-24"), Cost: float64Ptr(100)}},
				MinRem:             []domain.MinRemainder{{Quantity: int64Ptr(2), Size: "L"}},
				DepositType:        []domain.DepositType{domain.DepositTypeAccount},
			},
			validate: func(t *testing.T, o domain.Override) {
				assert.Len(t, o.TargetDRR, 1)
				assert.Len(t, o.TargetCostOverride, 1)
				assert.Len(t, o.MinRem, 1)
				assert.Equal(t, []domain.DepositType{domain.DepositTypeAccount}, o.DepositType)
			},
		},
		{
			name: "Estoque mínimo sem quantidade vira nil",
			input: domain.Override{
				MinRem: []domain.MinRemainder{{Size: "L"}},
			},
			validate: func(t *testing.T, o domain.Override) {
				assert.Nil(t, o.MinRem)
			},
		},
		{
			name: "Tipo de depósito fora do conjunto vira nil",
			input: domain.Override{
				DepositType: []domain.DepositType{"cartão"},
			},
			validate: func(t *testing.T, o domain.Override) {
				assert.Nil(t, o.DepositType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	batch := NormalizeRows([]domain.SettingsRow{
		{domain.FieldProductID: "1", domain.FieldTargetDRR: "5", domain.FieldTargetDRRAt: "xx", domain.FieldDepositType: "bonus"},
		{domain.FieldProductID: "2", domain.FieldTargetCost: "5", domain.FieldTargetCostAt: "01.02.2025", domain.FieldSize: "S", domain.FieldQuantity: "q"},
		{domain.FieldProductID: "3", domain.FieldActive: "0"},
	})

	once := SanitizeBatch(batch)
	twice := SanitizeBatch(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("saneamento não é idempotente (-once +twice):\n%s", diff)
	}
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	input := domain.Override{TargetDRR: []domain.TargetDRR{}}

	_ = Sanitize(input)

	assert.NotNil(t, input.TargetDRR)
}
