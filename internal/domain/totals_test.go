package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int64
	}{
		{name: "Inteiro", input: 1000000, expected: 1000000},
		{name: "Int64", input: int64(2500000), expected: 2500000},
		{name: "Float do JSON", input: float64(1500000), expected: 1500000},
		{name: "String com separador de milhar", input: "1,500,000", expected: 1500000},
		{name: "String simples", input: "300000", expected: 300000},
		{name: "String não numérica", input: "문의", expected: 0},
		{name: "Nulo", input: nil, expected: 0},
		{name: "Vazio", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumericAmount(tt.input))
		})
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		expected EstimateTotals
	}{
		{
			name: "VAT de 10% arredondado sobre o subtotal",
			products: []Product{
				{Total: 1000000},
				{Total: 2000000},
			},
			expected: EstimateTotals{Subtotal: 3000000, VAT: 300000, GrandTotal: 3300000},
		},
		{
			name: "Linhas sem total contam como zero",
			products: []Product{
				{Total: "1,500,000"},
				{Name: "문의 상품"},
			},
			expected: EstimateTotals{Subtotal: 1500000, VAT: 150000, GrandTotal: 1650000},
		},
		{
			name:     "Sem produtos tudo zera",
			products: nil,
			expected: EstimateTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeTotals(tt.products))
		})
	}
}
