package domain

import (
	"math"
	"strconv"
	"strings"
)

// NumericAmount converte um valor vindo do JSON (número, string formatada ou
// ausente) para inteiro em won. Valores ausentes ou não numéricos valem 0.
func NumericAmount(v interface{}) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return int64(math.Round(n))
	case int:
		return int64(n)
	case int64:
		return n
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(math.Round(f))
		}
		return 0
	default:
		return 0
	}
}

// ComputeTotals soma os totais numéricos dos produtos e aplica 10% de VAT.
// Totais ausentes ou inválidos são ignorados, nunca geram erro.
func ComputeTotals(products []Product) EstimateTotals {
	var subtotal int64
	for _, p := range products {
		subtotal += NumericAmount(p.Total)
	}

	vat := int64(math.Round(float64(subtotal) * 0.1))

	return EstimateTotals{
		Subtotal:   subtotal,
		VAT:        vat,
		GrandTotal: subtotal + vat,
	}
}
