package usecase

import (
	"math"

	"assessoria_licitacoes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ComputeCeiling returns the lowest price the client is authorized to offer
// ("até onde pode chegar"). ok is false when any input is missing or invalid.
func ComputeCeiling(valorReferencia *float64, tipo entities.LimitType, limiteValor *float64) (float64, bool) {
	v, err := ValidateCeiling(valorReferencia, tipo, limiteValor)
	return v, err == nil
}

// ValidateCeiling is ComputeCeiling with the failing field and reason.
//
//   - valor:      ceiling = limiteValor (>= 0)
//   - percentual: ceiling = referencia - referencia*limiteValor/100, limiteValor in [0, 100]
func ValidateCeiling(valorReferencia *float64, tipo entities.LimitType, limiteValor *float64) (float64, error) {
	if valorReferencia == nil || !finite(*valorReferencia) {
		return 0, invalid("valor_referencia_edital", "required")
	}
	if *valorReferencia < 0 {
		return 0, invalid("valor_referencia_edital", "must be >= 0")
	}
	if !tipo.Valid() {
		return 0, invalid("limite_tipo", "must be valor or percentual")
	}
	if limiteValor == nil || !finite(*limiteValor) {
		return 0, invalid("limite_valor", "required")
	}

	limit := decimal.NewFromFloat(*limiteValor)
	switch tipo {
	case entities.LimitTypeValor:
		if limit.IsNegative() {
			return 0, invalid("limite_valor", "must be >= 0")
		}
		return limit.Round(2).InexactFloat64(), nil
	default:
		if limit.IsNegative() || limit.GreaterThan(decimal.NewFromInt(100)) {
			return 0, invalid("limite_valor", "percentage must be between 0 and 100")
		}
		ref := decimal.NewFromFloat(*valorReferencia)
		discount := ref.Mul(limit).Div(decimal.NewFromInt(100))
		return ref.Sub(discount).Round(2).InexactFloat64(), nil
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
