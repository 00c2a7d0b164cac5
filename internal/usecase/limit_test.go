package usecase

import (
	"errors"
	"math"
	"testing"

	"assessoria_licitacoes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func f(v float64) *float64 { return &v }

func TestComputeCeiling(t *testing.T) {
	cases := []struct {
		name  string
		ref   *float64
		tipo  entities.LimitType
		limit *float64
		want  float64
		ok    bool
	}{
		{name: "percentual 10%", ref: f(10000), tipo: entities.LimitTypePercentual, limit: f(10), want: 9000, ok: true},
		{name: "percentual 0%", ref: f(10000), tipo: entities.LimitTypePercentual, limit: f(0), want: 10000, ok: true},
		{name: "percentual 100%", ref: f(10000), tipo: entities.LimitTypePercentual, limit: f(100), want: 0, ok: true},
		{name: "percentual fractional", ref: f(1234.56), tipo: entities.LimitTypePercentual, limit: f(12.5), want: 1080.24, ok: true},
		{name: "percentual half cent rounds up", ref: f(1), tipo: entities.LimitTypePercentual, limit: f(42.5), want: 0.58, ok: true},
		{name: "percentual zero reference", ref: f(0), tipo: entities.LimitTypePercentual, limit: f(30), want: 0, ok: true},
		{name: "valor", ref: f(50000), tipo: entities.LimitTypeValor, limit: f(45000), want: 45000, ok: true},
		{name: "valor zero", ref: f(50000), tipo: entities.LimitTypeValor, limit: f(0), want: 0, ok: true},
		{name: "percentual above 100", ref: f(10000), tipo: entities.LimitTypePercentual, limit: f(100.01)},
		{name: "percentual negative", ref: f(10000), tipo: entities.LimitTypePercentual, limit: f(-1)},
		{name: "valor negative", ref: f(10000), tipo: entities.LimitTypeValor, limit: f(-0.01)},
		{name: "missing limit", ref: f(10000), tipo: entities.LimitTypeValor},
		{name: "missing reference", tipo: entities.LimitTypeValor, limit: f(10)},
		{name: "negative reference", ref: f(-5), tipo: entities.LimitTypePercentual, limit: f(10)},
		{name: "unknown type", ref: f(10000), tipo: "desconto", limit: f(10)},
		{name: "nan limit", ref: f(10000), tipo: entities.LimitTypeValor, limit: f(math.NaN())},
		{name: "inf reference", ref: f(math.Inf(1)), tipo: entities.LimitTypePercentual, limit: f(10)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ComputeCeiling(tc.ref, tc.tipo, tc.limit)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestComputeCeiling_PercentualMonotonic(t *testing.T) {
	for _, ref := range []float64{0, 1, 999.99, 10000, 1234567.89} {
		prev := math.Inf(1)
		for p := 0.0; p <= 100; p += 2.5 {
			got, ok := ComputeCeiling(f(ref), entities.LimitTypePercentual, f(p))
			if !ok {
				t.Fatalf("ref=%v p=%v: expected ok", ref, p)
			}
			if got > prev {
				t.Fatalf("ref=%v p=%v: ceiling increased from %v to %v", ref, p, prev, got)
			}
			r := decimal.NewFromFloat(ref)
			want := r.Sub(r.Mul(decimal.NewFromFloat(p)).Div(decimal.NewFromInt(100))).Round(2).InexactFloat64()
			if got != want {
				t.Fatalf("ref=%v p=%v: expected ~%v, got %v", ref, p, want, got)
			}
			prev = got
		}
	}
}

func TestValidateCeiling_ReportsField(t *testing.T) {
	_, err := ValidateCeiling(f(100), entities.LimitTypePercentual, f(150))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "limite_valor" {
		t.Fatalf("expected limite_valor validation error, got %v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation")
	}

	_, err = ValidateCeiling(nil, entities.LimitTypePercentual, f(10))
	if !errors.As(err, &ve) || ve.Field != "valor_referencia_edital" {
		t.Fatalf("expected valor_referencia_edital validation error, got %v", err)
	}
}
