package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"assessoria_licitacoes/internal/domain/money"
)

// FieldError is a malformed request field caught before the use case runs.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Amount is a monetary (or percentage) input that accepts a JSON number or a BRL string such as
// "R$ 1.234,56". null, "" and an absent field all mean "not informed".
type Amount struct {
	value   float64
	present bool
	raw     string
	bad     bool
}

func NewAmount(v float64) Amount {
	return Amount{value: v, present: true}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return nil
		}
		a.present, a.raw = true, s
		v, ok := money.Parse(s)
		if !ok {
			a.bad = true
			return nil
		}
		a.value = v
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		a.present, a.raw, a.bad = true, string(data), true
		return nil
	}
	a.present, a.value = true, v
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.present || a.bad {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// Present reports whether the client sent a non-empty value.
func (a Amount) Present() bool {
	return a.present
}

// Resolve returns nil when the amount was not informed, or a FieldError naming field when it
// cannot be read as a non-negative number.
func (a Amount) Resolve(field string) (*float64, error) {
	if !a.present {
		return nil, nil
	}
	if a.bad {
		return nil, &FieldError{Field: field, Reason: fmt.Sprintf("invalid amount %q", a.raw)}
	}
	if math.IsNaN(a.value) || math.IsInf(a.value, 0) || a.value < 0 {
		return nil, &FieldError{Field: field, Reason: "must be a non-negative amount"}
	}
	v := a.value
	return &v, nil
}

// Position is the client's ranking, accepted as a JSON number or free text. The text is kept
// as typed; the use case decides whether it is a valid position.
type Position string

func (p *Position) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || string(data) == "null":
		*p = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Position(s)
	default:
		*p = Position(data)
	}
	return nil
}
