package discount

import (
	"strconv"
	"strings"
)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
	TypeCode       Type = "code"
)

// Per-type defaults restored whenever the operator switches discount mode.
const (
	defaultPercentage = "10"
	defaultFixed      = "5"
)

// Discount is the snapshot the rest of the engine consumes. At most one
// discount is active per cart.
type Discount struct {
	Type    Type
	Value   float64
	Code    string
	Applied bool
}

// Engine is a small state machine over a single Discount value:
// NoDiscount -> pending (type selected, inputs edited) -> Applied -> NoDiscount.
type Engine struct {
	typ     Type
	code    string
	manual  string // raw operator input, parsed at Apply
	value   float64
	applied bool
}

func NewEngine() *Engine {
	return &Engine{typ: TypePercentage}
}

// SelectType switches the pending discount mode. Switching away from a type
// clears the code and resets the manual value to the per-type default;
// re-selecting the current type keeps the operator's input. Selection alone
// never applies the discount.
func (e *Engine) SelectType(t Type) {
	if e.applied {
		return
	}
	switch t {
	case TypePercentage, TypeFixed:
		if e.typ != t {
			if t == TypePercentage {
				e.manual = defaultPercentage
			} else {
				e.manual = defaultFixed
			}
		}
		e.code = ""
	case TypeCode:
		e.manual = ""
	default:
		return
	}
	e.typ = t
}

// SetManualValue accepts the raw input only when it is empty or numeric and
// within bounds ([0,100] for percentage, [0,subtotal] for fixed). Out-of-range
// input is dropped silently; this mirrors the input-level clamp the UI
// presents, not an error condition.
func (e *Engine) SetManualValue(raw string, subtotal float64) {
	if e.applied || e.typ == TypeCode {
		return
	}
	if raw == "" {
		e.manual = ""
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return
	}
	if e.typ == TypePercentage && v > 100 {
		return
	}
	if e.typ == TypeFixed && v > subtotal {
		return
	}
	e.manual = raw
}

// SetCode stores the free-form code as typed. Validity is decided only at
// Apply, by emptiness; there is no lookup service behind it.
func (e *Engine) SetCode(text string) {
	if e.applied {
		return
	}
	e.code = text
}

// Apply transitions to Applied when the pending input is usable: a positive
// in-range numeric value for percentage/fixed, a non-empty code for code
// discounts. Anything else is a no-op.
func (e *Engine) Apply() {
	if e.applied {
		return
	}
	if e.typ == TypeCode {
		if strings.TrimSpace(e.code) != "" {
			e.applied = true
		}
		return
	}
	v, err := strconv.ParseFloat(e.manual, 64)
	if err != nil || v <= 0 {
		return
	}
	if e.typ == TypePercentage && v > 100 {
		return
	}
	e.value = v
	e.applied = true
}

// Remove resets the engine to NoDiscount, clearing value and code.
func (e *Engine) Remove() {
	*e = Engine{typ: TypePercentage}
}

func (e *Engine) Applied() bool {
	return e.applied
}

// Snapshot returns the current discount value for totals computation.
func (e *Engine) Snapshot() Discount {
	return Discount{
		Type:    e.typ,
		Value:   e.value,
		Code:    e.code,
		Applied: e.applied,
	}
}
