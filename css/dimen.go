package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// ErrInvalidValue is returned for values not acceptable for a property.
var ErrInvalidValue = errors.New("invalid CSS value")

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenNumber   uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenUnset    uint32 = 0x0005
	dimenKeyword  uint32 = 0x0006
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions, as used in style commands.
type DimenT struct {
	d       dimen.DU // absolute dimensions
	x       float64  // numbers, relative dimensions
	keyword string
	flags   uint32
}

/*
type DimenT
	= Inherit
	| Initial
	| Unset
	| Keyword string
	| Number x
	| JustDimen dimen
	| Percentage x
	| FontRel unit x
*/

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

func Unset() DimenT {
	return DimenT{flags: dimenUnset}
}

// Keyword creates a CSS value which is a keyword like "normal" or "large".
func Keyword(k string) DimenT {
	return DimenT{keyword: k, flags: dimenKeyword}
}

// Number creates a unit-less CSS value.
func Number(x float64) DimenT {
	return DimenT{x: x, flags: dimenNumber}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(x float64) DimenT {
	return DimenT{x: x, flags: dimenPercent}
}

// EM creates a CSS dimension relative to the font size.
func EM(x float64) DimenT {
	return DimenT{x: x, flags: dimenEM}
}

// IsNone is true for the zero value, i.e. an unparsed dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// String renders a dimension in CSS syntax. Absolute dimensions are
// rendered in points.
func (d DimenT) String() string {
	switch d.flags {
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenUnset:
		return "unset"
	case dimenKeyword:
		return d.keyword
	case dimenNumber:
		return ftoa(d.x)
	case dimenAbsolute:
		return ftoa(math.Round(float64(d.d)/float64(dimen.PT)*100)/100) + "pt"
	case dimenPercent:
		return ftoa(d.x) + "%"
	}
	for u, f := range relUnits {
		if d.flags == f {
			return ftoa(d.x) + u
		}
	}
	return ""
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Absolute units, in points.
var absUnits = map[string]float64{
	"pt": 1,
	"px": 0.75,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
}

var relUnits = map[string]uint32{
	"em":  dimenEM,
	"ex":  dimenEX,
	"ch":  dimenCH,
	"rem": dimenREM,
}

// ParseDimen parses a CSS value for dimension-like properties. Keywords
// are accepted without checking them against a property.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return DimenT{}, fmt.Errorf("%w: empty", ErrInvalidValue)
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "unset":
		return Unset(), nil
	}
	if isLetter(s[0]) {
		if strings.TrimLeft(s, "abcdefghijklmnopqrstuvwxyz-") == "" {
			return Keyword(s), nil
		}
		return DimenT{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	num := strings.TrimRightFunc(s, func(r rune) bool {
		return r == '%' || isLetter(byte(r))
	})
	unit := s[len(num):]
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	switch {
	case unit == "":
		return Number(x), nil
	case unit == "%":
		return Percentage(x), nil
	}
	if pt, ok := absUnits[unit]; ok {
		return JustDimen(dimen.DU(x * pt * float64(dimen.PT))), nil
	}
	if f, ok := relUnits[unit]; ok {
		return DimenT{x: x, flags: f}, nil
	}
	return DimenT{}, fmt.Errorf("%w: unknown unit in %q", ErrInvalidValue, s)
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

// IsKind matches if d is of the same kind as the dimension matched against.
// All relative dimensions are of the same kind, except percentages.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&kindMask != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags == dimenPercent) != (d.flags == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Scalar matches numbers and relative dimensions and extracts the value.
func (m *Matcher) Scalar(x *float64) *Matcher {
	if m.dimen.flags == dimenNumber || m.dimen.flags&relativeMask > 0 {
		if x != nil {
			*x = m.dimen.x
		}
		return m
	}
	return nil
}

// Keyword matches keywords (but not inherit, initial and unset).
func (m *Matcher) Keyword(k *string) *Matcher {
	if m.dimen.flags == dimenKeyword {
		if k != nil {
			*k = m.dimen.keyword
		}
		return m
	}
	return nil
}
