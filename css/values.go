package css

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// LineHeight normalizes a value for property line-height, as entered in a
// style command. A line height of "1" resets the property to "unset", other
// bare numbers are taken as multiples of the font size ("1.5" → "1.5em").
// Lengths, percentages and "normal" are passed through in canonical form.
func LineHeight(v string) (string, error) {
	d, err := ParseDimen(v)
	if err != nil {
		return "", err
	}
	var x float64
	var du dimen.DU
	var k string
	switch m := d.Match(); m {
	case m.IsKind(Number(0)):
		m.Scalar(&x)
		if x <= 0 {
			return "", fmt.Errorf("%w: line-height %s", ErrInvalidValue, d)
		}
		if x == 1 {
			return Unset().String(), nil
		}
		return EM(x).String(), nil
	case m.Just(&du):
		if du <= 0 {
			return "", fmt.Errorf("%w: line-height %s", ErrInvalidValue, d)
		}
	case m.Keyword(&k):
		if k != "normal" {
			return "", fmt.Errorf("%w: line-height %s", ErrInvalidValue, k)
		}
	}
	return d.String(), nil
}

var fontSizeKeywords = map[string]bool{
	"xx-small": true, "x-small": true, "small": true, "medium": true,
	"large": true, "x-large": true, "xx-large": true, "xxx-large": true,
	"smaller": true, "larger": true,
}

// FontSize normalizes a value for property font-size, as entered in a style
// command. Bare numbers are taken as points. Absolute lengths are converted
// to points ("16px" → "12pt").
func FontSize(v string) (string, error) {
	d, err := ParseDimen(v)
	if err != nil {
		return "", err
	}
	var x float64
	var du dimen.DU
	var k string
	switch m := d.Match(); m {
	case m.IsKind(Number(0)):
		m.Scalar(&x)
		d = JustDimen(dimen.DU(x * float64(dimen.PT)))
		du = d.d
	case m.Just(&du):
	case m.Scalar(&x):
		if x <= 0 {
			return "", fmt.Errorf("%w: font-size %s", ErrInvalidValue, d)
		}
		return d.String(), nil
	case m.Keyword(&k):
		if !fontSizeKeywords[k] {
			return "", fmt.Errorf("%w: font-size %s", ErrInvalidValue, k)
		}
		return d.String(), nil
	default: // percentages, inherit, initial, unset
		return d.String(), nil
	}
	if du <= 0 {
		return "", fmt.Errorf("%w: font-size %s", ErrInvalidValue, d)
	}
	return d.String(), nil
}
