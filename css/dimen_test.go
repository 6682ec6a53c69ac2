package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/richtext/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %d", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}
	if ten.String() != "10pt" {
		t.Errorf("expected 10pt, have %s", ten)
	}

	em := css.EM(1.5)
	var x float64
	switch m := em.Match(); m {
	case m.Just(nil):
		t.Errorf("expected 1.5em not to be a fixed value")
	case m.Scalar(&x):
		t.Logf("x = %g", x)
	default:
		t.Errorf("expected 1.5em to be a relative value, isn't: %#v", em)
	}
	if x != 1.5 {
		t.Errorf("expected x = 1.5, have %g", x)
	}

	pcnt := css.Percentage(80)
	if m := pcnt.Match(); m.IsKind(css.EM(1)) != nil {
		t.Errorf("expected percentage not to match font-relative dimension")
	}
}

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.css")
	defer teardown()
	//
	for in, out := range map[string]string{
		"12pt":     "12pt",
		"16px":     "12pt",
		"1in":      "72pt",
		" 1.5EM ":  "1.5em",
		"2rem":     "2rem",
		"150%":     "150%",
		"1.25":     "1.25",
		"normal":   "normal",
		"x-large":  "x-large",
		"inherit":  "inherit",
		"unset":    "unset",
		"-0.5em":   "-0.5em",
		"0.1cm":    "2.83pt",
	} {
		d, err := css.ParseDimen(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, out, d.String(), in)
		}
	}
	for _, in := range []string{"", "12qq", "1.2.3px", "px12", "a b", "#fff"} {
		_, err := css.ParseDimen(in)
		assert.True(t, errors.Is(err, css.ErrInvalidValue), "%q should be invalid", in)
	}
}

func TestLineHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.css")
	defer teardown()
	//
	for in, out := range map[string]string{
		"1":      "unset",
		"1.0":    "unset",
		"1.5":    "1.5em",
		"2":      "2em",
		"1.5em":  "1.5em",
		"120%":   "120%",
		"18px":   "13.5pt",
		"normal": "normal",
		"unset":  "unset",
	} {
		v, err := css.LineHeight(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, out, v, in)
		}
	}
	for _, in := range []string{"0", "-1", "large", "0pt"} {
		_, err := css.LineHeight(in)
		assert.Error(t, err, in)
	}
}

func TestFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.css")
	defer teardown()
	//
	for in, out := range map[string]string{
		"12":      "12pt",
		"16px":    "12pt",
		"10.5pt":  "10.5pt",
		"1.2em":   "1.2em",
		"80%":     "80%",
		"x-large": "x-large",
		"larger":  "larger",
		"inherit": "inherit",
	} {
		v, err := css.FontSize(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, out, v, in)
		}
	}
	for _, in := range []string{"0", "-2pt", "bold", "-1em", ""} {
		_, err := css.FontSize(in)
		assert.Error(t, err, in)
	}
}
