package slice

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr       string
		contiguous bool
		str        string
	}{
		{":", true, ":"},
		{"::", true, ":"},
		{"2:8", true, "2:8"},
		{"-3:", true, "-3:"},
		{" 1 : -1 ", true, "1:-1"},
		{"0:4", true, ":4"},
		{"::-1", false, "::-1"},
		{"2:8:1", false, "2:8:1"},
		{"-3::2", false, "-3::2"},
		{":5:-2", false, ":5:-2"},
	}

	for _, test := range tests {
		d := mustParse(t, test.expr)
		if _, ok := d.(Contiguous); ok != test.contiguous {
			t.Errorf("parse(%q): want contiguous(%v) have(%T)", test.expr,
				test.contiguous, d)
		}
		if d.String() != test.str {
			t.Errorf("parse(%q): want(%v) have(%v)", test.expr, test.str, d)
		}

		// Printed descriptors parse back to the same descriptor
		if again := mustParse(t, d.String()); again != d {
			t.Errorf("parse(%q): round trip gave [%v]", d.String(), again)
		}
	}
}

func TestParseErrors(t *testing.T) {
	exprs := []string{"", "3", "1:2:3:4", "a:b", "1:2:x", "1.5:"}
	for _, expr := range exprs {
		if d, err := Parse(expr); err == nil {
			t.Errorf("parse(%q): expected error, have [%v]", expr, d)
		}
	}

	if _, err := Parse("1:5:0"); !errors.Is(err, ErrZeroStep) {
		t.Errorf("parse: want ErrZeroStep have(%v)", err)
	}
}

func TestBound(t *testing.T) {
	if v, ok := Unbounded.Value(); ok || v != 0 {
		t.Errorf("unbounded: want(0, false) have(%v, %v)", v, ok)
	}
	if v, ok := At(-3).Value(); !ok || v != -3 {
		t.Errorf("at: want(-3, true) have(%v, %v)", v, ok)
	}
	if Unbounded.Or(7) != 7 || At(2).Or(7) != 2 {
		t.Errorf("or: unexpected default")
	}
	if Unbounded.String() != "" || At(-4).String() != "-4" {
		t.Errorf("string: want(\"\", -4) have(%q, %q)", Unbounded, At(-4))
	}
}
