package money

import (
	"errors"
	"testing"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100", "100.00"},
		{"100.5", "100.50"},
		{"0.01", "0.01"},
		{"2000.00", "2000.00"},
		{"12.345", "12.35"},
		{"12.344", "12.34"},
		{"99999.999", "100000.00"},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Fatalf("Parse(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseInvalidFormat(t *testing.T) {
	for _, in := range []string{"", "abc", "12.3.4", "1,000", "₹100"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidFormat", in, err)
		}
	}
}

func TestParseNonPositive(t *testing.T) {
	for _, in := range []string{"0", "0.00", "-5", "-0.01"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrNonPositive) {
			t.Fatalf("Parse(%q) error = %v, want ErrNonPositive", in, err)
		}
	}
}

func TestArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 drifts under binary floats; must be exact here.
	a := MustParse("0.10")
	b := MustParse("0.20")
	if got := a.Add(b).String(); got != "0.30" {
		t.Fatalf("0.10 + 0.20 = %s, want 0.30", got)
	}

	balance := MustParse("5000.00")
	for i := 0; i < 100; i++ {
		balance = balance.Add(MustParse("0.01"))
	}
	if got := balance.String(); got != "5001.00" {
		t.Fatalf("after 100 additions of 0.01: %s, want 5001.00", got)
	}
}

func TestIsNoteMultiple(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"100", true},
		{"300.00", true},
		{"2000", true},
		{"150", false},
		{"100.50", false},
		{"99.99", false},
	}

	for _, c := range cases {
		a := MustParse(c.in)
		if got := a.IsNoteMultiple(); got != c.want {
			t.Fatalf("IsNoteMultiple(%s) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	a := MustParse("6595.00")

	data, err := a.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if string(data) != `"6595.00"` {
		t.Fatalf("MarshalJSON = %s, want \"6595.00\"", data)
	}

	var back Amount
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON returned error: %v", err)
	}
	if !back.Equal(a) {
		t.Fatalf("round-trip changed value: %s != %s", back, a)
	}
}
