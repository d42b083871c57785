package validation

import "testing"

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		in     string
		wantOK bool
	}{
		{"100", true},
		{" 250.50 ", true},
		{"0", false},
		{"-5", false},
		{"abc", false},
		{"", false},
	}

	for _, c := range cases {
		err := ValidateAmount(c.in)
		if (err == nil) != c.wantOK {
			t.Fatalf("ValidateAmount(%q) = %v, want ok=%v", c.in, err, c.wantOK)
		}
	}
}

func TestValidatePin(t *testing.T) {
	cases := []struct {
		in     string
		wantOK bool
	}{
		{"1234", true},
		{" 0000 ", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
	}

	for _, c := range cases {
		err := ValidatePin(c.in)
		if (err == nil) != c.wantOK {
			t.Fatalf("ValidatePin(%q) = %v, want ok=%v", c.in, err, c.wantOK)
		}
	}
}

func TestValidateAccountNumber(t *testing.T) {
	cases := []struct {
		in     string
		wantOK bool
	}{
		{"1234567890", true},
		{"123456789", false},
		{"12345678901", false},
		{"12345abcde", false},
		{"", false},
	}

	for _, c := range cases {
		err := ValidateAccountNumber(c.in)
		if (err == nil) != c.wantOK {
			t.Fatalf("ValidateAccountNumber(%q) = %v, want ok=%v", c.in, err, c.wantOK)
		}
	}
}
