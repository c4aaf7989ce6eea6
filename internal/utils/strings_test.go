package utils

import "testing"

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jordan@Example.COM "); got != "jordan@example.com" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+1 (217) 555-0134": "+12175550134",
		"217.555.0134":      "2175550134",
		"":                  "",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "jordan@example.com"}
	invalid := []string{"", "no-at-sign", "a@b", "two@@a.com"}

	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("expected %q valid", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("expected %q invalid", e)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	if !IsValidPhone("(217) 555-0134") {
		t.Error("expected valid")
	}
	if IsValidPhone("123") {
		t.Error("expected invalid")
	}
}
