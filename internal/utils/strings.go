package utils

import (
	"strings"
	"unicode"
)

func NormalizeString(s string) string {
	return strings.TrimSpace(s)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone reduces a phone number to its digits. A single leading +
// is kept so international numbers survive normalization.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	for i, r := range phone {
		if unicode.IsDigit(r) || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidEmail applies the loose shape check the public forms use: exactly
// one @, a non-empty local part, and a dotted domain.
func IsValidEmail(email string) bool {
	normalized := NormalizeEmail(email)
	if strings.Count(normalized, "@") != 1 {
		return false
	}

	local, domain, _ := strings.Cut(normalized, "@")
	return local != "" && len(domain) > 2 && strings.Contains(domain, ".")
}

// IsValidPhone accepts anything that normalizes to at least seven digits.
func IsValidPhone(phone string) bool {
	digits := strings.TrimPrefix(NormalizePhone(phone), "+")
	return len(digits) >= 7
}
