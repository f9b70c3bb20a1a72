package validators

import "strings"

// NormalizePhone keeps only the digits of a phone number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders Brazilian numbers with area code: 11 digits as
// (XX) XXXXX-XXXX, 10 digits as (XX) XXXX-XXXX. Anything else is returned
// as given.
func FormatPhone(phone string) string {
	d := NormalizePhone(phone)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return phone
	}
}

// IsPhoneValid wants 10 or 11 digits once punctuation is removed.
func IsPhoneValid(phone string) bool {
	n := len(NormalizePhone(phone))
	return n == 10 || n == 11
}
