package util

import "strings"

// FormatPhone renders a Brazilian phone number for display:
// 11 digits → "(DD) 99999-9999", 13 digits (country code) →
// "+55 (DD) 99999-9999". Anything else passes through unchanged.
func FormatPhone(phone string) string {
	if phone == "" {
		return ""
	}

	digits := keepDigits(phone)
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 13:
		return "+" + digits[:2] + " (" + digits[2:4] + ") " + digits[4:9] + "-" + digits[9:]
	}
	return phone
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
