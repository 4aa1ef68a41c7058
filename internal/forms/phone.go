package forms

import "strings"

// UnmaskPhone strips everything but digits from a phone value. Fetched
// records may arrive masked ("(11) 99999-8888"); form state always holds the
// raw digit string ("11999998888").
func UnmaskPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskPhone renders a raw digit string in the Brazilian display format.
// Values too short to mask are returned unchanged.
func MaskPhone(s string) string {
	digits := UnmaskPhone(s)
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return digits
	}
}
