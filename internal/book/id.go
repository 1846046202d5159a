package book

import (
	"strconv"
	"strings"
	"unicode"
)

// notANumber is how an unparseable id is rendered in error messages.
const notANumber = "NaN"

// ID is a path parameter parsed leniently.
type ID struct {
	Value int
	// Text is the canonical form used in messages: the decimal value, the
	// sign-and-digits prefix when it overflows int, or NaN. Overflowing
	// ids are echoed digit for digit, never in floating-point form.
	Text  string
	Valid bool
}

// ParseID reads the integer prefix of raw. Leading whitespace and one sign
// are accepted; anything after the digits is ignored, so "1abc" is 1.
// Input without leading digits is invalid.
func ParseID(raw string) ID {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return ID{Text: notANumber}
	}

	digits := strings.TrimLeft(s[:end], "0")
	if digits == "" {
		return ID{Value: 0, Text: "0", Valid: true}
	}

	n, err := strconv.Atoi(sign + digits)
	if err != nil {
		return ID{Text: sign + digits}
	}
	return ID{Value: n, Text: strconv.Itoa(n), Valid: true}
}
