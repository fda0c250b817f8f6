package courier

import (
	"fmt"
	"strings"
)

// defaultCountryCode — код страны, подставляемый для локальных номеров
// (покупатели вводят номера в национальном формате, 0XXXXXXXXX).
const defaultCountryCode = "66"

// NormalizePhone приводит номер к международному формату E.164,
// который требует провайдер. Локальный формат с ведущим нулём
// превращается в +<код страны><номер>.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return "", fmt.Errorf("%w: number is empty", ErrInvalidPhone)
	}

	switch {
	case strings.HasPrefix(cleaned, "+"):
		cleaned = "+" + strings.TrimPrefix(cleaned, "+")
	case strings.HasPrefix(cleaned, "00"):
		cleaned = "+" + cleaned[2:]
	case strings.HasPrefix(cleaned, "0"):
		cleaned = "+" + defaultCountryCode + cleaned[1:]
	case strings.HasPrefix(cleaned, defaultCountryCode):
		cleaned = "+" + cleaned
	default:
		return "", fmt.Errorf("%w: %q has unrecognized format", ErrInvalidPhone, raw)
	}

	digits := strings.TrimPrefix(cleaned, "+")
	if len(digits) < 9 || len(digits) > 15 {
		return "", fmt.Errorf("%w: %q has invalid length", ErrInvalidPhone, raw)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q contains non-digits", ErrInvalidPhone, raw)
		}
	}

	return cleaned, nil
}
