package phone

import (
	"fmt"
	"strings"
)

// slot marks a digit position in a phone template such as "(###) ###-####".
const slot = '#'

func isTemplate(format string) bool {
	return strings.ContainsRune(format, slot)
}

func slotCount(template string) int {
	return strings.Count(template, string(slot))
}

// matchTemplate checks input against template literally except for slot
// positions, which must hold ASCII digits.
func matchTemplate(template, input string) error {
	tr := []rune(template)
	ir := []rune(input)
	if len(tr) != len(ir) {
		return fmt.Errorf("input has %d characters, template expects %d", len(ir), len(tr))
	}

	for i, r := range tr {
		switch {
		case r == slot:
			if ir[i] < '0' || ir[i] > '9' {
				return fmt.Errorf("position %d: expected a digit, found %q", i+1, ir[i])
			}
		case ir[i] != r:
			return fmt.Errorf("position %d: expected %q, found %q", i+1, r, ir[i])
		}
	}
	return nil
}

// fillTemplate pours digits into the template slots. The slot count must
// equal the digit count.
func fillTemplate(template, digits string) (string, error) {
	if n := slotCount(template); n != len(digits) {
		return "", fmt.Errorf("template has %d digit slots, number has %d digits", n, len(digits))
	}

	var sb strings.Builder
	sb.Grow(len(template))
	next := 0
	for _, r := range template {
		if r == slot {
			sb.WriteByte(digits[next])
			next++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
