// internal/cellid/parser.go
package cellid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// addressRegex matches a single column letter followed by a one-based row.
var addressRegex = regexp.MustCompile(`^([A-Z])([1-9][0-9]*)$`)

// Parse creates a Position by parsing its canonical `A1` representation.
// Surrounding whitespace is ignored and lowercase column letters are accepted.
func Parse(raw string) (Position, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return Position{}, fmt.Errorf("cell address cannot be empty")
	}

	matches := addressRegex.FindStringSubmatch(s)
	if matches == nil {
		return Position{}, fmt.Errorf("invalid cell address: %q", raw)
	}

	row, err := strconv.Atoi(matches[2])
	if err != nil {
		return Position{}, fmt.Errorf("invalid row in cell address %q: %w", raw, err)
	}

	return Position{Col: int(matches[1][0] - 'A'), Row: row - 1}, nil
}

// MustParse is like Parse but panics on error. It is meant for tests and
// package-level fixtures.
func MustParse(raw string) Position {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseColumn returns the zero-based index of a single column letter.
func ParseColumn(label string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return 0, fmt.Errorf("invalid column label: %q", label)
	}
	return int(s[0] - 'A'), nil
}
