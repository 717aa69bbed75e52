package app

import (
	"errors"
	"math"
)

// Usage is the one-line synopsis printed when required arguments are missing.
const Usage = "Usage: ca {SIZE} {GENERATIONS} {RULE NUMBER}"

// ErrUsage reports that SIZE or GENERATIONS was not supplied.
var ErrUsage = errors.New("missing required arguments")

// Config represents the startup parameters of a run.
type Config struct {
	Size        int
	Generations int
	Rule        uint8
}

// ParseArgs builds a Config from positional arguments SIZE GENERATIONS
// [RULE]. Arguments are read leniently: anything that does not start with a
// number counts as 0, negative widths and counts become 0, and only the low
// 8 bits of RULE are kept.
func ParseArgs(args []string) (Config, error) {
	if len(args) < 2 {
		return Config{}, ErrUsage
	}
	cfg := Config{
		Size:        max(atoi(args[0]), 0),
		Generations: max(atoi(args[1]), 0),
	}
	if len(args) > 2 {
		cfg.Rule = uint8(atoi(args[2]))
	}
	return cfg, nil
}

// atoi parses an optional sign and the leading decimal digits of s after any
// leading whitespace. Input with no digits yields 0; magnitudes saturate at
// the int32 range.
func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32
			if neg {
				n++
			}
			break
		}
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
