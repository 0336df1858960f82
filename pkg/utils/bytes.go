package utils

import (
	"strconv"
	"strings"
)

// ParseUint16 parses a 16-bit address written as decimal, 0x-prefixed
// hex or $-prefixed hex. Leading zeros never select octal.
func ParseUint16(s string) (uint16, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	return uint16(v), err
}
