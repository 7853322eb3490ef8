package bulletin

import (
	"strconv"
	"strings"
)

// Tokens the bulletin prints where a figure has no value.
var sentinels = map[string]bool{
	"":   true,
	"-":  true,
	"NC": true,
	"ND": true,
	"SP": true,
}

var numericReplacer = strings.NewReplacer(
	" ", "",
	" ", "",
	",", ".",
	"%", "",
	"+", "",
)

// ParseFloat converts a locale-formatted token ("1 234,56", "+3,20%") to a
// float. Empty input, the no-value sentinels and anything unparseable all
// yield nil: a malformed cell degrades to missing data, never an error.
func ParseFloat(s string) *float64 {
	if sentinels[strings.TrimSpace(s)] {
		return nil
	}
	cleaned := numericReplacer.Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseInt is ParseFloat truncated to an integer.
func ParseInt(s string) *int64 {
	v := ParseFloat(s)
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
