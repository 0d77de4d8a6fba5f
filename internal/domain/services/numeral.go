package services

import (
	"strconv"
	"strings"
)

// romanCeiling is the highest level rendered as a Roman numeral.
const romanCeiling = 100

var (
	romanValues  = []int{100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

// Numeral renders an enchantment level for lore: "0" below 1, a Roman numeral
// from 1 to 100, and plain decimal above that.
func Numeral(level int) string {
	if level < 1 {
		return "0"
	}
	if level > romanCeiling {
		return strconv.Itoa(level)
	}

	var b strings.Builder
	for i, v := range romanValues {
		for level >= v {
			level -= v
			b.WriteString(romanSymbols[i])
		}
	}
	return b.String()
}
