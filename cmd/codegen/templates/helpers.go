package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams lists the accessor type parameters, "A0, A1".
func typeParams(count int) string {
	return prefixedStrings("A", count)
}

// evParams lists the accessor parameters, "ev0 Accessor[A0], ev1 Accessor[A1]".
func evParams(count int) string {
	return pairedStrings(count, func(sb *strings.Builder, i string) {
		sb.WriteString("ev" + i + " Accessor[A" + i + "]")
	})
}

// fnParams lists the value parameters of the callback, "a0 A0, a1 A1".
func fnParams(count int) string {
	return pairedStrings(count, func(sb *strings.Builder, i string) {
		sb.WriteString("a" + i + " A" + i)
	})
}

func pairedStrings(count int, write func(sb *strings.Builder, i string)) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		write(&sb, strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
