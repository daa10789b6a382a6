package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// strips and collapses spaces, remove trailing period, NFC normalize
func CleanupString(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimSuffix(s, ".")
	return norm.NFC.String(s)
}
