package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// containsFold reports whether any of fields contains q, ignoring case.
// Input is NFC-normalized first so composed and decomposed accents match.
func containsFold(q string, fields ...string) bool {
	c := cases.Fold()
	q = c.String(norm.NFC.String(q))
	for _, f := range fields {
		if strings.Contains(c.String(norm.NFC.String(f)), q) {
			return true
		}
	}
	return false
}
