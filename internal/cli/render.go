package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/docflow/internal/common"
)

// table prints rows aligned under header.
func (a *App) table(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
}

// field prints one "label: value" line, skipping empty values.
func (a *App) field(label, value string) {
	if value == "" {
		return
	}
	a.printf("  %-16s %s\n", label+":", value)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(common.TimestampLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
