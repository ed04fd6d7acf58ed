package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrijs2005/docflow/internal/filex"
	"github.com/dmitrijs2005/docflow/internal/services"
)

func (a *App) Audit(ctx context.Context, f services.AuditFilter) error {
	logs, err := a.store.Audit.List(ctx, f)
	if err != nil {
		return a.fail(err)
	}
	if len(logs) == 0 {
		a.println("No audit entries.")
		return nil
	}

	for _, l := range logs {
		a.printf("%s  %-28s %s  %s %s\n", timestamp(l.Timestamp), l.Action, l.UserName, l.DocumentNumber, l.DocumentTitle)
		keys := make([]string, 0, len(l.Changes))
		for k := range l.Changes {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			c := l.Changes[k]
			a.printf("    %s: %v -> %v\n", k, c.Old, c.New)
		}
		if l.Signature != nil {
			a.printf("    signature: %s\n", l.Signature)
		}
		a.printf("    from %s (%s)\n", l.IPAddress, l.UserAgent)
	}
	return nil
}

// Export writes the matching audit entries as JSON into the configured
// export directory.
func (a *App) Export(ctx context.Context, f services.AuditFilter) error {
	exp, err := a.store.Audit.Export(ctx, f)
	if err != nil {
		return a.fail(err)
	}
	dir, err := filex.EnsureSubdDir(a.config.ExportDir)
	if err != nil {
		return a.fail(err)
	}
	path := filepath.Join(dir, "audit-"+exp.ExportedAt.UTC().Format("20060102T150405")+".json")
	if err := filex.WriteJSONFile(path, exp); err != nil {
		return a.fail(err)
	}
	a.log.Info(ctx, "audit export written", "path", path, "entries", len(exp.Entries))
	a.printf("Exported %d audit entries to %s\n", len(exp.Entries), path)
	return nil
}

func (a *App) Actions(ctx context.Context) error {
	actions, err := a.store.Audit.Actions(ctx)
	if err != nil {
		return a.fail(err)
	}
	if len(actions) == 0 {
		a.println("No actions recorded.")
		return nil
	}
	a.println(strings.Join(actions, "\n"))
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	s, err := a.store.Dashboard.Stats(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.table([]string{"TOTAL DOCUMENTS", "EFFECTIVE", "UNDER REVIEW", "ACTIVE WORKFLOWS"}, [][]string{{
		fmt.Sprint(s.TotalDocuments), fmt.Sprint(s.EffectiveDocuments), fmt.Sprint(s.UnderReview), fmt.Sprint(s.ActiveWorkflows),
	}})

	a.println("\nRecent activity:")
	if len(s.RecentActivity) == 0 {
		a.println("  none")
	}
	for _, l := range s.RecentActivity {
		a.printf("  %s  %s  %s  %s\n", timestamp(l.Timestamp), l.Action, l.DocumentNumber, l.UserName)
	}
	return nil
}
