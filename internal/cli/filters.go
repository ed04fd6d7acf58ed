package cli

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/dmitrijs2005/docflow/internal/services"
)

// parseDocumentFilter reads "[-t type] [-s status] [search...]".
func parseDocumentFilter(args []string) (services.DocumentFilter, error) {
	var f services.DocumentFilter
	var kind, status string

	fs := flag.NewFlagSet("docs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&kind, "t", "", "document type")
	fs.StringVar(&status, "s", "", "document status")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	f.Type = models.DocumentKind(kind)
	f.Status = models.DocumentStatus(status)
	f.Search = strings.Join(fs.Args(), " ")
	return f, nil
}

// parseAuditFilter reads "[-a action] [search...]".
func parseAuditFilter(name string, args []string) (services.AuditFilter, error) {
	var f services.AuditFilter

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.Action, "a", "", "exact action label")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	f.Search = strings.Join(fs.Args(), " ")
	return f, nil
}
