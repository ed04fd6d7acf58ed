package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/docflow/internal/services"
	"github.com/mattn/go-shellwords"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a recording fake.
type execIface interface {
	Dashboard(ctx context.Context) error
	Docs(ctx context.Context, f services.DocumentFilter) error
	Doc(ctx context.Context, id string) error
	NewDoc(ctx context.Context) error
	EditDoc(ctx context.Context, id string) error
	DeleteDoc(ctx context.Context, id string) error
	SignDoc(ctx context.Context, id string) error
	Types(ctx context.Context) error
	AddType(ctx context.Context) error
	Templates(ctx context.Context) error
	AddTemplate(ctx context.Context) error
	Workflows(ctx context.Context) error
	Workflow(ctx context.Context, id string) error
	Initiate(ctx context.Context) error
	Approve(ctx context.Context, workflowID, stepID string) error
	Audit(ctx context.Context, f services.AuditFilter) error
	Actions(ctx context.Context) error
	Export(ctx context.Context, f services.AuditFilter) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	SwitchUser(ctx context.Context, id string) error
	WhoAmI(ctx context.Context) error
	Notifications(ctx context.Context) error
	Read(ctx context.Context, id string) error
}

const helpText = `Available commands:
  dashboard                       summary and recent activity
  docs [-t type] [-s status] [search]
                                  list documents
  doc <id>                        show a document
  newdoc | editdoc <id>           create or edit a document
  deldoc <id>                     delete a document
  signdoc <id>                    sign a document
  types | addtype                 document type catalog
  templates | addtemplate         workflow templates
  workflows | workflow <id>       list or show workflows
  initiate                        start a workflow
  approve <workflowID> <stepID>   approve a workflow step
  audit [-a action] [search]      audit trail
  actions                         action labels usable with -a
  export [-a action] [search]     write the audit trail to a JSON file
  users | adduser | su <userID>   user directory and current user
  whoami                          show the current user
  notifications | read <id>       notifications for the current user
  exit | quit                     leave docflow
Quote arguments that contain spaces, e.g. audit -a "Document Created".`

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop ends on EOF, on a read error, or on "exit" / "quit". Handler
// errors are reported by the handlers themselves and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("docflow %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts, perr := shellwords.Parse(line)
		if perr != nil {
			printlnFn("Invalid input:", perr)
			continue
		}
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		// usage checks commands that need positional arguments
		usage := func(n int, text string) bool {
			if len(args) < n {
				printlnFn("Usage: " + text)
				return false
			}
			return true
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "docs":
			if f, err := parseDocumentFilter(args); err != nil {
				printlnFn("Usage: docs [-t type] [-s status] [search]")
			} else {
				_ = a.Docs(ctx, f)
			}

		case "doc":
			if usage(1, "doc <id>") {
				_ = a.Doc(ctx, args[0])
			}

		case "newdoc":
			_ = a.NewDoc(ctx)

		case "editdoc":
			if usage(1, "editdoc <id>") {
				_ = a.EditDoc(ctx, args[0])
			}

		case "deldoc":
			if usage(1, "deldoc <id>") {
				_ = a.DeleteDoc(ctx, args[0])
			}

		case "signdoc":
			if usage(1, "signdoc <id>") {
				_ = a.SignDoc(ctx, args[0])
			}

		case "types":
			_ = a.Types(ctx)

		case "addtype":
			_ = a.AddType(ctx)

		case "templates":
			_ = a.Templates(ctx)

		case "addtemplate":
			_ = a.AddTemplate(ctx)

		case "workflows":
			_ = a.Workflows(ctx)

		case "workflow":
			if usage(1, "workflow <id>") {
				_ = a.Workflow(ctx, args[0])
			}

		case "initiate":
			_ = a.Initiate(ctx)

		case "approve":
			if usage(2, "approve <workflowID> <stepID>") {
				_ = a.Approve(ctx, args[0], args[1])
			}

		case "audit":
			if f, err := parseAuditFilter(cmd, args); err != nil {
				printlnFn("Usage: audit [-a action] [search]")
			} else {
				_ = a.Audit(ctx, f)
			}

		case "actions":
			_ = a.Actions(ctx)

		case "export":
			if f, err := parseAuditFilter(cmd, args); err != nil {
				printlnFn("Usage: export [-a action] [search]")
			} else {
				_ = a.Export(ctx, f)
			}

		case "users":
			_ = a.Users(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "su":
			if usage(1, "su <userID>") {
				_ = a.SwitchUser(ctx, args[0])
			}

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "notifications":
			_ = a.Notifications(ctx)

		case "read":
			if usage(1, "read <notificationID>") {
				_ = a.Read(ctx, args[0])
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
