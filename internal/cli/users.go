package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/models"
)

func (a *App) Users(ctx context.Context) error {
	users, err := a.store.Users.Users(ctx)
	if err != nil {
		return a.fail(err)
	}
	current := a.store.Session().UserID()

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		marker := ""
		if u.ID == current {
			marker = "*"
		}
		active := "yes"
		if !u.Active {
			active = "no"
		}
		rows = append(rows, []string{marker + u.ID, u.Username, u.Name, string(u.Role), u.Department, u.Email, active})
	}
	a.table([]string{"ID", "USERNAME", "NAME", "ROLE", "DEPARTMENT", "EMAIL", "ACTIVE"}, rows)
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	var f userForm
	fields := []formField{
		{"Username", &f.Username},
		{"Full name", &f.Name},
		{"Email", &f.Email},
		{"Role", &f.Role},
		{"Department", &f.Department},
	}
	if err := a.fill(fields); err != nil {
		return a.fail(err)
	}
	if err := validate.Struct(f); err != nil {
		return a.fail(describe(err))
	}

	u, err := a.store.Users.AddUser(ctx, &models.User{
		Username:   f.Username,
		Name:       f.Name,
		Email:      f.Email,
		Role:       models.Role(f.Role),
		Department: f.Department,
		Active:     true,
	})
	if err != nil {
		return a.fail(err)
	}
	a.printf("Added user %s (%s)\n", u.ID, u.Name)
	return nil
}

func (a *App) SwitchUser(ctx context.Context, id string) error {
	if err := a.store.Users.SetCurrentUser(ctx, id); err != nil {
		return a.fail(err)
	}
	return a.WhoAmI(ctx)
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.store.Users.CurrentUser(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.printf("%s (%s), %s, %s\n", u.Name, u.Username, u.Role, u.Department)
	a.field("IP address", a.store.Session().ClientIP)
	a.field("User agent", a.store.Session().UserAgent)
	a.field("Last login", timestamp(u.LastLogin))
	return nil
}

func (a *App) Types(ctx context.Context) error {
	types, err := a.store.Catalog.DocumentTypes(ctx)
	if err != nil {
		return a.fail(err)
	}
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{t.ID, string(t.Type), t.Description})
	}
	a.table([]string{"ID", "TYPE", "DESCRIPTION"}, rows)
	return nil
}

func (a *App) AddType(ctx context.Context) error {
	var f typeForm
	if err := a.fill([]formField{{"Type", &f.Type}, {"Description", &f.Description}}); err != nil {
		return a.fail(err)
	}
	if err := validate.Struct(f); err != nil {
		return a.fail(describe(err))
	}
	t, err := a.store.Catalog.AddDocumentType(ctx, &models.DocumentType{Type: models.DocumentKind(f.Type), Description: f.Description})
	if err != nil {
		return a.fail(err)
	}
	a.printf("Added document type %s (%s)\n", t.ID, t.Type)
	return nil
}

func (a *App) Notifications(ctx context.Context) error {
	u, err := a.store.Users.CurrentUser(ctx)
	if err != nil {
		return a.fail(err)
	}
	ns, err := a.store.Notifications.ForUser(ctx, u.ID)
	if err != nil {
		return a.fail(err)
	}
	if len(ns) == 0 {
		a.println("No notifications.")
		return nil
	}
	for _, n := range ns {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		a.printf("%s %s  %s  [%s] %s: %s\n", mark, n.ID, timestamp(n.CreatedAt), n.Type, n.Title, n.Message)
	}
	return nil
}

func (a *App) Read(ctx context.Context, id string) error {
	if err := a.store.Notifications.MarkRead(ctx, id); err != nil {
		return a.fail(err)
	}
	a.println(fmt.Sprintf("Notification %s marked as read", id))
	return nil
}
