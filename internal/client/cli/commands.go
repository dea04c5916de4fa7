package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/idgateway/internal/common"
)

// getPassword is a test seam for GetPassword.
var getPassword = GetPassword

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	messages, err := a.registrar.Register(ctx, email, string(password), string(confirm))
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		for _, m := range messages {
			fmt.Fprintln(a.out, " -", m)
		}
		return fmt.Errorf("registration rejected")
	}

	fmt.Fprintln(a.out, "Registered", email)
	return nil
}

func (a *App) Grant(ctx context.Context, userID string) error {
	return a.updateMembership(ctx, userID, true)
}

func (a *App) Revoke(ctx context.Context, userID string) error {
	return a.updateMembership(ctx, userID, false)
}

func (a *App) updateMembership(ctx context.Context, userID string, grant bool) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	ok, message, err := a.admin.UpdateMembership(ctx, userID, grant)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s", message)
	}
	fmt.Fprintln(a.out, message)
	return nil
}

func (a *App) Claims(ctx context.Context, subjectID string) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	claims, err := a.admin.Claims(ctx, subjectID)
	if err != nil {
		return err
	}
	if len(claims) == 0 {
		fmt.Fprintln(a.out, "(no claims)")
		return nil
	}
	for _, c := range claims {
		fmt.Fprintf(a.out, "%s\t%s\n", c.Type, c.Value)
	}
	return nil
}

func (a *App) Active(ctx context.Context, subjectID string) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	active, err := a.admin.IsActive(ctx, subjectID)
	if err != nil {
		return err
	}
	if active {
		fmt.Fprintln(a.out, subjectID, "is active")
	} else {
		fmt.Fprintln(a.out, subjectID, "is not active")
	}
	return nil
}

func (a *App) Health(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	st, err := a.admin.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "gateway:", st)
	return nil
}
