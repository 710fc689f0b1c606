package cli

import (
	"context"
	"fmt"
)

func (a *App) register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	res, err := a.backend.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	return a.print(res.Data)
}

func (a *App) login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	res, err := a.backend.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", res.User.Name, res.User.ID)
	fmt.Fprintf(a.out, "Token: %s\n", res.Token)
	return nil
}

func (a *App) me(ctx context.Context) error {
	u, err := a.backend.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(u)
}
