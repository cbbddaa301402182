package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getPassword, getMultiline and getList are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getList       = GetList
)

// Register prompts for a username, an email and a password and creates the
// account. When the backend signs the user in right away the prompt shows
// the new username.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.Register(ctx, userName, email, password)
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Fprintln(a.out, "Account created. Please log in.")
		return nil
	}
	a.userName = sess.Username
	fmt.Fprintf(a.out, "Account created. Logged in as %s\n", sess.Username)
	return nil
}

// Login prompts for credentials and stores the issued session.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, userName, password)
	if err != nil {
		a.log.Info(ctx, "login unsuccessful", "username", userName, "error", err)
		return err
	}
	a.userName = sess.Username
	fmt.Fprintf(a.out, "Logged in as %s\n", sess.Username)
	return nil
}

// Logout removes the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
