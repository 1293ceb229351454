package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/store"
	"github.com/dmitrijs2005/staffdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and password and dispatches a login. The
// password buffer is wiped before returning. On failure the session's last
// error is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := store.Await[models.LoginResult](a.store.Dispatch(ctx, store.Login(email, string(password))))
	if err != nil {
		a.println(renderError(a.store.Snapshot().Auth.LastError))
		return err
	}

	name := email
	if res.User != nil && res.User.Name != "" {
		name = res.User.Name
	}
	a.println(renderOK("Welcome, " + name + "!"))
	return nil
}

// Logout drops the session and the stored credential.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.store.Dispatch(ctx, store.Logout()).Wait(); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

// WhoAmI shows the principal returned at login and the credential's
// unverified subject and expiry.
func (a *App) WhoAmI(_ context.Context) error {
	auth := a.store.Snapshot().Auth
	if p := auth.Principal; p != nil {
		a.printf("Name:  %s\nEmail: %s\n", orDash(p.Name), orDash(p.Email))
		if p.Role != "" {
			a.printf("Role:  %s\n", p.Role)
		}
	}

	claims, err := a.store.Auth.Claims()
	if err != nil {
		a.println(mutedStyle.Render("Credential details unavailable: " + err.Error()))
		return nil
	}
	if claims.Subject != "" {
		a.printf("User ID: %s\n", claims.Subject)
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		a.printf("Session expires: %s (in %s)\n", exp.Format(time.RFC3339), time.Until(exp).Round(time.Second))
	}
	return nil
}
