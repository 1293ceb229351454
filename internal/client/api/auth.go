package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
)

// loginFailed is used when a rejected login carries no message at all.
const loginFailed = "Login failed"

type AuthAPI struct {
	c *Client
}

func (c *Client) Auth() *AuthAPI {
	return &AuthAPI{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges an email/password pair for a credential.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	var resp loginWire
	err := a.c.Do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Message == "" {
			apiErr.Message = loginFailed
		}
		return models.LoginResult{}, err
	}
	return resp.model()
}
