package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// LoginFailedMessage is recorded when a failed login carries no message.
const LoginFailedMessage = "Login failed"

// Authenticator issues credentials. *api.AuthAPI satisfies it.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
}

// Session owns the credential and its lifecycle.
//
// The persisted credential is written and erased inside the same commit
// that changes the in-memory one, so the two never diverge once a commit
// has been delivered. A persistence failure is logged and does not fail the
// operation.
type Session struct {
	hub    *hub
	remote Authenticator
	creds  credentials.Store
	log    logging.Logger
}

func newSession(ctx context.Context, h *hub, remote Authenticator, creds credentials.Store, log logging.Logger) *Session {
	s := &Session{hub: h, remote: remote, creds: creds, log: log}

	token, ok, err := creds.Load(ctx)
	if err != nil {
		log.Warn(ctx, "failed to load stored credential, starting signed out", "err", err)
		return s
	}
	if ok {
		h.state.Auth.Credential = token
	}
	return s
}

// State returns the current auth slice.
func (s *Session) State() SessionState {
	return s.hub.snapshot().Auth
}

// Token returns the current credential, or "". It implements api.TokenSource.
func (s *Session) Token() string {
	return s.State().Credential
}

// Login exchanges email and password for a credential. A failure is
// terminal for this attempt; nothing is retried.
func (s *Session) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	s.hub.commit(func(st *Snapshot) {
		st.Auth.Status = SessionPending
		st.Auth.LastError = ""
	})

	res, err := s.remote.Login(ctx, email, password)

	// persistence outlives caller cancellation
	pctx := context.WithoutCancel(ctx)

	if err != nil {
		msg := api.Message(err, LoginFailedMessage)
		s.hub.commit(func(st *Snapshot) {
			st.Auth = SessionState{Status: SessionError, LastError: msg}
			s.erase(pctx)
		})
		return models.LoginResult{}, err
	}

	s.hub.commit(func(st *Snapshot) {
		st.Auth = SessionState{
			Credential: res.Token,
			Principal:  res.User,
			Status:     SessionIdle,
		}
		if err := s.creds.Save(pctx, res.Token); err != nil {
			s.log.Error(pctx, "failed to persist credential", "err", err)
		}
	})
	return res, nil
}

// Logout drops the session locally. No network call is made. A login still
// in flight keeps the session pending.
func (s *Session) Logout(ctx context.Context) {
	pctx := context.WithoutCancel(ctx)
	s.hub.commit(func(st *Snapshot) {
		status := SessionIdle
		if st.Auth.Status == SessionPending {
			status = SessionPending
		}
		st.Auth = SessionState{Status: status}
		s.erase(pctx)
	})
}

// ClearError forgets the last login failure. It keeps the credential.
func (s *Session) ClearError() {
	s.hub.commit(func(st *Snapshot) {
		st.Auth.LastError = ""
	})
}

// Claims decodes the registered claims of the held credential without
// verifying its signature. It is informational only.
func (s *Session) Claims() (jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims

	token := s.Token()
	if token == "" {
		return claims, models.ErrMissingToken
	}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return claims, fmt.Errorf("decode credential: %w: %w", common.ErrInvalidToken, err)
	}
	return claims, nil
}

func (s *Session) erase(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to erase stored credential", "err", err)
	}
}
