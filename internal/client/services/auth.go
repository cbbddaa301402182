package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blogfolio/internal/client/client"
	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/logging"
)

var ErrAuthRejected = errors.New("authentication rejected")

// AuthService signs users in and out.
//
// Contract:
//   - Login/Register: call the backend; success=false becomes ErrAuthRejected
//     carrying the server message. A returned token is persisted.
//   - Logout: forget the stored session.
//   - Current: the stored session, nil when signed out.
//   - Token: the bearer token for outgoing requests.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, username, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
	Token() string
	Ping(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions *SessionStore
	log      logging.Logger
}

func NewAuthService(c client.Client, sessions *SessionStore, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &authService{client: c, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &models.ValidationError{Field: "username", Message: "Username and password are required"}
	}

	resp, err := a.client.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	sess, err := a.accept(ctx, resp, username)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("%w: no token issued", ErrAuthRejected)
	}
	a.log.Info(ctx, "signed in", "username", sess.Username)
	return sess, nil
}

// Register returns a nil session when the backend creates the account
// without signing the user in.
func (a *authService) Register(ctx context.Context, username, email, password string) (*models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &models.ValidationError{Field: "username", Message: "Username and password are required"}
	}

	resp, err := a.client.Register(ctx, models.Credentials{Username: username, Password: password, Email: strings.TrimSpace(email)})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	sess, err := a.accept(ctx, resp, username)
	if err != nil {
		return nil, err
	}
	a.log.Info(ctx, "registered", "username", username, "signed_in", sess != nil)
	return sess, nil
}

func (a *authService) accept(ctx context.Context, resp models.AuthResponse, username string) (*models.Session, error) {
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "invalid credentials"
		}
		return nil, fmt.Errorf("%w: %s", ErrAuthRejected, msg)
	}
	if resp.Token == "" {
		return nil, nil
	}

	sess := models.Session{Username: resp.Username, Token: resp.Token}
	if sess.Username == "" {
		sess.Username = username
	}
	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	return a.sessions.Load(ctx)
}

func (a *authService) Token() string {
	return a.sessions.Token()
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
