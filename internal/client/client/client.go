package client

import (
	"context"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
)

// Client talks to the blog backend. Methods returning any yield the decoded
// JSON body (nil for an empty body).
type Client interface {
	ListPosts(ctx context.Context) (any, error)
	GetPost(ctx context.Context, slug string) (any, error)
	// GetURL performs a read against an absolute URL, used for content
	// recovery from alternate endpoints.
	GetURL(ctx context.Context, url string) (any, error)
	CreatePost(ctx context.Context, p models.Post) (any, error)
	UpdatePost(ctx context.Context, slug string, p models.Post) (any, error)
	DeletePost(ctx context.Context, slug string) error

	ListProjects(ctx context.Context) (any, error)
	GetProject(ctx context.Context, slug string) (any, error)
	CreateProject(ctx context.Context, p models.Project) (any, error)
	UpdateProject(ctx context.Context, slug string, p models.Project) (any, error)
	DeleteProject(ctx context.Context, slug string) error

	Login(ctx context.Context, c models.Credentials) (models.AuthResponse, error)
	Register(ctx context.Context, c models.Credentials) (models.AuthResponse, error)
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token for outgoing requests; "" sends none.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource with a fixed value.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }
