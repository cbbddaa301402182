package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/blogfolio/internal/client/client"
	"github.com/dmitrijs2005/blogfolio/internal/client/models"
)

// fakeClient implements client.Client for service tests. Unset funcs return
// zero values.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int
	urls  []string

	listPosts  func(ctx context.Context) (any, error)
	getPost    func(ctx context.Context, slug string) (any, error)
	getURL     func(ctx context.Context, url string) (any, error)
	createPost func(ctx context.Context, p models.Post) (any, error)
	updatePost func(ctx context.Context, slug string, p models.Post) (any, error)
	deletePost func(ctx context.Context, slug string) error

	listProjects  func(ctx context.Context) (any, error)
	getProject    func(ctx context.Context, slug string) (any, error)
	createProject func(ctx context.Context, p models.Project) (any, error)
	updateProject func(ctx context.Context, slug string, p models.Project) (any, error)
	deleteProject func(ctx context.Context, slug string) error

	login    func(ctx context.Context, c models.Credentials) (models.AuthResponse, error)
	register func(ctx context.Context, c models.Credentials) (models.AuthResponse, error)
	pingErr  error
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) ListPosts(ctx context.Context) (any, error) {
	f.hit("ListPosts")
	if f.listPosts == nil {
		return []any{}, nil
	}
	return f.listPosts(ctx)
}

func (f *fakeClient) GetPost(ctx context.Context, slug string) (any, error) {
	f.hit("GetPost")
	if f.getPost == nil {
		return nil, &client.HTTPError{Status: 404}
	}
	return f.getPost(ctx, slug)
}

func (f *fakeClient) GetURL(ctx context.Context, url string) (any, error) {
	f.hit("GetURL")
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()
	if f.getURL == nil {
		return nil, &client.HTTPError{Status: 404}
	}
	return f.getURL(ctx, url)
}

func (f *fakeClient) CreatePost(ctx context.Context, p models.Post) (any, error) {
	f.hit("CreatePost")
	if f.createPost == nil {
		return nil, nil
	}
	return f.createPost(ctx, p)
}

func (f *fakeClient) UpdatePost(ctx context.Context, slug string, p models.Post) (any, error) {
	f.hit("UpdatePost")
	if f.updatePost == nil {
		return nil, nil
	}
	return f.updatePost(ctx, slug, p)
}

func (f *fakeClient) DeletePost(ctx context.Context, slug string) error {
	f.hit("DeletePost")
	if f.deletePost == nil {
		return nil
	}
	return f.deletePost(ctx, slug)
}

func (f *fakeClient) ListProjects(ctx context.Context) (any, error) {
	f.hit("ListProjects")
	if f.listProjects == nil {
		return []any{}, nil
	}
	return f.listProjects(ctx)
}

func (f *fakeClient) GetProject(ctx context.Context, slug string) (any, error) {
	f.hit("GetProject")
	if f.getProject == nil {
		return nil, &client.HTTPError{Status: 404}
	}
	return f.getProject(ctx, slug)
}

func (f *fakeClient) CreateProject(ctx context.Context, p models.Project) (any, error) {
	f.hit("CreateProject")
	if f.createProject == nil {
		return nil, nil
	}
	return f.createProject(ctx, p)
}

func (f *fakeClient) UpdateProject(ctx context.Context, slug string, p models.Project) (any, error) {
	f.hit("UpdateProject")
	if f.updateProject == nil {
		return nil, nil
	}
	return f.updateProject(ctx, slug, p)
}

func (f *fakeClient) DeleteProject(ctx context.Context, slug string) error {
	f.hit("DeleteProject")
	if f.deleteProject == nil {
		return nil
	}
	return f.deleteProject(ctx, slug)
}

func (f *fakeClient) Login(ctx context.Context, c models.Credentials) (models.AuthResponse, error) {
	f.hit("Login")
	if f.login == nil {
		return models.AuthResponse{}, nil
	}
	return f.login(ctx, c)
}

func (f *fakeClient) Register(ctx context.Context, c models.Credentials) (models.AuthResponse, error) {
	f.hit("Register")
	if f.register == nil {
		return models.AuthResponse{}, nil
	}
	return f.register(ctx, c)
}

func (f *fakeClient) Ping(context.Context) error {
	f.hit("Ping")
	return f.pingErr
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}
