package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/blogfolio/internal/client/config"
	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/services"
	"github.com/dmitrijs2005/blogfolio/internal/logging"
)

type fakePosts struct {
	posts    []models.Post
	listErr  error
	bySlug   map[string]models.Post
	slugErr  error
	created  []models.Post
	result   models.WriteResult
	updated  []models.Post
	updateOK bool
	deleted  []string
	deleteOK bool
	refresh  int
}

var _ services.PostService = (*fakePosts)(nil)

func (f *fakePosts) FetchAllPosts(context.Context) ([]models.Post, error) {
	return f.posts, f.listErr
}

func (f *fakePosts) FetchPostBySlug(_ context.Context, slug string) (*models.Post, error) {
	if f.slugErr != nil {
		return nil, f.slugErr
	}
	p, ok := f.bySlug[slug]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (f *fakePosts) CreatePost(_ context.Context, p models.Post) models.WriteResult {
	f.created = append(f.created, p)
	res := f.result
	if res.Post.Slug == "" {
		res.Post = p
	}
	return res
}

func (f *fakePosts) UpdatePost(_ context.Context, _ string, p models.Post) *models.Post {
	f.updated = append(f.updated, p)
	if !f.updateOK {
		return nil
	}
	return &p
}

func (f *fakePosts) DeletePost(_ context.Context, slug string) bool {
	f.deleted = append(f.deleted, slug)
	return f.deleteOK
}

func (f *fakePosts) Refresh(ctx context.Context) ([]models.Post, error) {
	f.refresh++
	return f.FetchAllPosts(ctx)
}

type fakeProjects struct {
	list    []models.Project
	listErr error
	get     map[string]models.Project

	created  []models.Project
	updated  map[string]models.Project
	deleted  []string
	writeErr error
}

var _ services.ProjectService = (*fakeProjects)(nil)

func (f *fakeProjects) List(context.Context) ([]models.Project, error) { return f.list, f.listErr }

func (f *fakeProjects) Get(_ context.Context, slug string) (*models.Project, error) {
	p, ok := f.get[slug]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProjects) Create(_ context.Context, p models.Project) (*models.Project, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.created = append(f.created, p)
	return &p, nil
}

func (f *fakeProjects) Update(_ context.Context, slug string, p models.Project) (*models.Project, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	if f.updated == nil {
		f.updated = map[string]models.Project{}
	}
	f.updated[slug] = p
	return &p, nil
}

func (f *fakeProjects) Delete(_ context.Context, slug string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deleted = append(f.deleted, slug)
	return nil
}

type fakeAuth struct {
	mu sync.Mutex

	loginUser, loginPass string
	loginSess            *models.Session
	loginErr             error

	regEmail    string
	registerRes *models.Session
	registerErr error

	logoutErr  error
	current    *models.Session
	currentErr error
	pingErr    error
	pings      int
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Login(_ context.Context, u, p string) (*models.Session, error) {
	f.loginUser, f.loginPass = u, p
	return f.loginSess, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, _, email, _ string) (*models.Session, error) {
	f.regEmail = email
	return f.registerRes, f.registerErr
}

func (f *fakeAuth) Logout(context.Context) error { return f.logoutErr }

func (f *fakeAuth) Current(context.Context) (*models.Session, error) {
	return f.current, f.currentErr
}

func (f *fakeAuth) Token() string { return "" }

func (f *fakeAuth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeAuth) pingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pings
}

// newTestApp returns an App reading input and writing to the returned buffer.
func newTestApp(input string, posts *fakePosts, projects *fakeProjects, auth *fakeAuth) (*App, *bytes.Buffer) {
	if posts == nil {
		posts = &fakePosts{}
	}
	if projects == nil {
		projects = &fakeProjects{}
	}
	if auth == nil {
		auth = &fakeAuth{}
	}
	out := &bytes.Buffer{}
	return &App{
		config:   &config.Config{},
		log:      logging.NewNopLogger(),
		posts:    posts,
		projects: projects,
		auth:     auth,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	var mu sync.Mutex
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(fmt.Sprint(v))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}
