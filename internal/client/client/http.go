package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/normalize"
)

const (
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 8 * time.Second

	maxBodySize = 10 << 20
)

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	baseURL      string
	http         *http.Client
	tokens       TokenSource
	readTimeout  time.Duration
	writeTimeout time.Duration
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// WithHTTPClient replaces the underlying client; its transport still gets
// the token injection.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithReadTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.writeTimeout = d }
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		readTimeout:  DefaultReadTimeout,
		writeTimeout: DefaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	base := http.RoundTripper(newTransport())
	hc := &http.Client{}
	if c.http != nil {
		copied := *c.http
		hc = &copied
		if hc.Transport != nil {
			base = hc.Transport
		}
	}
	hc.Transport = &authenticatedTransport{underlying: base, tokens: c.tokens}
	c.http = hc
	return c
}

func (c *HTTPClient) BaseURL() string { return c.baseURL }

func (c *HTTPClient) postsURL(slug string) string {
	if slug == "" {
		return c.baseURL + "/api/posts"
	}
	return c.baseURL + "/api/posts/" + url.PathEscape(slug)
}

func (c *HTTPClient) projectsURL(slug string) string {
	if slug == "" {
		return c.baseURL + "/api/projects"
	}
	return c.baseURL + "/api/projects/" + url.PathEscape(slug)
}

func (c *HTTPClient) ListPosts(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, c.postsURL(""), nil, c.readTimeout)
}

func (c *HTTPClient) GetPost(ctx context.Context, slug string) (any, error) {
	return c.do(ctx, http.MethodGet, c.postsURL(slug), nil, c.readTimeout)
}

func (c *HTTPClient) GetURL(ctx context.Context, rawURL string) (any, error) {
	return c.do(ctx, http.MethodGet, rawURL, nil, c.readTimeout)
}

func (c *HTTPClient) CreatePost(ctx context.Context, p models.Post) (any, error) {
	return c.do(ctx, http.MethodPost, c.postsURL(""), p, c.writeTimeout)
}

func (c *HTTPClient) UpdatePost(ctx context.Context, slug string, p models.Post) (any, error) {
	return c.do(ctx, http.MethodPut, c.postsURL(slug), p, c.writeTimeout)
}

func (c *HTTPClient) DeletePost(ctx context.Context, slug string) error {
	_, err := c.do(ctx, http.MethodDelete, c.postsURL(slug), nil, c.writeTimeout)
	return err
}

func (c *HTTPClient) ListProjects(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, c.projectsURL(""), nil, c.readTimeout)
}

func (c *HTTPClient) GetProject(ctx context.Context, slug string) (any, error) {
	return c.do(ctx, http.MethodGet, c.projectsURL(slug), nil, c.readTimeout)
}

func (c *HTTPClient) CreateProject(ctx context.Context, p models.Project) (any, error) {
	return c.do(ctx, http.MethodPost, c.projectsURL(""), p, c.writeTimeout)
}

func (c *HTTPClient) UpdateProject(ctx context.Context, slug string, p models.Project) (any, error) {
	return c.do(ctx, http.MethodPut, c.projectsURL(slug), p, c.writeTimeout)
}

func (c *HTTPClient) DeleteProject(ctx context.Context, slug string) error {
	_, err := c.do(ctx, http.MethodDelete, c.projectsURL(slug), nil, c.writeTimeout)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	return c.auth(ctx, "/api/auth/login", creds)
}

func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	return c.auth(ctx, "/api/auth/register", creds)
}

// auth decodes {success, message, token, username}. A 4xx carrying that
// envelope is returned as a response rather than an error so the server's
// message reaches the user.
func (c *HTTPClient) auth(ctx context.Context, path string, creds models.Credentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	raw, status, err := c.roundTrip(ctx, http.MethodPost, c.baseURL+path, creds, c.writeTimeout)
	if err != nil {
		return out, err
	}
	if jerr := json.Unmarshal(raw, &out); jerr != nil {
		if status >= 200 && status < 300 {
			return out, fmt.Errorf("%w: %w", ErrParse, jerr)
		}
		return out, &HTTPError{Status: status, Message: errorMessage(raw)}
	}
	if status >= 500 || (status >= 300 && out.Message == "") {
		return out, &HTTPError{Status: status, Message: errorMessage(raw)}
	}
	if status >= 300 {
		out.Success = false
	}
	return out, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.baseURL+"/api/health", nil, c.readTimeout)
	return err
}

// do performs one request and decodes the JSON response.
func (c *HTTPClient) do(ctx context.Context, method, rawURL string, body any, timeout time.Duration) (any, error) {
	raw, status, err := c.roundTrip(ctx, method, rawURL, body, timeout)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &HTTPError{Status: status, Message: errorMessage(raw)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	v, err := normalize.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v, nil
}

func (c *HTTPClient) roundTrip(ctx context.Context, method, rawURL string, body any, timeout time.Duration) ([]byte, int, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, mapError(err)
	}
	return raw, resp.StatusCode, nil
}

// errorMessage extracts {"error": "..."} or {"message": "..."} from an
// error body, falling back to a short excerpt of the text.
func errorMessage(raw []byte) string {
	var env struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
		return ""
	}
	text := strings.TrimSpace(string(raw))
	return models.TruncateRunes(text, 200)
}
