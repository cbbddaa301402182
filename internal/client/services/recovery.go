package services

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/normalize"
)

const (
	DefaultRecoveryTimeout = 3 * time.Second

	maxParallelRecoveries = 8
)

// Endpoint is a URL template for content recovery. Placeholders: {base} is
// the API base URL, {alt} the alternate host, {slug} the escaped slug.
type Endpoint struct {
	Name     string
	Template string
}

// DefaultEndpoints are tried in order until one yields content.
var DefaultEndpoints = []Endpoint{
	{Name: "standard", Template: "{base}/api/posts/{slug}"},
	{Name: "kv", Template: "{base}/api/kv/posts/{slug}"},
	{Name: "versioned", Template: "{base}/api/v1/posts/{slug}"},
	{Name: "alternate", Template: "{alt}/posts/{slug}"},
}

// ParseEndpoints reads "name=template" pairs; a bare template is named after
// its position:
//
//	kv={base}/api/kv/posts/{slug}
func ParseEndpoints(specs []string) []Endpoint {
	out := make([]Endpoint, 0, len(specs))
	for i, s := range specs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		name, tmpl, ok := strings.Cut(s, "=")
		if !ok || strings.ContainsAny(name, "/:{") {
			name, tmpl = "endpoint-"+strconv.Itoa(i+1), s
		}
		out = append(out, Endpoint{Name: strings.TrimSpace(name), Template: strings.TrimSpace(tmpl)})
	}
	return out
}

// expand fills the template; it returns "" when a host it needs is unset.
func (e Endpoint) expand(base, alt, slug string) string {
	if strings.Contains(e.Template, "{base}") && base == "" {
		return ""
	}
	if strings.Contains(e.Template, "{alt}") && alt == "" {
		return ""
	}
	return strings.NewReplacer(
		"{base}", strings.TrimRight(base, "/"),
		"{alt}", strings.TrimRight(alt, "/"),
		"{slug}", url.PathEscape(slug),
	).Replace(e.Template)
}

// recoverContent fills in content for every record flagged as missing it.
// All attempts finish before it returns.
func (s *postService) recoverContent(ctx context.Context, recs []normalize.Record) []models.Post {
	posts := make([]models.Post, len(recs))

	var g errgroup.Group
	g.SetLimit(maxParallelRecoveries)
	for i, r := range recs {
		posts[i] = r.Post
		if !r.MissingContent {
			continue
		}
		g.Go(func() error {
			if content, ok := s.recoverOne(ctx, r.Post.Slug); ok {
				posts[i].Content = content
			}
			return nil
		})
	}
	_ = g.Wait()

	return posts
}

// recoverOne tries the endpoints in order. Failures are logged and skipped.
func (s *postService) recoverOne(ctx context.Context, slug string) (string, bool) {
	for _, ep := range s.endpoints {
		target := ep.expand(s.baseURL, s.altURL, slug)
		if target == "" {
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.recoveryTimeout)
		v, err := s.client.GetURL(attemptCtx, target)
		cancel()
		if err != nil {
			s.log.Debug(ctx, "content recovery attempt failed", "slug", slug, "endpoint", ep.Name, "error", err)
			continue
		}
		if content, ok := s.norm.Content(ctx, v, slug); ok {
			s.log.Debug(ctx, "content recovered", "slug", slug, "endpoint", ep.Name)
			return content, true
		}
	}
	s.log.Warn(ctx, "content not recovered", "slug", slug)
	return "", false
}
