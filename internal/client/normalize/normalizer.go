package normalize

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/logging"
)

// Record is a normalized post. MissingContent is set when no content could
// be found, so the caller may try supplementary fetches.
type Record struct {
	Post           models.Post
	MissingContent bool
}

type Normalizer struct {
	log     logging.Logger
	newID   func() string
	marshal func(any) ([]byte, error)
}

type Option func(*Normalizer)

// WithIDGenerator replaces the generator used for posts sent without an id.
func WithIDGenerator(fn func() string) Option {
	return func(n *Normalizer) { n.newID = fn }
}

// WithMarshal replaces the serializer used for structured content.
func WithMarshal(fn func(any) ([]byte, error)) Option {
	return func(n *Normalizer) { n.marshal = fn }
}

func New(log logging.Logger, opts ...Option) *Normalizer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	n := &Normalizer{
		log:     log,
		newID:   func() string { return models.NewID(time.Now()) },
		marshal: json.Marshal,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Collection extracts every valid post from v in payload order.
func (n *Normalizer) Collection(ctx context.Context, v any) []Record {
	elems := match(v, postShapes())
	out := make([]Record, 0, len(elems))
	for _, e := range elems {
		if rec, ok := n.record(ctx, e); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Post extracts the valid post whose slug is slug. Other posts in the
// payload are ignored, so a listing answered in place of a single post does
// not resolve to the wrong one.
func (n *Normalizer) Post(ctx context.Context, v any, slug string) (Record, bool) {
	for _, e := range match(v, postShapes()) {
		rec, ok := n.record(ctx, e)
		if !ok {
			continue
		}
		if rec.Post.Slug == slug {
			return rec, true
		}
		n.log.Debug(ctx, "skipping post with other slug", "want", slug, "got", rec.Post.Slug)
	}
	return Record{}, false
}

func (n *Normalizer) record(ctx context.Context, e any) (Record, bool) {
	obj, ok := asObject(e)
	if !ok {
		return Record{}, false
	}
	f := newFields(obj, "post")

	p := models.Post{
		ID:        f.id(),
		Title:     f.str("title"),
		Slug:      f.str("slug"),
		Author:    f.str("author"),
		Tags:      f.strings("tags"),
		CreatedAt: f.str("createdAt"),
		UpdatedAt: f.str("updatedAt"),
	}
	if !models.ValidPost(p) {
		return Record{}, false
	}
	if p.ID == "" {
		p.ID = n.newID()
	}
	if p.Author == "" {
		p.Author = models.DefaultAuthor
	}

	var iso string
	if p.Created, iso = f.timestamp("created"); p.CreatedAt == "" {
		p.CreatedAt = iso
	}
	if p.Updated, iso = f.timestamp("updated"); p.UpdatedAt == "" {
		p.UpdatedAt = iso
	}

	p.Content = n.content(ctx, f)
	return Record{Post: p, MissingContent: p.Content == ""}, true
}

// content applies the resolution rules in order: direct content, nested
// content, then a key scan of the top-level and nested objects.
func (n *Normalizer) content(ctx context.Context, f fields) string {
	if s, ok := n.direct(ctx, f.top); ok {
		return s
	}
	if s, ok := n.direct(ctx, f.nested); ok {
		return s
	}
	if s, ok := n.scan(ctx, f.top); ok {
		return s
	}
	if s, ok := n.scan(ctx, f.nested); ok {
		return s
	}
	return ""
}

func (n *Normalizer) direct(ctx context.Context, obj object) (string, bool) {
	c := obj.get("content")
	if s, ok := c.(string); ok {
		return s, s != ""
	}
	if o, ok := asObject(c); ok {
		return n.stringify(ctx, "content", o)
	}
	return "", false
}

var contentHints = []string{"content", "body", "text"}

// scan looks at keys whose name hints at a body, in payload order.
func (n *Normalizer) scan(ctx context.Context, obj object) (string, bool) {
	for _, k := range obj.keys {
		if k == "title" || !hintsContent(k) {
			continue
		}
		switch v := obj.get(k).(type) {
		case nil:
			continue
		case string:
			if v != "" {
				return v, true
			}
		default:
			if s, ok := n.stringify(ctx, k, v); ok {
				return s, true
			}
		}
	}
	return "", false
}

func hintsContent(key string) bool {
	lk := strings.ToLower(key)
	for _, h := range contentHints {
		if strings.Contains(lk, h) {
			return true
		}
	}
	return false
}

func (n *Normalizer) stringify(ctx context.Context, key string, v any) (string, bool) {
	b, err := n.marshal(v)
	if err != nil {
		n.log.Warn(ctx, "content not serializable", "key", key, "error", err)
		return "", false
	}
	return string(b), len(b) > 0
}

// Content resolves only the body of the post with the given slug. Title
// and slug are not required, so bare {"content": "..."} responses qualify,
// but a candidate carrying another slug is skipped. A JSON string payload
// is taken as the body itself.
func (n *Normalizer) Content(ctx context.Context, v any, slug string) (string, bool) {
	if s, ok := v.(string); ok {
		return s, s != ""
	}
	candidates := match(v, postShapes())
	if obj, ok := asObject(v); ok && len(candidates) == 0 {
		candidates = []any{obj}
	}
	for _, c := range candidates {
		obj, ok := asObject(c)
		if !ok {
			continue
		}
		f := newFields(obj, "post")
		if got := f.str("slug"); got != "" && got != slug {
			n.log.Debug(ctx, "skipping content for other slug", "want", slug, "got", got)
			continue
		}
		if s := n.content(ctx, f); s != "" {
			return s, true
		}
	}
	return "", false
}
