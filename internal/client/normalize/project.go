package normalize

import (
	"context"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
)

// Projects extracts every project carrying a slug and a title.
func (n *Normalizer) Projects(ctx context.Context, v any) []models.Project {
	elems := match(v, projectShapes())
	out := make([]models.Project, 0, len(elems))
	for _, e := range elems {
		if p, ok := n.project(ctx, e); ok {
			out = append(out, p)
		}
	}
	return out
}

// Project extracts the valid project whose slug is slug.
func (n *Normalizer) Project(ctx context.Context, v any, slug string) (models.Project, bool) {
	for _, e := range match(v, projectShapes()) {
		if p, ok := n.project(ctx, e); ok && p.Slug == slug {
			return p, true
		}
	}
	return models.Project{}, false
}

func (n *Normalizer) project(ctx context.Context, e any) (models.Project, bool) {
	obj, ok := asObject(e)
	if !ok {
		return models.Project{}, false
	}
	f := newFields(obj, "project")

	p := models.Project{
		ID:           f.id(),
		Slug:         f.str("slug"),
		Title:        f.str("title"),
		Description:  f.str("description"),
		Technologies: f.strings("technologies"),
		ImageURL:     f.str("imageUrl"),
		RepoURL:      f.str("repoUrl"),
		DemoURL:      f.str("demoUrl"),
	}
	if p.Slug == "" || p.Title == "" {
		return models.Project{}, false
	}
	if s, ok := n.direct(ctx, f.top); ok {
		p.Content = s
	} else {
		p.Content, _ = n.direct(ctx, f.nested)
	}
	return p, true
}
