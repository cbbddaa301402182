package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogfolio/internal/client/client"
	"github.com/dmitrijs2005/blogfolio/internal/client/models"
)

func TestProjects_List(t *testing.T) {
	fc := &fakeClient{listProjects: func(context.Context) (any, error) {
		return mustDecode(t, `{"projects":[{"slug":"a","title":"A","description":"d"},{"title":"no slug"}]}`), nil
	}}
	got, err := NewProjectService(fc, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Slug)

	fc = &fakeClient{listProjects: func(context.Context) (any, error) { return nil, errServer }}
	_, err = NewProjectService(fc, nil).List(context.Background())
	assert.ErrorIs(t, err, client.ErrServer)
}

func TestProjects_Get(t *testing.T) {
	ctx := context.Background()

	fc := &fakeClient{getProject: func(_ context.Context, slug string) (any, error) {
		return mustDecode(t, `{"slug":"`+slug+`","title":"A","technologies":["go"]}`), nil
	}}
	p, err := NewProjectService(fc, nil).Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, p.Technologies)

	_, err = NewProjectService(&fakeClient{}, nil).Get(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	fc = &fakeClient{getProject: func(context.Context, string) (any, error) {
		return mustDecode(t, `[{"slug":"other","title":"Other"}]`), nil
	}}
	_, err = NewProjectService(fc, nil).Get(ctx, "a")
	assert.ErrorIs(t, err, models.ErrNotFound)

	fc = &fakeClient{getProject: func(context.Context, string) (any, error) {
		return mustDecode(t, `{"error":"odd"}`), nil
	}}
	_, err = NewProjectService(fc, nil).Get(ctx, "odd")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProjects_Write(t *testing.T) {
	ctx := context.Background()
	valid := models.Project{Slug: "a", Title: "A", Description: "d", Technologies: []string{"go"}}

	fc := &fakeClient{}
	svc := NewProjectService(fc, nil)

	_, err := svc.Create(ctx, models.Project{Slug: "a", Title: "A"})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Zero(t, fc.count("CreateProject"))

	created, err := svc.Create(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, valid, *created)

	fc.updateProject = func(_ context.Context, slug string, p models.Project) (any, error) {
		return mustDecode(t, `{"project":{"slug":"`+slug+`","title":"Renamed"}}`), nil
	}
	updated, err := svc.Update(ctx, "a", valid)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	require.NoError(t, svc.Delete(ctx, "a"))
	fc.deleteProject = func(context.Context, string) error { return &client.HTTPError{Status: 401} }
	assert.ErrorIs(t, svc.Delete(ctx, "a"), client.ErrUnauthorized)
}
