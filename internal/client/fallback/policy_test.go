package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
)

var errBackend = errors.New("backend down")

func TestSamplePosts(t *testing.T) {
	posts := SamplePosts()
	require.Len(t, posts, 2)
	assert.Equal(t, "getting-started-with-nextjs", posts[0].Slug)
	assert.Equal(t, "working-with-react-hooks", posts[1].Slug)
	for _, p := range posts {
		assert.True(t, models.ValidPost(p))
		assert.NotEmpty(t, p.Content)
		assert.Equal(t, p.Slug, models.Slugify(p.Title))
	}

	posts[0].Tags[0] = "mutated"
	assert.Equal(t, "nextjs", SamplePosts()[0].Tags[0])
}

func TestStaticSeed(t *testing.T) {
	ctx := context.Background()
	p := StaticSeed{}

	posts, err := p.RecoverPosts(ctx, errBackend, nil)
	require.NoError(t, err)
	assert.Equal(t, SamplePosts(), posts)

	post, err := p.RecoverPost(ctx, "working-with-react-hooks", errBackend, nil)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", post.Author)

	post, err = p.RecoverPost(ctx, "unknown", errBackend, nil)
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, post)
}

func TestPropagate(t *testing.T) {
	ctx := context.Background()
	p := Propagate{}

	_, err := p.RecoverPosts(ctx, errBackend, nil)
	assert.ErrorIs(t, err, errBackend)

	_, err = p.RecoverPost(ctx, "getting-started-with-nextjs", errBackend, nil)
	assert.ErrorIs(t, err, errBackend)
}

func TestRetryOnce(t *testing.T) {
	ctx := context.Background()
	p := RetryOnce{}

	calls := 0
	posts, err := p.RecoverPosts(ctx, errBackend, func(context.Context) ([]models.Post, error) {
		calls++
		return []models.Post{{Title: "t", Slug: "s"}}, nil
	})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 1, calls)

	retryErr := errors.New("still down")
	_, err = p.RecoverPost(ctx, "s", errBackend, func(context.Context) (*models.Post, error) {
		return nil, retryErr
	})
	assert.ErrorIs(t, err, retryErr)

	_, err = p.RecoverPosts(ctx, errBackend, nil)
	assert.ErrorIs(t, err, errBackend)
}

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", NameSeed},
		{"seed", NameSeed},
		{" Propagate ", NamePropagate},
		{"retry", NameRetry},
	}
	for _, tt := range tests {
		p, err := ByName(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.Name())
	}

	_, err := ByName("mock")
	require.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Contains(t, err.Error(), "propagate, retry, seed")
}
