// Package fallback decides what a read returns when the backend fails.
//
// The policy is chosen by configuration and injected into the post service,
// so serving placeholder content is an explicit decision rather than a side
// effect of error handling.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
)

const (
	NameSeed      = "seed"
	NamePropagate = "propagate"
	NameRetry     = "retry"

	DefaultName = NameSeed
)

var ErrUnknownPolicy = errors.New("unknown fallback policy")

// Policy recovers a failed read. cause is the classified failure; retry
// repeats the original request once.
type Policy interface {
	Name() string
	RecoverPosts(ctx context.Context, cause error, retry func(context.Context) ([]models.Post, error)) ([]models.Post, error)
	RecoverPost(ctx context.Context, slug string, cause error, retry func(context.Context) (*models.Post, error)) (*models.Post, error)
}

// StaticSeed serves the built-in sample posts.
type StaticSeed struct{}

func (StaticSeed) Name() string { return NameSeed }

func (StaticSeed) RecoverPosts(context.Context, error, func(context.Context) ([]models.Post, error)) ([]models.Post, error) {
	return SamplePosts(), nil
}

func (StaticSeed) RecoverPost(_ context.Context, slug string, _ error, _ func(context.Context) (*models.Post, error)) (*models.Post, error) {
	for _, p := range SamplePosts() {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

// Propagate returns the failure unchanged.
type Propagate struct{}

func (Propagate) Name() string { return NamePropagate }

func (Propagate) RecoverPosts(_ context.Context, cause error, _ func(context.Context) ([]models.Post, error)) ([]models.Post, error) {
	return nil, cause
}

func (Propagate) RecoverPost(_ context.Context, _ string, cause error, _ func(context.Context) (*models.Post, error)) (*models.Post, error) {
	return nil, cause
}

// RetryOnce repeats the request a single time.
type RetryOnce struct{}

func (RetryOnce) Name() string { return NameRetry }

func (RetryOnce) RecoverPosts(ctx context.Context, cause error, retry func(context.Context) ([]models.Post, error)) ([]models.Post, error) {
	if retry == nil {
		return nil, cause
	}
	return retry(ctx)
}

func (RetryOnce) RecoverPost(ctx context.Context, _ string, cause error, retry func(context.Context) (*models.Post, error)) (*models.Post, error) {
	if retry == nil {
		return nil, cause
	}
	return retry(ctx)
}

var registry = map[string]Policy{
	NameSeed:      StaticSeed{},
	NamePropagate: Propagate{},
	NameRetry:     RetryOnce{},
}

// ByName resolves a configured policy name; "" selects the default.
func ByName(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultName
	}
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownPolicy, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
