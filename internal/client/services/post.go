package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/blogfolio/internal/client/cache"
	"github.com/dmitrijs2005/blogfolio/internal/client/client"
	"github.com/dmitrijs2005/blogfolio/internal/client/fallback"
	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/normalize"
	"github.com/dmitrijs2005/blogfolio/internal/logging"
)

const DefaultSubmitInterval = 5 * time.Second

var ErrThrottled = errors.New("submitted too soon")

// PostService is the post read/write path used by the CLI.
//
// Reads never fail because of the backend unless the fallback policy says so:
// failures are handed to the policy. Writes report failures as values
// (WriteResult, nil, false) and clear the cache on success.
type PostService interface {
	FetchAllPosts(ctx context.Context) ([]models.Post, error)
	// FetchPostBySlug returns models.ErrNotFound when the slug is absent
	// from both live and fallback data.
	FetchPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	CreatePost(ctx context.Context, p models.Post) models.WriteResult
	UpdatePost(ctx context.Context, slug string, p models.Post) *models.Post
	DeletePost(ctx context.Context, slug string) bool
	// Refresh drops the cache and fetches the collection again.
	Refresh(ctx context.Context) ([]models.Post, error)
}

type postService struct {
	client client.Client
	cache  *cache.Cache
	policy fallback.Policy
	log    logging.Logger
	norm   *normalize.Normalizer

	baseURL         string
	altURL          string
	endpoints       []Endpoint
	recoveryTimeout time.Duration

	limiter *rate.Limiter
	now     func() time.Time
}

type PostOption func(*postService)

// WithRecoveryHosts sets the hosts substituted into recovery endpoint
// templates.
func WithRecoveryHosts(baseURL, altURL string) PostOption {
	return func(s *postService) {
		s.baseURL = baseURL
		s.altURL = altURL
	}
}

func WithRecoveryEndpoints(eps []Endpoint) PostOption {
	return func(s *postService) {
		if len(eps) > 0 {
			s.endpoints = eps
		}
	}
}

func WithRecoveryTimeout(d time.Duration) PostOption {
	return func(s *postService) {
		if d > 0 {
			s.recoveryTimeout = d
		}
	}
}

// WithSubmitInterval sets the minimum spacing between post submissions;
// zero disables the throttle.
func WithSubmitInterval(d time.Duration) PostOption {
	return func(s *postService) {
		if d <= 0 {
			s.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		s.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

func WithNormalizer(n *normalize.Normalizer) PostOption {
	return func(s *postService) { s.norm = n }
}

func WithPostClock(now func() time.Time) PostOption {
	return func(s *postService) { s.now = now }
}

func NewPostService(c client.Client, ch *cache.Cache, policy fallback.Policy, log logging.Logger, opts ...PostOption) PostService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if policy == nil {
		policy = fallback.StaticSeed{}
	}
	s := &postService{
		client:          c,
		cache:           ch,
		policy:          policy,
		log:             log,
		endpoints:       DefaultEndpoints,
		recoveryTimeout: DefaultRecoveryTimeout,
		limiter:         rate.NewLimiter(rate.Every(DefaultSubmitInterval), 1),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.norm == nil {
		s.norm = normalize.New(log)
	}
	return s
}

func (s *postService) FetchAllPosts(ctx context.Context) ([]models.Post, error) {
	posts, _, err := s.fetchAll(ctx)
	return posts, err
}

// fetchAll also reports the backend failure the policy recovered from.
func (s *postService) fetchAll(ctx context.Context) (posts []models.Post, cause, err error) {
	if posts, ok := s.cache.Get(ctx); ok {
		return posts, nil, nil
	}

	posts, cause = s.loadAll(ctx)
	if cause == nil {
		return posts, nil, nil
	}

	s.log.Warn(ctx, "posts unavailable, applying fallback",
		"policy", s.policy.Name(), "kind", client.Classify(cause).String(), "error", cause)
	posts, err = s.policy.RecoverPosts(ctx, cause, s.loadAll)
	return posts, cause, err
}

// loadAll reads the collection from the backend, recovers missing content
// and caches the result once every recovery attempt has finished.
func (s *postService) loadAll(ctx context.Context) ([]models.Post, error) {
	v, err := s.client.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	posts := s.recoverContent(ctx, s.norm.Collection(ctx, v))

	if err := s.cache.Set(ctx, posts); err != nil {
		s.log.Warn(ctx, "posts not persisted", "error", err)
	}
	s.log.Debug(ctx, "posts fetched", "count", len(posts))
	return posts, nil
}

func (s *postService) FetchPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	if p, ok := s.cache.GetBySlug(ctx, slug); ok {
		return &p, nil
	}

	_, cause, err := s.fetchAll(ctx)
	if err != nil {
		s.log.Debug(ctx, "collection fetch failed", "slug", slug, "error", err)
	}
	if p, ok := s.cache.GetBySlug(ctx, slug); ok {
		return &p, nil
	}

	// the collection call already showed the host is unreachable
	if client.IsNetwork(cause) {
		return s.recoverPost(ctx, slug, cause)
	}

	p, err := s.loadOne(ctx, slug)
	if err != nil {
		return s.recoverPost(ctx, slug, err)
	}
	return p, nil
}

func (s *postService) recoverPost(ctx context.Context, slug string, cause error) (*models.Post, error) {
	s.log.Warn(ctx, "post unavailable, applying fallback",
		"slug", slug, "policy", s.policy.Name(), "kind", client.Classify(cause).String(), "error", cause)

	p, err := s.policy.RecoverPost(ctx, slug, cause, func(ctx context.Context) (*models.Post, error) {
		return s.loadOne(ctx, slug)
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, models.ErrNotFound
	}
	return p, nil
}

func (s *postService) loadOne(ctx context.Context, slug string) (*models.Post, error) {
	v, err := s.client.GetPost(ctx, slug)
	if err != nil {
		return nil, err
	}
	rec, ok := s.norm.Post(ctx, v, slug)
	if !ok {
		return nil, fmt.Errorf("%w: no post in response for %q", client.ErrParse, slug)
	}
	p := rec.Post
	if rec.MissingContent {
		if content, ok := s.recoverOne(ctx, p.Slug); ok {
			p.Content = content
		}
	}
	return &p, nil
}

func (s *postService) CreatePost(ctx context.Context, p models.Post) models.WriteResult {
	if !s.limiter.Allow() {
		return models.WriteResult{
			Post:    p,
			Message: "Please wait a few seconds before submitting again",
			Err:     ErrThrottled,
		}
	}
	if err := p.Validate(); err != nil {
		return models.WriteResult{Post: p, Message: client.UserMessage(err), Err: err}
	}

	submit := p.ForSubmit()
	v, err := s.client.CreatePost(ctx, submit)
	if err != nil {
		s.log.Error(ctx, "create post failed", "slug", submit.Slug, "kind", client.Classify(err).String(), "error", err)
		res := models.WriteResult{Post: submit, Message: client.UserMessage(err), Err: err}
		if client.IsNetwork(err) && res.Post.ID == "" {
			res.Post.ID = models.LocalID(s.now())
		}
		return res
	}

	s.invalidate(ctx)
	return models.WriteResult{
		Post:    s.written(ctx, v, submit),
		Success: true,
		Message: "Post created successfully",
	}
}

func (s *postService) UpdatePost(ctx context.Context, slug string, p models.Post) *models.Post {
	if err := p.Validate(); err != nil {
		s.log.Warn(ctx, "update rejected", "slug", slug, "error", err)
		return nil
	}
	submit := p.ForSubmit()
	v, err := s.client.UpdatePost(ctx, slug, submit)
	if err != nil {
		s.log.Error(ctx, "update post failed", "slug", slug, "kind", client.Classify(err).String(), "error", err)
		return nil
	}

	s.invalidate(ctx)
	updated := s.written(ctx, v, submit)
	return &updated
}

func (s *postService) DeletePost(ctx context.Context, slug string) bool {
	if err := s.client.DeletePost(ctx, slug); err != nil {
		s.log.Error(ctx, "delete post failed", "slug", slug, "kind", client.Classify(err).String(), "error", err)
		return false
	}
	s.invalidate(ctx)
	return true
}

func (s *postService) Refresh(ctx context.Context) ([]models.Post, error) {
	s.invalidate(ctx)
	return s.FetchAllPosts(ctx)
}

func (s *postService) invalidate(ctx context.Context) {
	if err := s.cache.Clear(ctx); err != nil {
		s.log.Warn(ctx, "cache not cleared", "error", err)
	}
}

// written prefers the record echoed by the backend for the submitted slug
// and falls back to what was submitted.
func (s *postService) written(ctx context.Context, v any, submitted models.Post) models.Post {
	rec, ok := s.norm.Post(ctx, v, submitted.Slug)
	if !ok {
		return submitted
	}
	if rec.MissingContent {
		rec.Post.Content = submitted.Content
	}
	return rec.Post
}
