package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/blogfolio/internal/client/cache"
	"github.com/dmitrijs2005/blogfolio/internal/client/client"
	"github.com/dmitrijs2005/blogfolio/internal/client/config"
	"github.com/dmitrijs2005/blogfolio/internal/client/fallback"
	"github.com/dmitrijs2005/blogfolio/internal/client/services"
	"github.com/dmitrijs2005/blogfolio/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config   *config.Config
	log      logging.Logger
	posts    services.PostService
	projects services.ProjectService
	auth     services.AuthService
	closers  []func() error

	userName string
	reader   *bufio.Reader
	out      io.Writer

	modeMu sync.RWMutex
	mode   Mode
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	policy, err := fallback.ByName(c.FallbackPolicy)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}
	repos := client.NewRepositories(db)

	a := &App{config: c, log: log, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
	a.closers = append(a.closers, db.Close)

	var rdb *redis.Client
	if c.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: c.RedisAddr, DialTimeout: 2 * time.Second})
		a.closers = append(a.closers, rdb.Close)
	}
	store := cache.NewStoreWithFallback(ctx, rdb, repos.Metadata, log)
	postsCache := cache.New(ctx, store, cache.WithTTL(c.CacheTTL), cache.WithLogger(log))

	sessions := services.NewSessionStore(db, nil)
	api := client.NewHTTPClient(c.APIBaseURL,
		client.WithTokenSource(sessions),
		client.WithReadTimeout(c.ReadTimeout),
		client.WithWriteTimeout(c.WriteTimeout),
	)

	opts := []services.PostOption{
		services.WithRecoveryHosts(c.APIBaseURL, c.AlternateBaseURL),
		services.WithRecoveryTimeout(c.RecoveryTimeout),
		services.WithSubmitInterval(c.SubmitInterval),
	}
	if len(c.RecoveryEndpoints) > 0 {
		opts = append(opts, services.WithRecoveryEndpoints(services.ParseEndpoints(c.RecoveryEndpoints)))
	}

	a.posts = services.NewPostService(api, postsCache, policy, log, opts...)
	a.projects = services.NewProjectService(api, log)
	a.auth = services.NewAuthService(api, sessions, log)
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "shutdown", "error", err)
		}
	}()
	a.Root(ctx)
}

// Close releases the database and the Redis connection.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(ctx, "switched mode", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher pings the backend right away and then every
// interval until ctx is done. A non-positive interval probes once.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.probe(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) probe(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.auth.Ping(pctx)
	cancel()

	if ctx.Err() != nil {
		return
	}
	if err != nil {
		a.log.Debug(ctx, "ping failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
