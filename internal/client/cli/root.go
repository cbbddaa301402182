package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogfolio/internal/client/services"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root restores the stored session, starts the connectivity watcher and
// runs the REPL until the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to blogfolio CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.auth.Current(ctx)
	switch {
	case errors.Is(err, services.ErrSessionExpired):
		fmt.Fprintln(a.out, "Your session has expired, please log in again.")
	case err != nil:
		a.log.Warn(ctx, "session not restored", "error", err)
	case sess != nil:
		a.userName = sess.Username
		fmt.Fprintf(a.out, "Logged in as %s\n", sess.Username)
	}
}
