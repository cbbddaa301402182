package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blogfolio/internal/client/client"
	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, slug string, html bool) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, slug string) error
	Delete(ctx context.Context, slug string) error
	Refresh(ctx context.Context) error
	Projects(ctx context.Context) error
	Project(ctx context.Context, slug string) error
	CreateProject(ctx context.Context) error
	EditProject(ctx context.Context, slug string) error
	DeleteProject(ctx context.Context, slug string) error
}

const (
	helpGuest  = "Available commands: list, show <slug> [html], refresh, projects, project <slug>, register, login, exit"
	helpMember = "Available commands: list, show <slug> [html], create, edit <slug>, delete <slug>, refresh, projects, project <slug>, " +
		"project-create, project-edit <slug>, project-delete <slug>, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the blogfolio CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that need a slug print their usage
// when it is missing. An error returned by a handler is printed as a banner
// and the loop goes on. The loop exits on EOF or when the user types "exit"
// or "quit".
//
// Prompt & Commands
//
//	help                  show available commands
//	register | login      create an account / sign in
//	logout                forget the stored session
//	l | list              list posts
//	show <slug> [html]    show a post as text, or as sanitized HTML
//	create                write a new post
//	edit <slug>           change a post's title and content
//	delete <slug>         delete a post
//	refresh               drop the cache and reload posts
//	projects              list projects
//	project <slug>        show a project
//	project-create        add a project
//	project-edit <slug>   change a project
//	project-delete <slug> delete a project
//	exit | quit           leave the program
//
// The reader is shared with the interactive prompts of the handlers.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("blog %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <slug> [html]")
				continue
			}
			cmdErr = a.Show(ctx, args[0], len(args) > 1 && args[1] == "html")

		case "create":
			cmdErr = a.Create(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <slug>")
				continue
			}
			cmdErr = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <slug>")
				continue
			}
			cmdErr = a.Delete(ctx, args[0])

		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "projects":
			cmdErr = a.Projects(ctx)

		case "project":
			if len(args) == 0 {
				printlnFn("Usage: project <slug>")
				continue
			}
			cmdErr = a.Project(ctx, args[0])

		case "project-create":
			cmdErr = a.CreateProject(ctx)

		case "project-edit":
			if len(args) == 0 {
				printlnFn("Usage: project-edit <slug>")
				continue
			}
			cmdErr = a.EditProject(ctx, args[0])

		case "project-delete":
			if len(args) == 0 {
				printlnFn("Usage: project-delete <slug>")
				continue
			}
			cmdErr = a.DeleteProject(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(errorBanner(cmdErr))
		}
	}
}

// messageError carries a message that is already fit for the user.
type messageError struct {
	msg string
	err error
}

func (e *messageError) Error() string { return e.msg }
func (e *messageError) Unwrap() error { return e.err }

// errorBanner turns a handler error into a single line for the terminal.
func errorBanner(err error) string {
	var (
		me  *messageError
		msg string
	)
	switch {
	case errors.As(err, &me):
		msg = me.msg
	case errors.Is(err, services.ErrAuthRejected):
		msg = err.Error()
	case errors.Is(err, services.ErrSessionExpired):
		msg = "Your session has expired, please log in again."
	case errors.Is(err, models.ErrNotFound):
		msg = "Not found."
	default:
		msg = client.UserMessage(err)
	}
	return "[!] " + msg
}
