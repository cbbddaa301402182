// Package cli provides the interactive blogfolio command-line client.
//
// It wires configuration, the local SQLite database, the posts cache, the
// REST client and the services into a REPL. A background watcher probes the
// backend and shows online/offline in the prompt.
//
// Key features:
//   - Login / Register / Logout (session restored on start)
//   - List / Show posts, rendered as paragraphs or sanitized HTML
//   - Create / Edit / Delete posts
//   - Browse projects
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// Command failures are printed as a one-line banner and never end the loop.
package cli
