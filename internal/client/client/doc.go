// Package client is the transport of the blog client.
//
// # Overview
//
// The package provides:
//  1. The Client contract for the REST backend: post and project CRUD,
//     login/register and a health probe. Read calls return decoded JSON of
//     unknown shape; repairing it is left to package normalize.
//  2. HTTPClient, a net/http implementation that injects the bearer token of
//     a TokenSource and bounds reads and writes with separate timeouts.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with embedded goose migrations.
//
// # Error Handling
//
// Every failure is classified (see Classify) as a timeout, an unreachable
// host, an HTTP status or an unparsable body. Callers match the sentinels
// with errors.Is: ErrTimeout, ErrUnavailable, ErrParse, and for statuses
// ErrUnauthorized, ErrNotFound, ErrTooLarge, ErrRateLimited, ErrServer.
// UserMessage renders any of them for display.
package client
