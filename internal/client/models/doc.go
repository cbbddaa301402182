// Package models defines the client-side records of the blog: posts,
// projects, the persisted cache entry and the auth session.
package models
