// Package services contains the application services of the blog client.
//
// PostService is the resilient read/write path for posts: it consults the
// cache, calls the backend, repairs payloads with the normalizer, recovers
// missing content from alternate endpoints and applies the configured
// fallback policy when the backend fails. ProjectService is a plain CRUD
// pass-through. AuthService signs users in and keeps the session that
// supplies the bearer token.
package services
