package models

// WriteResult is the value-level outcome of creating a post. Err keeps the
// classified cause when Success is false.
type WriteResult struct {
	Post    Post
	Success bool
	Message string
	Err     error
}
