// Package normalize turns backend payloads of unknown shape into valid
// posts and projects.
//
// The backend has shipped several response envelopes over time: a bare
// array, an object wrapping the array under posts/items/data/results/blogs,
// a single post object, or a post nested under "post". Payloads are matched
// against an ordered chain of shapes and each element is repaired field by
// field. Invalid elements are dropped; nothing here returns an error.
package normalize
