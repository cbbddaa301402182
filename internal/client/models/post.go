package models

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	DefaultAuthor = "Anonymous"

	// MaxContentLength caps post content in characters (runes).
	MaxContentLength = 100000
)

// Post is the central entity. Created/Updated are epoch milliseconds;
// CreatedAt/UpdatedAt keep the ISO-8601 strings of older responses.
type Post struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Content   string   `json:"content"`
	Author    string   `json:"author,omitempty"`
	Tags      []string `json:"tags"`
	Created   int64    `json:"created,omitempty"`
	Updated   int64    `json:"updated,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// ValidPost reports whether p carries the minimum identity of a post.
func ValidPost(p Post) bool {
	return strings.TrimSpace(p.Title) != "" && strings.TrimSpace(p.Slug) != ""
}

// Validate checks a post before it is submitted.
func (p Post) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return &ValidationError{Field: "title", Message: "title is required"}
	case strings.TrimSpace(p.Slug) == "":
		return &ValidationError{Field: "slug", Message: "slug is required"}
	case strings.TrimSpace(p.Content) == "":
		return &ValidationError{Field: "content", Message: "content is required"}
	case utf8.RuneCountInString(p.Content) > MaxContentLength:
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content exceeds %d characters", MaxContentLength),
		}
	}
	return nil
}

// ForSubmit returns the trimmed copy that is sent to the backend.
func (p Post) ForSubmit() Post {
	out := p.Clone()
	out.Title = strings.TrimSpace(p.Title)
	out.Slug = strings.TrimSpace(p.Slug)
	out.Author = strings.TrimSpace(p.Author)
	out.Content = TruncateRunes(p.Content, MaxContentLength)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

func (p Post) Clone() Post {
	out := p
	if p.Tags != nil {
		out.Tags = slices.Clone(p.Tags)
	}
	return out
}

// ClonePosts deep-copies a slice of posts; nil stays nil.
func ClonePosts(posts []Post) []Post {
	if posts == nil {
		return nil
	}
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}

func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe slug from a title:
//
//	"Hello, World!" -> "hello-world"
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(strings.TrimSpace(s), "-")
	return strings.Trim(s, "-")
}

// NewID returns a unique identifier for a post the backend sent without one.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}

// LocalID is the placeholder id of a post that only exists on this machine.
func LocalID(now time.Time) string {
	return fmt.Sprintf("local-%d", now.UnixMilli())
}

// IsLocalID reports whether id was produced by LocalID.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, "local-")
}
