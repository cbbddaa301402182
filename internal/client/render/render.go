// Package render turns post content into something a terminal or a browser
// can show.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	policyOnce sync.Once
	policy     *bluemonday.Policy

	blankLines = regexp.MustCompile(`\n\s*\n`)
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		// fenced code keeps its language-xxx class
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code")
		policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	})
	return policy
}

// Markdown converts content to sanitized HTML.
func Markdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return sanitizer().Sanitize(buf.String()), nil
}

// Paragraphs splits content on blank lines, dropping empty blocks.
func Paragraphs(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	blocks := blankLines.Split(content, -1)
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
