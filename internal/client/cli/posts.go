package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/render"
)

var (
	errUpdateFailed = errors.New("update failed")
	errDeleteFailed = errors.New("delete failed")
)

func (a *App) List(ctx context.Context) error {
	posts, err := a.posts.FetchAllPosts(ctx)
	if err != nil {
		return err
	}
	a.printPosts(posts)
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	posts, err := a.posts.Refresh(ctx)
	if err != nil {
		return err
	}
	a.printPosts(posts)
	return nil
}

func (a *App) printPosts(posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet.")
		return
	}
	table := tablewriter.NewWriter(a.out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"SLUG", "TITLE", "AUTHOR", "DATE"})
	for _, p := range posts {
		table.Append([]string{p.Slug, p.Title, p.Author, postDate(p)})
	}
	table.Render()
}

// Show prints a single post. With html set the content is rendered from
// Markdown and sanitized; otherwise it is printed paragraph by paragraph.
func (a *App) Show(ctx context.Context, slug string, html bool) error {
	p, err := a.posts.FetchPostBySlug(ctx, slug)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, p.Title)
	fmt.Fprintln(a.out, strings.Repeat("=", len([]rune(p.Title))))
	meta := p.Author
	if d := postDate(*p); d != "" {
		meta += " · " + d
	}
	fmt.Fprintln(a.out, meta)
	if len(p.Tags) > 0 {
		fmt.Fprintf(a.out, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintln(a.out)

	if p.Content == "" {
		fmt.Fprintln(a.out, "(no content)")
		return nil
	}
	if html {
		out, err := render.Markdown(p.Content)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, out)
		return nil
	}
	fmt.Fprintln(a.out, strings.Join(render.Paragraphs(p.Content), "\n\n"))
	return nil
}

// Create prompts for a new post and submits it. A failed submission prints
// the server-facing message; a draft that never reached the server keeps
// its local id.
func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	suggested := models.Slugify(title)
	slug, err := getSimpleText(a.reader, fmt.Sprintf("Slug (Enter for %q)", suggested), a.out)
	if err != nil {
		return err
	}
	if slug == "" {
		slug = suggested
	}
	tags, err := getList(a.reader, "Tags (comma separated)", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content (Markdown)", a.out)
	if err != nil {
		return err
	}

	author := a.userName
	if author == "" {
		author = models.DefaultAuthor
	}
	now := time.Now()
	res := a.posts.CreatePost(ctx, models.Post{
		Title:     title,
		Slug:      slug,
		Content:   content,
		Author:    author,
		Tags:      tags,
		Created:   now.UnixMilli(),
		Updated:   now.UnixMilli(),
		CreatedAt: now.UTC().Format(time.RFC3339),
	})
	if !res.Success {
		if models.IsLocalID(res.Post.ID) {
			fmt.Fprintf(a.out, "Draft kept locally as %s\n", res.Post.ID)
		}
		return &messageError{msg: res.Message, err: res.Err}
	}
	fmt.Fprintf(a.out, "%s: %s\n", res.Message, res.Post.Slug)
	return nil
}

// Edit loads a post and lets the user replace its title and content. Empty
// answers keep the current values.
func (a *App) Edit(ctx context.Context, slug string) error {
	p, err := a.posts.FetchPostBySlug(ctx, slug)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title (Enter to keep %q)", p.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		p.Title = title
	}
	content, err := getMultiline(a.reader, "Content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		p.Content = content
	}
	now := time.Now()
	p.Updated = now.UnixMilli()
	p.UpdatedAt = now.UTC().Format(time.RFC3339)

	updated := a.posts.UpdatePost(ctx, slug, *p)
	if updated == nil {
		return &messageError{msg: "The post could not be updated.", err: errUpdateFailed}
	}
	fmt.Fprintf(a.out, "Post updated: %s\n", updated.Slug)
	return nil
}

func (a *App) Delete(ctx context.Context, slug string) error {
	ok, err := a.confirm(fmt.Sprintf("Delete %q? (y/N)", slug))
	if err != nil || !ok {
		return err
	}
	if !a.posts.DeletePost(ctx, slug) {
		return &messageError{msg: "The post could not be deleted.", err: errDeleteFailed}
	}
	fmt.Fprintln(a.out, "Post deleted")
	return nil
}

// confirm asks a yes/no question. Anything but y or yes cancels.
func (a *App) confirm(prompt string) (bool, error) {
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return false, err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return false, nil
	}
	return true, nil
}

// postDate formats the creation time, preferring the epoch field.
func postDate(p models.Post) string {
	if p.Created > 0 {
		return time.UnixMilli(p.Created).UTC().Format("2006-01-02")
	}
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	return p.CreatedAt
}
