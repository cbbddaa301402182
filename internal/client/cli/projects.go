package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/render"
)

func (a *App) Projects(ctx context.Context) error {
	projects, err := a.projects.List(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects yet.")
		return nil
	}
	table := tablewriter.NewWriter(a.out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"SLUG", "TITLE", "TECHNOLOGIES"})
	for _, p := range projects {
		table.Append([]string{p.Slug, p.Title, strings.Join(p.Technologies, ", ")})
	}
	table.Render()
	return nil
}

func (a *App) Project(ctx context.Context, slug string) error {
	p, err := a.projects.Get(ctx, slug)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, p.Title)
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	if len(p.Technologies) > 0 {
		fmt.Fprintf(a.out, "Technologies: %s\n", strings.Join(p.Technologies, ", "))
	}
	for _, link := range []struct{ label, url string }{
		{"Repository", p.RepoURL},
		{"Demo", p.DemoURL},
		{"Image", p.ImageURL},
	} {
		if link.url != "" {
			fmt.Fprintf(a.out, "%s: %s\n", link.label, link.url)
		}
	}
	if p.Content != "" {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, strings.Join(render.Paragraphs(p.Content), "\n\n"))
	}
	return nil
}

// CreateProject prompts for a new project and submits it.
func (a *App) CreateProject(ctx context.Context) error {
	var p models.Project
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	p.Title = title
	suggested := models.Slugify(title)
	if p.Slug, err = getSimpleText(a.reader, fmt.Sprintf("Slug (Enter for %q)", suggested), a.out); err != nil {
		return err
	}
	if p.Slug == "" {
		p.Slug = suggested
	}
	if p.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if p.Technologies, err = getList(a.reader, "Technologies (comma separated)", a.out); err != nil {
		return err
	}
	if err := a.promptLinks(&p, false); err != nil {
		return err
	}
	if p.Content, err = getMultiline(a.reader, "Content (Markdown)", a.out); err != nil {
		return err
	}

	created, err := a.projects.Create(ctx, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Project created: %s\n", created.Slug)
	return nil
}

// EditProject loads a project and lets the user change it. Empty answers
// keep the current values.
func (a *App) EditProject(ctx context.Context, slug string) error {
	p, err := a.projects.Get(ctx, slug)
	if err != nil {
		return err
	}

	for _, field := range []struct {
		label string
		value *string
	}{
		{"Title", &p.Title},
		{"Description", &p.Description},
	} {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s (Enter to keep %q)", field.label, *field.value), a.out)
		if err != nil {
			return err
		}
		if answer != "" {
			*field.value = answer
		}
	}
	techs, err := getList(a.reader, fmt.Sprintf("Technologies (Enter to keep %q)", strings.Join(p.Technologies, ", ")), a.out)
	if err != nil {
		return err
	}
	if len(techs) > 0 {
		p.Technologies = techs
	}
	if err := a.promptLinks(p, true); err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		p.Content = content
	}

	updated, err := a.projects.Update(ctx, slug, *p)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Project updated: %s\n", updated.Slug)
	return nil
}

func (a *App) DeleteProject(ctx context.Context, slug string) error {
	ok, err := a.confirm(fmt.Sprintf("Delete project %q? (y/N)", slug))
	if err != nil || !ok {
		return err
	}
	if err := a.projects.Delete(ctx, slug); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project deleted")
	return nil
}

// promptLinks asks for the optional URLs. When editing, an empty answer
// keeps the current value and "-" clears it.
func (a *App) promptLinks(p *models.Project, editing bool) error {
	for _, link := range []struct {
		label string
		value *string
	}{
		{"Repository URL", &p.RepoURL},
		{"Demo URL", &p.DemoURL},
		{"Image URL", &p.ImageURL},
	} {
		prompt := link.label + " (optional)"
		if editing {
			prompt = fmt.Sprintf("%s (Enter to keep %q, - to clear)", link.label, *link.value)
		}
		answer, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch {
		case answer == "-":
			*link.value = ""
		case answer != "":
			*link.value = answer
		}
	}
	return nil
}
