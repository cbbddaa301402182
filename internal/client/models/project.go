package models

import (
	"slices"
	"strings"
)

// Project is a portfolio item. Projects are never cached locally.
type Project struct {
	ID           string   `json:"id,omitempty"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Content      string   `json:"content"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	RepoURL      string   `json:"repoUrl,omitempty"`
	DemoURL      string   `json:"demoUrl,omitempty"`
}

func (p Project) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return &ValidationError{Field: "title", Message: "title is required"}
	case strings.TrimSpace(p.Description) == "":
		return &ValidationError{Field: "description", Message: "description is required"}
	case strings.TrimSpace(p.Slug) == "":
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	return nil
}

func (p Project) Clone() Project {
	out := p
	if p.Technologies != nil {
		out.Technologies = slices.Clone(p.Technologies)
	}
	return out
}
