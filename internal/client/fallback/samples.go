package fallback

import (
	"embed"
	"strings"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
)

//go:embed seed/*.md
var seedFS embed.FS

func seedContent(slug string) string {
	b, err := seedFS.ReadFile("seed/" + slug + ".md")
	if err != nil {
		panic("fallback: missing seed " + slug)
	}
	return strings.TrimSpace(string(b))
}

var samples = []models.Post{
	{
		ID:      "sample-1",
		Title:   "Getting Started with Next.js",
		Slug:    "getting-started-with-nextjs",
		Content: seedContent("getting-started-with-nextjs"),
		Author:  "John Doe",
		Tags:    []string{"nextjs", "react", "frontend"},
		Created: 1673740800000,
		Updated: 1674172800000,
	},
	{
		ID:      "sample-2",
		Title:   "Working with React Hooks",
		Slug:    "working-with-react-hooks",
		Content: seedContent("working-with-react-hooks"),
		Author:  "Jane Smith",
		Tags:    []string{"react", "hooks", "javascript"},
		Created: 1675987200000,
		Updated: 1676419200000,
	},
}

// SamplePosts returns fresh copies of the placeholder posts shown while the
// backend is unreachable.
func SamplePosts() []models.Post {
	return models.ClonePosts(samples)
}
