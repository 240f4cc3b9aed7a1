package service

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
	"github.com/Xalpha19/chaitravm/internal/core/port"
)

const defaultPostCount = 4

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// BlogService exposes read-only post summaries from the external blog feed.
// Raw excerpts arrive as HTML fragments and are flattened to plain text.
type BlogService struct {
	source port.BlogSource
}

func NewBlogService(source port.BlogSource) *BlogService {
	return &BlogService{source: source}
}

func (s *BlogService) LatestPosts(ctx context.Context, count int) ([]domain.BlogPost, error) {
	if count <= 0 {
		count = defaultPostCount
	}

	posts, err := s.source.LatestPosts(ctx, count)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Title = stripHTML(posts[i].Title)
		posts[i].Excerpt = stripHTML(posts[i].Excerpt)
	}

	return posts, nil
}

func stripHTML(fragment string) string {
	text := tagPattern.ReplaceAllString(fragment, "")
	text = html.UnescapeString(text)
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}
