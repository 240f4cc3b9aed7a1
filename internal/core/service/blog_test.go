package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
	"github.com/Xalpha19/chaitravm/mocks"
)

func TestBlogService_LatestPosts(t *testing.T) {
	ctx := context.Background()
	source := mocks.NewBlogSource(t)
	source.EXPECT().LatestPosts(ctx, 2).Return([]domain.BlogPost{
		{ID: 1, Title: "Threat Modeling <em>Basics</em>", Excerpt: "<p>Start with the&nbsp;assets that matter.</p>\n<p>[&hellip;]</p>"},
		{ID: 2, Title: "Zero Trust", Excerpt: "Plain text already"},
	}, nil).Once()

	posts, err := NewBlogService(source).LatestPosts(ctx, 2)

	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "Threat Modeling Basics", posts[0].Title)
	assert.Equal(t, "Start with the assets that matter. […]", posts[0].Excerpt)
	assert.Equal(t, "Plain text already", posts[1].Excerpt)
}

func TestBlogService_DefaultCount(t *testing.T) {
	ctx := context.Background()
	source := mocks.NewBlogSource(t)
	source.EXPECT().LatestPosts(ctx, defaultPostCount).Return(nil, nil).Once()

	posts, err := NewBlogService(source).LatestPosts(ctx, 0)

	assert.NoError(t, err)
	assert.Empty(t, posts)
}

func TestBlogService_SourceError(t *testing.T) {
	ctx := context.Background()
	source := mocks.NewBlogSource(t)
	expectedErr := errors.New("feed unavailable")
	source.EXPECT().LatestPosts(ctx, 4).Return(nil, expectedErr).Once()

	_, err := NewBlogService(source).LatestPosts(ctx, 4)

	assert.ErrorIs(t, err, expectedErr)
}
