package post

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yun0-0514/dev-blog/internal/domain/category"
	"github.com/yun0-0514/dev-blog/internal/domain/post"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) ListPublished(ctx context.Context, limit, offset int) ([]*post.Post, error) {
	args := m.Called(ctx, limit, offset)
	posts, _ := args.Get(0).([]*post.Post)
	return posts, args.Error(1)
}

func TestListLatestPosts_LimitBounds(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 3},
		{-1, 3},
		{5, 5},
		{500, 20},
	}
	for _, tc := range cases {
		repo := new(mockPostRepo)
		repo.On("ListPublished", mock.Anything, tc.want, 0).Return([]*post.Post{}, nil)

		_, err := NewListLatestPostsUseCase(repo).Execute(context.Background(), ListLatestPostsInput{Limit: tc.in})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	}
}

func TestListLatestPosts_Error(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("ListPublished", mock.Anything, 3, 0).Return(nil, errors.New("down"))

	_, err := NewListLatestPostsUseCase(repo).Execute(context.Background(), ListLatestPostsInput{})
	assert.ErrorContains(t, err, "down")
}

func TestRSS_BuildsItems(t *testing.T) {
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	p := &post.Post{
		ID:        uuid.New(),
		Title:     "Hello Go",
		Slug:      "hello-go",
		Content:   "body",
		Status:    post.StatusPublished,
		Category:  &category.Category{Name: "Go"},
		CreatedAt: created,
		UpdatedAt: created,
	}
	repo := new(mockPostRepo)
	repo.On("ListPublished", mock.Anything, rssItemLimit, 0).Return([]*post.Post{p}, nil)

	uc := NewRSSUseCase(repo, FeedInfo{SiteURL: "https://blog.example.com/", Title: "Dev Blog", Author: "Park"}, logger.NewNopLogger())
	feed, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, feed.Items, 1)
	assert.Equal(t, created, feed.Updated)
	assert.Equal(t, "https://blog.example.com/posts/hello-go", feed.Items[0].Link.Href)
	assert.Equal(t, "[Go] body", feed.Items[0].Description)

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.True(t, strings.Contains(rss, "<title>Hello Go</title>"))
}
