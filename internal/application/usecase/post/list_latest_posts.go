package post

import (
	"context"
	"fmt"

	"github.com/yun0-0514/dev-blog/internal/domain/post"
)

const (
	defaultLatestLimit = 3
	maxLatestLimit     = 20
)

type ListLatestPostsUseCase struct {
	postRepo post.Repository
}

func NewListLatestPostsUseCase(pRepo post.Repository) *ListLatestPostsUseCase {
	return &ListLatestPostsUseCase{postRepo: pRepo}
}

type ListLatestPostsInput struct {
	Limit int
}

type ListLatestPostsOutput struct {
	Posts []*post.Post
}

func (uc *ListLatestPostsUseCase) Execute(ctx context.Context, input ListLatestPostsInput) (*ListLatestPostsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultLatestLimit
	}
	if input.Limit > maxLatestLimit {
		input.Limit = maxLatestLimit
	}

	posts, err := uc.postRepo.ListPublished(ctx, input.Limit, 0)
	if err != nil {
		return nil, fmt.Errorf("get latest post list failed: %w", err)
	}
	return &ListLatestPostsOutput{Posts: posts}, nil
}
