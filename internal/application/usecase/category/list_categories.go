package category

import (
	"context"
	"fmt"

	"github.com/yun0-0514/dev-blog/internal/domain/category"
)

const (
	defaultCategoryLimit = 6
	maxCategoryLimit     = 50
)

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
}

func NewListCategoriesUseCase(repo category.Repository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: repo}
}

type ListCategoriesInput struct {
	Limit int
}

type ListCategoriesOutput struct {
	Categories []*category.Category
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultCategoryLimit
	}
	if input.Limit > maxCategoryLimit {
		input.Limit = maxCategoryLimit
	}

	cats, err := uc.categoryRepo.ListByName(ctx, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list categories failed: %w", err)
	}
	return &ListCategoriesOutput{Categories: cats}, nil
}
