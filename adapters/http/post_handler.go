package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	categoryUC "github.com/yun0-0514/dev-blog/internal/application/usecase/category"
	postUC "github.com/yun0-0514/dev-blog/internal/application/usecase/post"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type PostHandler struct {
	listLatestUseCase     *postUC.ListLatestPostsUseCase
	listCategoriesUseCase *categoryUC.ListCategoriesUseCase
	logger                logger.Logger
}

func NewPostHandler(listLatestUC *postUC.ListLatestPostsUseCase, listCategoriesUC *categoryUC.ListCategoriesUseCase, log logger.Logger) *PostHandler {
	return &PostHandler{
		listLatestUseCase:     listLatestUC,
		listCategoriesUseCase: listCategoriesUC,
		logger:                log,
	}
}

func (h *PostHandler) ListLatestPosts(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.listLatestUseCase.Execute(c.Request.Context(), postUC.ListLatestPostsInput{Limit: limit})
	if err != nil {
		c.Error(apperror.NewPersistence("failed to list latest posts", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ToPostSummaryListDTO(output.Posts)})
}

func (h *PostHandler) ListCategories(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.listCategoriesUseCase.Execute(c.Request.Context(), categoryUC.ListCategoriesInput{Limit: limit})
	if err != nil {
		c.Error(apperror.NewPersistence("failed to list categories", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ToCategoryListDTO(output.Categories)})
}

// queryLimit returns 0 when ?limit is absent so the use case applies its default.
func queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewInvalidInput("limit must be an integer", err)
	}
	return limit, nil
}
