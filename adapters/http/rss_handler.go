package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	postUC "github.com/yun0-0514/dev-blog/internal/application/usecase/post"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type RSSHandler struct {
	rssUseCase *postUC.RSSUseCase
	logger     logger.Logger
}

func NewRSSHandler(uc *postUC.RSSUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{
		rssUseCase: uc,
		logger:     log,
	}
}

// GenerateRSS serves the feed with validators derived from the newest post,
// so feed readers polling an unchanged blog get a 304.
func (h *RSSHandler) GenerateRSS(c *gin.Context) {
	feed, err := h.rssUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	etag := feedETag(feed)
	c.Header("ETag", etag)
	if !feed.Updated.IsZero() {
		c.Header("Last-Modified", feed.Updated.UTC().Format(http.TimeFormat))
	}

	if notModified(c, etag, feed.Updated) {
		c.Status(http.StatusNotModified)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err, zap.Int("item_count", len(feed.Items)))
	}
}

func feedETag(feed *feeds.Feed) string {
	return fmt.Sprintf(`W/"%d-%d"`, feed.Updated.UnixMicro(), len(feed.Items))
}

// notModified prefers If-None-Match over If-Modified-Since, as HTTP caches do.
func notModified(c *gin.Context, etag string, updated time.Time) bool {
	if inm := c.GetHeader("If-None-Match"); inm != "" {
		return inm == etag || inm == "*"
	}
	ims := c.GetHeader("If-Modified-Since")
	if ims == "" || updated.IsZero() {
		return false
	}
	since, err := http.ParseTime(ims)
	if err != nil {
		return false
	}
	return !updated.Truncate(time.Second).After(since)
}
