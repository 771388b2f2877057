package post

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/internal/domain/post"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

const rssItemLimit = 20

type FeedInfo struct {
	SiteURL string
	Title   string
	Author  string
}

type RSSUseCase struct {
	postRepo post.Repository
	info     FeedInfo
	logger   logger.Logger
}

func NewRSSUseCase(pRepo post.Repository, info FeedInfo, log logger.Logger) *RSSUseCase {
	info.SiteURL = strings.TrimRight(info.SiteURL, "/")
	return &RSSUseCase{
		postRepo: pRepo,
		info:     info,
		logger:   log,
	}
}

func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	feed := &feeds.Feed{
		Title:       uc.info.Title,
		Link:        &feeds.Link{Href: uc.info.SiteURL},
		Description: uc.info.Title + " - latest posts",
		Author:      &feeds.Author{Name: uc.info.Author},
		Created:     time.Now(),
	}

	posts, err := uc.postRepo.ListPublished(ctx, rssItemLimit, 0)
	if err != nil {
		uc.logger.Error("Failed to list published posts for RSS", err)
		return nil, err
	}

	feed.Items = make([]*feeds.Item, 0, len(posts))
	for _, p := range posts {
		if p.UpdatedAt.After(feed.Updated) {
			feed.Updated = p.UpdatedAt
		}
		item := &feeds.Item{
			Id:          p.ID.String(),
			Title:       p.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/posts/%s", uc.info.SiteURL, p.Slug)},
			Description: p.Summary(200),
			Created:     p.CreatedAt,
			Updated:     p.UpdatedAt,
		}
		if p.Category != nil {
			item.Description = "[" + p.Category.Name + "] " + item.Description
		}
		feed.Items = append(feed.Items, item)
	}

	uc.logger.Debug("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
