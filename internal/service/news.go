package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hadge13/ya-news/internal/models"
	"github.com/hadge13/ya-news/internal/pkg/log"
	"github.com/hadge13/ya-news/internal/storage"
)

// CreateNewsInput — публикация новости редакцией.
// PublishedAt может быть задан явно (датированная публикация);
// нулевое значение — «сейчас».
type CreateNewsInput struct {
	Identity    models.Identity
	Title       string
	Content     string
	PublishedAt time.Time
}

// HomeFeed — лента главной страницы: не более NewsOnHomePage самых свежих
// новостей, published_at DESC. Короткая лента отдаётся как есть, без
// добивки и без ошибки.
func (s *Service) HomeFeed(ctx context.Context) ([]models.News, error) {
	const op = "service/news/HomeFeed"

	items, err := s.storage.ListNews(ctx, s.cfg.Content.NewsOnHomePage)
	if err != nil {
		log.From(ctx).Error("storage error on ListNews", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return items, nil
}

// NewsByID — новость по идентификатору.
//
// Поведение/ошибки:
//   - ErrNotFound — новость отсутствует;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) NewsByID(ctx context.Context, id uuid.UUID) (*models.News, error) {
	const op = "service/news/NewsByID"

	lg := log.From(ctx).With("op", op, "news_id", id.String())

	if id == uuid.Nil {
		lg.Warn("invalid argument: empty news_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	news, err := s.storage.NewsByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("news not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on NewsByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return news, nil
}

// CreateNews — редакционная публикация новости.
//
// Валидация:
//   - Identity должна быть аутентифицирована (аноним -> ErrAuthRequired);
//   - Title и Content нормализуются (TrimSpace) и не должны быть пустыми.
func (s *Service) CreateNews(ctx context.Context, in CreateNewsInput) (*models.News, error) {
	const op = "service/news/CreateNews"

	lg := log.From(ctx).With("op", op, "user_id", in.Identity.UserID.String())

	if !in.Identity.Authenticated() {
		lg.Warn("anonymous attempt to publish news")
		return nil, fmt.Errorf("%s: %w", op, ErrAuthRequired)
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		lg.Warn("invalid argument: empty content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	news, err := s.storage.SaveNews(ctx, models.News{
		Title:       in.Title,
		Content:     in.Content,
		PublishedAt: in.PublishedAt,
	})
	if err != nil {
		lg.Error("storage error on SaveNews", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return news, nil
}
