package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hadge13/ya-news/internal/models"
	"github.com/hadge13/ya-news/internal/storage"
)

// SaveNews сохраняет новость и возвращает запись с назначенными ID/CreatedAt.
// Нулевой PublishedAt заменяется моментом создания на стороне БД.
func (s *Storage) SaveNews(ctx context.Context, news models.News) (*models.News, error) {
	const op = "storage.postgres.SaveNews"

	var row pgx.Row
	if news.PublishedAt.IsZero() {
		row = s.db.QueryRow(ctx, `
		INSERT INTO news (title, content)
		VALUES ($1, $2)
		RETURNING id, title, content, published_at, created_at
		`, news.Title, news.Content)
	} else {
		row = s.db.QueryRow(ctx, `
		INSERT INTO news (title, content, published_at)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, published_at, created_at
		`, news.Title, news.Content, news.PublishedAt.UTC())
	}

	var saved models.News
	if err := row.Scan(&saved.ID, &saved.Title, &saved.Content, &saved.PublishedAt, &saved.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	saved.PublishedAt = saved.PublishedAt.UTC()
	saved.CreatedAt = saved.CreatedAt.UTC()

	return &saved, nil
}

// NewsByID возвращает новость по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) NewsByID(ctx context.Context, id uuid.UUID) (*models.News, error) {
	const op = "storage.postgres.NewsByID"

	var news models.News
	err := s.db.QueryRow(ctx, `
	SELECT id, title, content, published_at, created_at
	FROM news
	WHERE id = $1
	`, id).Scan(&news.ID, &news.Title, &news.Content, &news.PublishedAt, &news.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	news.PublishedAt = news.PublishedAt.UTC()
	news.CreatedAt = news.CreatedAt.UTC()

	return &news, nil
}

// ListNews возвращает первые limit новостей.
// Сортировка фиксирована: published_at DESC, id DESC.
func (s *Storage) ListNews(ctx context.Context, limit int) ([]models.News, error) {
	const op = "storage.postgres.ListNews"

	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	rows, err := s.db.Query(ctx, `
	SELECT id, title, content, published_at, created_at
	FROM news
	ORDER BY published_at DESC, id DESC
	LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		var news models.News
		if scanErr := rows.Scan(&news.ID, &news.Title, &news.Content, &news.PublishedAt, &news.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		// Нормализация в UTC.
		news.PublishedAt = news.PublishedAt.UTC()
		news.CreatedAt = news.CreatedAt.UTC()

		items = append(items, news)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}
