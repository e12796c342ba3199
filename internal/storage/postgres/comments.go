package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hadge13/ya-news/internal/models"
	"github.com/hadge13/ya-news/internal/storage"
)

// CreateComment создаёт комментарий и возвращает запись из БД.
// created_at назначает clock_timestamp(): записи одной новости тотально
// упорядочены сериализацией вставок, тай-брейк по id закреплён в выборке.
// Ненулевой CreatedAt входа записывается как есть (тестовая лазейка).
// Нарушение внешнего ключа на news трактуется как storage.ErrNewsNotFound.
func (s *Storage) CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	const op = "storage.postgres.CreateComment"

	var row pgx.Row
	if comment.CreatedAt.IsZero() {
		row = s.db.QueryRow(ctx, `
		INSERT INTO comments (news_id, author_id, author, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, news_id, author_id, author, content, created_at, updated_at
		`, comment.NewsID, comment.AuthorID, comment.Author, comment.Content)
	} else {
		row = s.db.QueryRow(ctx, `
		INSERT INTO comments (news_id, author_id, author, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, news_id, author_id, author, content, created_at, updated_at
		`, comment.NewsID, comment.AuthorID, comment.Author, comment.Content, comment.CreatedAt.UTC())
	}

	saved, err := scanComment(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNewsNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// CommentByID возвращает комментарий по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	const op = "storage.postgres.CommentByID"

	row := s.db.QueryRow(ctx, `
	SELECT id, news_id, author_id, author, content, created_at, updated_at
	FROM comments
	WHERE id = $1
	`, id)

	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

// ListCommentsByNews возвращает все комментарии новости.
// Сортировка фиксирована: created_at ASC, id ASC (старые в начале).
func (s *Storage) ListCommentsByNews(ctx context.Context, newsID uuid.UUID) ([]models.Comment, error) {
	const op = "storage.postgres.ListCommentsByNews"

	rows, err := s.db.Query(ctx, `
	SELECT id, news_id, author_id, author, content, created_at, updated_at
	FROM comments
	WHERE news_id = $1
	ORDER BY created_at ASC, id ASC
	`, newsID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Comment
	for rows.Next() {
		comment, scanErr := scanComment(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *comment)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// UpdateCommentContent заменяет текст комментария и обновляет updated_at.
// Авторство (author_id) намеренно не входит в SET.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) UpdateCommentContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	const op = "storage.postgres.UpdateCommentContent"

	row := s.db.QueryRow(ctx, `
	UPDATE comments
	SET content = $2, updated_at = now()
	WHERE id = $1
	RETURNING id, news_id, author_id, author, content, created_at, updated_at
	`, id, content)

	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

// DeleteComment удаляет комментарий.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) DeleteComment(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteComment"

	tag, err := s.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// CountComments возвращает общее число комментариев.
func (s *Storage) CountComments(ctx context.Context) (int64, error) {
	const op = "storage.postgres.CountComments"

	var count int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM comments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// scanComment читает строку выборки комментария с нормализацией времени в UTC.
func scanComment(row pgx.Row) (*models.Comment, error) {
	var comment models.Comment
	if err := row.Scan(
		&comment.ID,
		&comment.NewsID,
		&comment.AuthorID,
		&comment.Author,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	); err != nil {
		return nil, err
	}

	comment.CreatedAt = comment.CreatedAt.UTC()
	comment.UpdatedAt = comment.UpdatedAt.UTC()

	return &comment, nil
}
