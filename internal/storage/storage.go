// storage определяет контракты доступа к БД для ya-news.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hadge13/ya-news/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrNewsNotFound — комментарий ссылается на несуществующую новость.
	ErrNewsNotFound = errors.New("news not found")
)

// NewsStorage описывает операции над сущностью models.News.
type NewsStorage interface {
	// SaveNews сохраняет новость и возвращает запись с назначенными
	// ID/CreatedAt. Если PublishedAt нулевое — хранилище подставляет
	// момент создания.
	SaveNews(ctx context.Context, news models.News) (*models.News, error)
	// NewsByID возвращает новость по идентификатору.
	// Если запись не найдена — ErrNotFound.
	NewsByID(ctx context.Context, id uuid.UUID) (*models.News, error)
	// ListNews возвращает первые limit новостей, отсортированных
	// по published_at DESC (тай-брейк — id DESC, стабилен в рамках запроса).
	ListNews(ctx context.Context, limit int) ([]models.News, error)
}

// CommentStorage описывает операции над сущностью models.Comment.
type CommentStorage interface {
	// CreateComment создаёт комментарий. Обязательные поля входа:
	// NewsID, AuthorID, Author, Content. CreatedAt обычно назначает
	// хранилище; ненулевое значение берётся как есть (тестовая лазейка
	// для детерминированных проверок порядка, в боевых путях не
	// используется). Если новость отсутствует — ErrNewsNotFound.
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)
	// CommentByID возвращает комментарий по идентификатору.
	// Если запись не найдена — ErrNotFound.
	CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	// ListCommentsByNews возвращает все комментарии новости,
	// отсортированные по created_at ASC, id ASC (старые в начале).
	ListCommentsByNews(ctx context.Context, newsID uuid.UUID) ([]models.Comment, error)
	// UpdateCommentContent заменяет текст комментария и обновляет
	// updated_at; авторство не меняется никогда.
	// Если запись не найдена — ErrNotFound.
	UpdateCommentContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error)
	// DeleteComment удаляет комментарий. Если запись не найдена — ErrNotFound.
	DeleteComment(ctx context.Context, id uuid.UUID) error
	// CountComments возвращает общее число комментариев.
	CountComments(ctx context.Context) (int64, error)
}

// Storage задаёт контракт доступа к хранилищу для ya-news.
type Storage interface {
	NewsStorage
	CommentStorage
	Close()
}
