package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hadge13/ya-news/internal/models"
	"github.com/hadge13/ya-news/internal/pkg/log"
	"github.com/hadge13/ya-news/internal/storage"
)

// Входные структуры сервисного слоя.

// CreateCommentInput — отправка комментария под новость.
type CreateCommentInput struct {
	NewsID   uuid.UUID
	Identity models.Identity
	Content  string
}

// UpdateCommentInput — редактирование текста собственного комментария.
type UpdateCommentInput struct {
	CommentID uuid.UUID
	Identity  models.Identity
	Content   string
}

// DeleteCommentInput — удаление собственного комментария.
type DeleteCommentInput struct {
	CommentID uuid.UUID
	Identity  models.Identity
}

// Thread — все комментарии новости, старые в начале (created_at ASC).
// Порядок треда противоположен порядку ленты и фиксирован отдельным
// контрактом: объединять их в один «общий» компаратор нельзя.
func (s *Service) Thread(ctx context.Context, newsID uuid.UUID) ([]models.Comment, error) {
	const op = "service/comments/Thread"

	lg := log.From(ctx).With("op", op, "news_id", newsID.String())

	if newsID == uuid.Nil {
		lg.Warn("invalid argument: empty news_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	items, err := s.storage.ListCommentsByNews(ctx, newsID)
	if err != nil {
		lg.Error("storage error on ListCommentsByNews", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return items, nil
}

// CommentFormVisible — доступна ли стороне форма отправки комментария.
// Просмотр треда открыт всем; сама возможность отправки — только
// аутентифицированным.
func (s *Service) CommentFormVisible(identity models.Identity) bool {
	return identity.Authenticated()
}

// CreateComment — бизнес-операция отправки комментария.
//
// Порядок шагов фиксирован: идентификация -> валидация -> модерация ->
// запись; отклонённый текст не сохраняется.
//
// Поведение/ошибки:
//   - ErrAuthRequired — аноним (граница редиректит на вход с next);
//   - ErrInvalidArgument — пустой текст после TrimSpace;
//   - ErrContentRejected — текст содержит запрещённое слово;
//   - ErrNotFound — новость отсутствует;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	const op = "service/comments/CreateComment"

	lg := log.From(ctx).With(
		"op", op,
		"user_id", in.Identity.UserID.String(),
		"news_id", in.NewsID.String(),
	)

	if !in.Identity.Authenticated() {
		lg.Warn("anonymous attempt to create comment")
		return nil, fmt.Errorf("%s: %w", op, ErrAuthRequired)
	}

	if in.NewsID == uuid.Nil {
		lg.Warn("invalid argument: empty news_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		lg.Warn("invalid argument: empty content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.filter.Validate(in.Content); err != nil {
		lg.Warn("content rejected by moderation")
		return nil, fmt.Errorf("%s: %w", op, ErrContentRejected)
	}

	comment, err := s.storage.CreateComment(ctx, models.Comment{
		NewsID:   in.NewsID,
		AuthorID: in.Identity.UserID,
		Author:   in.Identity.Username,
		Content:  in.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNewsNotFound):
			lg.Warn("news not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CreateComment", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return comment, nil
}

// UpdateComment — редактирование текста комментария его автором.
//
// Порядок шагов фиксирован: идентификация -> авторизация -> модерация ->
// запись. Авторизация идёт строго до модерации: не-автор не должен узнать,
// прошёл бы его текст фильтр. Отказ не-автору неотличим от отсутствия
// комментария (ErrNotFound).
//
// Поведение/ошибки:
//   - ErrAuthRequired — аноним;
//   - ErrInvalidArgument — пустой текст;
//   - ErrNotFound — комментария нет или он чужой;
//   - ErrContentRejected — новый текст содержит запрещённое слово;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	const op = "service/comments/UpdateComment"

	lg := log.From(ctx).With(
		"op", op,
		"user_id", in.Identity.UserID.String(),
		"comment_id", in.CommentID.String(),
	)

	if !in.Identity.Authenticated() {
		lg.Warn("anonymous attempt to edit comment")
		return nil, fmt.Errorf("%s: %w", op, ErrAuthRequired)
	}

	if in.CommentID == uuid.Nil {
		lg.Warn("invalid argument: empty comment_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		lg.Warn("invalid argument: empty content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	comment, err := s.authorizeOwner(ctx, in.CommentID, in.Identity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.filter.Validate(in.Content); err != nil {
		lg.Warn("content rejected by moderation")
		return nil, fmt.Errorf("%s: %w", op, ErrContentRejected)
	}

	updated, err := s.storage.UpdateCommentContent(ctx, comment.ID, in.Content)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment disappeared before update")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateCommentContent", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return updated, nil
}

// DeleteComment — удаление комментария его автором.
// Возвращает идентификатор родительской новости для редиректа границы.
//
// Поведение/ошибки:
//   - ErrAuthRequired — аноним;
//   - ErrNotFound — комментария нет или он чужой;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) DeleteComment(ctx context.Context, in DeleteCommentInput) (uuid.UUID, error) {
	const op = "service/comments/DeleteComment"

	lg := log.From(ctx).With(
		"op", op,
		"user_id", in.Identity.UserID.String(),
		"comment_id", in.CommentID.String(),
	)

	if !in.Identity.Authenticated() {
		lg.Warn("anonymous attempt to delete comment")
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrAuthRequired)
	}

	if in.CommentID == uuid.Nil {
		lg.Warn("invalid argument: empty comment_id")
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	comment, err := s.authorizeOwner(ctx, in.CommentID, in.Identity)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteComment(ctx, comment.ID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment disappeared before delete")
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeleteComment", "err", err)
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return comment.NewsID, nil
}

// authorizeOwner загружает комментарий и проверяет владение.
// «Нет такого» и «чужой» схлопываются в один ErrNotFound до любого
// раскрывающего существование ответа.
func (s *Service) authorizeOwner(ctx context.Context, commentID uuid.UUID, identity models.Identity) (*models.Comment, error) {
	lg := log.From(ctx).With("comment_id", commentID.String())

	comment, err := s.storage.CommentByID(ctx, commentID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return nil, ErrNotFound
		default:
			lg.Error("storage error on CommentByID", "err", err)
			return nil, ErrInternal
		}
	}

	if !identity.Owns(comment.AuthorID) {
		lg.Warn("identity is not the comment author")
		return nil, ErrNotFound
	}

	return comment, nil
}
