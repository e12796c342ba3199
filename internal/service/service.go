// service содержит бизнес-логику ya-news: лента, тред комментариев,
// модерация и правила владения при изменении комментариев.
package service

import (
	"errors"

	"github.com/hadge13/ya-news/internal/config"
	"github.com/hadge13/ya-news/internal/moderation"
	"github.com/hadge13/ya-news/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует ЛИБО принадлежит другому автору:
	// для границы сервиса эти случаи неразличимы намеренно, чтобы не
	// раскрывать существование чужих комментариев.
	ErrNotFound = errors.New("not found")
	// ErrAuthRequired — анонимная попытка записи; граница обязана
	// перенаправить на вход с возвратом к исходной цели.
	ErrAuthRequired = errors.New("authentication required")
	// ErrContentRejected — текст отклонён фильтром запрещённых слов.
	ErrContentRejected = errors.New("content rejected")
	// ErrInvalidArgument — структурно некорректный вход (пустой текст и т.п.);
	// не путать с ErrContentRejected.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal — внутренняя ошибка (сторадж/БД/контекст).
	ErrInternal = errors.New("internal")
)

// Service — бизнес-логика ya-news.
type Service struct {
	storage storage.Storage
	cfg     config.Config
	filter  *moderation.Filter
}

// New создает новый экземпляр Service.
// Фильтр модерации собирается один раз из неизменяемой конфигурации.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
		filter:  moderation.New(cfg.Moderation.BannedTerms, cfg.Moderation.Warning),
	}
}
