// Package models содержит доменные сущности ya-news.
package models

import (
	"time"

	"github.com/google/uuid"
)

// News — новость, опубликованная редакцией.
// Важно:
//   - ID назначается хранилищем при создании и далее неизменен;
//   - PublishedAt — единственный ключ сортировки ленты (свежие первыми);
//     по умолчанию совпадает с моментом создания, но редактор может задать
//     дату явно (например, "вчерашнюю");
//   - после публикации новость в рамках этого сервиса не редактируется.
type News struct {
	ID          uuid.UUID
	Title       string
	Content     string
	PublishedAt time.Time
	CreatedAt   time.Time
}
