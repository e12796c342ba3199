package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — комментарий читателя под новостью (плоская лента, без веток).
// Важно:
//   - NewsID — ссылка ровно на одну новость; при удалении новости
//     комментарии удаляются каскадно на уровне хранилища;
//   - AuthorID неизменен после создания: редактирование никогда
//     не меняет авторство;
//   - Author — снимок отображаемого имени на момент создания;
//   - CreatedAt назначается хранилищем и в рамках одной новости
//     монотонно растёт в порядке создания (тай-брейк — по ID);
//   - UpdatedAt обновляется при редактировании текста.
type Comment struct {
	ID        uuid.UUID
	NewsID    uuid.UUID
	AuthorID  uuid.UUID
	Author    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
