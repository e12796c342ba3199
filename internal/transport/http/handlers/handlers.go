// Package handlers — HTTP-обработчики сайта ya-news.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/hadge13/ya-news/internal/config"
	"github.com/hadge13/ya-news/internal/models"
	"github.com/hadge13/ya-news/internal/service"
)

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	Service *service.Service
	Cfg     config.Config
}

func New(svc *service.Service, cfg config.Config) *Handlers {
	return &Handlers{Service: svc, Cfg: cfg}
}

// Wire-модели. Поле текста комментария называется text — так же, как поле
// формы, к которому фронт привязывает ошибку модерации.

type newsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
}

type commentItem struct {
	ID        string    `json:"id"`
	NewsID    string    `json:"news_id"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNewsItem(n models.News) newsItem {
	return newsItem{
		ID:          n.ID.String(),
		Title:       n.Title,
		Text:        n.Content,
		PublishedAt: n.PublishedAt,
	}
}

func toCommentItem(c models.Comment) commentItem {
	return commentItem{
		ID:        c.ID.String(),
		NewsID:    c.NewsID.String(),
		AuthorID:  c.AuthorID.String(),
		Author:    c.Author,
		Text:      c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCommentItems(items []models.Comment) []commentItem {
	out := make([]commentItem, 0, len(items))
	for _, c := range items {
		out = append(out, toCommentItem(c))
	}
	return out
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// redirectToLogin — аноним на мутирующем пути: 302 на страницу входа
// с параметром next, указывающим на исходную цель (после входа можно
// вернуться и повторить то же действие).
func (h *Handlers) redirectToLogin(w http.ResponseWriter, r *http.Request, next string) {
	target := fmt.Sprintf("%s?next=%s", h.Cfg.Auth.LoginURL, url.QueryEscape(next))
	http.Redirect(w, r, target, http.StatusFound)
}

// redirectToComments — успешная мутация: 303 на страницу новости с якорем
// на секцию комментариев.
func redirectToComments(w http.ResponseWriter, r *http.Request, newsID uuid.UUID) {
	http.Redirect(w, r, newsDetailPath(newsID)+"#comments", http.StatusSeeOther)
}

func newsDetailPath(newsID uuid.UUID) string {
	return "/news/" + newsID.String()
}
