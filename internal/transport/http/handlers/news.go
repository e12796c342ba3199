package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hadge13/ya-news/internal/service"
	"github.com/hadge13/ya-news/internal/transport/http/httperr"
	"github.com/hadge13/ya-news/internal/transport/http/middleware"
)

type homeResponse struct {
	News []newsItem `json:"news"`
}

type detailResponse struct {
	News newsItem `json:"news"`
	// Комментарии — старые в начале, новые в конце.
	Comments []commentItem `json:"comments"`
	// CommentForm — доступна ли читателю форма отправки комментария.
	// Просмотр открыт всем; форма — только аутентифицированным.
	CommentForm bool `json:"comment_form"`
}

type createNewsRequest struct {
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// HomeFeed — GET /news: лента главной страницы, свежие первыми,
// не более NEWS_COUNT_ON_HOME_PAGE элементов.
func (h *Handlers) HomeFeed(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.HomeFeed(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := homeResponse{News: make([]newsItem, 0, len(items))}
	for _, n := range items {
		out.News = append(out.News, toNewsItem(n))
	}

	writeJSON(w, http.StatusOK, out)
}

// NewsDetail — GET /news/{id}: новость, её тред и видимость формы.
func (h *Handlers) NewsDetail(w http.ResponseWriter, r *http.Request) {
	newsID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		// Некорректный идентификатор неотличим от отсутствующей новости.
		httperr.WriteError(w, r, service.ErrNotFound)
		return
	}

	news, err := h.Service.NewsByID(r.Context(), newsID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	comments, err := h.Service.Thread(r.Context(), newsID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	identity := middleware.IdentityFrom(r.Context())
	writeJSON(w, http.StatusOK, detailResponse{
		News:        toNewsItem(*news),
		Comments:    toCommentItems(comments),
		CommentForm: h.Service.CommentFormVisible(identity),
	})
}

// CreateNews — POST /news: редакционная публикация.
// Аноним получает редирект на вход с возвратом к исходной цели.
func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if !identity.Authenticated() {
		h.redirectToLogin(w, r, r.URL.RequestURI())
		return
	}

	var in createNewsRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	input := service.CreateNewsInput{
		Identity: identity,
		Title:    in.Title,
		Content:  in.Text,
	}
	if in.PublishedAt != nil {
		input.PublishedAt = *in.PublishedAt
	}

	news, err := h.Service.CreateNews(r.Context(), input)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNewsItem(*news))
}

// parseID разбирает UUID из пути; пробелы по краям не считаются ошибкой.
func parseID(raw string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(raw))
}
