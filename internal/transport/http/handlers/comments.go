package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hadge13/ya-news/internal/metrics"
	"github.com/hadge13/ya-news/internal/service"
	"github.com/hadge13/ya-news/internal/transport/http/httperr"
	"github.com/hadge13/ya-news/internal/transport/http/middleware"
)

type commentRequest struct {
	Text string `json:"text"`
}

// CreateComment — POST /news/{id}/comments.
// Исходы:
//   - аноним: 302 на вход с next=страница новости (там живёт форма);
//   - запрещённое слово: 422, предупреждение дословно на поле text;
//   - успех: 303 на страницу новости с якорем #comments.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	newsID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, service.ErrNotFound)
		return
	}

	identity := middleware.IdentityFrom(r.Context())
	if !identity.Authenticated() {
		h.redirectToLogin(w, r, newsDetailPath(newsID))
		return
	}

	var in commentRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	comment, err := h.Service.CreateComment(r.Context(), service.CreateCommentInput{
		NewsID:   newsID,
		Identity: identity,
		Content:  in.Text,
	})
	if err != nil {
		if errors.Is(err, service.ErrContentRejected) {
			metrics.CommentsRejectedTotal.Inc()
			httperr.WriteFieldError(w, r, "text", h.Cfg.Moderation.Warning)
			return
		}

		httperr.WriteError(w, r, err)
		return
	}

	metrics.CommentsCreatedTotal.Inc()
	redirectToComments(w, r, comment.NewsID)
}

// EditComment — POST /comments/{id}/edit.
// Чужой или отсутствующий комментарий — одинаковый 404; модерация
// применяется к новому тексту так же, как при создании.
func (h *Handlers) EditComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, service.ErrNotFound)
		return
	}

	identity := middleware.IdentityFrom(r.Context())
	if !identity.Authenticated() {
		h.redirectToLogin(w, r, r.URL.RequestURI())
		return
	}

	var in commentRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	comment, err := h.Service.UpdateComment(r.Context(), service.UpdateCommentInput{
		CommentID: commentID,
		Identity:  identity,
		Content:   in.Text,
	})
	if err != nil {
		if errors.Is(err, service.ErrContentRejected) {
			metrics.CommentsRejectedTotal.Inc()
			httperr.WriteFieldError(w, r, "text", h.Cfg.Moderation.Warning)
			return
		}

		httperr.WriteError(w, r, err)
		return
	}

	redirectToComments(w, r, comment.NewsID)
}

// DeleteComment — POST /comments/{id}/delete.
// Успех ведёт на страницу родительской новости с якорем #comments.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, service.ErrNotFound)
		return
	}

	identity := middleware.IdentityFrom(r.Context())
	if !identity.Authenticated() {
		h.redirectToLogin(w, r, r.URL.RequestURI())
		return
	}

	newsID, err := h.Service.DeleteComment(r.Context(), service.DeleteCommentInput{
		CommentID: commentID,
		Identity:  identity,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	redirectToComments(w, r, newsID)
}
