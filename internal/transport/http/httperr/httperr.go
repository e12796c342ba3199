// httperr стандартизирует ответы об ошибках HTTP-слоя ya-news.
// На вход — ошибка сервисного слоя, на выход — корректный HTTP-статус и
// краткое безопасное message без утечки деталей.
//
// Отдельно: отказ не-автору и отсутствие сущности дают байт-в-байт
// одинаковый ответ 404 — существование чужих комментариев не раскрывается.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hadge13/ya-news/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
// FieldErrors — ошибки, привязанные к полям формы (модерация текста).
type APIError struct {
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	RequestID   string            `json:"request_id,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и тело ответа.
//
// Маппинг:
//   - ErrInvalidArgument -> 400 invalid_argument
//   - ErrAuthRequired    -> 401 auth_required (редирект-ветку навигационных
//     запросов хендлеры обрабатывают сами до вызова WriteError)
//   - ErrNotFound        -> 404 not_found
//   - ErrContentRejected -> 422 content_rejected
//   - прочее             -> 500 internal
func ToHTTP(err error) (int, ErrorResponse) {
	switch {
	case err == nil:
		// Программная ошибка вызова: не маскируем баг ответом 200.
		return http.StatusInternalServerError, response("internal", "internal error")
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, response("invalid_argument", "invalid argument")
	case errors.Is(err, service.ErrAuthRequired):
		return http.StatusUnauthorized, response("auth_required", "authentication required")
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, response("not_found", "not found")
	case errors.Is(err, service.ErrContentRejected):
		return http.StatusUnprocessableEntity, response("content_rejected", "content rejected")
	default:
		return http.StatusInternalServerError, response("internal", "internal error")
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)
	write(w, r, status, resp)
}

// WriteFieldError — ошибка, привязанная к полю формы (422), с дословным
// сообщением; используется для отказов модерации.
func WriteFieldError(w http.ResponseWriter, r *http.Request, field, message string) {
	resp := response("content_rejected", "content rejected")
	resp.Error.FieldErrors = map[string]string{field: message}
	write(w, r, http.StatusUnprocessableEntity, resp)
}

func response(code, message string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message}}
}

func write(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	// Прокидываем request_id, чтобы фронт мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
