// errors стандартизирует ответы об ошибках HTTP-слоя newsgen.
// На вход он принимает ошибку сервиса или шлюза модели,
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое error и подробное details (текст ошибки без префиксов операций);
//   - стабильный code для машиночитаемой обработки на FE.
//
// Источник истинности по маппингу: sentinel-ошибки internal/service и internal/gateway.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/novina/Novina/internal/gateway"
	"github.com/novina/Novina/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// ErrUnauthenticated: нет или неверный токен доступа. Отдаётся middleware.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrorResponse: единый формат ошибки для фронта.
// Error: краткое описание класса ошибки.
// Details: текст исходной ошибки (редактор видит, почему генерация не удалась).
// Code: короткий стабильный код.
// RequestID: прокидывается из X-Request-Id, если есть.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal без details;
//   - ошибки генерации (timeout, upstream, разбор ответа) проверяются раньше
//     ErrPersistence, потому что шлюз: первопричина;
//   - неизвестная ошибка - 500/internal, details не раскрываются.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "internal"}
	}

	status, code, msg, expose := classify(err)

	resp := ErrorResponse{Error: msg, Code: code}
	if expose {
		resp.Details = service.Reason(err)
	}

	return status, resp
}

// WriteError: хелпер для HTTP-хендлеров.
// Пишет статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// classify: маппинг sentinel -> HTTP/FE-код/сообщение.
//   - ErrInvalidArgument -> 400
//   - ErrUnauthenticated -> 401
//   - ErrNotFound -> 404
//   - ErrAlreadyExists -> 409
//   - ErrConfiguration (сервис или шлюз) -> 503
//   - gateway.ErrTimeout -> 504
//   - gateway.ErrUpstream / пустой / битый / неполный ответ -> 502
//   - ErrPersistence -> 500 с details
//   - context.Canceled -> 499
//   - прочее -> 500/internal
func classify(err error) (status int, code, msg string, expose bool) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument", true
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated", false
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found", true
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, "already_exists", "already exists", true
	case errors.Is(err, service.ErrConfiguration), errors.Is(err, gateway.ErrConfiguration):
		return http.StatusServiceUnavailable, "not_configured", "generation is not configured", true
	case errors.Is(err, gateway.ErrTimeout):
		return http.StatusGatewayTimeout, "gateway_timeout", "failed to generate news", true
	case errors.Is(err, gateway.ErrUpstream):
		return http.StatusBadGateway, "gateway_error", "failed to generate news", true
	case errors.Is(err, gateway.ErrEmptyResponse),
		errors.Is(err, gateway.ErrMalformedOutput),
		errors.Is(err, gateway.ErrIncompleteOutput):
		return http.StatusBadGateway, "bad_model_output", "failed to generate news", true
	case errors.Is(err, service.ErrPersistence):
		return http.StatusInternalServerError, "persistence", "failed to save generated news", true
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled", false
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded", false
	default:
		return http.StatusInternalServerError, "internal", "internal error", false
	}
}
