package gateway

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	// ErrConfiguration: нет общего ключа шлюза. Фатально: ни один провайдер не сработает.
	ErrConfiguration = errors.New("gateway credential is not configured")
	// ErrTimeout: шлюз не ответил за отведённое время.
	ErrTimeout = errors.New("gateway timeout")
	// ErrUpstream: шлюз вернул ошибку (HTTP-статус или объект error в теле).
	ErrUpstream = errors.New("gateway upstream error")
	// ErrEmptyResponse: в ответе нет текста ассистента.
	ErrEmptyResponse = errors.New("empty model response")
	// ErrMalformedOutput: найденный фрагмент не разбирается как JSON-объект.
	ErrMalformedOutput = errors.New("malformed model output")
	// ErrIncompleteOutput: в JSON нет title, excerpt или content.
	ErrIncompleteOutput = errors.New("incomplete model output")
)

// TimeoutError: превышен таймаут вызова шлюза.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.After)
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// maxBodyInError: сколько байт тела ответа попадает в текст ошибки.
const maxBodyInError = 512

// UpstreamError: ошибка, пришедшая от шлюза.
// StatusCode == 200, если ошибка была вложена в успешный ответ.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	// Текст уходит в error_message пакета, а TEXT в Postgres принимает только UTF-8.
	body := strings.ToValidUTF8(e.Body, "\uFFFD")
	if len(body) > maxBodyInError {
		n := maxBodyInError
		for n > 0 && !utf8.RuneStart(body[n]) {
			n--
		}
		body = body[:n] + "..."
	}

	return fmt.Sprintf("gateway error: status %d: %s", e.StatusCode, body)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// Kind классифицирует ошибку генерации стабильной меткой для метрик и логов.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrMalformedOutput):
		return "malformed_output"
	case errors.Is(err, ErrIncompleteOutput):
		return "incomplete_output"
	default:
		return "unknown"
	}
}
