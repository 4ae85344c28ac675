// gateway: клиент OpenAI-совместимого шлюза моделей (по умолчанию OpenRouter).
// Один параметризованный клиент на модель: провайдеры различаются только model_id и стилем.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
)

const (
	DefaultBaseURL   = "https://openrouter.ai/api/v1"
	DefaultTimeout   = 60 * time.Second
	DefaultMaxTokens = 1024
	DefaultSiteName  = "Novina News Platform"
)

// Options: общие параметры шлюза, одинаковые для всех провайдеров.
type Options struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
	// SiteURL/SiteName уходят в заголовки HTTP-Referer и X-Title.
	SiteURL  string
	SiteName string
	// HTTPClient: необязательный клиент (в тестах: клиент httptest-сервера).
	HTTPClient *http.Client
}

// Client выполняет по одному запросу chat completion на генерацию.
// Повторов и кеша нет: политика повторов: забота вызывающего.
type Client struct {
	api       openai.Client
	model     string
	timeout   time.Duration
	maxTokens int
}

// New создаёт клиента для модели modelID.
// Без ключа шлюза возвращает ErrConfiguration сразу, без сетевых вызовов.
func New(opts Options, modelID string) (*Client, error) {
	const op = "gateway.New"

	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrConfiguration)
	}
	if strings.TrimSpace(modelID) == "" {
		return nil, fmt.Errorf("%s: empty model id", op)
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.SiteName == "" {
		opts.SiteName = DefaultSiteName
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(opts.BaseURL),
		// SDK по умолчанию повторяет запросы; здесь ровно одна попытка.
		option.WithMaxRetries(0),
		option.WithHeader("X-Title", opts.SiteName),
		option.WithMiddleware(recordStatus),
	}
	if opts.SiteURL != "" {
		reqOpts = append(reqOpts, option.WithHeader("HTTP-Referer", opts.SiteURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	return &Client{
		api:       openai.NewClient(reqOpts...),
		model:     modelID,
		timeout:   opts.Timeout,
		maxTokens: opts.MaxTokens,
	}, nil
}

// Generate отправляет промпт одним user-сообщением и возвращает проверенный ответ.
//
// Ошибки:
//   - *TimeoutError (ErrTimeout): превышен таймаут клиента, запрос отменён;
//   - *UpstreamError (ErrUpstream): не-2xx статус или объект error в теле 200-ответа;
//   - ErrEmptyResponse: нет текста ассистента;
//   - ErrMalformedOutput / ErrIncompleteOutput: ответ не удалось превратить в статью.
func (c *Client) Generate(ctx context.Context, prompt string) (*models.GeneratedContent, error) {
	const op = "gateway.client.Generate"

	lg := log.From(ctx)
	start := time.Now()

	lg.Debug("gateway_request",
		slog.String("op", op),
		slog.String("model", c.model),
		slog.Int("prompt_len", len(prompt)),
	)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var status int
	callCtx = context.WithValue(callCtx, statusKey{}, &status)

	resp, err := c.api.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(c.model),
		Messages:  []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		MaxTokens: openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		err = c.classify(ctx, callCtx, status, err)
		lg.Warn("gateway_request_failed",
			slog.String("op", op),
			slog.String("model", c.model),
			slog.String("kind", Kind(err)),
			slog.Duration("dur", time.Since(start)),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if upErr := embeddedError(resp.RawJSON()); upErr != nil {
		lg.Warn("gateway_embedded_error",
			slog.String("op", op),
			slog.String("model", c.model),
			slog.String("err", upErr.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, upErr)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyResponse)
	}

	content, err := parseContent(resp.Choices[0].Message.Content)
	if err != nil {
		lg.Warn("gateway_output_rejected",
			slog.String("op", op),
			slog.String("model", c.model),
			slog.String("kind", Kind(err)),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("gateway_request_ok",
		slog.String("op", op),
		slog.String("model", c.model),
		slog.Duration("dur", time.Since(start)),
		slog.String("title", content.Title),
	)

	return content, nil
}

// classify приводит ошибку SDK к таксономии пакета.
func (c *Client) classify(parent, callCtx context.Context, status int, err error) error {
	// Таймаут клиента, а не отмена вызывающим.
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) && parent.Err() == nil {
		return &TimeoutError{After: c.timeout}
	}

	if parent.Err() != nil {
		return parent.Err()
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		body := apiErr.RawJSON()
		if body == "" {
			body = apiErr.Message
		}

		return &UpstreamError{StatusCode: apiErr.StatusCode, Body: body}
	}

	// Тело не разобралось как JSON (например, HTML от прокси), но статус известен.
	if status != 0 {
		return &UpstreamError{StatusCode: status, Body: err.Error()}
	}

	return err
}

type statusKey struct{}

// recordStatus запоминает не-2xx статус ответа в контексте вызова.
func recordStatus(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	res, err := next(req)
	if res != nil && res.StatusCode >= http.StatusBadRequest {
		if p, ok := req.Context().Value(statusKey{}).(*int); ok {
			*p = res.StatusCode
		}
	}

	return res, err
}

// embeddedError ищет объект error в теле успешного ответа.
func embeddedError(raw string) error {
	if raw == "" || !strings.Contains(raw, `"error"`) {
		return nil
	}

	var body struct {
		Error *struct {
			Message string          `json:"message"`
			Code    json.RawMessage `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err != nil || body.Error == nil {
		return nil
	}

	msg := body.Error.Message
	if msg == "" {
		msg = "unknown error"
	}

	return &UpstreamError{StatusCode: http.StatusOK, Body: msg}
}
