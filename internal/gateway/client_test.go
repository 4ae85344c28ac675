package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// Тесты клиента шлюза поверх httptest-сервера, имитирующего /chat/completions.

type chatRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionBody(t *testing.T, content string) []byte {
	t.Helper()

	b, err := json.Marshal(map[string]any{
		"id":      "gen-1",
		"object":  "chat.completion",
		"created": 1760870400,
		"model":   "test/model",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	require.NoError(t, err)

	return b
}

func newTestClient(t *testing.T, h http.HandlerFunc, mutate ...func(*Options)) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts := Options{
		APIKey:     "sk-test",
		BaseURL:    srv.URL + "/api/v1/",
		Timeout:    2 * time.Second,
		SiteURL:    "http://localhost:3000",
		HTTPClient: srv.Client(),
	}
	for _, m := range mutate {
		m(&opts)
	}

	c, err := New(opts, "anthropic/claude-3.5-sonnet")
	require.NoError(t, err)

	return c
}

// stallingHandler не отвечает, пока клиент не разорвёт соединение или не вызван release.
// Тело читается целиком: только после этого сервер следит за обрывом соединения.
// release регистрируется через t.Cleanup после newTestClient, чтобы выполниться раньше srv.Close.
func stallingHandler() (http.HandlerFunc, func()) {
	done := make(chan struct{})

	h := func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)

		select {
		case <-r.Context().Done():
		case <-done:
		}
	}

	return h, func() { close(done) }
}

func TestNew_MissingCredential(t *testing.T) {
	t.Parallel()

	c, err := New(Options{APIKey: "  "}, "openai/gpt-4o")
	require.Nil(t, c)
	require.ErrorIs(t, err, ErrConfiguration)
	require.Equal(t, "configuration", Kind(err))
}

func TestGenerate_OK_RequestShape(t *testing.T) {
	t.Parallel()

	var (
		got     chatRequest
		headers http.Header
		path    string
	)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		headers = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completionBody(t, "```json\n"+`{"title":"T","excerpt":"E","content":"C"}`+"\n```"))
	})

	out, err := c.Generate(context.Background(), "napiši vijest")
	require.NoError(t, err)
	require.Equal(t, "T", out.Title)
	require.Equal(t, "E", out.Excerpt)
	require.Equal(t, "C", out.Content)

	require.True(t, strings.HasSuffix(path, "/chat/completions"), path)
	require.Equal(t, "Bearer sk-test", headers.Get("Authorization"))
	require.Equal(t, DefaultSiteName, headers.Get("X-Title"))
	require.Equal(t, "http://localhost:3000", headers.Get("HTTP-Referer"))

	require.Equal(t, "anthropic/claude-3.5-sonnet", got.Model)
	require.Equal(t, DefaultMaxTokens, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	require.Equal(t, "user", got.Messages[0].Role)
	require.Equal(t, "napiši vijest", got.Messages[0].Content)
}

func TestGenerate_UpstreamStatus(t *testing.T) {
	t.Parallel()

	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"provider exploded","type":"server_error","code":"500"}}`))
	})

	_, err := c.Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrUpstream)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, http.StatusInternalServerError, upErr.StatusCode)
	require.Equal(t, 1, calls, "no retries inside the client")
}

func TestGenerate_UpstreamNonJSONBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.Generate(context.Background(), "p")

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr), "got %v", err)
	require.Equal(t, http.StatusBadGateway, upErr.StatusCode)
}

func TestGenerate_EmbeddedErrorIn200(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit exceeded","code":429}}`))
	})

	_, err := c.Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrUpstream)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, http.StatusOK, upErr.StatusCode)
	require.Contains(t, upErr.Body, "Rate limit exceeded")
}

func TestGenerate_EmptyContent(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completionBody(t, ""))
	})

	_, err := c.Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerate_IncompleteOutput(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completionBody(t, `{"title":"T","content":"C"}`))
	})

	_, err := c.Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrIncompleteOutput)
}

func TestGenerate_Timeout(t *testing.T) {
	t.Parallel()

	h, release := stallingHandler()
	c := newTestClient(t, h, func(o *Options) { o.Timeout = 100 * time.Millisecond })
	t.Cleanup(release)

	start := time.Now()
	_, err := c.Generate(context.Background(), "p")
	elapsed := time.Since(start)

	require.ErrorIs(t, err, ErrTimeout)

	var tErr *TimeoutError
	require.True(t, errors.As(err, &tErr))
	require.Equal(t, 100*time.Millisecond, tErr.After)
	require.Contains(t, err.Error(), "request timed out after 100ms")
	require.Less(t, elapsed, 2*time.Second, "the bound must cancel the in-flight request")
}

func TestGenerate_CallerCancellationIsNotTimeout(t *testing.T) {
	t.Parallel()

	h, release := stallingHandler()
	c := newTestClient(t, h)
	t.Cleanup(release)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err := c.Generate(ctx, "p")
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, ErrTimeout)
}

func TestUpstreamError_TruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		tail string
	}{
		{
			name: "multibyte rune straddles the limit",
			body: strings.Repeat("a", maxBodyInError-1) + "čćđ",
			tail: strings.Repeat("a", maxBodyInError-1) + "...",
		},
		{
			name: "rune ends exactly at the limit",
			body: strings.Repeat("a", maxBodyInError-2) + "čćđ",
			tail: strings.Repeat("a", maxBodyInError-2) + "č...",
		},
		{
			name: "short body kept whole",
			body: "kvota iskorištena",
			tail: ": kvota iskorištena",
		},
		{
			name: "invalid bytes replaced",
			body: "bad \xff\xfe byte",
			tail: "bad \uFFFD byte",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := (&UpstreamError{StatusCode: http.StatusBadGateway, Body: tt.body}).Error()
			require.True(t, utf8.ValidString(msg))
			require.True(t, strings.HasSuffix(msg, tt.tail), msg)
		})
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ok", Kind(nil))
	require.Equal(t, "timeout", Kind(&TimeoutError{After: time.Second}))
	require.Equal(t, "upstream", Kind(&UpstreamError{StatusCode: 500}))
	require.Equal(t, "empty_response", Kind(ErrEmptyResponse))
	require.Equal(t, "unknown", Kind(errors.New("dial tcp: refused")))
}
