package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/novina/Novina/internal/config"
	"github.com/novina/Novina/internal/gateway"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/service"
	"github.com/novina/Novina/internal/storage"
	"github.com/novina/Novina/mocks"
)

// genFunc: Generator из функции.
type genFunc func(ctx context.Context, prompt string) (*models.GeneratedContent, error)

func (f genFunc) Generate(ctx context.Context, prompt string) (*models.GeneratedContent, error) {
	return f(ctx, prompt)
}

func okGen(title string) genFunc {
	return func(context.Context, string) (*models.GeneratedContent, error) {
		return &models.GeneratedContent{Title: title, Excerpt: "Sažetak.", Content: "Tekst."}, nil
	}
}

func factory(g service.Generator) service.GeneratorFactory {
	return func(string) (service.Generator, error) { return g, nil }
}

func newHandlersForTest(t *testing.T, gens service.GeneratorFactory) (*Handlers, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	st := mocks.NewMockStorage(ctrl)

	cfg := config.Config{
		Generation: config.GenerationConfig{CategorySlug: "kratke-vijesti", FinalizeTimeout: time.Second},
		Limits:     config.LimitsConfig{Default: 20, Max: 100},
	}

	return New(service.New(st, cfg, gens, nil)), st
}

func jsonReq(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

type errBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Code    string `json:"code"`
}

func withURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testProvider() *models.Provider {
	return &models.Provider{ID: uuid.New(), Name: "claude", DisplayName: "Claude", ModelID: "anthropic/claude-3.5-sonnet", IsActive: true}
}

func testTopic() *models.Topic {
	return &models.Topic{ID: uuid.New(), Name: "Tehnologija", Slug: "tehnologija", PromptTemplate: "Piši o tehnologiji.", Color: "#10B981"}
}

func TestGenerateNews_OK(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, factory(okGen("Novi čip")))
	p, tp := testProvider(), testTopic()

	st.EXPECT().ProviderByID(gomock.Any(), p.ID).Return(p, nil)
	st.EXPECT().TopicByID(gomock.Any(), tp.ID).Return(tp, nil)
	st.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().MarkBatchProcessing(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().AuthorByType(gomock.Any(), "claude").Return(nil, storage.ErrNotFound)
	st.EXPECT().CategoryBySlug(gomock.Any(), "kratke-vijesti").Return(&models.Category{ID: uuid.New()}, nil)
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().FinishBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, res models.BatchResult) error {
			require.Equal(t, models.BatchCompleted, res.Status)
			return nil
		})

	rr := httptest.NewRecorder()
	h.GenerateNews(rr, jsonReq(http.MethodPost, "/api/news/generate", map[string]any{
		"provider_id":         p.ID.String(),
		"topic_id":            tp.ID.String(),
		"custom_instructions": "Spomeni Zagreb.",
	}))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode[generateResponse](t, rr)
	require.True(t, resp.Success)
	require.NotEqual(t, uuid.Nil, resp.BatchID)
	require.Equal(t, resp.ArticleID, resp.Article.ID)
	require.Equal(t, resp.ArticleSlug, resp.Article.Slug)
	require.Contains(t, resp.ArticleSlug, "novi-cip-")
	require.Equal(t, "Novi čip", resp.Article.Title)
	require.Equal(t, "Tehnologija", resp.Topic.Name)
	require.Equal(t, "#10B981", resp.Topic.Color)
	require.Equal(t, "Claude", resp.Provider.Name)
}

func TestGenerateNews_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
	}{
		{name: "missing_ids", body: map[string]any{}},
		{name: "missing_topic", body: map[string]any{"provider_id": uuid.NewString()}},
		{name: "bad_uuid", body: map[string]any{"provider_id": "x", "topic_id": uuid.NewString()}},
		{name: "unknown_field", body: map[string]any{"provider_id": uuid.NewString(), "topic_id": uuid.NewString(), "foo": 1}},
		{name: "broken_json", body: "{"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newHandlersForTest(t, factory(okGen("x")))

			rr := httptest.NewRecorder()
			h.GenerateNews(rr, jsonReq(http.MethodPost, "/api/news/generate", tt.body))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, "invalid_argument", decode[errBody](t, rr).Code)
		})
	}
}

func TestGenerateNews_ProviderNotFound(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, factory(okGen("x")))
	st.EXPECT().ProviderByID(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	rr := httptest.NewRecorder()
	h.GenerateNews(rr, jsonReq(http.MethodPost, "/api/news/generate", map[string]any{
		"provider_id": uuid.NewString(),
		"topic_id":    uuid.NewString(),
	}))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "provider: not found", decode[errBody](t, rr).Details)
}

func TestGenerateNews_NotConfigured_503(t *testing.T) {
	t.Parallel()

	noKey := func(string) (service.Generator, error) {
		return nil, fmt.Errorf("gateway.client.New: %w", gateway.ErrConfiguration)
	}
	h, st := newHandlersForTest(t, noKey)
	p, tp := testProvider(), testTopic()

	st.EXPECT().ProviderByID(gomock.Any(), p.ID).Return(p, nil)
	st.EXPECT().TopicByID(gomock.Any(), tp.ID).Return(tp, nil)

	rr := httptest.NewRecorder()
	h.GenerateNews(rr, jsonReq(http.MethodPost, "/api/news/generate", map[string]any{
		"provider_id": p.ID.String(),
		"topic_id":    tp.ID.String(),
	}))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.Equal(t, "not_configured", decode[errBody](t, rr).Code)
}

func TestGenerateNews_GatewayFailure_502WithDetails(t *testing.T) {
	t.Parallel()

	failing := genFunc(func(context.Context, string) (*models.GeneratedContent, error) {
		return nil, fmt.Errorf("gateway.client.Generate: %w", &gateway.UpstreamError{StatusCode: 429, Body: "rate limited"})
	})
	h, st := newHandlersForTest(t, factory(failing))
	p, tp := testProvider(), testTopic()

	st.EXPECT().ProviderByID(gomock.Any(), p.ID).Return(p, nil)
	st.EXPECT().TopicByID(gomock.Any(), tp.ID).Return(tp, nil)
	st.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().MarkBatchProcessing(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().FinishBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, res models.BatchResult) error {
			require.Equal(t, models.BatchFailed, res.Status)
			require.Equal(t, "gateway error: status 429: rate limited", *res.ErrorMessage)
			return nil
		})

	rr := httptest.NewRecorder()
	h.GenerateNews(rr, jsonReq(http.MethodPost, "/api/news/generate", map[string]any{
		"provider_id": p.ID.String(),
		"topic_id":    tp.ID.String(),
	}))

	require.Equal(t, http.StatusBadGateway, rr.Code)
	body := decode[errBody](t, rr)
	require.Equal(t, "failed to generate news", body.Error)
	require.Equal(t, "gateway error: status 429: rate limited", body.Details)
}

func TestRecentBatches_DefaultLimit(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)

	msg := "claude: empty model response"
	b := models.Batch{
		ID:             uuid.New(),
		BatchDate:      time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		GenerationType: models.GenerationScheduled,
		Status:         models.BatchCompleted,
		ErrorMessage:   &msg,
		Topic:          &models.TopicRef{Name: "Sport", Color: "#F59E0B"},
	}
	st.EXPECT().ListBatches(gomock.Any(), models.BatchFilter{Limit: 10}).Return([]models.Batch{b}, nil)

	rr := httptest.NewRecorder()
	h.RecentBatches(rr, httptest.NewRequest(http.MethodGet, "/api/news/batches", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[struct {
		Batches []batchDTO `json:"batches"`
	}](t, rr)
	require.Len(t, resp.Batches, 1)
	require.Equal(t, "2026-10-19", resp.Batches[0].BatchDate)
	require.Equal(t, "completed", resp.Batches[0].Status)
	require.Equal(t, msg, *resp.Batches[0].ErrorMessage)
	require.Equal(t, "Sport", resp.Batches[0].Topic.Name)
	require.Nil(t, resp.Batches[0].Provider)
}

func TestListBatches_QueryValidation(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)

	rr := httptest.NewRecorder()
	h.ListBatches(rr, httptest.NewRequest(http.MethodGet, "/api/admin/batches?limit=abc", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	h.ListBatches(rr, httptest.NewRequest(http.MethodGet, "/api/admin/batches?status=weird", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	failed := models.BatchFailed
	st.EXPECT().ListBatches(gomock.Any(), models.BatchFilter{Limit: 20, Status: &failed}).Return(nil, nil)

	rr = httptest.NewRecorder()
	h.ListBatches(rr, httptest.NewRequest(http.MethodGet, "/api/admin/batches?status=failed", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"batches":[]}`, rr.Body.String())
}

func TestGetBatch(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)
	id := uuid.New()
	st.EXPECT().BatchByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	rr := httptest.NewRecorder()
	h.GetBatch(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/api/admin/batches/"+id.String(), nil), "id", id.String()))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteBatches(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)
	id := uuid.New()

	st.EXPECT().ClearBatches(gomock.Any()).Return(int64(3), nil)
	st.EXPECT().DeleteBatch(gomock.Any(), id).Return(nil)

	rr := httptest.NewRecorder()
	h.DeleteBatches(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/batches?clearAll=true", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"message":"All batches cleared","deleted":3}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.DeleteBatches(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/batches?id="+id.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteBatches(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/batches", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateDailyNews_OK(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, factory(okGen("Dnevna vijest")))
	p := testProvider()

	st.EXPECT().ListProviders(gomock.Any(), true).Return([]models.Provider{*p}, nil)
	st.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().MarkBatchProcessing(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().CategoryBySlug(gomock.Any(), "kratke-vijesti").Return(nil, storage.ErrNotFound)
	st.EXPECT().AuthorByType(gomock.Any(), "claude").Return(&models.Author{ID: uuid.New(), Type: "claude"}, nil)
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().FinishBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	rr := httptest.NewRecorder()
	h.GenerateDailyNews(rr, httptest.NewRequest(http.MethodGet, "/api/cron/generate-daily-news", nil))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode[cronResponse](t, rr)
	require.True(t, resp.Success)
	require.Equal(t, 1, resp.ArticlesGenerated)
	require.Equal(t, "completed", resp.Status)
	require.False(t, resp.Timestamp.IsZero())
}

func TestCreateProvider_HidesCredential(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)
	st.EXPECT().SaveProvider(gomock.Any(), gomock.Any()).Return(nil)

	rr := httptest.NewRecorder()
	h.CreateProvider(rr, jsonReq(http.MethodPost, "/api/admin/ai-providers", map[string]any{
		"name":           "Grok",
		"display_name":   "Grok",
		"model_id":       "x-ai/grok-2",
		"credential_ref": "OPENROUTER_KEY_GROK",
	}))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.NotContains(t, rr.Body.String(), "OPENROUTER_KEY_GROK")

	resp := decode[struct {
		Provider providerDTO `json:"provider"`
	}](t, rr)
	require.Equal(t, "grok", resp.Provider.Name)
	require.True(t, resp.Provider.HasCredential)
	require.True(t, resp.Provider.IsActive)
}

func TestCreateProvider_Conflict(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)
	st.EXPECT().SaveProvider(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	rr := httptest.NewRecorder()
	h.CreateProvider(rr, jsonReq(http.MethodPost, "/api/admin/ai-providers", map[string]any{
		"name": "grok", "display_name": "Grok", "model_id": "x-ai/grok-2",
	}))

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestUpdateProvider(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)
	id := uuid.New()

	rr := httptest.NewRecorder()
	h.UpdateProvider(rr, jsonReq(http.MethodPatch, "/api/admin/ai-providers", map[string]any{"is_default": true}))
	require.Equal(t, http.StatusBadRequest, rr.Code, "id is required")

	yes := true
	st.EXPECT().UpdateProvider(gomock.Any(), id, models.ProviderUpdate{IsDefault: &yes}, gomock.Any()).
		Return(&models.Provider{ID: id, Name: "grok", IsDefault: true}, nil)

	rr = httptest.NewRecorder()
	h.UpdateProvider(rr, jsonReq(http.MethodPatch, "/api/admin/ai-providers", map[string]any{"id": id.String(), "is_default": true}))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[struct {
		Provider providerDTO `json:"provider"`
	}](t, rr)
	require.True(t, resp.Provider.IsDefault)
}

func TestSetDefaultProvider_And_Delete(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)
	id := uuid.New()

	st.EXPECT().SetDefaultProvider(gomock.Any(), id, gomock.Any()).Return(nil)
	st.EXPECT().DeleteProvider(gomock.Any(), id).Return(storage.ErrNotFound)

	rr := httptest.NewRecorder()
	h.SetDefaultProvider(rr, withURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", id.String()))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteProvider(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/ai-providers?id="+id.String(), nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateTopic_And_List(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)

	st.EXPECT().SaveTopic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tp *models.Topic) error {
			tp.SortOrder = 4
			return nil
		})
	st.EXPECT().ListTopics(gomock.Any(), true).Return([]models.Topic{*testTopic()}, nil)

	rr := httptest.NewRecorder()
	h.CreateTopic(rr, jsonReq(http.MethodPost, "/api/admin/news-topics", map[string]any{
		"name":            "Znanost i Svemir",
		"prompt_template": "Piši o svemiru.",
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	created := decode[struct {
		Topic topicDTO `json:"topic"`
	}](t, rr)
	require.Equal(t, "znanost-i-svemir", created.Topic.Slug)
	require.Equal(t, 4, created.Topic.SortOrder)
	require.Equal(t, models.DefaultTopicColor, created.Topic.Color)

	rr = httptest.NewRecorder()
	h.ListTopics(rr, httptest.NewRequest(http.MethodGet, "/api/admin/news-topics?active=true", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	list := decode[struct {
		Topics []topicDTO `json:"topics"`
	}](t, rr)
	require.Len(t, list.Topics, 1)
}

func TestReorderTopics(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)
	a, b := uuid.New(), uuid.New()

	rr := httptest.NewRecorder()
	h.ReorderTopics(rr, jsonReq(http.MethodPost, "/api/admin/news-topics/reorder", map[string]any{"orderedIds": []string{"nope"}}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	st.EXPECT().ReorderTopics(gomock.Any(), []uuid.UUID{b, a}, gomock.Any()).Return(nil)

	rr = httptest.NewRecorder()
	h.ReorderTopics(rr, jsonReq(http.MethodPost, "/api/admin/news-topics/reorder", map[string]any{
		"orderedIds": []string{b.String(), a.String()},
	}))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true}`, rr.Body.String())
}

func TestUpdateAndDeleteTopic(t *testing.T) {
	t.Parallel()

	h, st := newHandlersForTest(t, nil)
	id := uuid.New()
	name := "Gospodarstvo"

	st.EXPECT().UpdateTopic(gomock.Any(), id, models.TopicUpdate{Name: &name}, gomock.Any()).
		Return(&models.Topic{ID: id, Name: name}, nil)
	st.EXPECT().DeleteTopic(gomock.Any(), id).Return(nil)

	rr := httptest.NewRecorder()
	h.UpdateTopic(rr, jsonReq(http.MethodPatch, "/api/admin/news-topics", map[string]any{"id": id.String(), "name": name}))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteTopic(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/news-topics?id="+id.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)
}
