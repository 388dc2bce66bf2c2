// Package handler provides end-to-end tests over the assembled router.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/ai"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/checklist"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/config"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/extract"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/language"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway answers by prompt kind and counts completion calls.
type fakeGateway struct {
	mu      sync.Mutex
	calls   int
	summary string
	list    string
	answer  string
	err     error
}

func (g *fakeGateway) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if g.err != nil {
		return "", g.err
	}
	switch {
	case strings.Contains(req.System, "eligibility checklists"):
		return g.list, nil
	case strings.Contains(req.System, "GovAid AI"):
		return g.answer, nil
	default:
		return g.summary, nil
	}
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// newTestRouter assembles the full router around the fake gateway.
// development toggles the error translator's detail leaking.
func newTestRouter(gw ai.Gateway, development bool) *gin.Engine {
	logger := zap.NewNop()

	cfg := &config.Config{
		Upload: config.UploadConfig{MaxSize: 10 << 20},
		RateLimit: config.RateLimitConfig{
			Window:      time.Minute,
			MaxRequests: 1000,
		},
	}

	fetcher := extract.NewFetcher(2*time.Second, logger)
	languageSvc := language.NewService(gw, logger)
	analyzer := service.NewAnalyzer(gw, checklist.New(), languageSvc, logger)
	translator := NewErrorTranslator(development, logger)

	return NewRouter(cfg,
		NewPolicyHandler(fetcher, analyzer, languageSvc, translator, logger),
		NewUploadHandler(analyzer, translator, logger),
		NewHealthHandler(),
		logger,
	)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestExtractText_EndToEnd(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><title>T</title><body><main>Hello world</main></body></html>`))
	}))
	defer page.Close()

	router := newTestRouter(&fakeGateway{}, true)
	w := postJSON(t, router, "/api/extract-text", gin.H{"url": page.URL})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "Hello world", data["text"])
	assert.Equal(t, "T", data["title"])
	assert.Equal(t, page.URL, data["url"])
}

func TestExtractText_InvalidURL(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, true)

	for _, url := range []string{"", "not-a-url", "ftp://example.gov/x"} {
		w := postJSON(t, router, "/api/extract-text", gin.H{"url": url})
		assert.Equal(t, http.StatusBadRequest, w.Code, "url %q", url)
	}
}

func TestExtractText_PageNotFound(t *testing.T) {
	page := httptest.NewServer(http.NotFoundHandler())
	defer page.Close()

	router := newTestRouter(&fakeGateway{}, true)
	w := postJSON(t, router, "/api/extract-text", gin.H{"url": page.URL})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChecklist_EndToEnd(t *testing.T) {
	gw := &fakeGateway{list: "1. Be a citizen\n2. Earn under $30k"}
	router := newTestRouter(gw, true)

	w := postJSON(t, router, "/api/checklist", gin.H{
		"text": "Eligibility: 1. Be a citizen 2. Earn under $30k",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, []any{"Be a citizen", "Earn under $30k"}, data["checklist"])
	assert.Equal(t, float64(2), data["count"])
	assert.Equal(t, false, data["translated"])
	assert.Equal(t, "en", data["targetLanguage"])
}

// Text below the minimum length is rejected before any completion call.
func TestSummarize_TooShortRejectedBeforeGateway(t *testing.T) {
	gw := &fakeGateway{summary: "never used"}
	router := newTestRouter(gw, true)

	w := postJSON(t, router, "/api/summarize", gin.H{"text": "ab"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gw.callCount(), "validation must reject before any AI call")
}

func TestSummarize_EndToEnd(t *testing.T) {
	gw := &fakeGateway{summary: "**Housing aid** for citizens."}
	router := newTestRouter(gw, true)

	text := "Long enough policy text about housing aid."
	w := postJSON(t, router, "/api/summarize", gin.H{"text": text})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "**Housing aid** for citizens.", data["summary"])
	assert.Equal(t, float64(len(text)), data["originalLength"])
	assert.Equal(t, false, data["translated"])
}

func TestAnalyzeURL_EndToEnd(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><title>Aid Program</title><body><main>Citizens earning under $30k qualify for aid.</main></body></html>`))
	}))
	defer page.Close()

	gw := &fakeGateway{
		summary: "Aid for low earners.",
		list:    "- Be a citizen\n- Earn under $30k",
	}
	router := newTestRouter(gw, true)

	w := postJSON(t, router, "/api/analyze-url", gin.H{"url": page.URL})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "Aid Program", data["title"])
	assert.Equal(t, "Aid for low earners.", data["summary"])
	assert.Equal(t, []any{"Be a citizen", "Earn under $30k"}, data["checklist"])
	assert.Equal(t, "Citizens earning under $30k qualify for aid.", data["rawText"])

	meta := data["metadata"].(map[string]any)
	assert.Equal(t, float64(2), meta["checklistCount"])
	assert.Equal(t, float64(len("Aid for low earners.")), meta["summaryLength"])
}

func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadFile_UnsupportedType(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, true)

	body, contentType := multipartBody(t, "notes.txt", []byte("plain text file"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unsupported file type", resp.Error)
}

func TestUploadFile_MissingFile(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// An upstream failure surfaces as a 500 with a generic message; the
// provider's internal error string stays server-side in production mode.
func TestAskQuestion_UpstreamFailureDoesNotLeak(t *testing.T) {
	gw := &fakeGateway{err: domain.E(domain.KindUpstream, "ai_error", domain.ErrUpstreamUnavailable)}
	router := newTestRouter(gw, false) // production mode

	w := postJSON(t, router, "/api/ask-question", gin.H{
		"policyText": "Citizens earning under $30k qualify.",
		"question":   "Do I qualify?",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI Service Error", resp.Error)
	assert.Contains(t, resp.Message, "try again")
	assert.Empty(t, resp.Details, "production responses must not carry internal detail")
	assert.NotContains(t, w.Body.String(), "unavailable")
}

func TestAskQuestion_DevelopmentModeCarriesDetail(t *testing.T) {
	gw := &fakeGateway{err: domain.E(domain.KindUpstream, "ai_error", domain.ErrUpstreamUnavailable)}
	router := newTestRouter(gw, true)

	w := postJSON(t, router, "/api/ask-question", gin.H{
		"policyText": "text", "question": "q?",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Details)
}

func TestAskQuestion_EndToEnd(t *testing.T) {
	gw := &fakeGateway{answer: "Yes, you qualify if you earn under $30k."}
	router := newTestRouter(gw, true)

	w := postJSON(t, router, "/api/ask-question", gin.H{
		"policyText": "Citizens earning under $30k qualify.",
		"question":   "Do I qualify?",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "Do I qualify?", data["question"])
	assert.Equal(t, "Yes, you qualify if you earn under $30k.", data["answer"])
	assert.Equal(t, false, data["translated"])
}

func TestAskQuestion_ValidationListsAllViolations(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, true)

	w := postJSON(t, router, "/api/ask-question", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Details, 2)
}

func TestProcessDocument_EndToEnd(t *testing.T) {
	gw := &fakeGateway{summary: "short summary", list: "1. item"}
	router := newTestRouter(gw, true)

	w := postJSON(t, router, "/api/process-document", gin.H{
		"text": "A policy document with enough text to analyze.",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	meta := data["metadata"].(map[string]any)
	assert.Equal(t, "direct_api", meta["method"])
	assert.Equal(t, float64(1), meta["checklistCount"])
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "healthy", data["status"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimit(t *testing.T) {
	logger := zap.NewNop()
	cfg := &config.Config{
		Upload:    config.UploadConfig{MaxSize: 1 << 20},
		RateLimit: config.RateLimitConfig{Window: time.Hour, MaxRequests: 2},
	}
	gw := &fakeGateway{}
	fetcher := extract.NewFetcher(time.Second, logger)
	languageSvc := language.NewService(gw, logger)
	analyzer := service.NewAnalyzer(gw, checklist.New(), languageSvc, logger)
	translator := NewErrorTranslator(true, logger)
	router := NewRouter(cfg,
		NewPolicyHandler(fetcher, analyzer, languageSvc, translator, logger),
		NewUploadHandler(analyzer, translator, logger),
		NewHealthHandler(),
		logger,
	)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}
