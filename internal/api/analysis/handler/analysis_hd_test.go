package analysisHandler

import (
	"ImageAnalyzer/internal/api/analysis"
	"ImageAnalyzer/internal/entity"
	"ImageAnalyzer/internal/middleware"
	"ImageAnalyzer/pkg/utils"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalysisService struct {
	body     string
	err      error
	urls     []string
	deadline bool
}

func (f *fakeAnalysisService) FetchImage(context.Context, string) ([]byte, error) {
	return nil, nil
}

func (f *fakeAnalysisService) DetectImageLabels(context.Context, []byte) ([]entity.Label, string, error) {
	return nil, "", nil
}

func (f *fakeAnalysisService) TranslateText(context.Context, string) ([]string, error) {
	return nil, nil
}

func (f *fakeAnalysisService) FormatTextResults([]entity.Label, []string) ([]string, error) {
	return nil, nil
}

func (f *fakeAnalysisService) AnalyzeImage(ctx context.Context, imageURL string) (string, error) {
	f.urls = append(f.urls, imageURL)
	_, f.deadline = ctx.Deadline()
	return f.body, f.err
}

func newTestApp(t *testing.T, svc *fakeAnalysisService, timeout time.Duration) (*fiber.App, *AnalysisHandler) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mw := middleware.New(logger, utils.New())
	h := New(logger, validator.New(), mw, svc, timeout)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	h.Start(app.Group("/api/v1"))

	return app, h
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAnalyzeImage_Success(t *testing.T) {
	svc := &fakeAnalysisService{body: "A imagem tem\n 95.20% de chance de ser do tipo Gato"}
	app, _ := newTestApp(t, svc, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis?imageUrl=https%3A%2F%2Fexample.com%2Fcat.jpg", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, svc.body, readBody(t, resp))
	assert.Equal(t, []string{"https://example.com/cat.jpg"}, svc.urls)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDKey))
	assert.False(t, svc.deadline)
}

func TestAnalyzeImage_ServiceFailure(t *testing.T) {
	svc := &fakeAnalysisService{err: analysis.NewStageError(analysis.FetchError, errors.New("dial tcp: connection refused"))}
	app, _ := newTestApp(t, svc, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis?imageUrl=https://unreachable.invalid/cat.jpg", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", readBody(t, resp))
}

func TestAnalyzeImage_MissingImageURL(t *testing.T) {
	svc := &fakeAnalysisService{body: "unused"}
	app, _ := newTestApp(t, svc, 0)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/analysis", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", readBody(t, resp))
	assert.Empty(t, svc.urls)
}

func TestMain_AppliesTimeout(t *testing.T) {
	svc := &fakeAnalysisService{body: "A imagem tem"}
	_, h := newTestApp(t, svc, 5*time.Second)

	resp := h.Main(context.Background(), analysis.Event{
		QueryStringParameters: map[string]string{"imageUrl": "https://example.com/cat.jpg"},
	})

	assert.Equal(t, analysis.Response{StatusCode: 200, Body: "A imagem tem"}, resp)
	assert.True(t, svc.deadline)
}

func TestMain_ErrorKindsCollapseToSameResponse(t *testing.T) {
	kinds := []analysis.ErrorKind{analysis.FetchError, analysis.DetectionError, analysis.TranslationError, analysis.FormatError}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			svc := &fakeAnalysisService{err: analysis.NewStageError(kind, errors.New("failure"))}
			_, h := newTestApp(t, svc, 0)

			resp := h.Main(context.Background(), analysis.Event{
				QueryStringParameters: map[string]string{"imageUrl": "https://example.com/cat.jpg"},
			})

			assert.Equal(t, analysis.Response{StatusCode: 500, Body: "Internal server error"}, resp)
		})
	}
}

func TestInvoke(t *testing.T) {
	svc := &fakeAnalysisService{body: "A imagem tem"}
	app, _ := newTestApp(t, svc, 0)

	payload := `{"queryStringParameters":{"imageUrl":"https://example.com/cat.jpg"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/invoke", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got analysis.Response
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &got))
	assert.Equal(t, analysis.Response{StatusCode: 200, Body: "A imagem tem"}, got)
}

func TestInvoke_MalformedEvent(t *testing.T) {
	svc := &fakeAnalysisService{body: "unused"}
	app, _ := newTestApp(t, svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/invoke", strings.NewReader(`{"queryStringParameters":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var got analysis.Response
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &got))
	assert.Equal(t, analysis.Response{StatusCode: 500, Body: "Internal server error"}, got)
	assert.Empty(t, svc.urls)
}
