package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopwise/shopping-assistant/internal/api/middleware"
	"github.com/shopwise/shopping-assistant/internal/core/domain"
)

var discardLogger = zerolog.Nop()

type stubAssistant struct {
	response  string
	err       error
	lastQuery string
}

func (s *stubAssistant) GenerateResponse(_ context.Context, query string) (string, error) {
	s.lastQuery = query
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func assistContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/shopping/assist", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "u1")
	c.Set(middleware.CtxUsername, "alice")
	c.Set(middleware.CtxRole, domain.RoleCore)
	return c, rec
}

func TestAssistantHandler_Success(t *testing.T) {
	e := echo.New()
	assistant := &stubAssistant{response: "Here are some laptops..."}
	h := NewAssistantHandler(assistant, discardLogger, false)

	c, rec := assistContext(e, `{"query": "find me a laptop"}`)
	if err := h.Assist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Response     string `json:"response"`
		Personalized bool   `json:"personalized"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Response != "Here are some laptops..." {
		t.Errorf("unexpected response: %q", resp.Response)
	}
	if resp.Personalized {
		t.Error("plain assist must not be flagged personalized")
	}
	if assistant.lastQuery != "find me a laptop" {
		t.Errorf("query not forwarded: %q", assistant.lastQuery)
	}
}

func TestAssistantHandler_Enhanced(t *testing.T) {
	e := echo.New()
	h := NewAssistantHandler(&stubAssistant{response: "ok"}, discardLogger, false)

	c, rec := assistContext(e, `{"query": "gift ideas"}`)
	if err := h.AssistEnhanced(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Personalized bool `json:"personalized"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.Personalized {
		t.Error("enhanced assist must set personalized=true")
	}
}

func TestAssistantHandler_EmptyQuery(t *testing.T) {
	e := echo.New()
	assistant := &stubAssistant{response: "ok"}
	h := NewAssistantHandler(assistant, discardLogger, false)

	for _, body := range []string{`{}`, `{"query": ""}`, `{"query": "   "}`} {
		c, rec := assistContext(e, body)
		if err := h.Assist(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
	if assistant.lastQuery != "" {
		t.Error("gateway must not be invoked for an empty query")
	}
}

func TestAssistantHandler_GatewayFailure(t *testing.T) {
	e := echo.New()
	lastErr := errors.New("genai gemini-pro-vision: quota exceeded (RESOURCE_EXHAUSTED)")
	h := NewAssistantHandler(&stubAssistant{
		err: fmt.Errorf("%w: %w", domain.ErrAllBackendsFailed, lastErr),
	}, discardLogger, false)

	c, rec := assistContext(e, `{"query": "find me a laptop"}`)
	if err := h.Assist(c); err != nil {
		t.Fatalf("handler must render the failure itself, got error %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp assistErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("error field must be set")
	}
	if resp.Message != lastErr.Error() {
		t.Errorf("message must be the last backend's failure, got %q", resp.Message)
	}
	if resp.Details != "" {
		t.Error("details must be omitted outside development mode")
	}
}

func TestAssistantHandler_GatewayFailure_DevelopmentDetails(t *testing.T) {
	e := echo.New()
	h := NewAssistantHandler(&stubAssistant{
		err: fmt.Errorf("%w: %w", domain.ErrAllBackendsFailed, errors.New("boom")),
	}, discardLogger, true)

	c, rec := assistContext(e, `{"query": "q"}`)
	if err := h.Assist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp assistErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Details == "" {
		t.Error("development mode must include diagnostic details")
	}
}
