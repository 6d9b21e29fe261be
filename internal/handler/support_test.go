package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Alast0rRL/testtaxi/internal/service"
)

type failingSender struct {
	err error
}

func (s *failingSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	return s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func supportRouter(sender service.MessageSender) *gin.Engine {
	router := gin.New()
	router.POST("/v1/support", NewSupportHandler(service.NewSupportService(sender, 9000)).Forward)
	return router
}

func TestSupportForward_SenderFailure_BadGateway(t *testing.T) {
	t.Parallel()

	router := supportRouter(&failingSender{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodPost, "/v1/support",
		strings.NewReader(`{"rider_id": 100, "name": "Иван", "message": "Вопрос"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected status %d, got %d", http.StatusBadGateway, w.Code)
	}
}

func TestSupportForward_Success_OK(t *testing.T) {
	t.Parallel()

	router := supportRouter(&failingSender{})

	req := httptest.NewRequest(http.MethodPost, "/v1/support",
		strings.NewReader(`{"rider_id": 100, "name": "Иван", "message": "Вопрос"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
