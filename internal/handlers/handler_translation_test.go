package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/dto"
	"github.com/poultrymitra/mitra_backend/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTranslationRouter(svc *MockTranslationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterTranslationRoutes(r.Group("/api/v1"), svc)
	return r
}

func TestTranslate(t *testing.T) {
	svc := new(MockTranslationService)
	svc.On("Translate", mock.Anything, "ledger.balance.owes", "hi").Return("किसान पर बकाया", nil).Once()
	r := newTranslationRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/translations?key=ledger.balance.owes", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.TranslationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hi", resp.Lang)
	assert.Equal(t, "किसान पर बकाया", resp.Text)
	svc.AssertExpectations(t)
}

func TestTranslate_Errors(t *testing.T) {
	svc := new(MockTranslationService)
	svc.On("Translate", mock.Anything, "ledger.title", "fr").
		Return("", fmt.Errorf("%w: unsupported language fr", apperrors.ErrValidation)).Once()
	r := newTranslationRouter(svc)

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"missing key", "/api/v1/translations?lang=hi", http.StatusBadRequest},
		{"unsupported language", "/api/v1/translations?key=ledger.title&lang=fr", http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tc.url, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
	svc.AssertExpectations(t)
}
