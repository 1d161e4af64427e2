package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	md "github.com/Astemirdum/bookcourier/pkg/middleware"
)

func TestErrorHandler(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "client error kept",
			err:          echo.NewHTTPError(http.StatusForbidden, "forbidden access"),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"forbidden access"}`,
		},
		{
			name:         "plain error hidden",
			err:          errors.New("pq: relation does not exist"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"internal server error"}`,
		},
		{
			name:         "server http error hidden",
			err:          echo.NewHTTPError(http.StatusBadGateway, "upstream said no"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"internal server error"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.HTTPErrorHandler = md.ErrorHandler(e, zap.NewNop())
			e.GET("/", func(echo.Context) error { return tt.err })

			w := httptest.NewRecorder()
			e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
