package handler_test

import (
	"regexp"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/handler"
	"github.com/Astemirdum/bookcourier/pkg/auth0"
)

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestRouter_EveryRouteDocumented(t *testing.T) {
	t.Parallel()
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var spec struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, jsoniter.UnmarshalFromString(doc, &spec))

	e := handler.New(nil, auth0.NewSecretVerifier(secret), zap.NewNop()).NewRouter()
	for _, route := range e.Routes() {
		if route.Method == echo.RouteNotFound || route.Path == "/manage/health" || strings.HasPrefix(route.Path, "/swagger") {
			continue
		}
		path := pathParam.ReplaceAllString(route.Path, "{$1}")
		ops, ok := spec.Paths[path]
		require.Truef(t, ok, "path %s missing from docs", path)
		_, ok = ops[strings.ToLower(route.Method)]
		require.Truef(t, ok, "%s %s missing from docs", route.Method, path)
	}
}
