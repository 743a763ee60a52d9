package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"minimart_back_end/internal/cart"
	"minimart_back_end/internal/handlers"
	"minimart_back_end/internal/middleware"
	"minimart_back_end/internal/models"
	"minimart_back_end/internal/routes"
)

const testSession = "sess-test"

type mockProvider struct {
	checkoutURL string
	err         error

	calls      int
	lastOrder  models.OrderRequest
	lastReturn string
	lastCancel string
}

func (m *mockProvider) CreatePaymentLink(_ context.Context, order models.OrderRequest, returnURL, cancelURL string) (string, error) {
	m.calls++
	m.lastOrder = order
	m.lastReturn = returnURL
	m.lastCancel = cancelURL
	if m.err != nil {
		return "", m.err
	}
	return m.checkoutURL, nil
}

func newRouter(provider *mockProvider) (*gin.Engine, cart.Store) {
	return newRouterWithStore(provider, cart.NewMemoryStore())
}

func newRouterWithStore(provider *mockProvider, store cart.Store) (*gin.Engine, cart.Store) {
	gin.SetMode(gin.TestMode)

	h := &handlers.Handler{
		Carts:    store,
		Provider: provider,
		BaseURL:  "http://localhost:8000",
	}

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	// Fixed session id instead of the cookie middleware.
	r.Use(func(c *gin.Context) { c.Set(middleware.CartIDKey, testSession) })
	routes.RegisterRoutes(r, h)
	return r, store
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
