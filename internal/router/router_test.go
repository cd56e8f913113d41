package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct {
	called []string
}

func (s *stubHandler) hit(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		s.called = append(s.called, name)
		c.Status(http.StatusNoContent)
	}
}

func (s *stubHandler) ListEvents(c *ginext.Context)        { s.hit("ListEvents")(c) }
func (s *stubHandler) GetEvent(c *ginext.Context)          { s.hit("GetEvent")(c) }
func (s *stubHandler) ListRegistrations(c *ginext.Context) { s.hit("ListRegistrations")(c) }
func (s *stubHandler) GetStats(c *ginext.Context)          { s.hit("GetStats")(c) }
func (s *stubHandler) DownloadExport(c *ginext.Context)    { s.hit("DownloadExport")(c) }
func (s *stubHandler) CheckExport(c *ginext.Context)       { s.hit("CheckExport")(c) }
func (s *stubHandler) ReconcileExport(c *ginext.Context)   { s.hit("ReconcileExport")(c) }
func (s *stubHandler) RebuildExport(c *ginext.Context)     { s.hit("RebuildExport")(c) }
func (s *stubHandler) MarkExportStatus(c *ginext.Context)  { s.hit("MarkExportStatus")(c) }

func TestRouter_HealthIsOpen(t *testing.T) {
	r := InitRouter("test", &stubHandler{}, middleware.AdminToken("secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_APIRequiresToken(t *testing.T) {
	h := &stubHandler{}
	r := InitRouter("test", h, middleware.AdminToken("secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, h.called)
}

func TestRouter_Routes(t *testing.T) {
	h := &stubHandler{}
	r := InitRouter("test", h, middleware.AdminToken("secret"))

	routes := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/api/events", "ListEvents"},
		{http.MethodGet, "/api/events/3", "GetEvent"},
		{http.MethodGet, "/api/events/3/registrations", "ListRegistrations"},
		{http.MethodGet, "/api/stats", "GetStats"},
		{http.MethodGet, "/api/export", "DownloadExport"},
		{http.MethodGet, "/api/export/check", "CheckExport"},
		{http.MethodPost, "/api/export/reconcile", "ReconcileExport"},
		{http.MethodPost, "/api/export/rebuild", "RebuildExport"},
		{http.MethodPatch, "/api/export/7", "MarkExportStatus"},
	}
	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, nil)
		req.Header.Set(middleware.AdminTokenHeader, "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code, rt.path)
	}

	want := make([]string, 0, len(routes))
	for _, rt := range routes {
		want = append(want, rt.want)
	}
	assert.Equal(t, want, h.called)
}
