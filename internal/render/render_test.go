package render

import (
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func testTemplatesFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`{{define "base"}}<html><title>{{.Title}}</title>{{template "flash" .}}{{block "content" .}}{{end}}</html>{{end}}`),
		},
		"layouts/admin.html": &fstest.MapFile{
			Data: []byte(`{{define "admin_nav"}}<nav>admin</nav>{{end}}`),
		},
		"partials/flash.html": &fstest.MapFile{
			Data: []byte(`{{define "flash"}}{{if .Flash}}<div class="{{.FlashType}}">{{.Flash}}</div>{{end}}{{end}}`),
		},
		"public/home.html": &fstest.MapFile{
			Data: []byte(`{{define "content"}}<h1>{{.Data}}</h1>{{end}}`),
		},
		"admin/dashboard.html": &fstest.MapFile{
			Data: []byte(`{{define "content"}}{{template "admin_nav" .}}<p>painel</p>{{end}}`),
		},
	}
}

func TestRenderPublicPage(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	err = r.Render(w, req, "public/home", TemplateData{Title: "Início", Data: "Bem-vindo"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<title>Início</title>") {
		t.Errorf("missing title, got %q", body)
	}
	if !strings.Contains(body, "<h1>Bem-vindo</h1>") {
		t.Errorf("missing content, got %q", body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderAdminPageUsesAdminLayout(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)

	if err := r.Render(w, req, "admin/dashboard", TemplateData{Title: "Painel"}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(w.Body.String(), "<nav>admin</nav>") {
		t.Errorf("admin layout not applied, got %q", w.Body.String())
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	if err := r.Render(w, req, "public/missing", TemplateData{}); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestTemplateFuncs(t *testing.T) {
	r := &Renderer{}
	funcs := r.templateFuncs()

	formatDate := funcs["formatDate"].(func(time.Time) string)
	got := formatDate(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	if got != "15/03/2026" {
		t.Errorf("formatDate = %q", got)
	}

	formatDateTime := funcs["formatDateTime"].(func(time.Time) string)
	got = formatDateTime(time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC))
	if got != "15/03/2026 09:30" {
		t.Errorf("formatDateTime = %q", got)
	}

	truncate := funcs["truncate"].(func(string, int) string)
	if got := truncate("Teresópolis", 6); got != "Teresó..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("curto", 10); got != "curto" {
		t.Errorf("truncate short = %q", got)
	}
}
