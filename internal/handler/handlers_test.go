package handler_test

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tereverde/tereverde-go/internal/auth"
	"github.com/tereverde/tereverde-go/internal/handler"
	"github.com/tereverde/tereverde-go/internal/middleware"
	"github.com/tereverde/tereverde-go/internal/render"
	"github.com/tereverde/tereverde-go/internal/session"
	"github.com/tereverde/tereverde-go/internal/store"
	"github.com/tereverde/tereverde-go/web"
)

const (
	testAdminName     = "Ana"
	testAdminEmail    = "ana@teste.com"
	testAdminPassword = "senha-super-secreta"
)

type testApp struct {
	server  *httptest.Server
	client  *http.Client
	queries *store.Queries
}

// newTestApp builds the full application router against a temporary database
// and serves it over a test server with a cookie-aware client.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))

	sessionManager := session.New(db, true)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
	})
	require.NoError(t, err)

	publicHandler := handler.NewPublicHandler(db, renderer)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager)
	adminHandler := handler.NewAdminHandler(db, renderer)
	parksHandler := handler.NewParksHandler(db, renderer)
	trailsHandler := handler.NewTrailsHandler(db, renderer)

	r := chi.NewRouter()
	r.Use(sessionManager.LoadAndSave)

	r.Get(handler.RouteRoot, publicHandler.Home)
	r.Get(handler.RouteParks, publicHandler.ParksList)
	r.Get(handler.RouteParksID, publicHandler.ParkDetail)
	r.Get(handler.RouteTrails, publicHandler.TrailsList)
	r.Get(handler.RouteEvents, publicHandler.EventsList)
	r.Get(handler.RouteAbout, publicHandler.About)

	r.Route("/admin", func(r chi.Router) {
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.Post(handler.RouteLogin, authHandler.Login)
		r.Post(handler.RouteLogout, authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin(sessionManager))
			r.Use(middleware.LoadAdmin(sessionManager, db))

			r.Get(handler.RouteRoot, adminHandler.Dashboard)
			r.Get(handler.RouteParks, parksHandler.List)
			r.Get(handler.RouteParks+handler.RouteSuffixNew, parksHandler.NewForm)
			r.Post(handler.RouteParks, parksHandler.Create)
			r.Get(handler.RouteParksID+handler.RouteSuffixEdit, parksHandler.EditForm)
			r.Post(handler.RouteParksID, parksHandler.Update)
			r.Post(handler.RouteParksID+handler.RouteSuffixDelete, parksHandler.Delete)
			r.Post(handler.RouteTrailsID+handler.RouteSuffixToggle, trailsHandler.Toggle)
		})
	})

	r.NotFound(publicHandler.NotFound)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testApp{
		server:  server,
		client:  &http.Client{Jar: jar},
		queries: store.New(db),
	}
}

// get performs a GET request, following redirects, and returns the final
// response status and body.
func (a *testApp) get(t *testing.T, path string) (int, string) {
	t.Helper()

	resp, err := a.client.Get(a.server.URL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// postForm posts a form without following the redirect and returns the
// response status and Location header.
func (a *testApp) postForm(t *testing.T, path string, values url.Values) (int, string) {
	t.Helper()

	noRedirect := &http.Client{
		Jar: a.client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := noRedirect.PostForm(a.server.URL+path, values)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, resp.Header.Get("Location")
}

// login creates an admin user and opens a session for it.
func (a *testApp) login(t *testing.T) {
	t.Helper()

	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)
	_, err = a.queries.CreateAdminUser(context.Background(), store.CreateAdminUserParams{
		Name:         testAdminName,
		Email:        testAdminEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	status, location := a.postForm(t, "/admin/login", url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	})
	require.Equal(t, http.StatusSeeOther, status)
	require.Equal(t, "/admin", location)
}

func (a *testApp) createPark(t *testing.T, name string) store.Park {
	t.Helper()

	park, err := a.queries.CreatePark(context.Background(), store.CreateParkParams{
		Name:      name,
		Type:      "Estadual",
		Location:  "Teresópolis, RJ",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return park
}

func TestHomeEmptyDatabase(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Terê Verde Online")
}

func TestParkDetailUnknownID(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.get(t, "/parks/999")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUnknownRouteRenders404Page(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/nao-existe")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Página não encontrada")
}

func TestPublicTrailsDifficultyFilter(t *testing.T) {
	app := newTestApp(t)
	park := app.createPark(t, "Parque dos Testes")

	ctx := context.Background()
	_, err := app.queries.CreateTrail(ctx, store.CreateTrailParams{
		ParkID: park.ID, Name: "Trilha Azul", Difficulty: "fácil", IsOpen: true,
	})
	require.NoError(t, err)
	_, err = app.queries.CreateTrail(ctx, store.CreateTrailParams{
		ParkID: park.ID, Name: "Trilha Vermelha", Difficulty: "difícil", IsOpen: true,
	})
	require.NoError(t, err)
	_, err = app.queries.CreateTrail(ctx, store.CreateTrailParams{
		ParkID: park.ID, Name: "Trilha Interditada", Difficulty: "fácil", IsOpen: false,
	})
	require.NoError(t, err)

	// Accented and plain ASCII spellings select the same difficulty.
	for _, query := range []string{"fácil", "facil", "FACIL"} {
		status, body := app.get(t, "/trails?difficulty="+url.QueryEscape(query))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Trilha Azul", "query %q", query)
		assert.NotContains(t, body, "Trilha Vermelha", "query %q", query)
	}

	// An unrecognized difficulty is ignored rather than rejected.
	status, body := app.get(t, "/trails?difficulty=impossivel")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Trilha Azul")
	assert.Contains(t, body, "Trilha Vermelha")

	// Closed trails never appear on the public listing.
	assert.NotContains(t, body, "Trilha Interditada")
}

func TestParkDetailShowsCurrentAvailability(t *testing.T) {
	app := newTestApp(t)
	park := app.createPark(t, "Parque com Horário")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	_, err := app.queries.CreateAvailabilityPeriod(context.Background(), store.CreateAvailabilityPeriodParams{
		ParkID:     park.ID,
		SeasonName: "Temporada de Teste",
		OpenTime:   "08:00",
		CloseTime:  "17:00",
		StartDate:  today.AddDate(0, 0, -10),
		EndDate:    today.AddDate(0, 0, 10),
	})
	require.NoError(t, err)

	status, body := app.get(t, "/parks/"+strconv.FormatInt(park.ID, 10))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Temporada de Teste")
	assert.Contains(t, body, "08:00")
}

func TestRequireLoginRedirect(t *testing.T) {
	app := newTestApp(t)

	noRedirect := &http.Client{
		Jar: app.client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := noRedirect.Get(app.server.URL + "/admin/parks")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)
	_, err = app.queries.CreateAdminUser(context.Background(), store.CreateAdminUserParams{
		Name:         testAdminName,
		Email:        testAdminEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	status, location := app.postForm(t, "/admin/login", url.Values{
		"email":    {testAdminEmail},
		"password": {"errada"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/admin/login", location)

	// The error flash surfaces on the login page.
	_, body := app.get(t, "/admin/login")
	assert.Contains(t, body, "Email ou senha incorretos.")
}

func TestLoginAndLogout(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	status, body := app.get(t, "/admin")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Bem-vindo, "+testAdminName+"!")

	status, location := app.postForm(t, "/admin/logout", nil)
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/admin/login", location)

	// The session is gone, the back office redirects to login again.
	_, body = app.get(t, "/admin")
	assert.Contains(t, body, "Faça login para acessar a área administrativa.")
}

func TestAdminCreatePark(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	status, location := app.postForm(t, "/admin/parks", url.Values{
		"name":     {"Parque Novo"},
		"type":     {"Municipal"},
		"location": {"Teresópolis, RJ"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/admin/parks", location)

	park, err := app.queries.GetParkByName(context.Background(), "Parque Novo")
	require.NoError(t, err)
	assert.Equal(t, "Municipal", park.Type)

	_, body := app.get(t, "/admin/parks")
	assert.Contains(t, body, "Parque Novo")
}

func TestAdminCreateParkValidation(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	noRedirect := &http.Client{
		Jar: app.client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := noRedirect.PostForm(app.server.URL+"/admin/parks", url.Values{
		"name": {""},
		"type": {"Inexistente"},
	})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// Validation failures re-render the form with the field errors.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Nome é obrigatório.")
	assert.Contains(t, string(body), "Tipo de parque inválido.")
}

func TestAdminToggleTrail(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	park := app.createPark(t, "Parque das Trilhas")

	ctx := context.Background()
	trail, err := app.queries.CreateTrail(ctx, store.CreateTrailParams{
		ParkID: park.ID, Name: "Trilha do Teste", Difficulty: "moderada", IsOpen: true,
	})
	require.NoError(t, err)

	status, location := app.postForm(t, "/admin/trails/"+strconv.FormatInt(trail.ID, 10)+"/toggle", nil)
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/admin/trails", location)

	updated, err := app.queries.GetTrailByID(ctx, trail.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsOpen)
}
