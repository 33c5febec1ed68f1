package pages

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/profiles"
	"github.com/founder-match/founder-match-web/internal/projects"
	"github.com/founder-match/founder-match-web/internal/session"
	"github.com/founder-match/founder-match-web/internal/users"
	"github.com/founder-match/founder-match-web/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectJSON = `{"id":7,"ownerId":1,"name":"Matcher","oneLineIntro":"Find co-founders","description":"A long story","stage":"MVP","domain":"FINTECH","workStyle":"REMOTE","rewardType":"EQUITY","expectedDuration":"6 months"}`

// backend records every call it receives and answers from a route table.
type backend struct {
	mu     sync.Mutex
	calls  []string
	routes map[string]func(w http.ResponseWriter, r *http.Request)
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := r.Method + " " + r.URL.Path
	if r.URL.RawQuery != "" {
		call += "?" + r.URL.RawQuery
	}
	b.mu.Lock()
	b.calls = append(b.calls, call)
	handler, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no route"}`))
		return
	}
	handler(w, r)
}

func (b *backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func reply(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

type testApp struct {
	t       *testing.T
	router  *gin.Engine
	backend *backend
	cookie  *http.Cookie
}

func newTestApp(t *testing.T, routes map[string]func(http.ResponseWriter, *http.Request)) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	be := &backend{routes: routes}
	server := httptest.NewServer(be)
	t.Cleanup(server.Close)

	client := apiclient.New(apiclient.Options{BaseURL: server.URL, Timeout: 2 * time.Second})
	registry := session.NewRegistry(session.APIs{
		Users:    users.NewAPI(client),
		Profiles: profiles.NewAPI(client),
		Projects: projects.NewAPI(client),
	}, time.Hour)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(session.Middleware(registry, session.CookieOptions{}))
	NewHandler().Register(r)
	r.NoRoute(NoRoute)

	return &testApp{t: t, router: r, backend: be}
}

func (a *testApp) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	a.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			a.cookie = c
		}
	}
	return w
}

func loginRoutes() map[string]func(http.ResponseWriter, *http.Request) {
	return map[string]func(http.ResponseWriter, *http.Request){
		"POST /users/login": reply(http.StatusOK, `{"userId":1,"nickname":"kim"}`),
		"GET /users/1":      reply(http.StatusOK, `{"id":1,"email":"kim@x.io","nickname":"kim","contact":"010-1234"}`),
	}
}

func (a *testApp) login() {
	a.t.Helper()
	w := a.do(http.MethodPost, "/login", url.Values{"email": {"kim@x.io"}, "password": {"pw"}})
	require.Equal(a.t, http.StatusSeeOther, w.Code)
}

func TestHome(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "People looking for a co-founder")
	assert.Contains(t, body, "Fintech product designer")
	assert.Contains(t, body, fmt.Sprintf("© %d Startup Matcher", time.Now().Year()))
	assert.Contains(t, body, `href="/login"`)
	assert.Empty(t, app.backend.Calls())
}

func TestLoginScenario(t *testing.T) {
	routes := loginRoutes()
	routes["GET /users/1/profile"] = reply(http.StatusBadRequest, `{"message":"Profile not found"}`)
	app := newTestApp(t, routes)

	w := app.do(http.MethodPost, "/login", url.Values{"email": {"kim@x.io"}, "password": {"pw"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user/profile", w.Header().Get("Location"))
	assert.Equal(t, []string{"POST /users/login", "GET /users/1"}, app.backend.Calls())

	w = app.do(http.MethodGet, "/user/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "kim@x.io")
	assert.Contains(t, body, "You have not written a founder profile yet.")
	assert.Contains(t, body, "Log out")
	assert.NotContains(t, body, "placeholder error")
}

func TestLoginFailureShowsBackendMessage(t *testing.T) {
	app := newTestApp(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /users/login": reply(http.StatusUnauthorized, `{"message":"Invalid email or password"}`),
	})

	w := app.do(http.MethodPost, "/login", url.Values{"email": {"kim@x.io"}, "password": {"bad"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	assert.Contains(t, w.Body.String(), `value="kim@x.io"`)
}

func TestLoginRequiresBothFields(t *testing.T) {
	app := newTestApp(t, loginRoutes())

	w := app.do(http.MethodPost, "/login", url.Values{"email": {"kim@x.io"}, "password": {"   "}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), alertLoginRequired)
	assert.Empty(t, app.backend.Calls())
}

func TestSignup(t *testing.T) {
	app := newTestApp(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /users": reply(http.StatusCreated, `{"id":2,"email":"lee@x.io","nickname":"lee"}`),
	})

	w := app.do(http.MethodPost, "/signup", url.Values{"email": {"lee@x.io"}, "password": {"pw"}, "nickname": {""}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotContains(t, w.Body.String(), `value="pw"`)
	assert.Empty(t, app.backend.Calls())

	w = app.do(http.MethodPost, "/signup", url.Values{"email": {"lee@x.io"}, "password": {"pw"}, "nickname": {"lee"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = app.do(http.MethodGet, "/login", nil)
	assert.Contains(t, w.Body.String(), flashSignedUp)

	w = app.do(http.MethodGet, "/login", nil)
	assert.NotContains(t, w.Body.String(), flashSignedUp, "flash is shown once")
}

func TestLogout(t *testing.T) {
	app := newTestApp(t, loginRoutes())
	app.login()

	w := app.do(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = app.do(http.MethodGet, "/user/profile", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginRequiredPages(t *testing.T) {
	app := newTestApp(t, nil)

	for _, target := range []string{"/user/profile", "/user/profile/edit", "/projects/new", "/projects/7/edit"} {
		w := app.do(http.MethodGet, target, nil)
		assert.Equal(t, http.StatusFound, w.Code, target)
		assert.Equal(t, "/login", w.Header().Get("Location"), target)
	}
	w := app.do(http.MethodPost, "/projects/7/delete", nil)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, app.backend.Calls())
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodGet, "/does/not/exist", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestProjectListFilter(t *testing.T) {
	app := newTestApp(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /projects": reply(http.StatusOK, `[`+testProjectJSON+`]`),
	})

	w := app.do(http.MethodGet, "/projects?stage=MVP", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"GET /projects?stage=MVP"}, app.backend.Calls())

	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="card project-card"`))
	assert.Contains(t, body, "Matcher")
	assert.Contains(t, body, `href="/projects/7"`)
	assert.Contains(t, body, `<option value="MVP" selected>`)
	assert.NotContains(t, body, `href="/projects/new"`, "anonymous users cannot create")
}

func TestProjectListDropsUnknownFilters(t *testing.T) {
	app := newTestApp(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /projects": reply(http.StatusOK, `[]`),
	})

	w := app.do(http.MethodGet, "/projects?stage=LATE&keyword=+ai+", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"GET /projects?keyword=ai"}, app.backend.Calls())
	assert.Contains(t, w.Body.String(), "No projects match these filters.")
}

func TestProjectListError(t *testing.T) {
	app := newTestApp(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /projects": reply(http.StatusInternalServerError, `{"error":"Internal Server Error"}`),
	})

	w := app.do(http.MethodGet, "/projects", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestProjectDetail(t *testing.T) {
	routes := loginRoutes()
	routes["GET /projects/7"] = reply(http.StatusOK, testProjectJSON)
	app := newTestApp(t, routes)

	w := app.do(http.MethodGet, "/projects/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A long story")
	assert.NotContains(t, w.Body.String(), `action="/projects/7/delete"`)

	app.login()
	w = app.do(http.MethodGet, "/projects/7", nil)
	assert.Contains(t, w.Body.String(), `action="/projects/7/delete"`, "owner sees delete")
	assert.Contains(t, w.Body.String(), `href="/projects/7/edit"`)

	w = app.do(http.MethodGet, "/projects/abc", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/projects", w.Header().Get("Location"))
}

func TestProjectDetailNotFound(t *testing.T) {
	app := newTestApp(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /projects/9": reply(http.StatusNotFound, `{"message":"Project not found"}`),
	})

	w := app.do(http.MethodGet, "/projects/9", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Project not found")
}

func TestCreateProject(t *testing.T) {
	routes := loginRoutes()
	routes["POST /projects"] = reply(http.StatusCreated, testProjectJSON)
	routes["GET /projects/7"] = reply(http.StatusOK, testProjectJSON)
	app := newTestApp(t, routes)
	app.login()

	w := app.do(http.MethodGet, "/projects/new", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<option value="IDEA" selected>`)
	assert.Contains(t, body, `<option value="OTHER" selected>`)
	assert.Contains(t, body, `<option value="REMOTE" selected>`)
	assert.Contains(t, body, `<option value="NONE" selected>`)

	form := url.Values{
		"name":             {"Matcher"},
		"oneLineIntro":     {"Find co-founders"},
		"description":      {"A long story"},
		"stage":            {"MVP"},
		"domain":           {"FINTECH"},
		"workStyle":        {"REMOTE"},
		"rewardType":       {"EQUITY"},
		"expectedDuration": {"6 months"},
	}
	w = app.do(http.MethodPost, "/projects/new", form)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/projects/7", w.Header().Get("Location"))

	w = app.do(http.MethodGet, "/projects/7", nil)
	assert.Contains(t, w.Body.String(), flashProjectCreated)
}

func TestProjectFormRejectsMissingFields(t *testing.T) {
	app := newTestApp(t, loginRoutes())
	app.login()
	before := len(app.backend.Calls())

	w := app.do(http.MethodPost, "/projects/new", url.Values{
		"name":             {"Matcher"},
		"oneLineIntro":     {""},
		"description":      {"d"},
		"stage":            {"IDEA"},
		"domain":           {"OTHER"},
		"workStyle":        {"REMOTE"},
		"rewardType":       {"NONE"},
		"expectedDuration": {"1 month"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), alertRequired)
	assert.Contains(t, w.Body.String(), `value="Matcher"`)

	w = app.do(http.MethodPost, "/projects/new", url.Values{
		"name": {"Matcher"}, "oneLineIntro": {"i"}, "description": {"d"}, "expectedDuration": {"1 month"},
		"stage": {"SOMEDAY"}, "domain": {"OTHER"}, "workStyle": {"REMOTE"}, "rewardType": {"NONE"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), alertInvalidOption)

	assert.Len(t, app.backend.Calls(), before, "backend must not be called")
}

func TestEditAndDeleteProject(t *testing.T) {
	routes := loginRoutes()
	routes["GET /projects/7"] = reply(http.StatusOK, testProjectJSON)
	routes["PATCH /projects/7"] = reply(http.StatusOK, strings.Replace(testProjectJSON, "Matcher", "Renamed", 1))
	routes["DELETE /projects/7"] = reply(http.StatusNoContent, "")
	routes["GET /projects"] = reply(http.StatusOK, `[]`)
	app := newTestApp(t, routes)
	app.login()

	w := app.do(http.MethodGet, "/projects/7/edit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Matcher"`)
	assert.Contains(t, w.Body.String(), `action="/projects/7/edit"`)

	form := url.Values{
		"name": {"Renamed"}, "oneLineIntro": {"i"}, "description": {"d"}, "expectedDuration": {"1 month"},
		"stage": {"MVP"}, "domain": {"FINTECH"}, "workStyle": {"HYBRID"}, "rewardType": {"SALARY"},
	}
	w = app.do(http.MethodPost, "/projects/7/edit", form)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/projects/7", w.Header().Get("Location"))

	w = app.do(http.MethodPost, "/projects/7/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/projects", w.Header().Get("Location"))

	w = app.do(http.MethodGet, "/projects", nil)
	assert.Contains(t, w.Body.String(), flashProjectDeleted)
}

func TestEditProjectNotOwner(t *testing.T) {
	routes := loginRoutes()
	routes["GET /projects/8"] = reply(http.StatusOK, strings.Replace(testProjectJSON, `"ownerId":1`, `"ownerId":2`, 1))
	app := newTestApp(t, routes)
	app.login()

	w := app.do(http.MethodGet, "/projects/8/edit", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/projects/8", w.Header().Get("Location"))
}

func TestUpdateAndDeleteProjectNotOwner(t *testing.T) {
	routes := loginRoutes()
	routes["GET /projects/8"] = reply(http.StatusOK, strings.Replace(testProjectJSON, `"ownerId":1`, `"ownerId":2`, 1))
	routes["PATCH /projects/8"] = reply(http.StatusOK, testProjectJSON)
	routes["DELETE /projects/8"] = reply(http.StatusNoContent, "")
	app := newTestApp(t, routes)
	app.login()

	form := url.Values{
		"name": {"Taken"}, "oneLineIntro": {"i"}, "description": {"d"}, "expectedDuration": {"1 month"},
		"stage": {"MVP"}, "domain": {"FINTECH"}, "workStyle": {"HYBRID"}, "rewardType": {"SALARY"},
	}
	w := app.do(http.MethodPost, "/projects/8/edit", form)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/projects/8", w.Header().Get("Location"))

	w = app.do(http.MethodPost, "/projects/8/delete", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/projects/8", w.Header().Get("Location"))

	calls := app.backend.Calls()
	assert.NotContains(t, calls, "PATCH /projects/8")
	assert.NotContains(t, calls, "DELETE /projects/8")
}

func TestDeleteMissingProject(t *testing.T) {
	app := newTestApp(t, loginRoutes())
	app.login()

	w := app.do(http.MethodPost, "/projects/9/delete", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/projects", w.Header().Get("Location"))
	assert.NotContains(t, app.backend.Calls(), "DELETE /projects/9")
}

func TestFounderProfileCreateThenUpdate(t *testing.T) {
	var (
		mu      sync.Mutex
		created bool
	)
	routes := loginRoutes()
	routes["GET /users/1/profile"] = func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if !created {
			reply(http.StatusBadRequest, `{"message":"Profile not found"}`)(w, r)
			return
		}
		reply(http.StatusOK, `{"id":3,"userId":1,"role":"CTO","skills":["go","k8s"],"interests":["fintech"],"availability":"weekends","bio":"builder"}`)(w, r)
	}
	routes["POST /users/1/profile"] = func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		created = true
		mu.Unlock()
		reply(http.StatusCreated, `{"id":3,"userId":1,"role":"CTO","skills":["go","k8s"],"interests":["fintech"],"availability":"weekends","bio":"builder"}`)(w, r)
	}
	routes["PUT /users/1/profile"] = reply(http.StatusOK, `{"id":3,"userId":1,"role":"CEO","skills":["go"],"interests":["fintech"],"availability":"weekends","bio":"builder"}`)
	routes["DELETE /users/1/profile"] = reply(http.StatusNoContent, "")
	app := newTestApp(t, routes)
	app.login()

	w := app.do(http.MethodGet, "/user/profile/edit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Create founder profile")

	before := len(app.backend.Calls())
	w = app.do(http.MethodPost, "/user/profile/edit", url.Values{"role": {"CTO"}, "skills": {" , "}, "interests": {"fintech"}, "availability": {"weekends"}, "bio": {"builder"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Len(t, app.backend.Calls(), before)

	w = app.do(http.MethodPost, "/user/profile/edit", url.Values{"role": {"CTO"}, "skills": {"go, k8s,"}, "interests": {"fintech"}, "availability": {"weekends"}, "bio": {"builder"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, app.backend.Calls(), "POST /users/1/profile")

	w = app.do(http.MethodGet, "/user/profile/edit", nil)
	assert.Contains(t, w.Body.String(), "Edit founder profile")
	assert.Contains(t, w.Body.String(), `value="go, k8s"`)

	w = app.do(http.MethodPost, "/user/profile/edit", url.Values{"role": {"CEO"}, "skills": {"go"}, "interests": {"fintech"}, "availability": {"weekends"}, "bio": {"builder"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, app.backend.Calls(), "PUT /users/1/profile")

	w = app.do(http.MethodPost, "/user/profile/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, app.backend.Calls(), "DELETE /users/1/profile")
}

func TestSaveProfileChecksBackendForExistingProfile(t *testing.T) {
	routes := loginRoutes()
	routes["GET /users/1/profile"] = reply(http.StatusOK, `{"id":3,"userId":1,"role":"CTO","skills":["go"],"interests":["fintech"],"availability":"weekends","bio":"builder"}`)
	routes["PUT /users/1/profile"] = reply(http.StatusOK, `{"id":3,"userId":1,"role":"CEO","skills":["go"],"interests":["fintech"],"availability":"weekends","bio":"builder"}`)
	app := newTestApp(t, routes)
	app.login()

	// The form is posted without visiting the edit page first, so the
	// session's profile store is still empty.
	w := app.do(http.MethodPost, "/user/profile/edit", url.Values{"role": {"CEO"}, "skills": {"go"}, "interests": {"fintech"}, "availability": {"weekends"}, "bio": {"builder"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	calls := app.backend.Calls()
	assert.Contains(t, calls, "PUT /users/1/profile")
	assert.NotContains(t, calls, "POST /users/1/profile")
}

func TestSaveProfileShowsFetchError(t *testing.T) {
	routes := loginRoutes()
	routes["GET /users/1/profile"] = reply(http.StatusInternalServerError, `{"message":"backend down"}`)
	app := newTestApp(t, routes)
	app.login()

	w := app.do(http.MethodPost, "/user/profile/edit", url.Values{"role": {"CEO"}, "skills": {"go"}, "interests": {"fintech"}, "availability": {"weekends"}, "bio": {"builder"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "backend down")

	calls := app.backend.Calls()
	assert.NotContains(t, calls, "PUT /users/1/profile")
	assert.NotContains(t, calls, "POST /users/1/profile")
}

func TestDirectories(t *testing.T) {
	app := newTestApp(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /profiles": reply(http.StatusOK, `[{"id":3,"userId":1,"role":"CTO","skills":["go"],"interests":["fintech"],"availability":"weekends","bio":"builder"}]`),
		"GET /users":    reply(http.StatusOK, `[{"id":1,"email":"kim@x.io","nickname":"kim"}]`),
	})

	w := app.do(http.MethodGet, "/profiles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "builder")
	assert.Contains(t, w.Body.String(), `<span class="chip">go</span>`)

	w = app.do(http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "kim@x.io")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"go", "k8s"}, splitList(" go, ,k8s , "))
	assert.Empty(t, splitList(" , "))
}
