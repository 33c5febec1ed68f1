package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestRegistry(idle time.Duration) (*Registry, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	r := NewRegistry(APIs{}, idle)
	r.now = clock.now
	return r, clock
}

func TestRegistry_CreateAndGet(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	s := r.Create()
	require.NotEmpty(t, s.ID)
	assert.NotNil(t, s.Auth)
	assert.NotNil(t, s.Profiles)
	assert.NotNil(t, s.Projects)

	got, ok := r.Get(s.ID)
	assert.True(t, ok)
	assert.Same(t, s, got)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_ExpiresIdleSessions(t *testing.T) {
	r, clock := newTestRegistry(time.Minute)
	idle := r.Create()
	clock.t = clock.t.Add(30 * time.Second)
	active := r.Create()

	clock.t = clock.t.Add(45 * time.Second)
	_, ok := r.Get(active.ID)
	assert.True(t, ok)

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	_, ok = r.Get(idle.ID)
	assert.False(t, ok)
}

func TestRegistry_GetDropsExpiredSession(t *testing.T) {
	r, clock := newTestRegistry(time.Minute)
	s := r.Create()

	clock.t = clock.t.Add(2 * time.Minute)
	_, ok := r.Get(s.ID)
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestNewRegistry_DefaultTimeout(t *testing.T) {
	r := NewRegistry(APIs{}, 0)
	assert.Equal(t, DefaultIdleTimeout, r.idleTimeout)
}

func TestSession_Flash(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	s := r.Create()

	_, ok := s.PopFlash()
	assert.False(t, ok)

	s.SetFlash(FlashSuccess, "first")
	s.SetFlash(FlashSuccess, "Project created.")
	f, ok := s.PopFlash()
	assert.True(t, ok)
	assert.Equal(t, Flash{Kind: FlashSuccess, Message: "Project created."}, f)

	_, ok = s.PopFlash()
	assert.False(t, ok, "flash is shown once")
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, _ := newTestRegistry(time.Minute)

	router := gin.New()
	router.Use(Middleware(r, CookieOptions{}))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, FromContext(c).ID)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	id := cookies[0].Value
	assert.Equal(t, id, w.Body.String())

	// The same cookie keeps the same session.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, 1, r.Len())

	// An unknown cookie gets a new session.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "stale", w.Body.String())
	assert.Equal(t, 2, r.Len())
}

func TestFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, FromContext(c))
}

func TestStartSweeper(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	_, err := StartSweeper(r, "not a spec")
	assert.Error(t, err)

	sweeper, err := StartSweeper(r, "")
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sweeper.Stop(ctx)
}
