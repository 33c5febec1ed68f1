package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/users/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAPI(apiclient.New(apiclient.Options{BaseURL: server.URL + "/api"}))
}

func TestAPI_Signup(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		var in domain.CreateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, domain.CreateRequest{Email: "a@b.c", Password: "pw", Nickname: "ann", Contact: "010"}, in)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":3,"email":"a@b.c","nickname":"ann","contact":"010","createdAt":"2024-05-01T10:00:00"}`))
	})

	user, err := api.Signup(context.Background(), domain.CreateRequest{Email: "a@b.c", Password: "pw", Nickname: "ann", Contact: "010"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "ann", user.Nickname)
	assert.Equal(t, "2024-05-01 10:00", user.CreatedAt.Display())
}

func TestAPI_Login(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/login", r.URL.Path)
		w.Write([]byte(`{"userId":1,"nickname":"kim"}`))
	})

	resp, err := api.Login(context.Background(), domain.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, &domain.LoginResponse{UserID: 1, Nickname: "kim"}, resp)
}

func TestAPI_GetUserAndList(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/api/users/1":
			w.Write([]byte(`{"id":1,"email":"kim@x.io","nickname":"kim","contact":"c"}`))
		case "/api/users":
			w.Write([]byte(`[{"id":1,"nickname":"kim"},{"id":2,"nickname":"lee"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	user, err := api.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "kim@x.io", user.Email)

	list, err := api.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "lee", list[1].Nickname)
}

func TestAPI_ErrorKeepsStatus(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := api.Login(context.Background(), domain.LoginRequest{Email: "a@b.c", Password: "bad"})
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, "Invalid credentials", apiclient.MessageFrom(err, "Login failed."))
}

func TestAPI_GetUserRejectsInvalidID(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected call %s", r.URL.Path)
	})

	_, err := api.GetUser(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
