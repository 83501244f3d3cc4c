package registration

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersignup/internal/domain"
)

func validRequest() RegisterRequest {
	return RegisterRequest{
		FullName: FullName{FirstName: "John", LastName: "Doe"},
		Email:    "j@x.com",
		Password: "secret1",
	}
}

type captured struct {
	method string
	path   string
	header http.Header
	body   []byte
}

func newServer(t *testing.T, status int, body string, seen *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			*seen = captured{method: r.Method, path: r.URL.Path, header: r.Header.Clone(), body: raw}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRegister_Created(t *testing.T) {
	var seen captured
	srv := newServer(t, http.StatusCreated, `{"user":{"id":1},"token":"abc"}`, &seen)

	res := NewClient(srv.URL, srv.Client()).Register(context.Background(), validRequest())

	registered, ok := res.(Registered)
	require.True(t, ok, "got %T", res)
	assert.Equal(t, "abc", registered.Session.Token)
	assert.Equal(t, domain.User{"id": float64(1)}, registered.Session.User)

	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/users/register", seen.path)
	assert.Equal(t, "application/json", seen.header.Get("Content-Type"))
	assert.NotEmpty(t, seen.header.Get("X-Request-ID"))
	assert.JSONEq(t,
		`{"fullname":{"firstname":"John","lastname":"Doe"},"email":"j@x.com","password":"secret1"}`,
		string(seen.body))
}

func TestRegister_OtherSuccessStatusIsUnexpected(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"user":{"id":1},"token":"abc"}`, nil)

	res := NewClient(srv.URL, srv.Client()).Register(context.Background(), validRequest())

	assert.Equal(t, Unexpected{Status: http.StatusOK}, res)
}

func TestRegister_ValidationErrors(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest,
		`{"errors":[{"msg":"E1","path":"email"},{"msg":"E2","path":"password"}]}`, nil)

	res := NewClient(srv.URL, srv.Client()).Register(context.Background(), validRequest())

	failed, ok := res.(ValidationFailed)
	require.True(t, ok, "got %T", res)
	assert.Equal(t, http.StatusBadRequest, failed.Status)
	require.Len(t, failed.Errors, 2)
	assert.Equal(t, FieldError{Message: "E1", Field: "email"}, failed.Errors[0])
}

func TestRegister_ValidationErrorWithoutMessage(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest, `{"errors":[{"param":"email","msg":42}]}`, nil)

	res := NewClient(srv.URL, srv.Client()).Register(context.Background(), validRequest())

	failed, ok := res.(ValidationFailed)
	require.True(t, ok, "got %T", res)
	assert.Equal(t, FieldError{Field: "email"}, failed.Errors[0])
}

func TestRegister_EmptyErrorsFallsBackToMessage(t *testing.T) {
	srv := newServer(t, http.StatusConflict, `{"errors":[],"message":"User already exist"}`, nil)

	res := NewClient(srv.URL, srv.Client()).Register(context.Background(), validRequest())

	assert.Equal(t, Rejected{Status: http.StatusConflict, Message: "User already exist"}, res)
}

func TestRegister_NonStringMessageIsIgnored(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{"message":{"code":1}}`, nil)

	res := NewClient(srv.URL, srv.Client()).Register(context.Background(), validRequest())

	failure, ok := res.(TransportFailure)
	require.True(t, ok, "got %T", res)
	assert.EqualError(t, failure.Err, "Request failed with status code 500")

	var statusErr *StatusError
	assert.True(t, errors.As(failure.Err, &statusErr))
}

func TestRegister_NonJSONErrorBody(t *testing.T) {
	srv := newServer(t, http.StatusBadGateway, `<html>bad gateway</html>`, nil)

	res := NewClient(srv.URL, srv.Client()).Register(context.Background(), validRequest())

	failure, ok := res.(TransportFailure)
	require.True(t, ok, "got %T", res)
	assert.EqualError(t, failure.Err, "Request failed with status code 502")
}

func TestRegister_MalformedCreatedBody(t *testing.T) {
	srv := newServer(t, http.StatusCreated, `not json`, nil)

	res := NewClient(srv.URL, srv.Client()).Register(context.Background(), validRequest())

	failure, ok := res.(TransportFailure)
	require.True(t, ok, "got %T", res)
	assert.ErrorContains(t, failure.Err, "decode register response")
}

func TestRegister_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := NewClient(url, nil).Register(context.Background(), validRequest())

	failure, ok := res.(TransportFailure)
	require.True(t, ok, "got %T", res)
	assert.Error(t, failure.Err)
}

func TestRegister_ContextCancelled(t *testing.T) {
	srv := newServer(t, http.StatusCreated, `{"user":{},"token":"t"}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewClient(srv.URL, srv.Client()).Register(ctx, validRequest())

	failure, ok := res.(TransportFailure)
	require.True(t, ok, "got %T", res)
	assert.ErrorIs(t, failure.Err, context.Canceled)
}
