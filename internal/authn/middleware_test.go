package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

type testUser struct {
	subject string
}

func (u testUser) UserSubject() string  { return u.subject }
func (u testUser) UserProvider() string { return "test" }

func acceptAs(subject string) Authenticator {
	return AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return testUser{subject}, nil
	})
}

var skip = AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
	return nil, nil
})

var cancel = AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
	w.WriteHeader(http.StatusTeapot)
	return nil, errors.WithStack(ErrCancel)
})

func TestChain(t *testing.T) {
	type testCase struct {
		Name           string
		Authenticators []Authenticator
		Options        []MiddlewareOptionFunc
		Status         int
		Subject        string
	}

	testCases := []testCase{
		{Name: "first user wins", Authenticators: []Authenticator{skip, acceptAs("alice"), acceptAs("bob")}, Status: http.StatusOK, Subject: "alice"},
		{Name: "nobody", Authenticators: []Authenticator{skip}, Status: http.StatusUnauthorized},
		{Name: "no authenticator", Status: http.StatusUnauthorized},
		{Name: "cancel", Authenticators: []Authenticator{cancel, acceptAs("alice")}, Status: http.StatusTeapot},
		{
			Name:           "custom unauthorized",
			Authenticators: []Authenticator{skip},
			Options: []MiddlewareOptionFunc{WithUnauthorizedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			}))},
			Status: http.StatusForbidden,
		},
		{
			Name:           "rejected after authentication",
			Authenticators: []Authenticator{acceptAs("mallory")},
			Options: []MiddlewareOptionFunc{WithOnAuthenticated(func(r *http.Request, user User) (*http.Request, error) {
				return nil, errors.Errorf("user '%s' is disabled", user.UserSubject())
			})},
			Status: http.StatusInternalServerError,
		},
		{
			Name:           "custom error",
			Authenticators: []Authenticator{acceptAs("mallory")},
			Options: []MiddlewareOptionFunc{
				WithOnAuthenticated(func(r *http.Request, user User) (*http.Request, error) {
					return nil, errors.New("disabled")
				}),
				WithOnError(func(w http.ResponseWriter, r *http.Request, err error) {
					w.WriteHeader(http.StatusServiceUnavailable)
				}),
			},
			Status: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			opts := append([]MiddlewareOptionFunc{WithAuthenticators(tc.Authenticators...)}, tc.Options...)

			var subject string
			handler := Chain(opts...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, err := ContextUser(r.Context())
				if err != nil {
					t.Errorf("%+v", errors.WithStack(err))
					return
				}

				subject = user.UserSubject()
			}))

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/admin", nil))

			if e, g := tc.Status, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.Subject, subject; e != g {
				t.Errorf("subject: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestContextUserMissing(t *testing.T) {
	if _, err := ContextUser(t.Context()); !errors.Is(err, ErrNoUser) {
		t.Errorf("ContextUser(): expected ErrNoUser, got '%v'", err)
	}
}
