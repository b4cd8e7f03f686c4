package basic

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/comptoir/internal/authn"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	users := NewStaticUsers(Credentials{Username: "alice", PasswordHash: hash})

	middleware := authn.Chain(
		authn.WithAuthenticators(NewAuthenticator(users)),
	)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authn.ContextUser(r.Context())
		if err != nil {
			t.Errorf("%+v", errors.WithStack(err))
			return
		}

		w.Write([]byte(authn.DisplayName(user)))
	}))

	type testCase struct {
		Username string
		Password string
		NoAuth   bool
		Status   int
		Body     string
	}

	testCases := []testCase{
		{Username: "alice", Password: "s3cret", Status: http.StatusOK, Body: "alice"},
		{Username: "alice", Password: "wrong", Status: http.StatusUnauthorized},
		{Username: "bob", Password: "s3cret", Status: http.StatusUnauthorized},
		{NoAuth: true, Status: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.Username+"/"+tc.Password, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if !tc.NoAuth {
				req.SetBasicAuth(tc.Username, tc.Password)
			}

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			if e, g := tc.Status, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}

			if tc.Status != http.StatusOK {
				if res.Header().Get("WWW-Authenticate") == "" {
					t.Error("WWW-Authenticate: expected header to be set")
				}
				return
			}

			if e, g := tc.Body, res.Body.String(); e != g {
				t.Errorf("res.Body: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestAuthenticatorRealm(t *testing.T) {
	users := NewStaticUsers()

	type testCase struct {
		Options   []OptionFunc
		Challenge string
	}

	testCases := []testCase{
		{Challenge: `Basic realm="admin", charset="UTF-8"`},
		{Options: []OptionFunc{WithRealm("back-office")}, Challenge: `Basic realm="back-office", charset="UTF-8"`},
	}

	for _, tc := range testCases {
		t.Run(tc.Challenge, func(t *testing.T) {
			handler := authn.Chain(
				authn.WithAuthenticators(NewAuthenticator(users, tc.Options...)),
			)(http.NotFoundHandler())

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/admin", nil))

			if e, g := tc.Challenge, res.Header().Get("WWW-Authenticate"); e != g {
				t.Errorf("WWW-Authenticate: expected '%v', got '%v'", e, g)
			}
		})
	}
}
