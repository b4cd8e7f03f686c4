package basic

import (
	"context"

	"github.com/bornholm/comptoir/internal/authn"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const Provider = "basic"

type User struct {
	Username string
}

// UserProvider implements authn.User.
func (u *User) UserProvider() string {
	return Provider
}

// UserSubject implements authn.User.
func (u *User) UserSubject() string {
	return u.Username
}

func (u *User) DisplayName() string {
	return u.Username
}

var _ authn.User = &User{}

type Credentials struct {
	Username     string
	PasswordHash []byte
}

// StaticUsers authenticates users against a fixed set of bcrypt hashed
// credentials.
type StaticUsers struct {
	credentials map[string][]byte
}

// Authenticate implements UserProvider.
func (s *StaticUsers) Authenticate(ctx context.Context, username, password string) (authn.User, error) {
	hash, exists := s.credentials[username]
	if !exists {
		// Keep the response time independent of the username existence
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, nil
	}

	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &User{Username: username}, nil
}

func (s *StaticUsers) Len() int {
	return len(s.credentials)
}

var _ UserProvider = &StaticUsers{}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("comptoir"), bcrypt.MinCost)

func NewStaticUsers(credentials ...Credentials) *StaticUsers {
	users := &StaticUsers{
		credentials: make(map[string][]byte, len(credentials)),
	}

	for _, c := range credentials {
		users.credentials[c.Username] = c.PasswordHash
	}

	return users
}
