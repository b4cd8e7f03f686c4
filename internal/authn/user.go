package authn

type User interface {
	UserSubject() string
	UserProvider() string
}

// DisplayName returns the name to display for user.
func DisplayName(user User) string {
	if named, ok := user.(interface{ DisplayName() string }); ok {
		if name := named.DisplayName(); name != "" {
			return name
		}
	}

	return user.UserSubject()
}
