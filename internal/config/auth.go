package config

import "github.com/goccy/go-yaml"

type Auth struct {
	Users []User `yaml:"users"`
}

type User struct {
	Username     InterpolatedString `yaml:"username"`
	PasswordHash InterpolatedString `yaml:"passwordHash"`
}

func NewDefaultAuthConfig() Auth {
	return Auth{
		Users: []User{
			{
				Username:     "${COMPTOIR_ADMIN_USERNAME:-admin}",
				PasswordHash: "${COMPTOIR_ADMIN_PASSWORD_HASH:-}",
			},
		},
	}
}

func NewAuthConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Auth configuration")},
		".users":                 []*yaml.Comment{yaml.HeadComment(" Users allowed to access the admin pages", " Without any usable user, the admin pages are not protected")},
		".users[0].username":     []*yaml.Comment{yaml.HeadComment(" User's login")},
		".users[0].passwordHash": []*yaml.Comment{yaml.HeadComment(" User's bcrypt password hash, base64 encoded", " Users with an empty hash are ignored")},
	}
}
