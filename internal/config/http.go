package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address           InterpolatedString    `yaml:"address"`
	ReadHeaderTimeout *InterpolatedDuration `yaml:"readHeaderTimeout"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address:           "${COMPTOIR_HTTP_ADDRESS:-:8080}",
		ReadHeaderTimeout: NewInterpolatedDuration(10 * time.Second),
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                   []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":           []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".readHeaderTimeout": []*yaml.Comment{yaml.HeadComment(" Maximum duration for reading request headers")},
	}
}
