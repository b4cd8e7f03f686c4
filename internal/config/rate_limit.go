package config

import "github.com/goccy/go-yaml"

type RateLimit struct {
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

func NewDefaultRateLimitConfig() RateLimit {
	return RateLimit{
		Rate:  10,
		Burst: 20,
	}
}

func NewRateLimitConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":       []*yaml.Comment{yaml.HeadComment(" Admin pages rate limiting, per client")},
		".rate":  []*yaml.Comment{yaml.HeadComment(" Allowed requests per second")},
		".burst": []*yaml.Comment{yaml.HeadComment(" Maximum burst size")},
	}
}
