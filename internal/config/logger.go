package config

import (
	"log/slog"

	"github.com/goccy/go-yaml"
)

const (
	LoggerFormatText = "text"
	LoggerFormatJSON = "json"
)

type Logger struct {
	Level  InterpolatedInt    `yaml:"level"`
	Format InterpolatedString `yaml:"format"`
}

func NewDefaultLoggerConfig() Logger {
	return Logger{
		Level:  InterpolatedInt(slog.LevelInfo),
		Format: "${COMPTOIR_LOGGER_FORMAT:-" + LoggerFormatText + "}",
	}
}

func NewLoggerConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":        []*yaml.Comment{yaml.HeadComment(" Logger configuration")},
		".level":  []*yaml.Comment{yaml.HeadComment(" Minimum level of the records (debug: -4, info: 0, warn: 4, error: 8)")},
		".format": []*yaml.Comment{yaml.HeadComment(" Records format, 'text' or 'json'")},
	}
}
