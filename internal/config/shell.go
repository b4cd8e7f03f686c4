package config

import "github.com/goccy/go-yaml"

type Shell struct {
	Title         InterpolatedString `yaml:"title"`
	Description   InterpolatedString `yaml:"description"`
	Breakpoint    InterpolatedString `yaml:"breakpoint"`
	StorefrontURL InterpolatedString `yaml:"storefrontUrl"`
}

func NewDefaultShellConfig() Shell {
	return Shell{
		Title:         "${COMPTOIR_SHELL_TITLE:-Admin Dashboard}",
		Description:   "${COMPTOIR_SHELL_DESCRIPTION:-Manage your store}",
		Breakpoint:    "${COMPTOIR_SHELL_BREAKPOINT:-768px}",
		StorefrontURL: "${COMPTOIR_SHELL_STOREFRONT_URL:-/}",
	}
}

func NewShellConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":               []*yaml.Comment{yaml.HeadComment(" Admin layout configuration")},
		".title":         []*yaml.Comment{yaml.HeadComment(" Default page title")},
		".description":   []*yaml.Comment{yaml.HeadComment(" Default page description")},
		".breakpoint":    []*yaml.Comment{yaml.HeadComment(" Viewport width above which the sidebar is displayed")},
		".storefrontUrl": []*yaml.Comment{yaml.HeadComment(" Target of the sidebar's 'back to store' link")},
	}
}
