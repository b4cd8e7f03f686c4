package ui

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var sharedFs embed.FS

// Template files are looked up in these directories of every filesystem.
// Each filesystem must provide both of them.
var templatePatterns = []string{
	"**/views/*.gohtml",
	"**/layouts/*.gohtml",
}

var sharedFuncs = template.FuncMap{
	"humanizeInt": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"badgeClass": func(variant string) string {
		return badgeClass(BadgeVariant(variant))
	},
}

// Templates parses the views and layouts of the given filesystems, merged
// over the shared layouts of this package.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	merged := mergefs.Merge(append([]fs.FS{sharedFs}, filesystems...)...)

	var files []string
	for _, pattern := range templatePatterns {
		matches, err := fs.Glob(merged, pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "could not search templates matching '%s'", pattern)
		}

		files = append(files, matches...)
	}

	tmpl := template.New("").Funcs(sprig.FuncMap()).Funcs(sharedFuncs)
	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err := tmpl.ParseFS(merged, files...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

// HeadTemplateData holds the page metadata shared by every view.
type HeadTemplateData struct {
	PageTitle   string
	Description string
}

// SectionTemplateData is the data of the "section" view, the placeholder
// page of a section without content yet.
type SectionTemplateData struct {
	HeadTemplateData
	Slug  string
	Label string
}
