package admin

import (
	"embed"
	"html/template"

	"github.com/bornholm/comptoir/internal/nav"
	"github.com/bornholm/comptoir/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// DashboardTemplateData contains the data needed to render the admin dashboard
type DashboardTemplateData struct {
	ui.HeadTemplateData
	Username     string
	Sections     []nav.LinkDescriptor
	SectionCount int
}
