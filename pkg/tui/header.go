package tui

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

// HeaderRenderer produces the collapsed header text for a card. The
// integration can supply a renderer function or a template; with neither,
// the record's own string representation is used, then a generic label.
type HeaderRenderer struct {
	render   func(models.FormRecord) string
	template *template.Template
}

// NewHeaderRenderer builds a renderer. render wins over templateText when
// both are given. templateText is a Go text/template with sprig functions
// available, evaluated against the record.
func NewHeaderRenderer(render func(models.FormRecord) string, templateText string) (*HeaderRenderer, error) {
	hr := &HeaderRenderer{render: render}
	if render == nil && templateText != "" {
		tmpl, err := template.New("card-header").Funcs(sprig.FuncMap()).Parse(templateText)
		if err != nil {
			return nil, fmt.Errorf("parsing header template: %w", err)
		}
		hr.template = tmpl
	}
	return hr, nil
}

// Header returns the header text for a record.
func (hr *HeaderRenderer) Header(record models.FormRecord) string {
	if hr.render != nil {
		return hr.render(record)
	}
	if hr.template != nil {
		var sb strings.Builder
		if err := hr.template.Execute(&sb, record); err == nil {
			return strings.TrimSpace(sb.String())
		}
		// A template failing on one record falls through to the fallbacks
		// rather than losing the card.
	}
	if record.InstanceAsStr != "" {
		return record.InstanceAsStr
	}
	return fmt.Sprintf("Form #%d", record.ID+1)
}
