package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/admissions/internal/domain"
)

// Renderer writes one department's ranked roster.
type Renderer interface {
	Render(w io.Writer, dept domain.Department, candidates []domain.Candidate) error
}

// Format selects a Renderer. It implements pflag.Value so it can be bound
// directly as a command flag.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

var formats = []Format{FormatText, FormatHTML, FormatJSON}

func (f *Format) String() string {
	if *f == "" {
		return string(FormatText)
	}
	return string(*f)
}

func (f *Format) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, known := range formats {
		if v == string(known) {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want text, html or json)", v)
}

func (f *Format) Type() string { return "format" }

// NewRenderer returns the renderer for format using the given labels.
func NewRenderer(format Format, labels Labels) (Renderer, error) {
	switch format {
	case FormatText, "":
		return TextRenderer{Labels: labels}, nil
	case FormatHTML:
		return HTMLRenderer{Labels: labels}, nil
	case FormatJSON:
		return JSONRenderer{Labels: labels}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", string(format))
	}
}
