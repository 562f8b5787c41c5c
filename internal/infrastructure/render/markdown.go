package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	billingUC "bureau/internal/application/billing/usecases"
)

// TermsRenderer converts quote terms written in markdown into sanitized
// HTML. Terms come from document authors, but the result is served to
// anonymous readers, so everything goes through the sanitizer.
type TermsRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewTermsRenderer() *TermsRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	return &TermsRenderer{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

var _ billingUC.TermsRenderer = (*TermsRenderer)(nil)

func (r *TermsRenderer) RenderTerms(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
