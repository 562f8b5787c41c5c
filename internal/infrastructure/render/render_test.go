package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bureau/internal/domain/billing"
	vo "bureau/internal/domain/billing/valueobjects"
)

func testInvoice(t *testing.T) *billing.Invoice {
	t.Helper()
	line, err := billing.NewLine("design sprint", 2, vo.NewMoney(120000, "EUR"))
	require.NoError(t, err)
	invoice, err := billing.NewInvoice(5, "website redesign", "payable within 30 days", []*billing.Line{line})
	require.NoError(t, err)
	return invoice
}

func TestPDFRenderer_RenderInvoice(t *testing.T) {
	renderer := NewPDFRenderer()

	rendered, err := renderer.RenderInvoice(context.Background(), testInvoice(t))
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", rendered.ContentType)
	assert.NotEmpty(t, rendered.Content)
	assert.True(t, bytes.HasPrefix(rendered.Content, []byte("%PDF-")), "output must be a PDF document")
}

func TestTermsRenderer_RenderTerms(t *testing.T) {
	renderer := NewTermsRenderer()

	html, err := renderer.RenderTerms("Half up front, **half on delivery**.")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>half on delivery</strong>")
}

func TestTermsRenderer_StripsScript(t *testing.T) {
	renderer := NewTermsRenderer()

	html, err := renderer.RenderTerms("hello <script>alert(1)</script> world")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "hello")
}
