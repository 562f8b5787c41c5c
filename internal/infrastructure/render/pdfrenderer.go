package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"bureau/internal/domain/billing"
	"bureau/internal/shared/constants"
)

// PDFRenderer renders billing documents to PDF. Layout is intentionally
// plain; the engine only cares about the bytes and their checksum.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var _ billing.DocumentRenderer = (*PDFRenderer)(nil)

func (r *PDFRenderer) RenderInvoice(ctx context.Context, invoice *billing.Invoice) (*billing.RenderedDocument, error) {
	total, err := invoice.Total()
	if err != nil {
		return nil, err
	}

	number := ""
	if invoice.Number() != nil {
		number = invoice.Number().String()
	}

	content, err := r.render("INVOICE", number, invoice.Title(), invoice.Lines(), total.Decimal(), invoice.LegalMentions())
	if err != nil {
		return nil, err
	}

	return &billing.RenderedDocument{Content: content, ContentType: constants.ContentTypePDF}, nil
}

func (r *PDFRenderer) RenderQuote(ctx context.Context, quote *billing.Quote) (*billing.RenderedDocument, error) {
	total, err := quote.Total()
	if err != nil {
		return nil, err
	}

	number := ""
	if quote.Number() != nil {
		number = quote.Number().String()
	}

	content, err := r.render("QUOTE", number, quote.Title(), quote.Lines(), total.Decimal(), quote.Terms())
	if err != nil {
		return nil, err
	}

	return &billing.RenderedDocument{Content: content, ContentType: constants.ContentTypePDF}, nil
}

func (r *PDFRenderer) render(kind, number, title string, lines []*billing.Line, total, footer string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s %s", kind, number), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, "Unit price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.CellFormat(100, 7, line.Description(), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Quantity()), "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, line.UnitPrice().String(), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, total, "T", 1, "R", false, 0, "")

	if footer != "" {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(0, 5, footer, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
