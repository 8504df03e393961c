// Package rendering turns document models into PDF files.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"vehicle_acquisition/internal/domain/documents"
	"vehicle_acquisition/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	ContentTypePDF = "application/pdf"

	pageMargin  = 18.0
	lineHeight  = 6.0
	labelWidth  = 62.0
	fontFamily  = "Helvetica"
	checkedBox  = "[X]"
	uncheckBox  = "[ ]"
	optionSpace = "    "
)

// PDFRenderer lays out documents on US Letter pages with the core Helvetica
// font. Sections flagged NewPage start on a fresh page.
type PDFRenderer struct {
	footer string
}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

// NewPDFRenderer returns a renderer. footer is printed at the bottom of every
// page next to the page number, usually the buying company name.
func NewPDFRenderer(footer string) *PDFRenderer {
	return &PDFRenderer{footer: footer}
}

func (r *PDFRenderer) ContentType() string { return ContentTypePDF }

// Render returns the complete PDF bytes.
func (r *PDFRenderer) Render(ctx context.Context, doc documents.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pdf := r.build(doc)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("layout %s: %w", doc.Kind, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("output %s: %w", doc.Kind, err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) build(doc documents.Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		left := doc.CaseID
		if r.footer != "" {
			left = r.footer + "  |  Case " + doc.CaseID
		}
		w, _ := pdf.GetPageSize()
		half := (w - 2*pageMargin) / 2
		pdf.CellFormat(half, 5, tr(left), "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	pdf.CellFormat(0, 5, tr("Generated "+doc.GeneratedAt.UTC().Format("January 2, 2006 15:04 MST")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	blank := true
	for _, s := range doc.Sections {
		if s.NewPage && !blank {
			pdf.AddPage()
		}
		writeSection(pdf, tr, s)
		blank = false
	}
	return pdf
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, s documents.Section) {
	pdf.SetFont(fontFamily, "B", 13)
	pdf.SetFillColor(235, 238, 242)
	pdf.CellFormat(0, 8, tr(s.Title), "", 1, "L", true, 0, "")
	pdf.Ln(1)

	for _, b := range s.Blocks {
		switch b.Type {
		case documents.BlockKeyValue:
			pdf.SetFont(fontFamily, "B", 10)
			pdf.CellFormat(labelWidth, lineHeight, tr(b.Label), "", 0, "L", false, 0, "")
			pdf.SetFont(fontFamily, "", 10)
			pdf.MultiCell(0, lineHeight, tr(b.Value), "", "L", false)
		case documents.BlockParagraph:
			pdf.SetFont(fontFamily, "", 10)
			pdf.MultiCell(0, lineHeight, tr(b.Text), "", "L", false)
			pdf.Ln(1)
		case documents.BlockCheckbox:
			if b.Label != "" {
				pdf.SetFont(fontFamily, "B", 10)
				pdf.CellFormat(0, lineHeight, tr(b.Label), "", 1, "L", false, 0, "")
			}
			pdf.SetFont(fontFamily, "", 10)
			pdf.MultiCell(0, lineHeight, tr(checkboxLine(b.Options)), "", "L", false)
		}
	}
	pdf.Ln(4)
}

func checkboxLine(options []documents.CheckboxOption) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		box := uncheckBox
		if o.Checked {
			box = checkedBox
		}
		p := box + " " + o.Label
		if o.Detail != "" {
			p += ": " + o.Detail
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, optionSpace)
}
