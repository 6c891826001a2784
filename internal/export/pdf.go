// ============================================================================
// trinom - Études de fonctions trinômes du second degré
// ============================================================================
//
// Package:     export
// Description: PDF and XLSX documents for a study, and batch studies read
//              from a workbook
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package export

import (
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	qerr "github.com/msto63/trinom/pkg/core/error"
	"github.com/msto63/trinom/pkg/core/version"

	"github.com/msto63/trinom/internal/plot"
	"github.com/msto63/trinom/internal/report"
	"github.com/msto63/trinom/internal/trinomial"
)

// symbolGlyphs maps runes missing from the core text fonts to their code in
// the Symbol core font.
var symbolGlyphs = map[rune]string{
	'α': "a",
	'β': "b",
	'Δ': "D",
	'∞': "\xa5",
	'≠': "\xb9",
	'↦': "\xae",
}

// textSubstitutes are written with the text font instead.
var textSubstitutes = strings.NewReplacer("ℝ", "IR")

const (
	lineHeight = 5.5
	tableSize  = 9.0
	textSize   = 10.5
)

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// WritePDF writes the narration of r followed by the graph of fig.
func WritePDF(w io.Writer, r *report.Report, fig *plot.Figure, tr report.Translator) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fig.Title, true)
	pdf.SetCreator(version.Get().Short(), true)
	pdf.SetAuthor("trinom", true)
	pdf.SetMargins(18, 18, 18)

	p := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.AddPage()
	p.write(16, "Helvetica", "B", 8, r.Header)
	pdf.Ln(10)
	p.write(9, "Helvetica", "I", 5, tr.T("export.generated", map[string]interface{}{
		"Version": version.Get().Short(),
		"Date":    time.Now().Format("2006-01-02 15:04"),
	}))
	pdf.Ln(8)

	for _, s := range r.Sections {
		pdf.Ln(3)
		p.write(12, "Helvetica", "B", 7, s.Title)
		pdf.Ln(8)
		for _, line := range s.Lines {
			p.write(textSize, "Helvetica", "", lineHeight, line)
			pdf.Ln(lineHeight + 0.5)
		}
		if s.Table != "" {
			pdf.Ln(1)
			for _, line := range strings.Split(s.Table, "\n") {
				p.mono(line)
			}
		}
	}

	pdf.AddPage()
	p.graph(fig)

	if err := pdf.Output(w); err != nil {
		return qerr.Wrap(err, "failed to write PDF").
			WithCode(qerr.CodeExportFailed).
			WithOperation("export.WritePDF")
	}
	return nil
}

// write flows text at the current position, switching to the Symbol font for
// the runes the text font cannot show.
func (p *pdfWriter) write(size float64, family, style string, h float64, text string) {
	text = textSubstitutes.Replace(text)

	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		p.pdf.SetFont(family, style, size)
		p.pdf.Write(h, p.tr(run.String()))
		run.Reset()
	}
	for _, r := range text {
		if glyph, ok := symbolGlyphs[r]; ok {
			flush()
			p.pdf.SetFont("Symbol", "", size)
			p.pdf.Write(h, glyph)
			continue
		}
		run.WriteRune(r)
	}
	flush()
}

// mono writes one line of a table with one fixed-width cell per rune so that
// the columns stay aligned whatever the font of each glyph.
func (p *pdfWriter) mono(line string) {
	pdf := p.pdf
	pdf.SetFont("Courier", "", tableSize)
	cw := pdf.GetStringWidth("0")
	h := tableSize * 0.45

	for _, r := range line {
		x, y := pdf.GetXY()
		text := string(r)
		switch r {
		case '↘':
			pdf.Line(x+0.2, y+0.6, x+cw-0.2, y+h-0.6)
			text = ""
		case '↗':
			pdf.Line(x+0.2, y+h-0.6, x+cw-0.2, y+0.6)
			text = ""
		default:
			if glyph, ok := symbolGlyphs[r]; ok {
				pdf.SetFont("Symbol", "", tableSize)
				pdf.CellFormat(cw, h, glyph, "", 0, "C", false, 0, "")
				pdf.SetFont("Courier", "", tableSize)
				continue
			}
			text = p.tr(text)
		}
		pdf.CellFormat(cw, h, text, "", 0, "C", false, 0, "")
	}
	pdf.Ln(h)
}

// graph draws the figure with its frame, axes and limits in the printable
// area of the page.
func (p *pdfWriter) graph(fig *plot.Figure) {
	pdf := p.pdf
	left, top, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	w := pageW - left - right
	h := w * 0.75
	x0, y0 := left, top+14

	p.write(14, "Helvetica", "B", 8, fig.Title)
	pdf.Ln(12)

	view := fig.Viewport(w, h)
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(128, 128, 128)
	pdf.Rect(x0, y0, w, h, "D")

	ox, oy, yAxis, xAxis := view.Origin()
	if xAxis {
		pdf.Line(x0, y0+oy, x0+w, y0+oy)
	}
	if yAxis {
		pdf.Line(x0+ox, y0, x0+ox, y0+h)
	}

	pdf.SetLineWidth(0.4)
	pdf.SetDrawColor(31, 119, 180)
	for _, s := range fig.Segments(view, 2000) {
		pdf.Line(x0+s[0], y0+s[1], x0+s[2], y0+s[3])
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(64, 64, 64)
	label := trinomial.FormatNumber
	xmax := label(view.XMax)
	pdf.Text(x0, y0+h+4, label(view.XMin))
	pdf.Text(x0+w-pdf.GetStringWidth(xmax), y0+h+4, xmax)
	pdf.Text(x0+1, y0+3, label(view.YMax))
	pdf.Text(x0+1, y0+h-1, label(view.YMin))
}
