package export

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/timeline"
	"github.com/go-pdf/fpdf"
)

// Report is the content of a PDF summary.
type Report struct {
	Title      string
	Source     string
	Today      time.Time
	Anchor     time.Time
	AnchorMode domain.AnchorMode
	Warnings   []string
	Summary    timeline.Summary
	Table      Table
}

const (
	pageWidth = 277.0 // A4 landscape minus 10mm margins
	rowHeight = 6.0
)

// WritePDF renders the report as an A4 landscape document.
func WritePDF(w io.Writer, r Report) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	title := r.Title
	if title == "" {
		title = "Milestone Timeline"
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	if r.Source != "" {
		pdf.Cell(0, 6, tr("Source: "+r.Source))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Month 0: %s (%s)    Today: %s",
		r.Anchor.Format(domain.DateLayout), r.AnchorMode, r.Today.Format(domain.DateLayout)))
	pdf.Ln(6)
	for _, warn := range r.Warnings {
		pdf.SetTextColor(180, 90, 0)
		pdf.MultiCell(0, 6, tr("Warning: "+warn), "", "", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(2)

	s := r.Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Milestones: %d    With actual: %d    On-time: %.1f%%    Avg delay: %.1f days    Avg early: %.1f days",
		s.Total, s.WithActual, s.OnTimePct, s.AvgDelayDays, s.AvgEarlyDays))
	pdf.Ln(6)
	for _, h := range s.Histogram {
		pdf.Cell(0, 6, tr(fmt.Sprintf("  %s: %d", h.Status, h.Count)))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	writePDFTable(pdf, tr, r.Table)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func writePDFTable(pdf *fpdf.Fpdf, tr func(string) string, t Table) {
	if len(t.Headers) == 0 {
		return
	}
	widths := columnWidths(t.Headers)

	header := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range t.Headers {
			pdf.CellFormat(widths[i], rowHeight, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}

	header()
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, rec := range t.Records {
		if pdf.GetY()+rowHeight > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		for i, v := range rec {
			pdf.CellFormat(widths[i], rowHeight, fitText(pdf, tr(v), widths[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// columnWidths gives the name column the room left after fixed-width columns.
func columnWidths(headers []string) []float64 {
	widths := make([]float64, len(headers))
	used := 0.0
	for i, h := range headers {
		switch h {
		case ColMilestone:
			continue
		case ColGroup:
			widths[i] = 30
		case ColStatus:
			widths[i] = 28
		case ColContractualMonthIndex, ColActualMonthIndex:
			widths[i] = 30
		default:
			widths[i] = 25
		}
		used += widths[i]
	}
	for i, h := range headers {
		if h == ColMilestone {
			widths[i] = pageWidth - used
		}
	}
	return widths
}

// fitText truncates s with an ellipsis so it fits in width. s is already
// translated to the single-byte document code page.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	n := len(s)
	for n > 0 && pdf.GetStringWidth(s[:n]+"...") > limit {
		n--
	}
	return s[:n] + "..."
}
