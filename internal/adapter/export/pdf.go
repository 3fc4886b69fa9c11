// Package export renders generated itineraries into shareable formats.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// PDFRenderer renders an itinerary into a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF bytes for an itinerary. No filesystem access;
// the document is written to an in-memory buffer.
func (r *PDFRenderer) Render(itinerary *domain.Itinerary) ([]byte, error) {
	if itinerary == nil {
		return nil, fmt.Errorf("%w: itinerary is required", domain.ErrInvalidRequest)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	renderHeader(pdf, itinerary)

	sectionHeader := func(title string) {
		pdf.SetFillColor(24, 42, 66)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	prefs := itinerary.Preferences

	sectionHeader("Trip Overview")
	row("Destinations", joinNonEmpty(prefs.Destinations))
	row("Dates", fmt.Sprintf("%s to %s", readableDate(prefs.StartDate), readableDate(prefs.EndDate)))
	row("Travelers", fmt.Sprintf("%d", prefs.Travelers()))
	row("Pace", prefs.Pace)
	pdf.Ln(4)

	for _, day := range itinerary.Days {
		renderDay(pdf, sectionHeader, row, day)
	}

	renderCostSummary(pdf, sectionHeader, row, itinerary)
	renderFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

// renderHeader draws the title bar at the top of the first page.
func renderHeader(pdf *gofpdf.Fpdf, itinerary *domain.Itinerary) {
	pdf.SetFillColor(24, 42, 66)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Travel Itinerary", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(180, 200, 225)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Itinerary "+itinerary.ID, "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)
}

// renderDay draws one day plan section with its scheduled activities and meals.
func renderDay(pdf *gofpdf.Fpdf, sectionHeader func(string), row func(string, string), day domain.DayPlan) {
	sectionHeader(fmt.Sprintf("%s  -  %s", readableDate(day.Date), day.Destination))

	for _, act := range day.Activities {
		row(act.Slot.String(), fmt.Sprintf("%s (%s %.2f)",
			act.Item.Name, act.Item.Cost.Currency, act.Item.Cost.Amount))
	}
	for _, meal := range day.Meals {
		row(meal.Slot.String(), meal.Name)
	}
	if len(day.Activities) == 0 {
		row("", "Free day")
	}
	row("Day total", fmt.Sprintf("%s %.2f", day.TotalCost.Currency, day.TotalCost.Amount))
	pdf.Ln(4)
}

// renderCostSummary draws the totals, price breakdown, and budget status.
func renderCostSummary(pdf *gofpdf.Fpdf, sectionHeader func(string), row func(string, string), itinerary *domain.Itinerary) {
	sectionHeader("Cost Summary")
	row("Subtotal", fmt.Sprintf("%s %.2f", itinerary.TotalCost.Currency, itinerary.TotalCost.Amount))

	if p := itinerary.Pricing; p != nil {
		row("Seasonal factor", fmt.Sprintf("x%.2f", p.SeasonalMultiplier))
		row("Group factor", fmt.Sprintf("x%.2f", p.GroupMultiplier))
		if p.AdvanceDiscountPct > 0 {
			row("Advance discount", fmt.Sprintf("%.0f%%", p.AdvanceDiscountPct))
		}

		pdf.SetFillColor(212, 168, 67)
		pdf.SetTextColor(24, 42, 66)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(55, 9, "FINAL PRICE", "", 0, "L", true, 0, "")
		pdf.CellFormat(115, 9, fmt.Sprintf("%s %.2f", p.Currency, p.FinalPrice), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	if b := itinerary.Budget; b != nil && !b.WithinBudget() {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(160, 60, 30)
		pdf.MultiCell(170, 5,
			fmt.Sprintf("Over budget by %.2f against a target of %.2f.", b.OverBudgetBy, b.Target),
			"", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)
}

// renderFooter draws the disclaimer line at the bottom of the page.
func renderFooter(pdf *gofpdf.Fpdf) {
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated itinerary. Not a booking confirmation. Prices are estimates and subject to change.",
		"", 0, "C", false, 0, "")
}

// readableDate formats a YYYY-MM-DD date for display, falling back to the
// raw string when it does not parse.
func readableDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}

// joinNonEmpty joins values with commas, skipping empty entries.
func joinNonEmpty(values []string) string {
	out := ""
	for _, v := range values {
		if v == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += v
	}
	return out
}
