package report

import (
	"fmt"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/dustin/go-humanize"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	reportTitle  = "KSA Expansion Cost Estimate"
	reportFooter = "Note: This estimate is approximate. Final pricing may vary based on approvals and documentation."

	// Only the explanatory notes fit on the single page; the disclaimer is
	// repeated in the footer.
	maxPDFNotes = 4
)

var (
	brandColor = &props.Color{Red: 11, Green: 106, Blue: 103}
	mutedColor = &props.Color{Red: 90, Green: 90, Blue: 90}
	white      = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// PDFRenderer renders the downloadable estimate report.
type PDFRenderer struct{}

var _ interfaces.IReportRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// RenderEstimate returns the raw PDF bytes for an estimate shown to contact.
func (r *PDFRenderer) RenderEstimate(sub entities.EstimateSubmission, res entities.EstimateResult) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).
		WithTopMargin(12).
		WithRightMargin(14).
		Build()

	m := maroto.New(cfg)

	addTitle(m, res)
	addSection(m, "Client Details", [][2]string{
		{"Full Name", sub.Contact.FullName},
		{"Email", sub.Contact.Email},
		{"Mobile", sub.Contact.Mobile},
	})
	addSection(m, "Business Inputs", [][2]string{
		{"Investor Type", string(sub.Input.InvestorType)},
		{"Business Activity", string(sub.Input.Activity)},
		{"Preferred City", string(sub.Input.City)},
		{"Timeline Preference", sub.Input.Timeline.Label()},
		{"Visas (Year 1)", fmt.Sprintf("%d", sub.Input.VisaCount)},
	})
	addSection(m, "Estimated Summary", [][2]string{
		{"Estimated Cost Range", fmt.Sprintf("%s - %s", FormatSAR(res.Min), FormatSAR(res.Max))},
		{"Expected Timeline", res.TimelineText},
		{"Recommended Setup", res.RecommendedSetup},
		{"Suggested City", res.SuggestedCity},
	})
	addBreakdown(m, res.Breakdown)
	addNotes(m, res.Notes)
	addFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// FormatSAR renders an amount with thousands separators, e.g. "SAR 42,708".
func FormatSAR(amount int) string {
	return "SAR " + humanize.Comma(int64(amount))
}

func addTitle(m core.Maroto, res entities.EstimateResult) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("NISHAD GATEWAY", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Color: brandColor,
				}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New(reportTitle, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
				}),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New("Report ID: "+res.ReportID, props.Text{Size: 9, Color: mutedColor}),
			),
			col.New(6).Add(
				text.New("Date: "+res.ReportDate, props.Text{Size: 9, Align: align.Right, Color: mutedColor}),
			),
		),
	)
}

func addSection(m core.Maroto, heading string, fields [][2]string) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(heading, props.Text{Size: 12, Style: fontstyle.Bold}),
			),
		),
	)
	for _, f := range fields {
		m.AddRows(
			row.New(6).Add(
				col.New(4).Add(text.New(f[0]+":", props.Text{Size: 10, Color: mutedColor})),
				col.New(8).Add(text.New(f[1], props.Text{Size: 10})),
			),
		)
	}
}

func addBreakdown(m core.Maroto, items []entities.BreakdownItem) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Cost Breakdown (Approximate)", props.Text{Size: 12, Style: fontstyle.Bold}),
			),
		),
	)

	head := props.Text{Size: 9, Style: fontstyle.Bold, Color: white, Top: 1.5, Left: 2}
	headRight := head
	headRight.Align = align.Right
	headRight.Right = 2
	headCell := &props.Cell{BackgroundColor: brandColor}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Item", head)).WithStyle(headCell),
			col.New(3).Add(text.New("Min", headRight)).WithStyle(headCell),
			col.New(3).Add(text.New("Max", headRight)).WithStyle(headCell),
		),
	)

	body := props.Text{Size: 9, Top: 1.5, Left: 2}
	bodyRight := body
	bodyRight.Align = align.Right
	bodyRight.Right = 2
	for _, item := range items {
		if item.IsZero() {
			continue
		}
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New(item.Label, body)),
				col.New(3).Add(text.New(FormatSAR(item.Min), bodyRight)),
				col.New(3).Add(text.New(FormatSAR(item.Max), bodyRight)),
			),
		)
	}
}

func addNotes(m core.Maroto, notes []string) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Estimate Explanation", props.Text{Size: 12, Style: fontstyle.Bold}),
			),
		),
	)
	if len(notes) > maxPDFNotes {
		notes = notes[:maxPDFNotes]
	}
	for _, n := range notes {
		m.AddAutoRow(
			col.New(12).Add(text.New("• "+n, props.Text{Size: 10, Left: 2, Bottom: 2})),
		)
	}
}

func addFooter(m core.Maroto) {
	m.AddRows(row.New(8))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(reportFooter, props.Text{Size: 8, Color: mutedColor}),
			),
		),
	)
}
