package report

import (
	"bytes"
	"fmt"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const leadsSheet = "Leads"

var leadColumns = []struct {
	header string
	width  float64
}{
	{"Created At", 20},
	{"Full Name", 24},
	{"Email", 30},
	{"Mobile", 18},
	{"Investor Type", 14},
	{"Activity", 16},
	{"City", 12},
	{"Timeline", 20},
	{"Visas", 8},
	{"Bank Support", 13},
	{"Accounting", 12},
	{"VRO Support", 12},
	{"Estimate Min (SAR)", 18},
	{"Estimate Max (SAR)", 18},
	{"Expected Timeline", 18},
	{"Recommended Setup", 32},
	{"Report ID", 16},
	{"Status", 12},
}

// LeadsExcelExporter writes the admin lead export workbook.
type LeadsExcelExporter struct{}

var _ interfaces.ILeadExporter = (*LeadsExcelExporter)(nil)

func NewLeadsExcelExporter() *LeadsExcelExporter {
	return &LeadsExcelExporter{}
}

// ExportLeads returns an xlsx workbook with one row per lead. Timestamps are
// rendered in loc.
func (e *LeadsExcelExporter) ExportLeads(leads []entities.Lead, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), leadsSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#0B6A67"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, c := range leadColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(leadsSheet, name, name, c.width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", name, err)
		}
		cell := name + "1"
		if err := f.SetCellValue(leadsSheet, cell, c.header); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(leadColumns))
	if err := f.SetCellStyle(leadsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	if err := f.SetPanes(leadsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	for i, l := range leads {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			l.CreatedAt.In(loc).Format("2006-01-02 15:04"),
			sanitizeExcelCell(l.FullName),
			sanitizeExcelCell(l.Email),
			sanitizeExcelCell(l.Mobile),
			l.InvestorType,
			l.Activity,
			l.City,
			l.Timeline,
			l.Visas,
			yesNo(l.Supports.BankSupport),
			yesNo(l.Supports.AccountingSupport),
			yesNo(l.Supports.VROSupport),
			l.Estimate.Min,
			l.Estimate.Max,
			l.Estimate.TimelineText,
			l.Estimate.RecommendedSetup,
			l.Estimate.ReportID,
			string(l.Status),
		}
		if err := f.SetSheetRow(leadsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write lead row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// sanitizeExcelCell prevents formula injection from user-typed form fields.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
