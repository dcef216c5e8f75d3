package export

import (
	"fmt"
	"io"

	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	ItemsSheet   = "Items"
)

var summaryHeaders = []string{"Group", "Issues", "Estimate", "Remaining (h)", "Original (h)", "Unestimated", "Overestimated"}

var itemHeaders = []string{"Section", "Title", "Priority", "Estimate", "Remaining (h)", "Original (h)"}

// ToneColors maps a tone to the font color of its estimate cell.
var ToneColors = map[domain.Tone]string{
	domain.ToneNormal: "D79921",
	domain.ToneGood:   "98971A",
	domain.ToneBad:    "CC241D",
}

type workbook struct {
	f          *excelize.File
	header     int
	toneStyles map[domain.Tone]int
}

// WriteWorkbook renders the report as an xlsx workbook with a summary sheet
// (sections, overall, tiers) and an items sheet.
func WriteWorkbook(resp *contract.ReportResponse, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	wb, err := newWorkbook(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(ItemsSheet); err != nil {
		return fmt.Errorf("creating items sheet: %w", err)
	}

	if err := wb.writeSummary(resp); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if err := wb.writeItems(resp); err != nil {
		return fmt.Errorf("writing items: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func newWorkbook(f *excelize.File) (*workbook, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"504945"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	wb := &workbook{f: f, header: header, toneStyles: make(map[domain.Tone]int, len(ToneColors))}
	for tone, color := range ToneColors {
		id, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: color},
		})
		if err != nil {
			return nil, fmt.Errorf("%s style: %w", tone, err)
		}
		wb.toneStyles[tone] = id
	}
	return wb, nil
}

func (wb *workbook) writeHeaders(sheet string, headers []string) error {
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := wb.f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := wb.f.SetCellStyle(sheet, cell, cell, wb.header); err != nil {
			return err
		}
		colName, _ := excelize.ColumnNumberToName(col + 1)
		if err := wb.f.SetColWidth(sheet, colName, colName, 18); err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) setRow(sheet string, row int, values []any) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return wb.f.SetSheetRow(sheet, cell, &values)
}

// styleCell colors the cell at (col, row) by tone.
func (wb *workbook) styleCell(sheet string, col, row int, tone domain.Tone) error {
	style, ok := wb.toneStyles[tone]
	if !ok {
		return nil
	}
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return wb.f.SetCellStyle(sheet, cell, cell, style)
}

func (wb *workbook) writeSummary(resp *contract.ReportResponse) error {
	if err := wb.writeHeaders(SummarySheet, summaryHeaders); err != nil {
		return err
	}

	summaries := make([]contract.Summary, 0, len(resp.Sections)+1+len(resp.Priorities))
	for _, s := range resp.Sections {
		summaries = append(summaries, s.Summary)
	}
	summaries = append(summaries, resp.Overall)
	for _, p := range resp.Priorities {
		summaries = append(summaries, p.Summary)
	}

	for i, s := range summaries {
		row := i + 2
		values := []any{
			s.Label,
			s.Count,
			s.Cell.Text,
			s.Stats.RemainingTotal,
			s.Stats.OriginalTotal,
			s.Stats.UnestimatedCount,
			s.Stats.OverEstimatedCount,
		}
		if err := wb.setRow(SummarySheet, row, values); err != nil {
			return err
		}
		if err := wb.styleCell(SummarySheet, 3, row, s.Cell.Tone); err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) writeItems(resp *contract.ReportResponse) error {
	if err := wb.writeHeaders(ItemsSheet, itemHeaders); err != nil {
		return err
	}

	row := 2
	for _, s := range resp.Sections {
		for _, it := range s.Items {
			values := []any{
				s.Summary.Label,
				it.Title,
				string(it.Priority),
				it.Cell.Text,
				hoursValue(it.RemainingEstimate),
				hoursValue(it.OriginalEstimate),
			}
			if err := wb.setRow(ItemsSheet, row, values); err != nil {
				return err
			}
			if err := wb.styleCell(ItemsSheet, 4, row, it.Cell.Tone); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// hoursValue leaves the cell blank for a missing estimate.
func hoursValue(h *int) any {
	if h == nil {
		return nil
	}
	return *h
}
