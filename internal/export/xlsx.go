package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	qerr "github.com/msto63/trinom/pkg/core/error"

	"github.com/msto63/trinom/internal/plot"
	"github.com/msto63/trinom/internal/report"
)

// MaxSheetPoints bounds the number of rows of the points sheet; the curve is
// downsampled above it.
const MaxSheetPoints = 2001

// WriteXLSX writes a workbook with the narration of r on a first sheet and
// the sampled points of fig, plotted as a scatter chart, on a second one.
func WriteXLSX(w io.Writer, r *report.Report, fig *plot.Figure, tr report.Translator) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := tr.T("export.summary_sheet")
	points := tr.T("export.points_sheet")

	if err := writeSummary(f, summary, r); err != nil {
		return exportError(err, "summary")
	}
	if err := writePoints(f, points, fig); err != nil {
		return exportError(err, "points")
	}

	if err := f.Write(w); err != nil {
		return exportError(err, "write")
	}
	return nil
}

func exportError(err error, step string) error {
	return qerr.Wrap(err, "failed to write workbook").
		WithCode(qerr.CodeExportFailed).
		WithOperation("export.WriteXLSX").
		WithDetail("step", step)
}

func writeSummary(f *excelize.File, sheet string, r *report.Report) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	t := r.Trinomial
	rows := [][]interface{}{
		{r.Header},
		{"a", t.A},
		{"b", t.B},
		{"c", t.C},
		{},
	}
	for _, s := range r.Sections {
		rows = append(rows, []interface{}{s.Title})
		for _, line := range s.Lines {
			rows = append(rows, []interface{}{"", line})
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "B", "B", 110)
}

func writePoints(f *excelize.File, sheet string, fig *plot.Figure) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"x", "f(x)"}); err != nil {
		return err
	}

	pts := fig.Curve.Downsample(MaxSheetPoints).Points
	for i, p := range pts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{p.X, p.Y}); err != nil {
			return err
		}
	}

	last := len(pts) + 1
	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, last),
			Marker:     excelize.ChartMarker{Symbol: "none"},
		}},
		Title:     []excelize.RichTextRun{{Text: fig.Title}},
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: excelize.ChartDimension{Width: 720, Height: 480},
	})
}
