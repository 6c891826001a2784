package export

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	qerr "github.com/msto63/trinom/pkg/core/error"
	qlog "github.com/msto63/trinom/pkg/core/log"

	"github.com/msto63/trinom/internal/trinomial"
)

// BatchRow is the study summary of one input row. Err is set, and the
// derived values left empty, when the row could not be read.
type BatchRow struct {
	Line      int
	Trinomial trinomial.Trinomial
	Degree    trinomial.Degree
	Delta     float64
	Roots     []float64
	Canonical *trinomial.Canonical
	Parity    trinomial.Parity
	Err       error
}

// BatchResult is the outcome of a batch run
type BatchResult struct {
	Rows   []BatchRow
	Failed int
}

var batchHeader = []interface{}{"a", "b", "c", "degree", "delta", "x1", "x2", "alpha", "beta", "parity", "error"}

// ReadBatch studies every row of the first sheet of r. The columns are a, b
// and c; a first row whose first cell is not a number is taken as a header
// and blank rows are skipped.
func ReadBatch(r io.Reader, logger *qlog.Logger) (*BatchResult, error) {
	if logger == nil {
		logger = qlog.Discard()
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, qerr.Wrap(err, "invalid workbook").
			WithCode(qerr.CodeImportFailed).
			WithOperation("export.ReadBatch")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, qerr.Wrap(err, "cannot read sheet").
			WithCode(qerr.CodeImportFailed).
			WithOperation("export.ReadBatch").
			WithDetail("sheet", sheet)
	}

	result := &BatchResult{}
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if i == 0 {
			if _, err := trinomial.ParseNumber(row[0]); err != nil {
				continue
			}
		}

		br := studyRow(i+1, row)
		if br.Err != nil {
			result.Failed++
			logger.Warn("skipping row", qlog.Int("line", br.Line), qlog.Err(br.Err))
		}
		result.Rows = append(result.Rows, br)
	}

	logger.Info("batch read", qlog.Int("rows", len(result.Rows)), qlog.Int("failed", result.Failed))
	return result, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func studyRow(line int, row []string) BatchRow {
	br := BatchRow{Line: line}

	var coef [3]float64
	for i := range coef {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		v, err := trinomial.ParseNumber(cell)
		if err != nil {
			br.Err = err
			return br
		}
		coef[i] = v
	}

	t := trinomial.New(coef[0], coef[1], coef[2])
	br.Trinomial = t
	br.Degree = t.Degree()
	br.Parity = t.Parity()
	if !t.IsQuadratic() {
		return br
	}

	br.Delta = t.Discriminant()
	br.Roots, _ = t.Roots()
	if c, err := t.Canonical(); err == nil {
		br.Canonical = &c
	}
	return br
}

// WriteBatch writes one summary row per input row.
func WriteBatch(w io.Writer, result *BatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &batchHeader); err != nil {
		return batchError(err)
	}

	for i, br := range result.Rows {
		values := batchValues(br)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return batchError(err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return batchError(err)
		}
	}

	if err := f.Write(w); err != nil {
		return batchError(err)
	}
	return nil
}

func batchValues(br BatchRow) []interface{} {
	if br.Err != nil {
		values := make([]interface{}, len(batchHeader))
		for i := range values {
			values[i] = ""
		}
		values[len(values)-1] = br.Err.Error()
		return values
	}

	t := br.Trinomial
	values := []interface{}{cellNumber(t.A), cellNumber(t.B), cellNumber(t.C), br.Degree.String(), "", "", "", "", "", br.Parity.String(), ""}
	if !t.IsQuadratic() {
		return values
	}
	values[4] = cellNumber(br.Delta)
	if len(br.Roots) > 0 {
		values[5] = cellNumber(br.Roots[0])
		values[6] = cellNumber(br.Roots[len(br.Roots)-1])
	}
	if br.Canonical != nil {
		values[7] = cellNumber(br.Canonical.Alpha)
		values[8] = cellNumber(br.Canonical.Beta)
	}
	return values
}

// cellNumber drops the sign of a negative zero, which would otherwise be
// written as "-0".
func cellNumber(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func batchError(err error) error {
	return qerr.Wrap(err, "failed to write batch summary").
		WithCode(qerr.CodeExportFailed).
		WithOperation("export.WriteBatch")
}
