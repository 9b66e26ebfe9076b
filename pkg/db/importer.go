package db

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/yumyai/atacrna/pkg/model"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidValue  = errors.New("invalid value")
)

// csvTable reads a headered CSV and hands each record to fn with a column
// accessor keyed by header name.
func csvTable(r io.Reader, required []string, fn func(line int, col func(string) string) error) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		col := func(name string) string {
			return strings.TrimSpace(record[index[name]])
		}
		if err := fn(line, col); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func parseCoordinate(name, value string) (int64, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return v, nil
}

// parseInterval reads start and end and requires 0 <= start <= end.
func parseInterval(col func(string) string) (start, end int64, err error) {
	start, err = parseCoordinate("start", col("start"))
	if err != nil {
		return 0, 0, err
	}
	end, err = parseCoordinate("end", col("end"))
	if err != nil {
		return 0, 0, err
	}
	if start < 0 {
		return 0, 0, fmt.Errorf("%w: negative start %d", ErrInvalidValue, start)
	}
	if end < start {
		return 0, 0, fmt.Errorf("%w: end %d before start %d", ErrInvalidValue, end, start)
	}
	return start, end, nil
}

// parseMeasure reads a finite float.
func parseMeasure(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q is not finite", ErrInvalidValue, name, value)
	}
	return v, nil
}

// ReadGenesCSV parses exon rows with columns gene_name,start,end,strand.
func ReadGenesCSV(r io.Reader) ([]model.GeneRecord, error) {
	var records []model.GeneRecord
	err := csvTable(r, []string{"gene_name", "start", "end", "strand"}, func(_ int, col func(string) string) error {
		start, end, err := parseInterval(col)
		if err != nil {
			return err
		}
		strand := col("strand")
		if strand != model.StrandForward && strand != model.StrandReverse {
			return fmt.Errorf("invalid strand %q", strand)
		}
		records = append(records, model.GeneRecord{
			GeneName: col("gene_name"),
			Start:    start,
			End:      end,
			Strand:   strand,
		})
		return nil
	})
	return records, err
}

// ReadPeaksCSV parses peak rows with columns gene_name,sample_id,start,end.
// Sample ids must belong to table.
func ReadPeaksCSV(r io.Reader, table *model.TimepointTable) ([]model.AccessibilityPeak, error) {
	var peaks []model.AccessibilityPeak
	err := csvTable(r, []string{"gene_name", "sample_id", "start", "end"}, func(_ int, col func(string) string) error {
		sample := col("sample_id")
		if _, err := table.Lookup(sample); err != nil {
			return err
		}
		start, end, err := parseInterval(col)
		if err != nil {
			return err
		}
		peaks = append(peaks, model.AccessibilityPeak{
			GeneName: col("gene_name"),
			SampleID: sample,
			Start:    start,
			End:      end,
		})
		return nil
	})
	return peaks, err
}

// ReadExpressionCSV parses metacell rows with columns
// gene_name,sample_id,rna,atac,color. Colors must belong to palette.
func ReadExpressionCSV(r io.Reader, palette *model.Palette) ([]ExpressionRow, error) {
	var rows []ExpressionRow
	err := csvTable(r, []string{"gene_name", "sample_id", "rna", "atac", "color"}, func(_ int, col func(string) string) error {
		rna, err := parseMeasure("rna", col("rna"))
		if err != nil {
			return err
		}
		atac, err := parseMeasure("atac", col("atac"))
		if err != nil {
			return err
		}
		color := col("color")
		if _, err := palette.CellTypeOf(color); err != nil {
			return err
		}
		rows = append(rows, ExpressionRow{
			GeneName: col("gene_name"),
			SampleID: col("sample_id"),
			RNA:      rna,
			ATAC:     atac,
			Color:    color,
		})
		return nil
	})
	return rows, err
}
