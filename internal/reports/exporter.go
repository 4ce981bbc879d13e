package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"circularmetals-backend/internal/datasets"
)

const filenamePrefix = "circularmetals_report_"

// BuildCSV renders the metrics report: a header row followed by one row per
// environmental-impact metric.
func BuildCSV() ([]byte, error) {
	rows := [][]string{{"Metric", "Conventional", "Circular"}}
	for _, m := range datasets.EnvironmentalImpacts() {
		rows = append(rows, []string{
			m.Name,
			strconv.Itoa(m.Conventional),
			strconv.Itoa(m.Circular),
		})
	}

	var buf bytes.Buffer
	if err := csv.NewWriter(&buf).WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns the attachment name for a report captured at the given
// time, e.g. circularmetals_report_20260823T101500Z.csv.
func Filename(now time.Time) string {
	return filenamePrefix + now.UTC().Format("20060102T150405") + "Z.csv"
}
