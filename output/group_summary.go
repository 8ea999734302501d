package output

import (
	"fmt"
	"math"
	"strconv"

	"codes2json/palette"
)

// GroupSummary describes one mapping key of a map-mode document.
type GroupSummary struct {
	Key         string
	RecordCount int
	ColorCount  int
	AverageHex  string
	AverageLuma float64
	FirstName   string
}

// BuildGroupSummaries summarizes a map-mode document per key, in key order.
// The average colour only covers records with a complete RGB triple.
func BuildGroupSummaries(doc Document) []GroupSummary {
	summaries := make([]GroupSummary, 0, doc.Len())
	for _, key := range doc.keys {
		entry := doc.entries[key]
		summary := GroupSummary{Key: key, RecordCount: len(entry.Records)}

		var sumR, sumG, sumB int
		for _, record := range entry.Records {
			if summary.FirstName == "" {
				summary.FirstName = record.DisplayName()
			}
			color, ok := record.Color()
			if !ok {
				continue
			}
			summary.ColorCount++
			sumR += color.R
			sumG += color.G
			sumB += color.B
		}

		if summary.ColorCount > 0 {
			average := palette.RGB{
				R: roundDiv(sumR, summary.ColorCount),
				G: roundDiv(sumG, summary.ColorCount),
				B: roundDiv(sumB, summary.ColorCount),
			}
			summary.AverageHex = average.Hex()
			summary.AverageLuma = palette.Brightness(average)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// WriteGroupSummaries writes summaries as csv or excel.
func WriteGroupSummaries(path string, format string, summaries []GroupSummary) error {
	headers := []string{"Key", "Records", "Colors", "AverageHex", "AverageBrightness", "FirstName"}
	rows := make([][]string, len(summaries))
	for i, summary := range summaries {
		rows[i] = []string{
			summary.Key,
			strconv.Itoa(summary.RecordCount),
			strconv.Itoa(summary.ColorCount),
			summary.AverageHex,
			fmt.Sprintf("%.1f", summary.AverageLuma),
			summary.FirstName,
		}
	}

	switch normalizeFormat(format) {
	case "csv":
		return writeCSVTable(path, headers, rows)
	case "excel", "xlsx":
		return writeExcelTable(path, headers, rows)
	default:
		return fmt.Errorf("unsupported summary format: %s (supported: csv, excel)", format)
	}
}

func roundDiv(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
