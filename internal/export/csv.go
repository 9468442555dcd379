// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/learnqueue/internal/models"
)

// CSVHeader is the fixed column set.
var CSVHeader = []string{
	"Title", "Source Type", "Summary", "Why It Matters", "Tags",
	"Score", "Estimated Time", "Consumed", "Date Added", "Link",
}

// CSVFilename returns ai-learning-queue-<scope>-<YYYY-MM-DD>.csv for the UTC day of at.
func CSVFilename(scope Scope, at time.Time) string {
	return "ai-learning-queue-" + string(scope) + "-" + at.UTC().Format("2006-01-02") + ".csv"
}

// WriteCSV writes the header and one row per item.
//
// Text columns are always quoted. Numeric columns and the consumed flag are
// bare; absent values are empty. Date and link are quoted only when they
// contain a delimiter.
func WriteCSV(w io.Writer, items []models.Item) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(CSVHeader, ",")); err != nil {
		return err
	}
	for i := range items {
		it := &items[i]
		row := []string{
			quote(it.Title),
			quote(it.SourceType),
			quote(it.Summary),
			quote(it.WhyItMatters),
			quote(strings.Join(it.Tags, "; ")),
			number(it.Score),
			number(it.EstimatedTime),
			yesNo(it.Consumed),
			quoteIfNeeded(deref(it.DateAdded)),
			quoteIfNeeded(deref(it.Link)),
		}
		if _, err := bw.WriteString("\n" + strings.Join(row, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}
	return s
}

func number(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
