// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package export write a crawl [linkcheck.Report] into CSV or JSON
// files and render the status summary table.
package export

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"git.sr.ht/~shulhan/linkcheck"
)

// Result values for [LinkRow.Result].
const (
	ResultGood = `good`
	ResultBad  = `bad`
)

// LinkRow is one checked URL in the exported report.
type LinkRow struct {
	Url    string `csv:"url" json:"url"`
	Result string `csv:"result" json:"result"`
	Status int    `csv:"status" json:"status"`
}

// Exporter write the report into a file.
type Exporter interface {
	Export(rep *linkcheck.Report, file string) error
}

// ForFile return the [Exporter] that match the file extension, either
// ".csv" or ".json".
func ForFile(file string) (exp Exporter, err error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case `.csv`:
		return NewCSVExporter(), nil
	case `.json`:
		return NewJSONExporter(), nil
	}
	return nil, fmt.Errorf(`ForFile: unknown export format %q`, file)
}

// listRow flatten the report into rows sorted by URL.
func listRow(rep *linkcheck.Report) (rows []LinkRow) {
	var status = rep.Statuses()
	for _, pageUrl := range rep.Good() {
		rows = append(rows, LinkRow{
			Url:    pageUrl,
			Result: ResultGood,
			Status: status[pageUrl],
		})
	}
	for _, pageUrl := range rep.Bad() {
		rows = append(rows, LinkRow{
			Url:    pageUrl,
			Result: ResultBad,
			Status: status[pageUrl],
		})
	}
	slices.SortFunc(rows, func(a, b LinkRow) int {
		return strings.Compare(a.Url, b.Url)
	})
	return rows
}
