// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package export

import (
	"io"
	"slices"

	"github.com/rodaine/table"

	"git.sr.ht/~shulhan/linkcheck"
)

// WriteSummary render a table of link count per HTTP status to w,
// with [linkcheck.StatusBadLink] standing in for transport failures.
func WriteSummary(w io.Writer, rep *linkcheck.Report) {
	var countByStatus = map[int]int{}
	for _, status := range rep.Statuses() {
		countByStatus[status]++
	}

	var listStatus []int
	for status := range countByStatus {
		listStatus = append(listStatus, status)
	}
	slices.Sort(listStatus)

	var tbl = table.New(`STATUS`, `COUNT`).WithWriter(w)
	for _, status := range listStatus {
		tbl.AddRow(status, countByStatus[status])
	}
	tbl.Print()
}
