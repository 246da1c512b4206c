// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"slices"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// StatusBadLink is the pseudo HTTP status recorded for a link whose
// fetch failed at the transport level, either timeout or IP or domain
// not exist.
const StatusBadLink = 700

// Report accumulate the outcome of the crawl.
// Every processed URL end up in exactly one of the good or bad set.
type Report struct {
	good   mapset.Set[string]
	bad    mapset.Set[string]
	status map[string]int
	mtx    sync.Mutex
}

// NewReport create an empty report.
func NewReport() *Report {
	return &Report{
		good:   mapset.NewSet[string](),
		bad:    mapset.NewSet[string](),
		status: map[string]int{},
	}
}

// RecordGood mark the URL as reachable.
// Recording the same URL twice has no additional effect.
func (rep *Report) RecordGood(pageUrl string) {
	rep.good.Add(pageUrl)
}

// RecordBad mark the URL as broken.
// Recording the same URL twice has no additional effect.
func (rep *Report) RecordBad(pageUrl string) {
	rep.bad.Add(pageUrl)
}

// RecordStatus store the final HTTP status observed for the URL, with
// [StatusBadLink] for transport failures.
func (rep *Report) RecordStatus(pageUrl string, status int) {
	rep.mtx.Lock()
	rep.status[pageUrl] = status
	rep.mtx.Unlock()
}

// Good return the reachable URLs, sorted.
func (rep *Report) Good() (listUrl []string) {
	listUrl = rep.good.ToSlice()
	slices.Sort(listUrl)
	return listUrl
}

// Bad return the broken URLs, sorted.
func (rep *Report) Bad() (listUrl []string) {
	listUrl = rep.bad.ToSlice()
	slices.Sort(listUrl)
	return listUrl
}

// Statuses return a copy of the per-URL final status.
func (rep *Report) Statuses() (status map[string]int) {
	rep.mtx.Lock()
	defer rep.mtx.Unlock()

	status = make(map[string]int, len(rep.status))
	for pageUrl, code := range rep.status {
		status[pageUrl] = code
	}
	return status
}

// CountBad return the number of broken URLs.
func (rep *Report) CountBad() int {
	return rep.bad.Cardinality()
}

// ExitCode return 0 when no broken links has been found, otherwise 1.
func (rep *Report) ExitCode() int {
	if rep.CountBad() == 0 {
		return 0
	}
	return 1
}

// Render format the report for printing.
// In quiet mode it is the broken URLs only, one per line, sorted; an
// empty bad set render to an empty string.
// In verbose mode both sets are printed under "GOOD LINKS:" and
// "BAD LINKS:" headers, separated by a blank line, even when empty.
func (rep *Report) Render(verbose bool) string {
	var sb strings.Builder

	if verbose {
		sb.WriteString("GOOD LINKS:\n")
		for _, pageUrl := range rep.Good() {
			sb.WriteString(pageUrl)
			sb.WriteByte('\n')
		}
		sb.WriteString("\nBAD LINKS:\n")
	}
	for _, pageUrl := range rep.Bad() {
		sb.WriteString(pageUrl)
		sb.WriteByte('\n')
	}
	return sb.String()
}
