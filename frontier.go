// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"iter"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// frontier is the crawl queue.
// It store every URL that has been discovered and the subset of them
// that has been processed; the unchecked URLs are the difference of
// the two.
// Duplicate URLs are merged by set membership.
type frontier struct {
	// all store every discovered URL.
	all mapset.Set[string]

	// checked store the URLs that has been popped.
	// Invariant: checked is always a subset of all.
	checked mapset.Set[string]

	// mtx make pop-and-mark-as-checked a single step, so two
	// concurrent poppers can never fetch the same URL twice.
	mtx sync.Mutex
}

func newFrontier() *frontier {
	return &frontier{
		all:     mapset.NewSet[string](),
		checked: mapset.NewSet[string](),
	}
}

// add register an unchecked URL.
func (fron *frontier) add(pageUrl string) {
	fron.mtx.Lock()
	fron.all.Add(pageUrl)
	fron.mtx.Unlock()
}

// addMany register many unchecked URLs.
func (fron *frontier) addMany(listUrl iter.Seq[string]) {
	for pageUrl := range listUrl {
		fron.add(pageUrl)
	}
}

// pop choose one arbitrary unchecked URL and mark it as checked,
// atomically.
// It return false when there are no unchecked URLs left.
func (fron *frontier) pop() (pageUrl string, ok bool) {
	fron.mtx.Lock()
	defer fron.mtx.Unlock()

	pageUrl, ok = fron.all.Difference(fron.checked).Pop()
	if !ok {
		return ``, false
	}
	fron.checked.Add(pageUrl)
	return pageUrl, true
}

// countUnchecked return the number of URLs that has been discovered
// but not processed yet.
func (fron *frontier) countUnchecked() int {
	fron.mtx.Lock()
	defer fron.mtx.Unlock()
	return fron.all.Difference(fron.checked).Cardinality()
}
