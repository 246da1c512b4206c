// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// page is the result of fetching one URL, alive only for a single
// loop iteration.
type page struct {
	dom    *domain
	url    string
	body   string
	status int
}

// newPage bind a fetched response to its URL.
// The URL must belong to the domain being checked; an out-of-domain
// URL here means the frontier has been fed wrongly, which is reported
// as an error instead of being silently crawled.
func newPage(dom *domain, pageUrl string, status int, body string) (
	pg *page, err error,
) {
	var logp = `newPage`

	if !dom.contains(pageUrl) {
		return nil, fmt.Errorf(`%s: URL %q is outside of domain %q`,
			logp, pageUrl, dom.netloc)
	}
	pg = &page{
		dom:    dom,
		url:    pageUrl,
		status: status,
		body:   body,
	}
	return pg, nil
}

// isValid return true if the page answered with 2xx status.
func (pg *page) isValid() bool {
	return pg.status >= 200 && pg.status < 300
}

// outboundUrls return a single-pass sequence of the in-domain URLs
// referenced by anchors in the page body.
// Each href is normalized with [normalizeHref] and then filtered by
// domain membership.
// A body that cannot be parsed as HTML yield no URLs; the tokenizer
// itself is tolerant of malformed markup.
func (pg *page) outboundUrls() iter.Seq[string] {
	return func(yield func(string) bool) {
		var doc, err = html.Parse(strings.NewReader(pg.body))
		if err != nil {
			return
		}
		for node := range doc.Descendants() {
			if node.Type != html.ElementNode {
				continue
			}
			if node.DataAtom != atom.A {
				continue
			}
			for _, attr := range node.Attr {
				if attr.Key != `href` {
					continue
				}
				var normUrl, ok = normalizeHref(pg.dom,
					pg.url, attr.Val)
				if ok && pg.dom.contains(normUrl) {
					if !yield(normUrl) {
						return
					}
				}
				break
			}
		}
	}
}
