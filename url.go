// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"strings"
)

// normalizeHref turn a raw anchor href into an absolute, fragment-free
// URL based on the URL of the page where it was found.
// It return false when the href should not be followed at all, which
// are "mailto:" links and pure "#fragment" references.
//
// Relative hrefs are appended to the page URL with a single "/"
// separator; the last path segment of the page URL is deliberately not
// stripped, so "x" found on ".../start" resolve to ".../start/x".
// Every returned URL has its fragment stripped, including absolute
// URLs that already carry one.
func normalizeHref(dom *domain, pageUrl, href string) (normUrl string, ok bool) {
	if isFullUrl(href) {
		return dropFragment(href), true
	}
	if strings.HasPrefix(href, `/`) {
		return dropFragment(dom.scheme + `://` + dom.netloc + href), true
	}
	if strings.HasPrefix(strings.ToLower(href), `mailto:`) {
		return ``, false
	}
	if strings.HasPrefix(href, `#`) {
		return ``, false
	}
	if !strings.HasSuffix(pageUrl, `/`) {
		href = `/` + href
	}
	return dropFragment(pageUrl + href), true
}

// isFullUrl return true if rawUrl is already an absolute HTTP URL.
func isFullUrl(rawUrl string) bool {
	return strings.HasPrefix(rawUrl, `http://`) ||
		strings.HasPrefix(rawUrl, `https://`)
}

// dropFragment truncate rawUrl at the first "#".
// A "#" at position zero means there is no base URL to keep, so the
// value is returned unchanged.
func dropFragment(rawUrl string) string {
	var pos = strings.Index(rawUrl, `#`)
	if pos > 0 {
		return rawUrl[:pos]
	}
	return rawUrl
}
