// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"fmt"
	"net/url"
	"strings"
)

// domain represent the network location being checked.
// Only URLs whose netloc match [domain.netloc] by exact string
// comparison are crawled.
// There is no normalization of letter case or default ports, so
// "site.com:80" and "site.com" are different domains, while
// "http://site.com" and "https://site.com/x" are the same one.
type domain struct {
	// scheme is the scheme of the root URL, used to build the URL
	// for domain-relative hrefs.
	scheme string

	// netloc is the host with optional port of the root URL.
	netloc string
}

func newDomain(scheme, netloc string) (dom *domain, err error) {
	var logp = `newDomain`

	if strings.Contains(scheme, `://`) {
		return nil, fmt.Errorf(`%s: invalid scheme %q`, logp, scheme)
	}
	if netloc == `` {
		return nil, fmt.Errorf(`%s: empty netloc`, logp)
	}
	dom = &domain{
		scheme: scheme,
		netloc: netloc,
	}
	return dom, nil
}

// contains return true if rawUrl has the same netloc with the domain.
// An unparseable rawUrl is never in the domain.
func (dom *domain) contains(rawUrl string) bool {
	var parsedUrl, err = url.Parse(rawUrl)
	if err != nil {
		return false
	}
	return parsedUrl.Host == dom.netloc
}
