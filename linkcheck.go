// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package linkcheck scan a website for broken links.
//
// Starting from a root URL, the crawler fetch every discovered URL on
// the same network location, classify it as good (2xx status) or bad
// (anything else, including unreachable), and collect the result into
// a [Report].
package linkcheck

import (
	_ "embed"
	"fmt"
)

// Version of linkcheck program and module.
var Version = `0.1.0`

// GoEmbedReadme embed the README for showing the usage of program.
//
//go:embed README
var GoEmbedReadme string

// Check crawl the website pointed by [CheckOptions.Url] and return the
// report of good and bad links.
// It return an error on invalid options or if the root URL itself
// cannot be fetched at all.
func Check(opts CheckOptions) (report *Report, err error) {
	var logp = `Check`
	var eng *Engine

	eng, err = NewEngine(opts)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	err = eng.Run()
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	return eng.Report(), nil
}
