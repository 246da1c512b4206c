// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

// List of valid values for [CheckOptions.Engine].
const (
	EngineSequential = `sequential`
	EngineAsync      = `async`
)

// DefaultConcurrency is the maximum number of fetches in flight for
// the async engine when [CheckOptions.Concurrency] is not set.
const DefaultConcurrency = 5

// CheckOptions define the options for checking a website for broken
// links.
type CheckOptions struct {
	// Log receive the diagnostic events emitted while crawling.
	// If nil, a logger that only print warnings to standard error
	// will be created.
	Log logrus.FieldLogger

	// The root URL where the crawl start.
	// It must be an absolute "http://" or "https://" URL.
	Url     string
	scanUrl *url.URL

	// Engine select the crawl engine, either [EngineSequential]
	// (default when empty) or [EngineAsync].
	Engine string

	// Limit stop the crawl after this many URLs has been processed.
	// Zero means no limit.
	Limit int

	// Concurrency is the maximum number of fetches in flight for
	// [EngineAsync].
	// Zero means [DefaultConcurrency].
	Concurrency int
}

func (opts *CheckOptions) init() (err error) {
	var logp = `CheckOptions`

	opts.scanUrl, err = url.Parse(opts.Url)
	if err != nil {
		return fmt.Errorf(`%s: invalid URL %q`, logp, opts.Url)
	}
	if opts.scanUrl.Scheme != `http` && opts.scanUrl.Scheme != `https` {
		return fmt.Errorf(`%s: invalid URL %q`, logp, opts.Url)
	}
	if opts.scanUrl.Host == `` {
		return fmt.Errorf(`%s: invalid URL %q`, logp, opts.Url)
	}

	if opts.Limit < 0 {
		return fmt.Errorf(`%s: invalid limit %d`, logp, opts.Limit)
	}

	switch opts.Engine {
	case ``:
		opts.Engine = EngineSequential
	case EngineSequential, EngineAsync:
		// NO-OP.
	default:
		return fmt.Errorf(`%s: invalid engine %q`, logp, opts.Engine)
	}

	if opts.Concurrency < 0 {
		return fmt.Errorf(`%s: invalid concurrency %d`, logp,
			opts.Concurrency)
	}
	if opts.Concurrency == 0 {
		opts.Concurrency = DefaultConcurrency
	}

	if opts.Log == nil {
		var stdlog = logrus.New()
		stdlog.SetLevel(logrus.WarnLevel)
		opts.Log = stdlog
	}

	return nil
}
