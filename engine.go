// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Engine drive the crawl: pop an unchecked URL from the frontier,
// fetch it, record the outcome, and feed the in-domain links of valid
// pages back into the frontier, until the frontier is empty or the
// configured limit is reached.
//
// The crawl policy is the same for both engines; they only differ in
// how many fetches may be in flight.
type Engine struct {
	opts     CheckOptions
	dom      *domain
	frontier *frontier
	report   *Report
	fetcher  fetcher
	log      logrus.FieldLogger

	// mtx with cond guard processed, inflight, and errFatal for
	// the async engine.
	mtx       sync.Mutex
	cond      *sync.Cond
	processed int
	inflight  int
	errFatal  error
}

// NewEngine validate opts and create an engine ready to run.
func NewEngine(opts CheckOptions) (eng *Engine, err error) {
	err = opts.init()
	if err != nil {
		return nil, err
	}

	var dom *domain
	dom, err = newDomain(opts.scanUrl.Scheme, opts.scanUrl.Host)
	if err != nil {
		return nil, err
	}

	eng = &Engine{
		opts:     opts,
		dom:      dom,
		frontier: newFrontier(),
		report:   NewReport(),
		fetcher:  newHTTPFetcher(opts.Log),
		log:      opts.Log,
	}
	eng.cond = sync.NewCond(&eng.mtx)
	eng.frontier.add(opts.Url)

	return eng, nil
}

// Run drive the crawl to completion.
// It return an error only when the root URL itself cannot be fetched,
// before any page could be classified; any later transport failure is
// recorded as a bad link instead.
func (eng *Engine) Run() (err error) {
	if eng.opts.Engine == EngineAsync {
		return eng.runAsync()
	}
	return eng.runSequential()
}

// Report return the accumulated crawl outcome.
func (eng *Engine) Report() *Report {
	return eng.report
}

// ExitCode return 0 when the crawl found no broken links, otherwise 1.
func (eng *Engine) ExitCode() int {
	return eng.report.ExitCode()
}

func (eng *Engine) runSequential() (err error) {
	for {
		if eng.limitReached() {
			eng.log.Debugf(`limit of %d URLs reached`,
				eng.opts.Limit)
			return nil
		}
		var pageUrl, ok = eng.frontier.pop()
		if !ok {
			return nil
		}
		eng.processed++

		err = eng.process(pageUrl)
		if err != nil {
			return err
		}
	}
}

// process fetch and classify one URL.
// The returned error is fatal: either the root URL is unreachable or
// the frontier contained an out-of-domain URL.
func (eng *Engine) process(pageUrl string) (err error) {
	var (
		status int
		body   string
	)
	status, body, err = eng.fetcher.fetch(pageUrl)
	if err != nil {
		if pageUrl == eng.opts.Url {
			// Nothing has been classified yet, the whole
			// site is unreachable.
			return err
		}
		eng.log.WithField(`url`, pageUrl).
			Warnf(`fetch failed: %s`, err)
		eng.report.RecordStatus(pageUrl, StatusBadLink)
		eng.report.RecordBad(pageUrl)
		return nil
	}

	var pg *page
	pg, err = newPage(eng.dom, pageUrl, status, body)
	if err != nil {
		return fmt.Errorf(`process: %w`, err)
	}

	eng.report.RecordStatus(pageUrl, status)
	if pg.isValid() {
		eng.frontier.addMany(pg.outboundUrls())
		eng.report.RecordGood(pageUrl)
	} else {
		eng.log.WithField(`url`, pageUrl).
			Debugf(`invalid URL with status %d`, status)
		eng.report.RecordBad(pageUrl)
	}
	return nil
}

func (eng *Engine) limitReached() bool {
	return eng.opts.Limit > 0 && eng.processed >= eng.opts.Limit
}
