// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"sync"
)

// runAsync run the same crawl policy with up to
// [CheckOptions.Concurrency] fetches in flight.
//
// The coordinator loop pop URLs and hand them to goroutines bounded by
// a semaphore channel.
// When the frontier is drained but fetches are still in flight, the
// loop wait on the condition variable: a finishing fetch may have
// pushed new URLs into the frontier.
// The crawl is done when the frontier is empty and nothing is in
// flight.
func (eng *Engine) runAsync() (err error) {
	var sem = make(chan struct{}, eng.opts.Concurrency)
	var wg sync.WaitGroup

	for {
		eng.mtx.Lock()
		for eng.frontier.countUnchecked() == 0 &&
			eng.inflight > 0 && eng.errFatal == nil {
			eng.cond.Wait()
		}
		if eng.errFatal != nil || eng.limitReached() {
			eng.mtx.Unlock()
			break
		}
		var pageUrl, ok = eng.frontier.pop()
		if !ok {
			eng.mtx.Unlock()
			break
		}
		eng.processed++
		eng.inflight++
		eng.mtx.Unlock()

		sem <- struct{}{}
		wg.Add(1)
		go func(pageUrl string) {
			defer wg.Done()

			var errProcess = eng.process(pageUrl)

			<-sem
			eng.mtx.Lock()
			if errProcess != nil && eng.errFatal == nil {
				eng.errFatal = errProcess
			}
			eng.inflight--
			eng.cond.Broadcast()
			eng.mtx.Unlock()
		}(pageUrl)
	}

	wg.Wait()
	return eng.errFatal
}
