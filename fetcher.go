// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// fetcher is the capability to retrieve one URL.
// The engine drive the crawl through this interface only, so the
// blocking HTTP client and test stubs are interchangeable.
type fetcher interface {
	fetch(pageUrl string) (status int, body string, err error)
}

// httpFetcher fetch pages with a plain blocking HTTP client.
type httpFetcher struct {
	httpc *http.Client
	log   logrus.FieldLogger
}

func newHTTPFetcher(log logrus.FieldLogger) *httpFetcher {
	var netDial = &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &httpFetcher{
		log: log,
		httpc: &http.Client{
			Transport: &http.Transport{
				DialContext:           netDial.DialContext,
				ExpectContinueTimeout: 1 * time.Second,
				ForceAttemptHTTP2:     true,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          100,
				TLSHandshakeTimeout:   10 * time.Second,
			},
		},
	}
}

func (ftc *httpFetcher) fetch(pageUrl string) (
	status int, body string, err error,
) {
	ftc.log.WithField(`url`, pageUrl).Info(`fetching URL`)

	var httpResp *http.Response
	httpResp, err = ftc.httpc.Get(pageUrl)
	if err != nil {
		return 0, ``, err
	}
	defer httpResp.Body.Close()

	var rawBody []byte
	rawBody, err = io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, ``, err
	}

	ftc.log.WithField(`url`, pageUrl).
		Debugf(`status code %d`, httpResp.StatusCode)

	return httpResp.StatusCode, string(rawBody), nil
}
