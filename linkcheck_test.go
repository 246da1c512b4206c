// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck_test

import (
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	libnet "git.sr.ht/~shulhan/pakakeh.go/lib/net"
	"git.sr.ht/~shulhan/pakakeh.go/lib/test"

	"git.sr.ht/~shulhan/linkcheck"
)

// The test run two web servers that serve content on "testdata/web/".
// The first web server is the one that we want to check.
// The second web server is external, on another netloc; links pointing
// to it must never be followed.

const testAddress = `127.0.0.1:11837`
const testExternalAddress = `127.0.0.1:11901`

func TestMain(m *testing.M) {
	log.SetFlags(0)
	var httpDirWeb = http.Dir(`testdata/web`)
	var fshandle = http.FileServer(httpDirWeb)

	go func() {
		var mux = http.NewServeMux()
		mux.Handle(`/`, fshandle)
		var testServer = &http.Server{
			Addr:           testAddress,
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		var err = testServer.ListenAndServe()
		if err != nil {
			log.Fatal(err)
		}
	}()
	go func() {
		var mux = http.NewServeMux()
		mux.Handle(`/`, fshandle)
		var testServer = &http.Server{
			Addr:           testExternalAddress,
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		var err = testServer.ListenAndServe()
		if err != nil {
			log.Fatal(err)
		}
	}()

	var err = libnet.WaitAlive(`tcp`, testAddress, 5*time.Second)
	if err != nil {
		log.Fatal(err)
	}
	err = libnet.WaitAlive(`tcp`, testExternalAddress, 5*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(m.Run())
}

func TestCheck(t *testing.T) {
	var testUrl = `http://` + testAddress

	type testCase struct {
		opts       linkcheck.CheckOptions
		expError   string
		expGood    []string
		expBad     []string
		expQuiet   string
		expVerbose string
	}

	listCase := []testCase{{
		opts: linkcheck.CheckOptions{
			Url: `127.0.0.1:14594`,
		},
		expError: `Check: CheckOptions: invalid URL "127.0.0.1:14594"`,
	}, {
		opts: linkcheck.CheckOptions{
			Url: `http://127.0.0.1:14594`,
		},
		expError: `Check: Get "http://127.0.0.1:14594": dial tcp 127.0.0.1:14594: connect: connection refused`,
	}, {
		opts: linkcheck.CheckOptions{
			Url: testUrl,
		},
		expGood: []string{
			testUrl,
			testUrl + `/b.html`,
		},
		expBad:   []string{testUrl + `/c.html`},
		expQuiet: testUrl + "/c.html\n",
		expVerbose: "GOOD LINKS:\n" +
			testUrl + "\n" +
			testUrl + "/b.html\n" +
			"\n" +
			"BAD LINKS:\n" +
			testUrl + "/c.html\n",
	}, {
		opts: linkcheck.CheckOptions{
			Url:         testUrl,
			Engine:      linkcheck.EngineAsync,
			Concurrency: 4,
		},
		expGood: []string{
			testUrl,
			testUrl + `/b.html`,
		},
		expBad:   []string{testUrl + `/c.html`},
		expQuiet: testUrl + "/c.html\n",
	}}

	var (
		report *linkcheck.Report
		err    error
	)
	for _, tcase := range listCase {
		t.Logf(`--- linkcheck: %s`, tcase.opts.Url)
		report, err = linkcheck.Check(tcase.opts)
		if err != nil {
			test.Assert(t, tcase.opts.Url+` error`,
				tcase.expError, err.Error())
			continue
		}
		test.Assert(t, tcase.opts.Url+` good`,
			tcase.expGood, report.Good())
		test.Assert(t, tcase.opts.Url+` bad`,
			tcase.expBad, report.Bad())
		test.Assert(t, tcase.opts.Url+` quiet`,
			tcase.expQuiet, report.Render(false))
		if tcase.expVerbose != `` {
			test.Assert(t, tcase.opts.Url+` verbose`,
				tcase.expVerbose, report.Render(true))
		}
		test.Assert(t, tcase.opts.Url+` exit code`,
			1, report.ExitCode())
	}
}

// With limit 1 only the root page is processed, so the broken link on
// it is discovered but never fetched.
func TestCheck_limit(t *testing.T) {
	var testUrl = `http://` + testAddress

	var report, err = linkcheck.Check(linkcheck.CheckOptions{
		Url:   testUrl,
		Limit: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	test.Assert(t, `good`, []string{testUrl}, report.Good())
	test.Assert(t, `bad`, []string{}, report.Bad())
	test.Assert(t, `exit code`, 0, report.ExitCode())
}
