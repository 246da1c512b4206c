// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Program linkcheck check a website for broken links.
// See the embedded README for the full usage.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"git.sr.ht/~shulhan/linkcheck"
	"git.sr.ht/~shulhan/linkcheck/export"
)

func main() {
	log.SetFlags(0)

	var (
		optVerbose     bool
		optVerboseLong bool
		optLimit       int
		optEngine      string
		optConcurrency int
		optOutput      string
		optSummary     bool
		optVersion     bool
	)

	flag.BoolVar(&optVerbose, `v`, false,
		`Print both good and bad links.`)
	flag.BoolVar(&optVerboseLong, `verbose`, false,
		`Print both good and bad links.`)
	flag.IntVar(&optLimit, `limit`, 0,
		`Stop crawling after this many URLs.`)
	flag.StringVar(&optEngine, `engine`, linkcheck.EngineSequential,
		`Crawl engine, either "sequential" or "async".`)
	flag.IntVar(&optConcurrency, `concurrency`, 0,
		`Maximum fetches in flight for the async engine.`)
	flag.StringVar(&optOutput, `output`, ``,
		`Write the report to file, format based on ".csv" or ".json" extension.`)
	flag.BoolVar(&optSummary, `summary`, false,
		`Print a per-status summary table to standard error.`)
	flag.BoolVar(&optVersion, `version`, false,
		`Print the program version and exit.`)

	flag.Usage = func() {
		log.Println(linkcheck.GoEmbedReadme)
	}
	flag.Parse()

	if optVersion {
		fmt.Println(linkcheck.Version)
		return
	}

	var rootUrl = flag.Arg(0)
	if rootUrl == `` {
		log.Printf(`Missing argument URL to be checked.`)
		log.Printf(`Run "linkcheck -h" for usage.`)
		os.Exit(2)
	}

	var logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	var rawLevel = os.Getenv(`LINKCHECK_LOGLEVEL`)
	if rawLevel != `` {
		var level, err = logrus.ParseLevel(rawLevel)
		if err != nil {
			logger.Warnf(`unknown LINKCHECK_LOGLEVEL %q, using warning`,
				rawLevel)
		} else {
			logger.SetLevel(level)
		}
	}

	var opts = linkcheck.CheckOptions{
		Log:         logger,
		Url:         rootUrl,
		Engine:      optEngine,
		Limit:       optLimit,
		Concurrency: optConcurrency,
	}

	var report, err = linkcheck.Check(opts)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(2)
	}

	fmt.Print(report.Render(optVerbose || optVerboseLong))

	if optSummary {
		export.WriteSummary(os.Stderr, report)
	}
	if optOutput != `` {
		var exporter export.Exporter
		exporter, err = export.ForFile(optOutput)
		if err == nil {
			err = exporter.Export(report, optOutput)
		}
		if err != nil {
			logger.Error(err.Error())
			os.Exit(2)
		}
	}

	os.Exit(report.ExitCode())
}
