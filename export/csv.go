// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"git.sr.ht/~shulhan/linkcheck"
)

// CSVExporter write the report as CSV with "url,result,status" header.
type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (exp *CSVExporter) Export(rep *linkcheck.Report, file string) (err error) {
	var logp = `CSVExporter`

	var fd *os.File
	fd, err = os.Create(file)
	if err != nil {
		return fmt.Errorf(`%s: %w`, logp, err)
	}
	defer fd.Close()

	var rows = listRow(rep)
	err = gocsv.MarshalFile(&rows, fd)
	if err != nil {
		return fmt.Errorf(`%s: %w`, logp, err)
	}
	return nil
}
