// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package export

import (
	"encoding/json"
	"fmt"
	"os"

	"git.sr.ht/~shulhan/linkcheck"
)

// JSONExporter write the report as an indented JSON array of rows.
type JSONExporter struct{}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}

func (exp *JSONExporter) Export(rep *linkcheck.Report, file string) (err error) {
	var logp = `JSONExporter`

	var rows = listRow(rep)
	var rowsJson []byte
	rowsJson, err = json.MarshalIndent(rows, ``, `  `)
	if err != nil {
		return fmt.Errorf(`%s: %w`, logp, err)
	}
	rowsJson = append(rowsJson, '\n')

	err = os.WriteFile(file, rowsJson, 0600)
	if err != nil {
		return fmt.Errorf(`%s: %w`, logp, err)
	}
	return nil
}
