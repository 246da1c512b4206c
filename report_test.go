// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	"testing"

	"git.sr.ht/~shulhan/pakakeh.go/lib/test"
)

func TestReportRender(t *testing.T) {
	var rep = NewReport()

	test.Assert(t, `quiet empty`, ``, rep.Render(false))
	test.Assert(t, `verbose empty`,
		"GOOD LINKS:\n\nBAD LINKS:\n", rep.Render(true))
	test.Assert(t, `exit code empty`, 0, rep.ExitCode())

	rep.RecordGood(`https://site.test/b`)
	rep.RecordGood(`https://site.test`)
	rep.RecordBad(`https://site.test/c`)

	// Recording the same URL twice has no additional effect.
	rep.RecordGood(`https://site.test`)
	rep.RecordBad(`https://site.test/c`)

	test.Assert(t, `quiet`, "https://site.test/c\n", rep.Render(false))
	test.Assert(t, `verbose`,
		"GOOD LINKS:\n"+
			"https://site.test\n"+
			"https://site.test/b\n"+
			"\n"+
			"BAD LINKS:\n"+
			"https://site.test/c\n",
		rep.Render(true))

	test.Assert(t, `good`, []string{
		`https://site.test`,
		`https://site.test/b`,
	}, rep.Good())
	test.Assert(t, `bad`, []string{`https://site.test/c`}, rep.Bad())
	test.Assert(t, `exit code`, 1, rep.ExitCode())
}

func TestReportStatuses(t *testing.T) {
	var rep = NewReport()

	rep.RecordStatus(`https://site.test`, 200)
	rep.RecordStatus(`https://site.test/c`, 404)
	rep.RecordStatus(`https://site.test/x`, StatusBadLink)

	var exp = map[string]int{
		`https://site.test`:   200,
		`https://site.test/c`: 404,
		`https://site.test/x`: StatusBadLink,
	}
	test.Assert(t, `statuses`, exp, rep.Statuses())

	// The returned map is a copy.
	var got = rep.Statuses()
	got[`https://site.test`] = 500
	test.Assert(t, `statuses unchanged`, exp, rep.Statuses())
}
