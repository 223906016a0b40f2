// scanner_test.go -- line scanner tests
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package access

import (
	"strings"
	"testing"
)

type kwTest struct {
	kw  Keyword
	lit string
}

var kwList = []kwTest{
	{DEFAULT, "default"},
	{DEFAULT, "Default"},
	{RECORDER, "RECORDER"},
	{EXPLICIT, "explicit"},
	{FILE, "file"},
	{ALLOW, "aLLow"},
	{DENY, "deny"},
	{NONE, "5/10"},
	{NONE, "defaults"},
	{NONE, ""},
}

func TestKeywords(t *testing.T) {
	assert := newAsserter(t)

	for _, e := range kwList {
		k := lookup(e.lit)
		assert(k == e.kw, "%q: exp %s, saw %s", e.lit, e.kw, k)
	}

	assert(RECORDER.String() == "RECORDER", "bad stringer %s", RECORDER)
	assert(NONE.String() == "NONE", "bad stringer %s", NONE)
}

func TestScannerLines(t *testing.T) {
	assert := newAsserter(t)

	src := "# header\n\n  default allow  \n\t\n\t# indented\nallow explicit a\r\n\n5/10 file /x y\n"
	s := NewScanner(strings.NewReader(src))

	exp := []Line{
		{3, "default allow"},
		{6, "allow explicit a"},
		{8, "5/10 file /x y"},
	}

	i := 0
	for s.Next() {
		assert(i < len(exp), "too many lines; saw %s", s.Line())
		assert(s.Line() == exp[i], "exp %s, saw %s", exp[i], s.Line())
		i++
	}
	assert(i == len(exp), "exp %d lines, saw %d", len(exp), i)
	assert(s.Err() == nil, "unexpected err: %s", s.Err())
}

type splitTest struct {
	in   string
	tok  string
	rest string
}

var splitTests = []splitTest{
	{"5/10 explicit foo", "5/10", "explicit foo"},
	{"deny\tfile\t/a b", "deny", "file\t/a b"},
	{"allow", "allow", ""},
	{"allow  \t ", "allow", ""},
	{"1/1\t \t/var/log/x", "1/1", "/var/log/x"},
}

func TestSplitThreshold(t *testing.T) {
	assert := newAsserter(t)

	for _, x := range splitTests {
		tok, rest := splitThreshold(x.in)
		assert(tok == x.tok, "%q: exp tok %q, saw %q", x.in, x.tok, tok)
		assert(rest == x.rest, "%q: exp rest %q, saw %q", x.in, x.rest, rest)
	}
}

func TestFieldsTabs(t *testing.T) {
	assert := newAsserter(t)

	v := fields("explicit\tfoo@bar")
	assert(len(v) == 2, "tab-only separation not split: %q", v)
	assert(v[0] == "explicit" && v[1] == "foo@bar", "bad fields %q", v)

	v = fields(" \t a  \t\tb c ")
	assert(len(v) == 3, "exp 3 fields, saw %q", v)
}
