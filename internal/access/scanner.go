// scanner.go -- line scanner for filter definition files
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package access

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Keyword denotes one of the reserved words of a definition file.
type Keyword int

const (
	NONE Keyword = iota

	// reserved keywords
	keywordBegin

	DEFAULT
	RECORDER
	EXPLICIT
	FILE
	ALLOW
	DENY

	keywordEnd
)

// keep this in the same order as the list above
var reservedWordlist = []string{
	"default",
	"recorder",
	"explicit",
	"file",
	"allow",
	"deny",
}

var reservedWords map[string]Keyword

func init() {
	reservedWords = make(map[string]Keyword)

	for i, w := range reservedWordlist {
		reservedWords[w] = Keyword(i + int(keywordBegin) + 1)
	}
}

// Stringer interface implementation for Keyword
func (k Keyword) String() string {
	if k > keywordBegin && k < keywordEnd {
		j := int(k) - int(keywordBegin) - 1
		return strings.ToUpper(reservedWordlist[j])
	}

	if k == NONE {
		return "NONE"
	}
	return fmt.Sprintf("KW_%d", int(k))
}

// lookup returns the keyword for 's' (case insensitive) or NONE
func lookup(s string) Keyword {
	if k, ok := reservedWords[strings.ToLower(s)]; ok {
		return k
	}
	return NONE
}

// Line is one non-blank, non-comment line of a definition file.
type Line struct {
	Num  int    // 1-based line number
	Text string // trimmed line text
}

func (l Line) String() string {
	return fmt.Sprintf("%d: %s", l.Num, l.Text)
}

// Scanner yields the significant lines of a definition file.
type Scanner struct {
	s   *bufio.Scanner
	num int
	cur Line
}

// NewScanner returns a new instance of the scanner that reads from 'r'
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		s: bufio.NewScanner(r),
	}
}

// Next advances to the next significant line and returns false at EOF or
// on a read error; Err() tells them apart.
func (s *Scanner) Next() bool {
	for s.s.Scan() {
		s.num++
		t := s.s.Text()
		if s.num == 1 {
			t = strings.TrimPrefix(t, "\uFEFF")
		}

		t = strings.TrimSpace(t)
		if len(t) == 0 || t[0] == '#' {
			continue
		}

		s.cur = Line{Num: s.num, Text: t}
		return true
	}
	return false
}

// Line returns the line found by the last call to Next()
func (s *Scanner) Line() Line {
	return s.cur
}

// Err returns the first non-EOF error encountered by the scanner
func (s *Scanner) Err() error {
	return s.s.Err()
}

// fields splits 's' on runs of spaces and tabs
func fields(s string) []string {
	return strings.FieldsFunc(s, isBlank)
}

// splitThreshold returns the leading run of non-blank characters of 's'
// and the trimmed remainder.
func splitThreshold(s string) (tok, rest string) {
	i := strings.IndexFunc(s, isBlank)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r)
}
