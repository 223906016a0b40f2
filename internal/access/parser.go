// parser.go -- filter definition file parser
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
//
// A definition file is line oriented; each significant line is one of:
//
//	default   <threshold>
//	recorder  <threshold> <path>
//	<threshold> explicit <identity>
//	<threshold> file     <path>
//
// where <threshold> is "allow", "deny" or "<connections>/<minutes>".
// Blank lines and lines starting with '#' are ignored.

package access

import (
	"errors"
	"io"
	"os"
	"strings"
)

// ParseFile parses the definition file 'fn'. The file is closed before
// ParseFile returns. Failure to open or read 'fn' yields a *ReadError;
// a malformed definition yields a *DefinitionError.
func ParseFile(fn string) (*FilterDefinition, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return nil, &ReadError{Name: fn, Err: err}
	}
	defer fd.Close()

	return parse(fd, fn)
}

// Parse parses a definition from 'r' and stops at the first bad line.
func Parse(r io.Reader) (*FilterDefinition, error) {
	return parse(r, "<input>")
}

func parse(r io.Reader, name string) (*FilterDefinition, error) {
	var b builder

	s := NewScanner(r)
	for s.Next() {
		ln := s.Line()
		if err := parseLine(&b, ln.Text); err != nil {
			var de *DefinitionError
			if errors.As(err, &de) {
				de.Line = ln.Num
			}
			return nil, err
		}
	}

	if err := s.Err(); err != nil {
		return nil, &ReadError{Name: name, Err: err}
	}

	return b.build(), nil
}

// classify one trimmed line and feed the result to the builder
func parseLine(b *builder, line string) error {
	kw := fields(line)[0]

	switch lookup(kw) {
	case DEFAULT:
		t, err := ParseThreshold(strings.TrimSpace(line[len(kw):]))
		if err != nil {
			return err
		}
		return b.setDefault(t)

	case RECORDER:
		r, err := parseRecorder(strings.TrimSpace(line[len(kw):]))
		if err != nil {
			return err
		}
		b.addRecorder(r)

	default:
		e, err := parseElement(line)
		if err != nil {
			return err
		}
		b.addElement(e)
	}
	return nil
}

// parse "<threshold> <path>"
func parseRecorder(s string) (Recorder, error) {
	tok, path := splitThreshold(s)

	t, err := ParseThreshold(tok)
	if err != nil {
		return Recorder{}, err
	}

	if len(path) == 0 {
		return Recorder{}, invalid(s, "recorder is missing a file name")
	}

	return Recorder{Threshold: t, Path: path}, nil
}

// parse "<threshold> explicit <identity>" or "<threshold> file <path>"
func parseElement(line string) (Element, error) {
	tok, rest := splitThreshold(line)

	t, err := ParseThreshold(tok)
	if err != nil {
		return nil, err
	}

	v := fields(rest)
	if len(v) < 2 {
		return nil, invalid(line, "element needs a kind and a value")
	}

	switch lookup(v[0]) {
	case EXPLICIT:
		return NewExplicitElement(v[1], t), nil

	case FILE:
		path := strings.TrimSpace(rest[len(v[0]):])
		return NewFileElement(path, t), nil

	default:
		return nil, invalid(line, "unknown element kind "+v[0])
	}
}
