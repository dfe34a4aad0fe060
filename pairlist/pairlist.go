package pairlist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// input in following format:
/*
3   4
4   3
2   5
1   3
3   9
3   3
*/

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidText = errors.New("stream did not contain valid UTF-8")
	ErrTokenCount  = errors.New("wrong token count")
	ErrParseValue  = errors.New("unparseable value")
)

// Lists holds the two columns in input order.
type Lists struct {
	Left  []int32
	Right []int32
}

func yoloString(b []byte) string {
	return *((*string)(unsafe.Pointer(&b)))
}

// Open reads the named file in full. Relative names resolve against the
// working directory.
func Open(name string) ([]byte, error) {
	path := name
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, name)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return buf, nil
}

// Load opens name and parses it, writing skipped-line diagnostics to diag.
// Input that is not valid UTF-8 is a read error, not a bad line.
func Load(name string, diag io.Writer) (Lists, error) {
	raw, err := Open(name)
	if err != nil {
		return Lists{}, err
	}
	if !utf8.Valid(raw) {
		return Lists{}, fmt.Errorf("read %s: %w", name, ErrInvalidText)
	}
	return Parse(raw, diag), nil
}

// Parse never fails: malformed lines are reported to diag and dropped, so
// the columns can end up with different lengths.
func Parse(raw []byte, diag io.Writer) Lists {
	if diag == nil {
		diag = io.Discard
	}

	var l Lists
	for len(raw) > 0 {
		var line []byte
		idx := bytes.IndexByte(raw, '\n')
		if idx == -1 {
			line, raw = raw, nil
		} else {
			line, raw = raw[:idx], raw[idx+1:]
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})

		left, right, err := ParseLine(line)
		switch {
		case errors.Is(err, ErrTokenCount):
			fmt.Fprintf(diag, "Skipping line with invalid format: %s\n", line)
			continue
		case err != nil:
			fmt.Fprintf(diag, "Skipping invalid line: %s\n", line)
			continue
		}

		l.Left = append(l.Left, left)
		l.Right = append(l.Right, right)
	}

	return l
}

func ParseLine(line []byte) (left, right int32, err error) {
	fields := bytes.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%d fields: %w", len(fields), ErrTokenCount)
	}

	l, err := strconv.ParseInt(yoloString(fields[0]), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parse left: %w: %v", ErrParseValue, err)
	}
	r, err := strconv.ParseInt(yoloString(fields[1]), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parse right: %w: %v", ErrParseValue, err)
	}

	return int32(l), int32(r), nil
}
