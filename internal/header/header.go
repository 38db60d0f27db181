// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package header parses the C credential headers handed out by the
// cloud portal, like mbed_cloud_dev_credentials.c.
//
// Only constant definitions are understood:
//
//	const char NAME[] = "string";
//	const uint8_t NAME[] = { 0x30, 0x82, ... };
//	const uint32_t NAME = 42;
//	const uint32_t NAME_SIZE = sizeof(OTHER);
//
// Preprocessor lines and comments are skipped. Names not starting
// with the wanted prefix are ignored.
package header

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tillitis/devcreds/internal/util"
)

// Name prefixes used by the portal's headers.
const (
	DevCredentialsPrefix = "MBED_CLOUD_DEV_"
	UpdateCertPrefix     = "arm_uc_"
)

type Type int

const (
	String Type = iota
	Bytes
	Uint32
)

func (t Type) String() string {
	switch t {
	case String:
		return "char[]"
	case Bytes:
		return "uint8_t[]"
	case Uint32:
		return "uint32_t"
	default:
		return fmt.Sprintf("type %d", int(t))
	}
}

type Value struct {
	Type  Type
	Str   string
	Bytes []byte
	Uint  uint32
}

// File holds the values of a parsed header, indexed by name with the
// prefix stripped.
type File struct {
	prefix string
	values map[string]Value
}

var (
	reString = regexp.MustCompile(`^const\s+char\s+(\w+)\s*\[\s*\]\s*=\s*("(?:[^"\\]|\\.)*")$`)
	reBytes  = regexp.MustCompile(`^const\s+uint8_t\s+(\w+)\s*\[\s*(\d*)\s*\]\s*=\s*(\{[^{}]*\})$`)
	reUint   = regexp.MustCompile(`^const\s+uint(8|16|32)_t\s+(\w+)\s*=\s*(.+)$`)
	reSizeof = regexp.MustCompile(`^sizeof\s*\(\s*(\w+)\s*\)$`)
)

// Parse parses header text, keeping definitions whose name starts
// with prefix.
func Parse(text string, prefix string) (*File, error) {
	stmts, err := split(text)
	if err != nil {
		return nil, err
	}

	f := File{
		prefix: prefix,
		values: make(map[string]Value),
	}

	// sizeof() may only refer to arrays, resolve them once everything
	// else is in.
	type sizeRef struct {
		line       int
		name, what string
	}
	var sizes []sizeRef

	for _, st := range stmts {
		var name string
		var v Value

		switch {
		case reString.MatchString(st.text):
			m := reString.FindStringSubmatch(st.text)
			name = m[1]
			s, err := strconv.Unquote(m[2])
			if err != nil {
				return nil, ParseError{Line: st.line, Msg: fmt.Sprintf("bad string literal for %s: %v", name, err)}
			}
			v = Value{Type: String, Str: s}

		case reBytes.MatchString(st.text):
			m := reBytes.FindStringSubmatch(st.text)
			name = m[1]
			b, err := util.ParseByteList(m[3])
			if err != nil {
				return nil, ParseError{Line: st.line, Msg: fmt.Sprintf("bad byte list for %s: %v", name, err)}
			}
			if m[2] != "" {
				n, err := strconv.Atoi(m[2])
				if err != nil || n != len(b) {
					return nil, ParseError{Line: st.line, Msg: fmt.Sprintf("%s declared with %s elements, has %d", name, m[2], len(b))}
				}
			}
			v = Value{Type: Bytes, Bytes: b}

		case reUint.MatchString(st.text):
			m := reUint.FindStringSubmatch(st.text)
			bits, _ := strconv.Atoi(m[1])
			name = m[2]
			expr := strings.TrimSpace(m[3])
			if sm := reSizeof.FindStringSubmatch(expr); sm != nil {
				if strings.HasPrefix(name, prefix) {
					sizes = append(sizes, sizeRef{line: st.line, name: name, what: sm[1]})
				}
				continue
			}
			n, err := strconv.ParseUint(strings.TrimRight(expr, "uUlL"), 0, bits)
			if err != nil {
				return nil, ParseError{Line: st.line, Msg: fmt.Sprintf("bad value for %s: %v", name, err)}
			}
			v = Value{Type: Uint32, Uint: uint32(n)}

		default:
			return nil, ParseError{Line: st.line, Msg: fmt.Sprintf("unknown statement %.40q", st.text)}
		}

		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := f.add(name, v); err != nil {
			return nil, ParseError{Line: st.line, Msg: err.Error()}
		}
	}

	for _, s := range sizes {
		ref, ok := f.values[strings.TrimPrefix(s.what, prefix)]
		if !ok || !strings.HasPrefix(s.what, prefix) {
			return nil, ParseError{Line: s.line, Msg: fmt.Sprintf("sizeof unknown %s", s.what)}
		}

		var n int
		switch ref.Type {
		case Bytes:
			n = len(ref.Bytes)
		case String:
			// includes the terminating NUL
			n = len(ref.Str) + 1
		default:
			n = 4
		}

		if err := f.add(s.name, Value{Type: Uint32, Uint: uint32(n)}); err != nil {
			return nil, ParseError{Line: s.line, Msg: err.Error()}
		}
	}

	return &f, nil
}

func (f *File) add(name string, v Value) error {
	key := strings.TrimPrefix(name, f.prefix)
	if _, ok := f.values[key]; ok {
		return fmt.Errorf("%s defined twice", name)
	}
	f.values[key] = v

	return nil
}

// Names lists the defined names, prefix stripped, sorted.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.values))
	for n := range f.values {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func (f *File) Lookup(name string) (Value, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f *File) String(name string) (string, error) {
	v, err := f.get(name, String)
	return v.Str, err
}

// Bytes returns the array itself, not a copy.
func (f *File) Bytes(name string) ([]byte, error) {
	v, err := f.get(name, Bytes)
	return v.Bytes, err
}

func (f *File) Uint32(name string) (uint32, error) {
	v, err := f.get(name, Uint32)
	return v.Uint, err
}

func (f *File) get(name string, t Type) (Value, error) {
	v, ok := f.values[name]
	if !ok {
		return Value{}, MissingError{Name: f.prefix + name}
	}
	if v.Type != t {
		return Value{}, fmt.Errorf("%s%s is %v, expected %v", f.prefix, name, v.Type, t)
	}

	return v, nil
}

type statement struct {
	line int
	text string
}

// split strips comments and preprocessor lines and splits text into
// statements on semicolons outside of string literals. Whitespace
// runs, newlines included, become a single space.
func split(text string) ([]statement, error) {
	var stmts []statement
	var cur strings.Builder

	line := 1
	start := 0
	atLineStart := true

	flush := func() {
		s := strings.Join(strings.Fields(cur.String()), " ")
		if s != "" {
			stmts = append(stmts, statement{line: start, text: s})
		}
		cur.Reset()
		start = 0
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch {
		case c == '\n':
			line++
			atLineStart = true
			cur.WriteByte(' ')
			continue

		case atLineStart && c == '#':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			i--
			continue

		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			i--
			continue

		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				return nil, ParseError{Line: line, Msg: "unterminated comment"}
			}
			line += strings.Count(text[i:i+2+end], "\n")
			i += 2 + end + 1
			cur.WriteByte(' ')
			continue

		case c == ';':
			flush()
			atLineStart = false
			continue

		case c == ' ' || c == '\t' || c == '\r':
			cur.WriteByte(' ')
			continue
		}

		atLineStart = false
		if start == 0 {
			start = line
		}

		if c == '"' {
			j := i + 1
			for ; j < len(text) && text[j] != '"'; j++ {
				if text[j] == '\\' {
					j++
				}
				if j < len(text) && text[j] == '\n' {
					return nil, ParseError{Line: line, Msg: "newline in string literal"}
				}
			}
			if j >= len(text) {
				return nil, ParseError{Line: line, Msg: "unterminated string literal"}
			}
			cur.WriteString(text[i : j+1])
			i = j
			continue
		}

		cur.WriteByte(c)
	}

	if strings.TrimSpace(cur.String()) != "" {
		return nil, ParseError{Line: start, Msg: "missing ; at end of input"}
	}

	return stmts, nil
}
