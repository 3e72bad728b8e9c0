package source

import (
	"bytes"
	"sort"
	"strings"
)

// File maps byte offsets in a single source text to Locations and Spans.
//
// It indexes the line starts once on construction so that lookups are
// logarithmic rather than a linear rescan per diagnostic.
type File struct {
	name  string // Identifier of the source, empty for anonymous sources
	src   []byte // The raw source text
	lines []int  // Byte offset of the start of each line
}

// NewFile indexes src and returns a [File] that can resolve offsets
// within it.
//
// name identifies the source in spans produced by the file, pass ""
// for anonymous/inline sources.
func NewFile(name string, src []byte) *File {
	lines := []int{0}

	for offset, b := range src {
		if b == '\n' {
			lines = append(lines, offset+1)
		}
	}

	return &File{
		name:  name,
		src:   src,
		lines: lines,
	}
}

// Name returns the identifier of the source, empty for anonymous sources.
func (f *File) Name() string {
	return f.name
}

// Location resolves a byte offset into a [Location].
//
// offset is clamped into [0, len(src)] so a slightly out of range offset
// cannot panic, per the contract that malformed positions may garble
// output but must not crash.
func (f *File) Location(offset int) Location {
	if offset < 0 {
		offset = 0
	}

	if offset > len(f.src) {
		offset = len(f.src)
	}

	// The greatest line start <= offset
	line := sort.SearchInts(f.lines, offset+1) - 1

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: offset - f.lines[line] + 1,
	}
}

// Span builds a [Span] covering src[start:end), resolving both endpoints
// and capturing the covered text along with the full first line of the
// span as display context.
func (f *File) Span(start, end int) Span {
	startLoc := f.Location(start)
	endLoc := f.Location(end)

	return Span{
		URL:     f.name,
		Text:    string(f.src[startLoc.Offset:endLoc.Offset]),
		Context: f.line(startLoc.Line),
		Start:   startLoc,
		End:     endLoc,
	}
}

// line returns the full text of the given 1 indexed line, without its
// trailing newline.
func (f *File) line(number int) string {
	index := number - 1
	if index < 0 || index >= len(f.lines) {
		return ""
	}

	start := f.lines[index]

	rest := f.src[start:]
	if newline := bytes.IndexByte(rest, '\n'); newline != -1 {
		rest = rest[:newline]
	}

	return strings.TrimSuffix(string(rest), "\r")
}
