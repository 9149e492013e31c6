package source

import (
	"io"
	"strings"

	"github.com/gongahkia/yuho-sub002/token"
)

// CodeMap contains a set of source code files.
type CodeMap struct {
	loader Loader
	files  map[string]*Source
}

// NewCodeMap returns a new code map.
func NewCodeMap(loader Loader) *CodeMap {
	return &CodeMap{loader, make(map[string]*Source)}
}

// Add includes a new file in the codemap. The path given must be a
// relative path in the project. The file content is read once and kept,
// so diagnostics can extract regions without going back to the loader.
func (cm *CodeMap) Add(path string) error {
	if _, ok := cm.files[path]; ok {
		return nil
	}

	r, err := cm.loader.Load(path)
	if err != nil {
		return err
	}

	bs, err := io.ReadAll(r)
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
	if err != nil {
		return err
	}

	cm.files[path] = NewSource(path, string(bs))
	return nil
}

// AddSource registers in-memory content under a path without going
// through the loader, for sources that do not come from a file.
func (cm *CodeMap) AddSource(path, text string) {
	if _, ok := cm.files[path]; !ok {
		cm.files[path] = NewSource(path, text)
	}
}

// Source returns the source for the given path.
func (cm *CodeMap) Source(path string) *Source {
	return cm.files[path]
}

// Source represents a single source file of code.
type Source struct {
	// Path of the file.
	Path string
	// Text is the source code of the file.
	Text string

	runes     []rune
	lineIndex []lineInfo
}

type lineInfo struct {
	start token.Pos
	end   token.Pos
}

// NewSource creates a source from the given text with its line index
// already built. The index counts runes, not bytes, because token
// offsets are rune offsets.
func NewSource(path, text string) *Source {
	s := &Source{Path: path, Text: text, runes: []rune(text)}

	var start token.Pos
	for i, r := range s.runes {
		if r == '\n' {
			s.lineIndex = append(s.lineIndex, lineInfo{start, token.Pos(i)})
			start = token.Pos(i + 1)
		}
	}

	if int(start) < len(s.runes) {
		s.lineIndex = append(s.lineIndex, lineInfo{start, token.Pos(len(s.runes))})
	}

	return s
}

// Reader returns a new reader over the source text.
func (s *Source) Reader() io.Reader {
	return strings.NewReader(s.Text)
}

func (s *Source) lineAt(pos token.Pos) int {
	for i, li := range s.lineIndex {
		if pos >= li.start && pos <= li.end {
			return i
		}
	}
	return len(s.lineIndex) - 1
}

// Position expands an offset into a full position with line and column.
func (s *Source) Position(pos token.Pos) *token.Position {
	if len(s.lineIndex) == 0 || pos < 0 {
		return &token.Position{Source: s.Path, Offset: pos, Line: 1, Column: 1}
	}

	line := s.lineAt(pos)
	return &token.Position{
		Source: s.Path,
		Offset: pos,
		Line:   line + 1,
		Column: int(pos-s.lineIndex[line].start) + 1,
	}
}

// Region returns the lines of source code covering the region beginning
// at the start position and ending at the end position.
func (s *Source) Region(start, end token.Pos) []string {
	if len(s.lineIndex) == 0 {
		return nil
	}

	if end > token.Pos(len(s.runes)) {
		end = token.Pos(len(s.runes))
	}

	first, last := s.lineAt(start), s.lineAt(end)
	var lines []string
	for i := first; i <= last; i++ {
		li := s.lineIndex[i]
		lines = append(lines, strings.TrimRight(string(s.runes[li.start:li.end]), "\r"))
	}
	return lines
}
