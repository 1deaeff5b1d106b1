package gcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/philipparndt/gradient-infill/pkg/geometry"
	"github.com/tdewolff/parse/v2/strconv"
)

var (
	// ErrMissingField is returned when a required word is absent from a line
	ErrMissingField = errors.New("missing field")
	// ErrMalformedField is returned when a word carries no usable number
	ErrMalformedField = errors.New("malformed field")
)

// Word is a single letter/value pair such as X12.5 or E0.0231
type Word struct {
	Letter byte
	Value  float64
	Raw    string
	Valid  bool
}

// Line is one parsed line of a G-code file
type Line struct {
	Raw     string
	Code    string // normalized command, e.g. "G1" or "M83"; empty for comment-only lines
	Words   []Word
	Comment string // text from the first ';', including it
}

// Parse splits a raw G-code line into command, words and trailing comment.
// Parsing never fails; words without a number are kept with Valid=false and
// surface as ErrMalformedField once they are read.
func Parse(raw string) Line {
	line := Line{Raw: raw}

	body := raw
	if i := strings.IndexByte(body, ';'); i >= 0 {
		line.Comment = body[i:]
		body = body[:i]
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return line
	}

	line.Code = normalizeCode(fields[0])
	for _, f := range fields[1:] {
		line.Words = append(line.Words, parseWord(f))
	}
	return line
}

// normalizeCode upper-cases the command and drops leading zeros (G01 -> G1)
func normalizeCode(code string) string {
	code = strings.ToUpper(code)
	if len(code) < 2 {
		return code
	}
	num := strings.TrimLeft(code[1:], "0")
	if num == "" {
		num = "0"
	}
	return code[:1] + num
}

func parseWord(field string) Word {
	w := Word{Letter: upper(field[0]), Raw: field}
	if len(field) < 2 {
		return w
	}
	num := []byte(field[1:])
	v, n := strconv.ParseFloat(num)
	if n > 0 && n == len(num) && geometry.IsFinite(v) {
		w.Value = v
		w.Valid = true
	}
	return w
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// Has reports whether the line carries a word with the given letter
func (l Line) Has(letter byte) bool {
	_, ok := l.word(letter)
	return ok
}

func (l Line) word(letter byte) (Word, bool) {
	for _, w := range l.Words {
		if w.Letter == letter {
			return w, true
		}
	}
	return Word{}, false
}

// Value returns the numeric value of the word with the given letter
func (l Line) Value(letter byte) (float64, error) {
	w, ok := l.word(letter)
	if !ok {
		return 0, fmt.Errorf("%w %c", ErrMissingField, letter)
	}
	if !w.Valid {
		return 0, fmt.Errorf("%w %q", ErrMalformedField, w.Raw)
	}
	return w.Value, nil
}

// IsMove reports whether the line is a linear move (G0 or G1)
func (l Line) IsMove() bool {
	return l.Code == "G0" || l.Code == "G1"
}

// IsPlanarMove reports whether the line is a linear move with X and Y
func (l Line) IsPlanarMove() bool {
	return l.IsMove() && l.Has('X') && l.Has('Y')
}

// IsExtrusionMove reports whether the line is a G1 with X, Y and E
func (l Line) IsExtrusionMove() bool {
	return l.Code == "G1" && l.Has('X') && l.Has('Y') && l.Has('E')
}

// IsArc reports whether the line is a G2/G3 arc move
func (l Line) IsArc() bool {
	return l.Code == "G2" || l.Code == "G3"
}

// IsFeedrateOnly reports whether the line is a move that only sets the feedrate
func (l Line) IsFeedrateOnly() bool {
	if !l.IsMove() || len(l.Words) == 0 {
		return false
	}
	for _, w := range l.Words {
		if w.Letter != 'F' {
			return false
		}
	}
	return true
}

// IsRelativeExtrusion reports whether the line switches to relative extrusion (M83)
func (l Line) IsRelativeExtrusion() bool {
	return l.Code == "M83"
}

// IsAbsoluteExtrusion reports whether the line switches to absolute extrusion (M82)
func (l Line) IsAbsoluteExtrusion() bool {
	return l.Code == "M82"
}

// Feedrate returns the F value of a move, ok is false when the line has none
func (l Line) Feedrate() (float64, bool, error) {
	if !l.IsMove() || !l.Has('F') {
		return 0, false, nil
	}
	f, err := l.Value('F')
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}

// XY returns the planar target of the line
func (l Line) XY() (geometry.Point2D, error) {
	x, err := l.Value('X')
	if err != nil {
		return geometry.Point2D{}, err
	}
	y, err := l.Value('Y')
	if err != nil {
		return geometry.Point2D{}, err
	}
	return geometry.NewPoint2D(x, y), nil
}

// WithWord returns a copy of the line with the word for letter set to value.
// An existing word is replaced in place, otherwise the word is appended.
func (l Line) WithWord(letter byte, value float64, decimals int) Line {
	raw := string(letter) + FormatNumber(value, decimals)
	w := Word{Letter: letter, Value: value, Raw: raw, Valid: true}

	words := make([]Word, 0, len(l.Words)+1)
	replaced := false
	for _, existing := range l.Words {
		if existing.Letter == letter && !replaced {
			words = append(words, w)
			replaced = true
			continue
		}
		words = append(words, existing)
	}
	if !replaced {
		words = append(words, w)
	}

	out := Line{Code: l.Code, Words: words, Comment: l.Comment}
	out.Raw = out.String()
	return out
}

// String reassembles the line from its parts
func (l Line) String() string {
	var sb strings.Builder
	sb.WriteString(l.Code)
	for _, w := range l.Words {
		sb.WriteByte(' ')
		sb.WriteString(w.Raw)
	}
	if l.Comment != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.Comment)
	}
	return sb.String()
}
