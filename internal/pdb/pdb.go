package pdb

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Atom is a single parsed atom record: a position in Å and an upper-case
// element symbol. Atoms are immutable once parsed.
type Atom struct {
	Position [3]float32
	Element  string
}

// Fixed column ranges of the PDB ATOM/HETATM record (0-based, half-open).
// X/Y/Z are 8-character fields; the element field is 2 characters wide with
// a fallback to the start of the atom-name field when blank.
const (
	colXStart, colXEnd             = 30, 38
	colYStart, colYEnd             = 38, 46
	colZStart, colZEnd             = 46, 54
	colElementStart, colElementEnd = 76, 78
	colNameStart, colNameEnd       = 12, 14
)

// MalformedRecordError reports a non-numeric coordinate field in an atom
// record. Parsing stops at the first bad record instead of letting NaN leak
// into geometry.
type MalformedRecordError struct {
	Line  int
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("pdb: malformed %s field on line %d", e.Field, e.Line)
}

// Parse reads PDB text and returns the atoms in record order. Lines whose
// record name is ATOM or HETATM are atom records; every other line is
// skipped. Coordinates stay in the file's unit (Å); callers convert to scene
// units.
func Parse(text string) ([]Atom, error) {
	var atoms []Atom
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !isAtomRecord(line) {
			continue
		}
		atom, err := parseRecord(line, lineNo)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, atom)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pdb: %w", err)
	}
	return atoms, nil
}

func isAtomRecord(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	return fields[0] == "ATOM" || fields[0] == "HETATM"
}

func parseRecord(line string, lineNo int) (Atom, error) {
	x, err := parseCoord(line, colXStart, colXEnd, "x", lineNo)
	if err != nil {
		return Atom{}, err
	}
	y, err := parseCoord(line, colYStart, colYEnd, "y", lineNo)
	if err != nil {
		return Atom{}, err
	}
	z, err := parseCoord(line, colZStart, colZEnd, "z", lineNo)
	if err != nil {
		return Atom{}, err
	}
	return Atom{Position: [3]float32{x, y, z}, Element: parseElement(line)}, nil
}

func parseCoord(line string, start, end int, field string, lineNo int) (float32, error) {
	raw := strings.TrimSpace(slice(line, start, end))
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, &MalformedRecordError{Line: lineNo, Field: field}
	}
	return float32(v), nil
}

// parseElement reads the dedicated element column, falling back to the first
// two characters of the atom-name field when the element column is blank
// (older files leave it empty).
func parseElement(line string) string {
	sym := strings.TrimSpace(slice(line, colElementStart, colElementEnd))
	if sym == "" {
		sym = strings.TrimSpace(slice(line, colNameStart, colNameEnd))
		sym = strings.TrimLeft(sym, "0123456789")
	}
	return strings.ToUpper(sym)
}

// slice returns line[start:end], tolerating short lines.
func slice(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}
