package record

import (
	"fmt"
	"strings"
)

// ParseError describes a malformed input line. It is recoverable: callers
// report it, skip the line, and continue with the rest of the input.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return e.Reason }

// ParseLine parses one colon-delimited input line into a Record. Fields are
// trimmed of surrounding whitespace. Two layouts are accepted:
//
//	ID:Forename:Surname:Department             (4 fields)
//	ID:Forename:Middlename:Surname:Department  (5 fields)
//
// In the 5-field layout the middle name may be empty. Any other field count,
// or an empty forename or surname, yields a *ParseError.
func ParseLine(line string) (Record, error) {
	parts := strings.Split(line, Delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	var r Record
	switch len(parts) {
	case 4:
		r = Record{ID: parts[0], Forename: parts[1], Surname: parts[2], Department: parts[3]}
	case 5:
		r = Record{ID: parts[0], Forename: parts[1], Middlename: parts[2], Surname: parts[3], Department: parts[4]}
	default:
		return Record{}, &ParseError{Reason: fmt.Sprintf("expected 4 or 5 fields, got %d", len(parts))}
	}

	if r.Forename == "" {
		return Record{}, &ParseError{Reason: "empty forename"}
	}
	if r.Surname == "" {
		return Record{}, &ParseError{Reason: "empty surname"}
	}
	return r, nil
}
