// Package record defines the user record model and the input line parser.
package record

// Delimiter separates fields on input and output lines.
const Delimiter = ":"

// Record is one parsed input line. Forename and Surname are never empty;
// Middlename may be. ID is an opaque identifier.
type Record struct {
	ID         string
	Forename   string
	Middlename string
	Surname    string
	Department string
}
