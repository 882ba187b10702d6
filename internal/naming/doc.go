// Package naming derives base usernames from user records and resolves
// duplicates within a single run.
//
// A base is built from the forename initial, the optional middle-name
// initial, and the full surname, lowercased and truncated to 8 characters.
// [Table.Resolve] then disambiguates repeats with a numeric suffix. Suffix
// assignment is strictly input-order dependent: the same records in the
// same order always produce the same usernames.
package naming
