// Package highscore keeps the local top-10 list of fastest wins.
//
// The list is stored as text, one entry per line: "<NAME> <SECONDS>\n".
// Names are upper-case letters. Lines that do not match
// letters-whitespace-digits are skipped when loading.
//
// Entries are kept ascending by time. A new entry goes before the first
// entry with a strictly greater time, so among equal times the older entry
// stays first. At most MaxEntries are kept.
//
// Errors
//
//   - ErrPersistence  reading or writing the file failed; wraps the cause.
//   - ErrInvalidName  a player name is not exactly three letters.
package highscore
