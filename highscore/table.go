package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var linePattern = regexp.MustCompile(`^\s*([A-Za-z]+)\s+([0-9]+)`)

var errMalformed = errors.New("highscore: malformed line")

// NormalizeName upper-cases name and checks it is three ASCII letters.
func NormalizeName(name string) (string, error) {
	if len(name) != NameLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, r := range name {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return strings.ToUpper(name), nil
}

// Parse reads entries in file order. Malformed lines, whatever their
// length, are logged at Debug and skipped.
func Parse(r io.Reader, log logrus.FieldLogger) ([]Entry, error) {
	entries := make([]Entry, 0, MaxEntries)
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if line != "" {
			if e, perr := parseLine(line); perr != nil {
				log.WithField("line", n).WithError(perr).Debug("highscore: skipping malformed line")
			} else {
				entries = append(entries, e)
			}
		}
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
	}
}

// parseLine decodes one "<NAME> <SECONDS>" line; trailing text is ignored.
func parseLine(line string) (Entry, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, errMalformed
	}
	secs, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: m[1], Seconds: secs}, nil
}

// Write emits one "<NAME> <SECONDS>" line per entry.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.Name, e.Seconds); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Insert places e before the first entry with a strictly greater time, or
// appends it when the table has room. The result never exceeds MaxEntries.
// ok reports whether e made it into the table.
func Insert(entries []Entry, e Entry) (out []Entry, ok bool) {
	out = make([]Entry, 0, MaxEntries)
	for i, cur := range entries {
		if i >= MaxEntries {
			break
		}
		if cur.Seconds > e.Seconds {
			out = append(out, entries[:i]...)
			out = append(out, e)
			out = append(out, entries[i:]...)
			return truncate(out), true
		}
	}
	out = append(out, entries...)
	if len(out) < MaxEntries {
		return append(out, e), true
	}
	return truncate(out), false
}

func truncate(entries []Entry) []Entry {
	if len(entries) > MaxEntries {
		return entries[:MaxEntries]
	}
	return entries
}
