package corpus

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrEmptyLine indicates a corpus line tokenised to nothing (blank or
// whitespace-only lines are skipped rather than erroring, but an
// explicit marker-only line like "* #" with nothing between the
// sentinels is also treated as empty and rejected).
var ErrEmptyLine = errors.New("corpus: line has no tokens")

// Warning carries the single first-occurrence notice spec.md §6
// requires when a line does not carry both boundary markers.
type Warning struct {
	Line    int
	Message string
}

// ReadSequences parses r per spec.md §6's corpus file format: one
// whitespace-tokenised sentence per non-empty line, with optional
// leading "*" and trailing "#" boundary markers stripped before the
// sequence is returned (rdsgraph.NewGraph supplies its own Start/End).
// It returns at most one Warning, attached to the first line missing
// either marker; such lines are still parsed and returned as plain
// sequences.
func ReadSequences(r io.Reader) ([][]string, *Warning, error) {
	scanner := bufio.NewScanner(r)
	var sequences [][]string
	var warning *Warning
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		hasStart := len(tokens) > 0 && tokens[0] == "*"
		hasEnd := len(tokens) > 0 && tokens[len(tokens)-1] == "#"
		if hasStart {
			tokens = tokens[1:]
		}
		if hasEnd && len(tokens) > 0 {
			tokens = tokens[:len(tokens)-1]
		}

		if len(tokens) == 0 {
			return nil, warning, ErrEmptyLine
		}

		if warning == nil && !(hasStart && hasEnd) {
			warning = &Warning{
				Line:    lineNo,
				Message: "corpus: line lacks explicit * / # boundary markers, treating as plain sequence",
			}
		}

		sequences = append(sequences, tokens)
	}

	if err := scanner.Err(); err != nil {
		return nil, warning, err
	}
	return sequences, warning, nil
}
