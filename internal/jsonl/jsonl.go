// Package jsonl writes a Directory as JSON Lines, one record per line in
// directory order, and reads it back with full validation.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// ErrMalformedLine is returned by Read for a line that is not a JSON object
// of the expected shape.
var ErrMalformedLine = errors.New("malformed line")

// line is the on-the-wire shape of one record.
type line struct {
	RecordID string   `json:"record_id"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
}

// Write encodes every record of dir to w, one JSON object per line.
func Write(w io.Writer, dir *types.Directory) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for name, r := range dir.All() {
		phones := make([]string, 0, r.Len())
		for _, p := range r.Phones() {
			phones = append(phones, p.String())
		}
		// Encode appends the newline.
		if err := enc.Encode(line{RecordID: r.ID(), Name: name, Phones: phones}); err != nil {
			return fmt.Errorf("writing record %q: %w", name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	return nil
}

// Read decodes JSON Lines from r into a new Directory. Blank lines are
// skipped. Every name and phone is validated as if added by hand, so a
// line with a bad value fails with the matching types error.
func Read(r io.Reader) (*types.Directory, error) {
	dir := types.NewDirectory()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var l line
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", n, ErrMalformedLine, err)
		}
		rec, err := types.RestoreRecord(l.RecordID, l.Name, l.Phones)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		dir.AddRecord(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}
	return dir, nil
}
