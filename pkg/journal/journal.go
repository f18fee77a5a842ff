// Package journal records encode and decode operations in a local Pebble
// store so past runs can be listed. Entries are keyed by KSUID, which sorts
// chronologically, so listing is a plain range scan.
package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// Entry describes one recorded codec operation.
type Entry struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"` // "encode" or "decode"
	Image     string    `json:"image,omitempty"`
	Bits      int       `json:"bits"`
	CreatedAt time.Time `json:"created_at"`
}

// Journal is a Pebble-backed operation log.
type Journal struct {
	db *pebble.DB
}

// Open opens (or creates) the journal at path.
func Open(path string) (*Journal, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open journal at %s: %w", path, err)
	}
	return &Journal{db: db}, nil
}

// Record stores a new entry and returns its generated ID.
func (j *Journal) Record(op, image string, bits int) (string, error) {
	id := ksuid.New()
	entry := Entry{
		ID:        id.String(),
		Op:        op,
		Image:     image,
		Bits:      bits,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("marshal journal entry: %w", err)
	}
	if err := j.db.Set(id.Bytes(), data, pebble.NoSync); err != nil {
		return "", fmt.Errorf("write journal entry: %w", err)
	}
	return entry.ID, nil
}

// List returns up to limit entries, newest first. A limit of 0 or less
// returns everything.
func (j *Journal) List(limit int) ([]Entry, error) {
	iter, err := j.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	for valid := iter.Last(); valid; valid = iter.Prev() {
		if limit > 0 && len(entries) >= limit {
			break
		}
		var entry Entry
		if err := json.Unmarshal(iter.Value(), &entry); err != nil {
			return nil, fmt.Errorf("unmarshal journal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Close closes the underlying store.
func (j *Journal) Close() error {
	return j.db.Close()
}
