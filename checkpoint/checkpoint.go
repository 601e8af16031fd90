// Package checkpoint persists per-rank iteration segments in a local
// SQLite file so an interrupted run can resume from its last completed
// iteration. Every rank writes its own file; a restart must use the
// same rank count so the segments line up with the row partition.
package checkpoint

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS checkpoints (
	iteration INTEGER PRIMARY KEY,
	residual  REAL NOT NULL,
	segment   BLOB NOT NULL
);`

// Store is one rank's checkpoint database.
type Store struct {
	db   *sql.DB
	rank int
}

// Open creates or reopens the checkpoint database for a rank. The file
// lives at "<base>-<rank>.db" next to whatever path the caller chose.
func Open(base string, rank int) (*Store, error) {
	path := fmt.Sprintf("%s-%d.db", base, rank)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open checkpoint store %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "could not initialize checkpoint store %s", path)
	}
	return &Store{db: db, rank: rank}, nil
}

// Save records the segment for an iteration, replacing any previous
// record at the same iteration.
func (s *Store) Save(iteration int, residual float64, segment []float64) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(segment); err != nil {
		return errors.Wrap(err, "could not encode checkpoint segment")
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO checkpoints (iteration, residual, segment) VALUES (?, ?, ?)",
		iteration, residual, buf.Bytes(),
	)
	if err != nil {
		return errors.Wrapf(err, "could not save checkpoint for iteration %d", iteration)
	}
	return nil
}

// Latest returns the highest checkpointed iteration, or ok=false when
// the store is empty.
func (s *Store) Latest() (iteration int, ok bool, err error) {
	row := s.db.QueryRow("SELECT MAX(iteration) FROM checkpoints")
	var it sql.NullInt64
	if err := row.Scan(&it); err != nil {
		return 0, false, errors.Wrap(err, "could not query latest checkpoint")
	}
	if !it.Valid {
		return 0, false, nil
	}
	return int(it.Int64), true, nil
}

// Load returns the segment and residual stored for an iteration.
func (s *Store) Load(iteration int) (segment []float64, residual float64, err error) {
	row := s.db.QueryRow("SELECT residual, segment FROM checkpoints WHERE iteration = ?", iteration)
	var blob []byte
	if err := row.Scan(&residual, &blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, errors.Errorf("no checkpoint for iteration %d", iteration)
		}
		return nil, 0, errors.Wrapf(err, "could not load checkpoint for iteration %d", iteration)
	}
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&segment); err != nil {
		return nil, 0, errors.Wrap(err, "could not decode checkpoint segment")
	}
	return segment, residual, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }
