package store

import (
	"os"
	"time"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/fetchk/fetchk"
)

const maxConflictRetries = 5

// DecisionStore keeps the fetch filter verdict of every uri seen in a crawl
// session. It implements fetchk.Recorder.
type DecisionStore struct {
	Store     *badger.DB
	filepath  string
	sessionID string
}

// NewDecisionStore for the given session, Init must be called before use
func NewDecisionStore(filepath, sessionID string) *DecisionStore {
	return &DecisionStore{filepath: filepath, sessionID: sessionID}
}

// Init opens (or creates) the decision database
func (s *DecisionStore) Init() error {
	if err := fetchk.ValidateSessionID(s.sessionID); err != nil {
		return err
	}

	var err error

	if err = os.MkdirAll(s.filepath, 0755); err != nil {
		return errors.Wrap(err, "create decision store dir")
	}

	s.Store, err = badger.Open(badger.DefaultOptions(s.filepath).WithLogger(nil))

	if errors.Is(err, badger.ErrTruncateNeeded) {
		log.Warn().Msg("there was a failure re-opening database, trying to recover")
		opts := badger.DefaultOptions(s.filepath).WithLogger(nil)
		opts.Truncate = true
		s.Store, err = badger.Open(opts)
	}

	if err != nil {
		return errors.Wrap(err, "open decision store")
	}
	return nil
}

// SessionID decisions are recorded under
func (s *DecisionStore) SessionID() string {
	return s.sessionID
}

// Record the status of uri, bumping the count if it was seen before
func (s *DecisionStore) Record(uri string, status fetchk.FetchStatus) error {
	key := DecisionKey(s.sessionID, uri)
	now := time.Now()

	var err error
	for i := 0; i < maxConflictRetries; i++ {
		err = s.Store.Update(func(txn *badger.Txn) error {
			d := &Decision{SessionID: s.sessionID, URI: uri, FirstSeen: now}
			item, err := txn.Get(key)
			if err == nil {
				val, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				if d, err = DecodeDecision(val); err != nil {
					return err
				}
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			d.Status = status
			d.Count++
			d.LastSeen = now
			bytez, err := EncodeDecision(d)
			if err != nil {
				return err
			}
			return txn.Set(key, bytez)
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	return errors.Wrap(err, "record decision")
}

// Get the decision for uri in this session
func (s *DecisionStore) Get(uri string) (*Decision, error) {
	var d *Decision
	err := s.Store.View(func(txn *badger.Txn) error {
		item, err := txn.Get(DecisionKey(s.sessionID, uri))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			d, err = DecodeDecision(val)
			return err
		})
	})
	return d, err
}

// Decisions of sessionID (every session if empty). A zero status returns
// decisions of any status.
func (s *DecisionStore) Decisions(sessionID string, status fetchk.FetchStatus) ([]*Decision, error) {
	decisions := make([]*Decision, 0)
	err := s.iterate(sessionID, func(d *Decision) {
		if status == 0 || d.Status == status {
			decisions = append(decisions, d)
		}
	})
	return decisions, err
}

// Counts per status for sessionID (every session if empty)
func (s *DecisionStore) Counts(sessionID string) (map[fetchk.FetchStatus]int64, error) {
	counts := make(map[fetchk.FetchStatus]int64)
	err := s.iterate(sessionID, func(d *Decision) {
		counts[d.Status]++
	})
	return counts, err
}

func (s *DecisionStore) iterate(sessionID string, fn func(d *Decision)) error {
	if err := fetchk.ValidateSessionID(sessionID); err != nil {
		return err
	}
	prefix := DecisionPrefix(sessionID)
	return s.Store.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			d, err := DecodeDecision(val)
			if err != nil {
				return errors.Wrapf(err, "decode decision %s", GetID(it.Item().KeyCopy(nil)))
			}
			fn(d)
		}
		return nil
	})
}

// Close the decision store
func (s *DecisionStore) Close() error {
	return s.Store.Close()
}

var _ Storer = (*DecisionStore)(nil)
