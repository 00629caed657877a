package store

import (
	"bytes"
	"time"

	"github.com/vmihailenco/msgpack/v4"
	"gitlab.com/fetchk/fetchk"
)

const decisionPredicate = "decision"

// Decision stored for a uri in a crawl session
type Decision struct {
	SessionID string
	URI       string
	Status    fetchk.FetchStatus
	Count     int64
	FirstSeen time.Time
	LastSeen  time.Time
}

type decisionRecord struct {
	SessionID string    `msgpack:"sid"`
	URI       string    `msgpack:"uri"`
	Status    int8      `msgpack:"status"`
	Count     int64     `msgpack:"count"`
	FirstSeen time.Time `msgpack:"first"`
	LastSeen  time.Time `msgpack:"last"`
}

// MakeKey of a predicate and id
func MakeKey(id []byte, predicate string) []byte {
	key := []byte(predicate)
	key = append(key, byte(':'))
	key = append(key, id...)
	return key
}

// GetID of key from a pred:key
func GetID(key []byte) []byte {
	split := bytes.SplitN(key, []byte(":"), 2)
	if len(split) == 1 {
		return []byte{}
	}
	return split[1]
}

// GetPredicate from pred:key
func GetPredicate(key []byte) []byte {
	split := bytes.SplitN(key, []byte(":"), 2)
	return split[0]
}

// DecisionKey is decision:<session>:<uri>, session ids never contain ':'
func DecisionKey(sessionID, uri string) []byte {
	return MakeKey([]byte(sessionID+":"+uri), decisionPredicate)
}

// DecisionPrefix for iterating a session, or every session if sessionID is empty
func DecisionPrefix(sessionID string) []byte {
	if sessionID == "" {
		return []byte(decisionPredicate + ":")
	}
	return DecisionKey(sessionID, "")
}

// EncodeDecision into msgpack bytes
func EncodeDecision(d *Decision) ([]byte, error) {
	return msgpack.Marshal(&decisionRecord{
		SessionID: d.SessionID,
		URI:       d.URI,
		Status:    int8(d.Status),
		Count:     d.Count,
		FirstSeen: d.FirstSeen,
		LastSeen:  d.LastSeen,
	})
}

// DecodeDecision from msgpack bytes
func DecodeDecision(val []byte) (*Decision, error) {
	r := &decisionRecord{}
	if err := msgpack.Unmarshal(val, r); err != nil {
		return nil, err
	}
	return &Decision{
		SessionID: r.SessionID,
		URI:       r.URI,
		Status:    fetchk.FetchStatus(r.Status),
		Count:     r.Count,
		FirstSeen: r.FirstSeen,
		LastSeen:  r.LastSeen,
	}, nil
}
