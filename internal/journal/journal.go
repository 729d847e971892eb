// Package journal records tree mutations as an append-only stream of JSON
// lines. Journals are written for auditing only and are never replayed.
package journal

import "time"

type EventType byte

const (
	_ EventType = iota
	EventInsert
	EventDelete
)

func (t EventType) String() string {
	switch t {
	case EventInsert:
		return "insert"
	case EventDelete:
		return "delete"
	}
	return "unknown"
}

type Event struct {
	Sequence uint64    `json:"seq"`
	Session  string    `json:"session"`
	Type     EventType `json:"type"`
	Key      int       `json:"key"`
	Time     time.Time `json:"time"`
}

type Journal interface {
	WriteInsert(key int)
	WriteDelete(key int)
	Err() <-chan error
	Run()
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) WriteInsert(int)   {}
func (Nop) WriteDelete(int)   {}
func (Nop) Err() <-chan error { return nil }
func (Nop) Run()              {}
func (Nop) Close() error      { return nil }
