package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileJournal writes events to an io.Writer from a single goroutine started
// by Run. Run must be called before any Write method.
type FileJournal struct {
	events  chan<- Event
	errors  <-chan error
	done    chan struct{}
	lastSeq uint64
	session string
	w       io.Writer
	now     func() time.Time
}

func NewJournal(w io.Writer) *FileJournal {
	return &FileJournal{
		session: uuid.NewString(),
		w:       w,
		now:     time.Now,
	}
}

func NewFileJournal(filename string) (*FileJournal, error) {
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open journal file: %w", err)
	}
	return NewJournal(file), nil
}

func (l *FileJournal) Session() string {
	return l.session
}

func (l *FileJournal) WriteInsert(key int) {
	l.events <- Event{Type: EventInsert, Key: key}
}

func (l *FileJournal) WriteDelete(key int) {
	l.events <- Event{Type: EventDelete, Key: key}
}

func (l *FileJournal) Err() <-chan error {
	return l.errors
}

func (l *FileJournal) writeEvent(event Event) error {
	event.Sequence = l.lastSeq
	event.Session = l.session
	event.Time = l.now().UTC()

	eventJson, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = l.w.Write(append(eventJson, '\n'))
	if err != nil {
		return err
	}
	if f, ok := l.w.(*os.File); ok {
		f.Sync()
	}
	return nil
}

func (l *FileJournal) Run() {
	events := make(chan Event, 16)
	l.events = events

	errors := make(chan error, 1)
	l.errors = errors

	l.done = make(chan struct{})

	go func() {
		defer close(l.done)
		failed := false
		for event := range events {
			if failed {
				continue
			}
			l.lastSeq++

			err := l.writeEvent(event)
			if err != nil {
				errors <- err
				failed = true
			}
		}
	}()
}

// Close flushes pending events and closes the underlying writer if it is an
// io.Closer.
func (l *FileJournal) Close() error {
	if l.events != nil {
		close(l.events)
		<-l.done
	}
	if c, ok := l.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadEvents decodes a journal. Decoding stops at the first malformed line
// or out-of-order sequence number, which is reported on the error channel.
func ReadEvents(r io.Reader) (<-chan Event, <-chan error) {
	scanner := bufio.NewScanner(r)
	eventChan := make(chan Event)
	errorChan := make(chan error)

	go func() {
		defer close(eventChan)
		defer close(errorChan)

		var lastSeq uint64
		for scanner.Scan() {
			var event Event
			eventStr := scanner.Text()
			err := json.NewDecoder(strings.NewReader(eventStr)).Decode(&event)
			if err != nil {
				errorChan <- fmt.Errorf("error parsing journal entry: %w", err)
				return
			}

			if lastSeq >= event.Sequence {
				errorChan <- fmt.Errorf("journal sequence numbers out of order: %d after %d", event.Sequence, lastSeq)
				return
			}

			lastSeq = event.Sequence
			eventChan <- event
		}
		if err := scanner.Err(); err != nil {
			errorChan <- err
		}
	}()
	return eventChan, errorChan
}
