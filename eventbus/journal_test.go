// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package eventbus

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

// jsonPayload is a representative ChangeControls payload: repetitive
// JSON that every compression tag should shrink.
var jsonPayload = []byte(`{"Id":"0123","Updates":{"btn-1":{"color":"Success","color2":"Success","color3":"Success","color4":"Success"}}}`)

func recordAll(t *testing.T, tag CompressionTag, envelopes []Envelope) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	journal := NewJournal(&buf, JournalOptions{Compression: tag})
	for _, env := range envelopes {
		if err := journal.Record("Ui.Commands-s1", env); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	return &buf
}

func TestJournalRoundtrip(t *testing.T) {
	for _, tag := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(tag.String(), func(t *testing.T) {
			envelopes := []Envelope{
				{ID: "a", Type: "DefineControl", Data: jsonPayload},
				{ID: "b", Type: "ChangeControls", Data: jsonPayload},
				{ID: "c", Type: "DeleteControls", Data: []byte(`{"Id":"c","ControlIds":["x"]}`)},
			}
			buf := recordAll(t, tag, envelopes)

			reader := NewJournalReader(buf)
			for i, want := range envelopes {
				stream, got, err := reader.Next()
				if err != nil {
					t.Fatalf("Next frame %d: %v", i, err)
				}
				if stream != "Ui.Commands-s1" {
					t.Errorf("frame %d stream = %q", i, stream)
				}
				if got.ID != want.ID || got.Type != want.Type || !bytes.Equal(got.Data, want.Data) {
					t.Errorf("frame %d = %+v, want %+v", i, got, want)
				}
			}
			if _, _, err := reader.Next(); err != io.EOF {
				t.Fatalf("after last frame: err = %v, want io.EOF", err)
			}
		})
	}
}

func TestJournalEmptyFileIsCleanEOF(t *testing.T) {
	reader := NewJournalReader(strings.NewReader(""))
	if _, _, err := reader.Next(); err != io.EOF {
		t.Fatalf("empty journal: err = %v, want io.EOF", err)
	}
}

func TestJournalRejectsBadMagic(t *testing.T) {
	reader := NewJournalReader(strings.NewReader("NOPE-this-is-not-a-journal"))
	if _, _, err := reader.Next(); !errors.Is(err, ErrCorruptJournal) {
		t.Fatalf("err = %v, want ErrCorruptJournal", err)
	}
}

func TestJournalDetectsPayloadCorruption(t *testing.T) {
	buf := recordAll(t, CompressionNone, []Envelope{
		{ID: "a", Type: "DefineControl", Data: jsonPayload},
	})

	// Flip a byte in the stored payload (the tail of the frame).
	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xff

	reader := NewJournalReader(bytes.NewReader(raw))
	if _, _, err := reader.Next(); !errors.Is(err, ErrCorruptJournal) {
		t.Fatalf("err = %v, want ErrCorruptJournal", err)
	}
}

func TestJournalDetectsTruncation(t *testing.T) {
	buf := recordAll(t, CompressionZstd, []Envelope{
		{ID: "a", Type: "DefineControl", Data: jsonPayload},
	})

	raw := buf.Bytes()
	reader := NewJournalReader(bytes.NewReader(raw[:len(raw)-3]))
	if _, _, err := reader.Next(); !errors.Is(err, ErrCorruptJournal) {
		t.Fatalf("err = %v, want ErrCorruptJournal", err)
	}
}

func TestJournalRejectsOversizedHeaderPrefix(t *testing.T) {
	// Valid magic followed by a length prefix far past any real
	// header. The reader must fail before allocating that much.
	var buf bytes.Buffer
	buf.Write(journalMagic[:])
	var prefix [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(prefix[:], 8<<30)
	buf.Write(prefix[:n])

	reader := NewJournalReader(&buf)
	if _, _, err := reader.Next(); !errors.Is(err, ErrCorruptJournal) {
		t.Fatalf("err = %v, want ErrCorruptJournal", err)
	}
}

func TestJournalIncompressiblePayloadFallsBackToNone(t *testing.T) {
	// A payload shorter than any compressed representation.
	envelopes := []Envelope{{ID: "a", Type: "ButtonDown", Data: []byte(`{}`)}}
	buf := recordAll(t, CompressionZstd, envelopes)

	reader := NewJournalReader(buf)
	_, got, err := reader.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !bytes.Equal(got.Data, envelopes[0].Data) {
		t.Fatalf("payload = %q", got.Data)
	}
}

func TestJournalAttachRecordsBusTraffic(t *testing.T) {
	bus := NewMemoryBus()
	defer bus.Close()

	buf := &safeBuffer{}
	journal := NewJournal(buf, JournalOptions{})
	if err := journal.Attach(bus, "Ui.Commands-s1", "Ui.Events-s1"); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	defer journal.Close()

	ctx := context.Background()
	if err := bus.Publish(ctx, "Ui.Commands-s1", Envelope{ID: "c1", Type: "DefineControl", Data: jsonPayload}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := bus.Publish(ctx, "Ui.Events-s1", Envelope{ID: "e1", Type: "ButtonDown", Data: jsonPayload}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// Delivery is asynchronous; poll until both frames land.
	deadline := time.Now().Add(5 * time.Second)
	for {
		reader := NewJournalReader(bytes.NewReader(buf.Snapshot()))
		streams := make(map[string]bool)
		for {
			stream, _, err := reader.Next()
			if err != nil {
				break
			}
			streams[stream] = true
		}
		if streams["Ui.Commands-s1"] && streams["Ui.Events-s1"] {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("journal streams = %v, want both", streams)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// safeBuffer is a mutex-guarded bytes.Buffer: journal handlers write
// from bus delivery goroutines while the test reads snapshots.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) Snapshot() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}
