// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package eventbus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/rocket-welder/sdk-go/lib/codec"
)

// journalMagic opens every journal file. The trailing byte is the
// format version; readers reject files with a different version.
var journalMagic = [4]byte{'R', 'W', 'J', 1}

// ErrCorruptJournal is wrapped by JournalReader errors caused by a
// damaged file: bad magic, truncated frames, or payload hash
// mismatches.
var ErrCorruptJournal = errors.New("eventbus: corrupt journal")

// maxFrameHeaderLen bounds the length prefix of a frame header so a
// corrupt prefix cannot drive a huge allocation. Real headers are a
// few hundred bytes; 64 KiB leaves generous room for long stream and
// type names.
const maxFrameHeaderLen = 64 << 10

// frameDomainKey is the BLAKE3 keyed-hash domain for journal frame
// payloads. The bytes are the ASCII domain name zero-padded to the 32
// bytes NewKeyed requires; readable ASCII keeps the key inspectable
// in hex dumps without weakening the keyed mode.
var frameDomainKey = [32]byte{
	'r', 'o', 'c', 'k', 'e', 't', 'w', 'e', 'l', 'd', 'e', 'r', '.',
	'j', 'o', 'u', 'r', 'n', 'a', 'l', '.', 'f', 'r', 'a', 'm', 'e',
	0, 0, 0, 0, 0, 0,
}

// frameHeader precedes each payload on disk, CBOR-encoded with a
// uvarint length prefix. Size/StoredSize let the reader allocate
// exactly and detect truncation; Hash covers the uncompressed
// payload so corruption is caught regardless of compression tag.
type frameHeader struct {
	Stream      string `cbor:"stream"`
	ID          string `cbor:"id"`
	Type        string `cbor:"type"`
	Compression uint8  `cbor:"compression"`
	Size        int    `cbor:"size"`
	StoredSize  int    `cbor:"stored"`
	Hash        []byte `cbor:"hash"`
}

// JournalOptions configures a Journal.
type JournalOptions struct {
	// Compression selects the payload compression tag. The zero
	// value is CompressionZstd, the right choice for the JSON
	// payloads the control contracts produce.
	Compression CompressionTag

	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Journal records envelopes to a writer as length-prefixed frames for
// later replay. Record may be called from multiple goroutines (bus
// delivery handlers for several streams); frames are serialized by an
// internal mutex. Journal does not buffer: callers who want batched
// writes should hand it a *bufio.Writer and flush on shutdown.
type Journal struct {
	mu            sync.Mutex
	w             io.Writer
	compression   CompressionTag
	logger        *slog.Logger
	subscriptions []Subscription
	wroteMagic    bool
}

// NewJournal creates a Journal writing frames to w.
func NewJournal(w io.Writer, opts JournalOptions) *Journal {
	compression := opts.Compression
	if compression == compressionUnset {
		compression = CompressionZstd
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{
		w:           w,
		compression: compression,
		logger:      logger,
	}
}

// Record writes one envelope as a journal frame.
func (j *Journal) Record(stream string, env Envelope) error {
	stored, tag, err := compress(env.Data, j.compression)
	if err != nil {
		return fmt.Errorf("compressing %s frame: %w", env.Type, err)
	}

	hash := hashFramePayload(env.Data)
	header, err := codec.Marshal(frameHeader{
		Stream:      stream,
		ID:          env.ID,
		Type:        env.Type,
		Compression: uint8(tag),
		Size:        len(env.Data),
		StoredSize:  len(stored),
		Hash:        hash[:],
	})
	if err != nil {
		return fmt.Errorf("encoding frame header: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.wroteMagic {
		if _, err := j.w.Write(journalMagic[:]); err != nil {
			return fmt.Errorf("writing journal magic: %w", err)
		}
		j.wroteMagic = true
	}

	var prefix [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(prefix[:], uint64(len(header)))
	if _, err := j.w.Write(prefix[:n]); err != nil {
		return fmt.Errorf("writing frame prefix: %w", err)
	}
	if _, err := j.w.Write(header); err != nil {
		return fmt.Errorf("writing frame header: %w", err)
	}
	if _, err := j.w.Write(stored); err != nil {
		return fmt.Errorf("writing frame payload: %w", err)
	}
	return nil
}

// Attach subscribes the journal to the given streams on a bus. Each
// delivered envelope is recorded; record failures are logged and the
// envelope is skipped, since a recorder must never stall delivery.
func (j *Journal) Attach(bus Bus, streams ...string) error {
	for _, stream := range streams {
		stream := stream
		sub, err := bus.Subscribe(stream, func(env Envelope) {
			if err := j.Record(stream, env); err != nil {
				j.logger.Error("journal record failed",
					"stream", stream, "type", env.Type, "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("subscribing journal to %q: %w", stream, err)
		}
		j.mu.Lock()
		j.subscriptions = append(j.subscriptions, sub)
		j.mu.Unlock()
	}
	return nil
}

// Close cancels the journal's bus subscriptions. It does not close
// the underlying writer, which the caller owns.
func (j *Journal) Close() {
	j.mu.Lock()
	subscriptions := j.subscriptions
	j.subscriptions = nil
	j.mu.Unlock()
	for _, sub := range subscriptions {
		sub.Close()
	}
}

// JournalReader replays frames written by Journal.
type JournalReader struct {
	r            io.Reader
	br           byteReader
	checkedMagic bool
}

// NewJournalReader creates a reader over a journal stream.
func NewJournalReader(r io.Reader) *JournalReader {
	return &JournalReader{r: r, br: byteReader{r: r}}
}

// Next returns the next recorded envelope and the stream it was
// published on. It returns io.EOF at the clean end of the journal and
// an error wrapping ErrCorruptJournal for damaged frames.
func (jr *JournalReader) Next() (string, Envelope, error) {
	if !jr.checkedMagic {
		var magic [4]byte
		if _, err := io.ReadFull(jr.r, magic[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return "", Envelope{}, io.EOF
			}
			return "", Envelope{}, fmt.Errorf("reading journal magic: %w", err)
		}
		if magic != journalMagic {
			return "", Envelope{}, fmt.Errorf("%w: bad magic %x", ErrCorruptJournal, magic)
		}
		jr.checkedMagic = true
	}

	headerLen, err := binary.ReadUvarint(&jr.br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", Envelope{}, io.EOF
		}
		return "", Envelope{}, fmt.Errorf("%w: reading frame prefix: %v", ErrCorruptJournal, err)
	}

	if headerLen > maxFrameHeaderLen {
		return "", Envelope{}, fmt.Errorf("%w: frame header length %d exceeds %d", ErrCorruptJournal, headerLen, maxFrameHeaderLen)
	}

	headerBytes := make([]byte, headerLen)
	if _, err := io.ReadFull(jr.r, headerBytes); err != nil {
		return "", Envelope{}, fmt.Errorf("%w: truncated frame header: %v", ErrCorruptJournal, err)
	}
	var header frameHeader
	if err := codec.Unmarshal(headerBytes, &header); err != nil {
		return "", Envelope{}, fmt.Errorf("%w: decoding frame header: %v", ErrCorruptJournal, err)
	}

	stored := make([]byte, header.StoredSize)
	if _, err := io.ReadFull(jr.r, stored); err != nil {
		return "", Envelope{}, fmt.Errorf("%w: truncated frame payload: %v", ErrCorruptJournal, err)
	}

	data, err := decompress(stored, CompressionTag(header.Compression), header.Size)
	if err != nil {
		return "", Envelope{}, fmt.Errorf("%w: %v", ErrCorruptJournal, err)
	}

	hash := hashFramePayload(data)
	if !bytes.Equal(header.Hash, hash[:]) {
		return "", Envelope{}, fmt.Errorf("%w: payload hash mismatch for %s", ErrCorruptJournal, header.ID)
	}

	return header.Stream, Envelope{ID: header.ID, Type: header.Type, Data: data}, nil
}

// hashFramePayload computes the frame-domain BLAKE3 keyed hash of an
// uncompressed payload.
func hashFramePayload(data []byte) [32]byte {
	// NewKeyed only fails for a wrong key length, which the fixed
	// array rules out.
	hasher, err := blake3.NewKeyed(frameDomainKey[:])
	if err != nil {
		panic("eventbus: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash [32]byte
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// byteReader adapts an io.Reader for binary.ReadUvarint.
type byteReader struct {
	r io.Reader
}

func (br *byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
