package storage

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"chaindb/internal/metrics"
	storagepb "chaindb/internal/storage/gen"

	"github.com/tidwall/wal"
	"google.golang.org/protobuf/proto"
)

const walFolder = "wal"

var ErrClosed = errors.New("store closed")

type Options struct {
	NoSync bool
	// CompactThreshold is the number of log records after which the log is
	// rewritten with only the live keys. Zero disables compaction.
	CompactThreshold uint64
}

// Store keeps every key in memory and makes each Put durable by appending a
// record to a write-ahead log, which is replayed on Open.
type Store struct {
	mu   sync.RWMutex
	dir  string
	log  *wal.Log
	data map[string][]byte

	records          uint64
	compactThreshold uint64
}

func Open(dir string, opts Options) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	walOpts := *wal.DefaultOptions
	walOpts.NoSync = opts.NoSync
	log, err := wal.Open(filepath.Join(dir, walFolder), &walOpts)
	if err != nil {
		return nil, fmt.Errorf("wal.Open: %w", err)
	}

	s := &Store{
		dir:              dir,
		log:              log,
		data:             make(map[string][]byte),
		compactThreshold: opts.CompactThreshold,
	}

	if err := s.replay(); err != nil {
		_ = log.Close()
		return nil, err
	}

	slog.Debug("opened store", "dir", dir, "keys", len(s.data), "records", s.records)
	return s, nil
}

func (s *Store) replay() error {
	first, err := s.log.FirstIndex()
	if err != nil {
		return fmt.Errorf("wal.FirstIndex: %w", err)
	}
	last, err := s.log.LastIndex()
	if err != nil {
		return fmt.Errorf("wal.LastIndex: %w", err)
	}
	if last == 0 {
		return nil
	}

	for idx := first; idx <= last; idx++ {
		data, err := s.log.Read(idx)
		if err != nil {
			return fmt.Errorf("wal.Read(%d): %w", idx, err)
		}

		var rec storagepb.Record
		if err := proto.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("unmarshal record %d: %w", idx, err)
		}
		s.data[string(rec.GetKey())] = rec.GetValue()
	}

	s.records = last - first + 1
	return nil
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.log == nil {
		return nil, false, ErrClosed
	}

	v, ok := s.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (s *Store) Put(key, value []byte) error {
	data, err := proto.Marshal(&storagepb.Record{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.log == nil {
		return ErrClosed
	}

	last, err := s.log.LastIndex()
	if err != nil {
		return fmt.Errorf("wal.LastIndex: %w", err)
	}

	start := time.Now()
	if err := s.log.Write(last+1, data); err != nil {
		return fmt.Errorf("wal.Write(%d): %w", last+1, err)
	}
	metrics.WALWritesTotal.Inc()
	metrics.WALWriteDuration.Observe(time.Since(start).Seconds())

	s.data[string(key)] = bytes.Clone(value)
	s.records++

	if s.shouldCompact() {
		if err := s.compactLocked(); err != nil {
			slog.Error("wal compaction failed", "dir", s.dir, "error", err)
		}
	}
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Records returns the number of records currently held by the log.
func (s *Store) Records() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *Store) Compact() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.log == nil {
		return ErrClosed
	}
	if len(s.data) == 0 {
		return nil
	}
	return s.compactLocked()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.log == nil {
		return nil
	}
	err := s.log.Close()
	s.log = nil
	return err
}

func (s *Store) shouldCompact() bool {
	if s.compactThreshold == 0 || len(s.data) == 0 {
		return false
	}
	return s.records > s.compactThreshold && s.records >= 2*uint64(len(s.data))
}

// compactLocked appends the live key set after the current tail and then
// drops everything before it. A crash in between leaves duplicate records,
// which replay resolves to the same values.
func (s *Store) compactLocked() error {
	last, err := s.log.LastIndex()
	if err != nil {
		return fmt.Errorf("wal.LastIndex: %w", err)
	}

	batch := new(wal.Batch)
	idx := last
	for k, v := range s.data {
		data, err := proto.Marshal(&storagepb.Record{Key: []byte(k), Value: v})
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		idx++
		batch.Write(idx, data)
	}

	if err := s.log.WriteBatch(batch); err != nil {
		return fmt.Errorf("wal.WriteBatch: %w", err)
	}
	if err := s.log.TruncateFront(last + 1); err != nil {
		return fmt.Errorf("wal.TruncateFront(%d): %w", last+1, err)
	}

	before := s.records
	s.records = uint64(len(s.data))
	metrics.StorageCompactionsTotal.Inc()
	slog.Info("compacted wal", "dir", s.dir, "records_before", before, "records_after", s.records)
	return nil
}
