//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package cache implements the persistent position cache (§4.13): an
// embedded on-disk key-value store, keyed by the 8-byte big-endian
// Zobrist key, that lets engine.Go short-circuit iterative deepening
// when a deep-enough result for the current position was already
// computed in a previous process. It is pure speedup: a missing or
// corrupt data directory degrades to a disabled no-op rather than
// failing engine startup.
package cache

import (
	"encoding/binary"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/op/go-logging"

	myLogging "github.com/Mario-O123/chessgo/internal/logging"
	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

// PositionRecord is the cached search result for one position: the same
// shape a transposition table entry carries, since the cache is
// effectively a TT that survives process restarts.
type PositionRecord struct {
	BestMove  Move
	Score     Value
	Depth     int8
	ValueType ValueType
}

// Cache wraps an embedded key-value store. A zero-value Cache (or one
// returned by Open when the directory can't be used) is always
// "disabled": every Get is a miss and every Put is a no-op.
type Cache struct {
	log     *logging.Logger
	db      *badger.DB
	enabled bool
}

// Open opens (creating if needed) the on-disk store at dataDir. It
// never returns an error: any failure to open is logged and the
// returned Cache degrades to disabled.
func Open(dataDir string) *Cache {
	log := myLogging.GetLog("cache")
	c := &Cache{log: log}

	opts := badger.DefaultOptions(dataDir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		log.Warningf("position cache disabled: could not open %s: %v", dataDir, err)
		return c
	}
	c.db = db
	c.enabled = true
	return c
}

// Disabled returns a Cache that is always a no-op, for callers that
// have turned the position cache off in configuration and so never
// want to touch disk at all.
func Disabled() *Cache {
	return &Cache{log: myLogging.GetLog("cache")}
}

// Enabled reports whether the cache is backed by a usable store.
func (c *Cache) Enabled() bool {
	return c.enabled
}

// Close releases the underlying store, if any.
func (c *Cache) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}
}

// Get looks up key, returning its record and true on a hit. Any read or
// decode error is treated as a miss; the cache is an optimization, not
// a source of truth.
func (c *Cache) Get(key zobrist.Key) (PositionRecord, bool) {
	if !c.enabled {
		return PositionRecord{}, false
	}

	var rec PositionRecord
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(encodeKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			r, decodeErr := decodeRecord(val)
			if decodeErr != nil {
				return decodeErr
			}
			rec = r
			found = true
			return nil
		})
	})
	if err != nil {
		c.log.Debugf("position cache read error, treating as miss: %v", err)
		return PositionRecord{}, false
	}
	return rec, found
}

// Put stores rec under key, overwriting whatever was there. Errors are
// logged and otherwise ignored.
func (c *Cache) Put(key zobrist.Key, rec PositionRecord) {
	if !c.enabled {
		return
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(encodeKey(key), encodeRecord(rec))
	})
	if err != nil {
		c.log.Debugf("position cache write error: %v", err)
	}
}

func encodeKey(key zobrist.Key) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(key))
	return buf
}

// encodeRecord uses a plain fmt-formatted value string rather than a
// code-generated wire format: simple to read off-disk and sufficient
// for four scalar fields.
func encodeRecord(rec PositionRecord) []byte {
	return []byte(fmt.Sprintf("%d %d %d %d", uint64(rec.BestMove.MoveOf()), int32(rec.Score), rec.Depth, int8(rec.ValueType)))
}

func decodeRecord(val []byte) (PositionRecord, error) {
	var moveBits uint64
	var score int32
	var depth int8
	var valueType int8
	_, err := fmt.Sscanf(string(val), "%d %d %d %d", &moveBits, &score, &depth, &valueType)
	if err != nil {
		return PositionRecord{}, err
	}
	return PositionRecord{
		BestMove:  Move(moveBits),
		Score:     Value(score),
		Depth:     depth,
		ValueType: ValueType(valueType),
	}, nil
}
