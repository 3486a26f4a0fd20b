// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// GeneralKey is the key of the general counters.
const GeneralKey = "general"

const harvestKeyPrefix = "harvest_object_id"

// ErrGeneralMissing is returned when the general key is not set.
var ErrGeneralMissing = errors.New("redis key 'general' not set")

// Client is the subset of the Redis API the store uses. *redis.Client
// implements it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// RedisOptions locates the link checker's database.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// Dial returns a client for opts. No connection is made until first use.
func Dial(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

// Store reads and writes link checker records.
type Store struct {
	client    Client
	scanCount int64
}

// NewStore returns a store backed by client.
func NewStore(client Client) *Store {
	return &Store{client: client, scanCount: 500}
}

// General returns the general counters.
func (s *Store) General(ctx context.Context) (General, error) {
	var g General
	val, err := s.client.Get(ctx, GeneralKey).Result()
	if errors.Is(err, redis.Nil) {
		return g, ErrGeneralMissing
	}
	if err != nil {
		return g, fmt.Errorf("get %s: %w", GeneralKey, err)
	}
	if err := json.Unmarshal([]byte(val), &g); err != nil {
		return g, fmt.Errorf("decode %s: %w", GeneralKey, err)
	}
	return g, nil
}

// SetGeneral stores the general counters.
func (s *Store) SetGeneral(ctx context.Context, g General) error {
	b, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode %s: %w", GeneralKey, err)
	}
	if err := s.client.Set(ctx, GeneralKey, b, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", GeneralKey, err)
	}
	return nil
}

// Keys returns every dataset key, sorted. The general key and harvest
// bookkeeping keys are excluded.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, "*", s.scanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("scan keys: %w", err)
		}
		for _, k := range batch {
			if k == GeneralKey || strings.HasPrefix(k, harvestKeyPrefix) {
				continue
			}
			keys = append(keys, k)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Strings(keys)
	return dedupe(keys), nil
}

// Records returns all dataset records. Records that cannot be decoded are
// logged and skipped.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(keys))
	for _, k := range keys {
		val, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", k, err)
		}
		var r Record
		if err := json.Unmarshal([]byte(val), &r); err != nil {
			slog.Error("data set error", "key", k, "error", err)
			continue
		}
		records = append(records, r)
	}
	slog.Debug("loaded link checker records", "keys", len(keys), "records", len(records))
	return records, nil
}

// Put stores r under its id.
func (s *Store) Put(ctx context.Context, r Record) error {
	if r.ID == "" {
		return errors.New("record has no id")
	}
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", r.ID, err)
	}
	if err := s.client.Set(ctx, r.ID, b, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", r.ID, err)
	}
	return nil
}

// Load reads the general counters and all records.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	g, err := s.General(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{General: g, Records: records}, nil
}

// Import writes every record of snap and then its general counters.
func (s *Store) Import(ctx context.Context, snap *Snapshot) error {
	for _, r := range snap.Records {
		if err := s.Put(ctx, r); err != nil {
			return err
		}
	}
	return s.SetGeneral(ctx, snap.General)
}

// ReadSnapshot decodes a JSON snapshot export.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// WriteSnapshot encodes snap as indented JSON.
func WriteSnapshot(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, k := range sorted {
		if i > 0 && k == sorted[i-1] {
			continue
		}
		out = append(out, k)
	}
	return out
}
