// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"context"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeClient is an in-memory Client. Scan returns keys in pages of pageSize
// so cursor handling is exercised.
type fakeClient struct {
	data     map[string]string
	pageSize int
	getErr   error
	scanErr  error
	scans    int
}

var _ Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{data: make(map[string]string), pageSize: 2}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	default:
		f.data[key] = fmt.Sprint(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Scan(_ context.Context, cursor uint64, match string, _ int64) *redis.ScanCmd {
	f.scans++
	if f.scanErr != nil {
		return redis.NewScanCmdResult(nil, 0, f.scanErr)
	}
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		if ok, _ := path.Match(match, k); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := int(cursor)
	end := start + f.pageSize
	if end >= len(keys) {
		if start > len(keys) {
			start = len(keys)
		}
		return redis.NewScanCmdResult(keys[start:], 0, nil)
	}
	return redis.NewScanCmdResult(keys[start:end], uint64(end), nil)
}
