package util

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeLocker remembers which keys were set and can simulate an outage.
type fakeLocker struct {
	seen map[string]bool
	err  error
}

func (f *fakeLocker) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if f.seen[key] {
		return redis.NewBoolResult(false, nil)
	}
	f.seen[key] = true
	return redis.NewBoolResult(true, nil)
}

func TestAcquireOnce_FirstHitThenDuplicate(t *testing.T) {
	d := NewDeduper(&fakeLocker{seen: map[string]bool{}}, time.Hour, nil)

	if !d.AcquireOnce(context.Background(), "notify", "m-1") {
		t.Fatal("first acquisition rejected")
	}
	if d.AcquireOnce(context.Background(), "notify", "m-1") {
		t.Error("duplicate acquisition allowed")
	}
}

func TestAcquireOnce_KeysAreScopedByHandler(t *testing.T) {
	d := NewDeduper(&fakeLocker{seen: map[string]bool{}}, time.Hour, nil)

	if !d.AcquireOnce(context.Background(), "notify", "m-1") {
		t.Fatal("first acquisition rejected")
	}
	if !d.AcquireOnce(context.Background(), "stats", "m-1") {
		t.Error("same key under a different handler rejected")
	}
	if !d.AcquireOnce(context.Background(), "notify", "m-2") {
		t.Error("different key under the same handler rejected")
	}
}

func TestAcquireOnce_FailsOpenWhenRedisDown(t *testing.T) {
	d := NewDeduper(&fakeLocker{err: errors.New("connection refused")}, time.Hour, nil)

	if !d.AcquireOnce(context.Background(), "notify", "m-1") {
		t.Error("processing dropped while redis unavailable")
	}
}
