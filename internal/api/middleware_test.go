package api

import (
	"testing"
	"time"
)

func TestRateLimiterReusesBucketPerClient(t *testing.T) {
	rl := newRateLimiter(1, 1, time.Minute, nil)

	a := rl.get("10.0.0.1")
	if rl.get("10.0.0.1") != a {
		t.Fatal("same client got a new bucket")
	}
	if rl.get("10.0.0.2") == a {
		t.Fatal("different clients share a bucket")
	}
	if n := rl.limiters.ItemCount(); n != 2 {
		t.Fatalf("buckets = %d, want 2", n)
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	rl := newRateLimiter(1, 1, 20*time.Millisecond, nil)

	first := rl.get("10.0.0.1")
	if !first.Allow() {
		t.Fatal("first request should pass")
	}

	time.Sleep(50 * time.Millisecond)
	rl.limiters.DeleteExpired()

	if n := rl.limiters.ItemCount(); n != 0 {
		t.Fatalf("buckets after idle = %d, want 0", n)
	}
	if rl.get("10.0.0.1") == first {
		t.Fatal("idle client kept its old bucket")
	}
}
