package middleware

import (
	"testing"
	"time"
)

func TestTokenBucket_DrainsToCapacity(t *testing.T) {
	bucket := NewTokenBucket(1, 3)

	for i := 0; i < 3; i++ {
		if !bucket.Allow() {
			t.Fatalf("request %d: expected the burst to be allowed", i+1)
		}
	}
	if bucket.Allow() {
		t.Error("expected the bucket to be empty after the burst")
	}
}

func TestTokenBucket_Refills(t *testing.T) {
	bucket := NewTokenBucket(100, 1)

	if !bucket.Allow() {
		t.Fatal("expected the first request to pass")
	}
	if bucket.Allow() {
		t.Fatal("expected the bucket to be empty")
	}

	time.Sleep(50 * time.Millisecond)

	if !bucket.Allow() {
		t.Error("expected the bucket to refill over time")
	}
}
