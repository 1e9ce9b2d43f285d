package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/repository/memory"
)

func TestKV_RoundTrip(t *testing.T) {
	kv := memory.NewKV()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "k"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	in := []byte("value")
	if err := kv.Put(ctx, "k", in); err != nil {
		t.Fatalf("Put: %v", err)
	}
	in[0] = 'X'

	got, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "value" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}

	got[0] = 'Y'
	again, _ := kv.Get(ctx, "k")
	if string(again) != "value" {
		t.Fatalf("returned value aliased stored slice: %q", again)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	keys, _ := kv.Keys(ctx)
	if len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}
