package sqlite_test

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/repository/sqlite"
)

func TestKV_GetMissing(t *testing.T) {
	kv := newTestDB(t).KV()

	_, err := kv.Get(context.Background(), "jat_jobs")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKV_PutOverwrites(t *testing.T) {
	kv := newTestDB(t).KV()
	ctx := context.Background()

	if err := kv.Put(ctx, "jat_theme", []byte(`"light"`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := kv.Put(ctx, "jat_theme", []byte(`"dark"`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	got, err := kv.Get(ctx, "jat_theme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `"dark"` {
		t.Fatalf("expected overwritten value, got %s", got)
	}
}

func TestKV_KeysAndDelete(t *testing.T) {
	kv := newTestDB(t).KV()
	ctx := context.Background()

	for _, k := range []string{"b", "a", "c"} {
		if err := kv.Put(ctx, k, []byte("1")); err != nil {
			t.Fatalf("Put %s: %v", k, err)
		}
	}
	if err := kv.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := kv.Delete(ctx, "never-written"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}

	keys, err := kv.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if !slices.Equal(keys, []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %v", keys)
	}
}

func TestKV_PutErrorIsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer db.Close()

	wantErr := errors.New("disk full")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_entries")).
		WithArgs("jat_jobs", []byte("[]"), sqlmock.AnyArg()).
		WillReturnError(wantErr)

	err = sqlite.NewKV(db).Put(context.Background(), "jat_jobs", []byte("[]"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped %v, got %v", wantErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestKV_GetErrorIsNotNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_entries WHERE key = ?")).
		WithArgs("jat_auth").
		WillReturnError(errors.New("database is locked"))

	_, err = sqlite.NewKV(db).Get(context.Background(), "jat_auth")
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected a storage error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
