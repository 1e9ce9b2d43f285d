package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/jobtracker/internal/handler"
	"github.com/msomdec/jobtracker/internal/persist"
	"github.com/msomdec/jobtracker/internal/repository/sqlite"
	"github.com/msomdec/jobtracker/internal/service"
	"github.com/msomdec/jobtracker/internal/store"
	"github.com/msomdec/jobtracker/internal/transfer"
)

const testJWTSecret = "test-secret-for-handler-tests"

type testApp struct {
	store   *store.Store
	toaster *store.Toaster
	auth    *service.AuthService
	deps    handler.Deps
	bridge  *persist.Bridge
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	bridge := persist.NewBridge(db.KV())
	st := store.New()
	toaster := store.NewToaster(st, time.Minute)
	syncer := persist.NewSync(bridge, st, persist.WithNotifier(toaster))
	syncer.Start(context.Background())
	t.Cleanup(syncer.Stop)

	auth := service.NewAuthService(persist.NewAccounts(bridge), st, toaster, testJWTSecret, 4)
	return &testApp{
		store:   st,
		toaster: toaster,
		auth:    auth,
		bridge:  bridge,
		deps: handler.Deps{
			Store:        st,
			Toaster:      toaster,
			Auth:         auth,
			Applications: service.NewApplicationService(st, toaster),
			Jobs:         service.NewJobService(st, toaster),
			Preferences:  service.NewPreferencesService(st),
			Transfer:     transfer.NewReconciler(st, toaster),
			Health:       db.Ping,
		},
	}
}

func (a *testApp) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, a.deps)
	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)
	return srv
}
