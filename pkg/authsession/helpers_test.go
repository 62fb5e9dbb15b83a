package authsession_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wemolhq/wemolkit/pkg/apiclient"
	"github.com/wemolhq/wemolkit/pkg/authsession"
	"github.com/wemolhq/wemolkit/pkg/cookiestore"
)

// requestLog records the paths the client actually hit, so tests can verify
// endpoint paths as part of the contract.
type requestLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *requestLog) record(path string) {
	l.mu.Lock()
	l.paths = append(l.paths, path)
	l.mu.Unlock()
}

func (l *requestLog) recorded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...)
}

func (l *requestLog) count() int {
	return len(l.recorded())
}

type fixture struct {
	client *authsession.Client
	jar    *cookiestore.MemoryJar
	log    *requestLog
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFixture wires a session client against an httptest server running the
// given handler, with cookies seeded from raw.
func newFixture(t *testing.T, raw string, handler http.HandlerFunc, opts ...authsession.Option) *fixture {
	t.Helper()

	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r.URL.Path)
		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	return newFixtureWithURL(t, raw, srv.URL, log, opts...)
}

// newOfflineFixture wires a session client against an address nothing is
// listening on, to simulate network failure.
func newOfflineFixture(t *testing.T, raw string, opts ...authsession.Option) *fixture {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	return newFixtureWithURL(t, raw, srv.URL, &requestLog{}, opts...)
}

func newFixtureWithURL(t *testing.T, raw, baseURL string, log *requestLog, opts ...authsession.Option) *fixture {
	t.Helper()

	jar := cookiestore.NewMemoryJarFrom(raw)
	cookies, err := cookiestore.New(jar)
	require.NoError(t, err)

	api, err := apiclient.New(baseURL, apiclient.WithJar(jar))
	require.NoError(t, err)

	opts = append([]authsession.Option{authsession.WithLogger(quietLogger())}, opts...)
	return &fixture{
		client: authsession.New(api, cookies, opts...),
		jar:    jar,
		log:    log,
	}
}

func jsonResponse(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}
