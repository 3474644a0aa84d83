package httpserver_test

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
}

func waitReady(t *testing.T, srv *httpserver.Server) {
	t.Helper()
	select {
	case <-srv.Ready():
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not start")
	}
}

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithLogger(logger.New(logger.WithOutput(&logs))),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	waitReady(t, srv)

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
	require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown is a no-op")
	assert.Contains(t, logs.String(), "http server started")
	assert.Contains(t, logs.String(), "http server stopped")
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()
	waitReady(t, srv)

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
	err = srv.Run(context.Background(), okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)

	srv = httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Run(ctx, okHandler()) }()
	waitReady(t, srv)
	err = srv.Run(ctx, okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart, "second run")
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:0", ReadTimeout: time.Second})
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.PanicsWithValue(t, "httpserver: shutdown timeout must be positive, got 0s", func() { httpserver.WithShutdownTimeout(0) })
	assert.Panics(t, func() { httpserver.WithReadHeaderTimeout(-time.Second) })
}
