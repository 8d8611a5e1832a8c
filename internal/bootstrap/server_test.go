package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func TestRunHTTPServer_DrainsOnCancel(t *testing.T) {
	audit := &recordingAudit{}
	ctx, cancel := context.WithCancelCause(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- RunHTTPServer(ctx, http.NotFoundHandler(), ServerConfig{
			Port:            "0",
			ShutdownTimeout: time.Second,
		}, audit)
	}()

	require.Eventually(t, func() bool {
		return len(audit.actions()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel(errors.New("terminated"))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, []string{"SERVER_START", "SERVER_SHUTDOWN"}, audit.actions())
	shutdown := audit.entries[1]
	assert.Equal(t, "terminated", shutdown.Meta["cause"])
	assert.Equal(t, "1s", shutdown.Meta["grace"])
}

func TestRunHTTPServer_BindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	audit := &recordingAudit{}
	err = RunHTTPServer(context.Background(), http.NotFoundHandler(), ServerConfig{Port: port}, audit)

	require.Error(t, err)
	assert.Empty(t, audit.actions())
}
