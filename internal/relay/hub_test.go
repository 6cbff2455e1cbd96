package relay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBroadcast_ExcludesSender(t *testing.T) {
	h := NewHub(zap.NewNop())
	sender := &peer{id: "sender", send: make(chan []byte, 1)}
	other := &peer{id: "other", send: make(chan []byte, 1)}
	h.register(sender)
	h.register(other)

	h.Broadcast("sender", []byte("hello"))

	assert.Empty(t, sender.send, "sender never receives its own message")
	require.Len(t, other.send, 1)
	assert.Equal(t, []byte("hello"), <-other.send)
}

func TestBroadcast_SkipsSlowPeer(t *testing.T) {
	h := NewHub(zap.NewNop())
	slow := &peer{id: "slow", send: make(chan []byte)} // unbuffered, nobody reading
	fast := &peer{id: "fast", send: make(chan []byte, 1)}
	h.register(slow)
	h.register(fast)

	done := make(chan struct{})
	go func() {
		h.Broadcast("someone-else", []byte("x"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow peer")
	}
	assert.Len(t, fast.send, 1)
}

func TestUnregister_Idempotent(t *testing.T) {
	h := NewHub(zap.NewNop())
	p := &peer{id: "p", send: make(chan []byte, 1)}
	h.register(p)

	h.unregister(p)
	h.unregister(p) // second call must not close the channel twice

	assert.Equal(t, 0, h.PeerCount())
}

func TestHealthz_ReportsPeerCount(t *testing.T) {
	h := NewHub(zap.NewNop())
	h.register(&peer{id: "p", send: make(chan []byte, 1)})
	srv := Router(h, zap.NewNop())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "peers=1")
}

func TestRelay_EndToEndLoadEvent(t *testing.T) {
	h := NewHub(zap.NewNop())
	srv := httptest.NewServer(Router(h, zap.NewNop()))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	a, err := DialClient(wsURL)
	require.NoError(t, err)
	defer a.Close()
	b, err := DialClient(wsURL)
	require.NoError(t, err)
	defer b.Close()

	require.Eventually(t, func() bool { return h.PeerCount() == 2 },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, a.PublishLoad("1BNA"))

	select {
	case id := <-b.Loads():
		assert.Equal(t, "1BNA", id)
	case <-time.After(2 * time.Second):
		t.Fatal("peer never received the load event")
	}
	assert.Empty(t, a.Loads(), "sender does not hear its own load back")
}

func TestClient_PublishAfterClose(t *testing.T) {
	h := NewHub(zap.NewNop())
	srv := httptest.NewServer(Router(h, zap.NewNop()))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	c, err := DialClient(wsURL)
	require.NoError(t, err)
	c.Close()

	assert.Error(t, c.PublishLoad("1CRN"))
}
