package middleware

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dtroode/emr-server/internal/testutil"
)

func peerCtx(addr string) context.Context {
	tcp, _ := net.ResolveTCPAddr("tcp", addr)
	return peer.NewContext(context.Background(), &peer.Peer{Addr: tcp})
}

func TestPeerLimiter_Limit(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewPeerLimiter(1, 2, testutil.MakeNoopLogger())
	l.now = func() time.Time { return now }

	a := peerCtx("10.0.0.1:5000")
	aOtherPort := peerCtx("10.0.0.1:6000")
	b := peerCtx("10.0.0.2:5000")

	require.NoError(t, l.Limit(a))
	require.NoError(t, l.Limit(aOtherPort))

	err := l.Limit(a)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// other hosts have their own bucket
	assert.NoError(t, l.Limit(b))

	now = now.Add(time.Second)
	assert.NoError(t, l.Limit(a))
}

func TestPeerLimiter_EvictsIdle(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewPeerLimiter(1, 1, testutil.MakeNoopLogger())
	l.now = func() time.Time { return now }

	require.NoError(t, l.Limit(peerCtx("10.0.0.1:1")))
	require.Len(t, l.visitors, 1)

	now = now.Add(idleAfter + time.Second)
	require.NoError(t, l.Limit(peerCtx("10.0.0.2:1")))
	assert.Len(t, l.visitors, 1)
	assert.Contains(t, l.visitors, "10.0.0.2")
}

func TestPeerLimiter_NoPeer(t *testing.T) {
	l := NewPeerLimiter(1, 1, testutil.MakeNoopLogger())

	require.NoError(t, l.Limit(context.Background()))
	assert.Error(t, l.Limit(context.Background()))
}
