package middleware

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dtroode/emr-server/internal/logger"
)

// idleAfter is how long a peer's limiter is kept without requests.
const idleAfter = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PeerLimiter throttles requests per remote host. It satisfies the
// go-grpc-middleware ratelimit.Limiter interface.
type PeerLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	now      func() time.Time
	logger   *logger.Logger
}

// NewPeerLimiter allows rps requests per second with the given burst per host.
func NewPeerLimiter(rps float64, burst int, logger *logger.Logger) *PeerLimiter {
	return &PeerLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		logger:   logger,
	}
}

// Limit returns ResourceExhausted once the caller's host runs out of tokens.
func (l *PeerLimiter) Limit(ctx context.Context) error {
	host := peerHost(ctx)

	if !l.limiter(host).AllowN(l.now(), 1) {
		l.logger.Info("Rate limit middleware: request throttled", "peer", host)
		return status.Error(codes.ResourceExhausted, "too many requests, try again later")
	}
	return nil
}

func (l *PeerLimiter) limiter(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for h, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleAfter {
			delete(l.visitors, h)
		}
	}

	v, ok := l.visitors[host]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[host] = v
	}
	v.lastSeen = now
	return v.limiter
}

func peerHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}
