package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener the gRPC server accepts connections on,
// either TLS or plain TCP.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is the long-running gRPC front of the EMR. Stop drains in-flight
// calls until ctx expires.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
