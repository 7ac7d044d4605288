package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/ratelimit"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/emr-server/internal/api/grpc/handler"
	"github.com/dtroode/emr-server/internal/api/grpc/middleware"
	"github.com/dtroode/emr-server/internal/config"
	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

// Router wires the EMR handler and its interceptors into a gRPC server.
type Router struct {
	emr            *handler.EMR
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	rateLimit      config.RateLimit
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	emr *handler.EMR,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	rateLimit config.RateLimit,
	logger *logger.Logger,
) *Router {
	return &Router{
		emr:            emr,
		tokenService:   tokenService,
		contextManager: contextManager,
		rateLimit:      rateLimit,
		logger:         logger,
	}
}

func isCredentialCall(c interceptors.CallMeta) bool {
	m := c.FullMethod()
	return m == handler.MethodRegister || m == handler.MethodLogin
}

func isHealthCall(c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

func credentialCall(_ context.Context, c interceptors.CallMeta) bool {
	return isCredentialCall(c)
}

func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return !isCredentialCall(c) && !isHealthCall(c)
}

// Register builds the gRPC server with the EMR and health services.
// Register and Login are rate limited per peer, every other EMR call
// needs a bearer token.
func (r *Router) Register() (*grpc.Server, *health.Server) {
	recoverer := middleware.NewRecovery(r.logger)
	logging := middleware.NewLogging(r.logger)
	limiter := middleware.NewPeerLimiter(r.rateLimit.RPS, r.rateLimit.Burst, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoverer.HandlePanic)),
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				ratelimit.UnaryServerInterceptor(limiter),
				selector.MatchFunc(credentialCall),
			),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(recoverer.HandlePanic)),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	)

	s.RegisterService(r.emr.ServiceDesc(), r.emr)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(handler.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return s, hs
}
