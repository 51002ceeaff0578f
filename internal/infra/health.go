package infra

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/loyalty/internal/interceptors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const probeTimeout = 3 * time.Second

// Probe checks availability of a single dependency.
// Name is exposed as gRPC health service name.
type Probe struct {
	Name  string
	Check func(context.Context) error
}

// MongoProbe pings mongo primary
func MongoProbe(client *mongo.Client) Probe {
	return Probe{
		Name: "mongo",
		Check: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	}
}

// PostgresProbe pings postgres pool
func PostgresProbe(pool *pgxpool.Pool) Probe {
	return Probe{
		Name: "postgres",
		Check: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
	}
}

// HealthChecker periodically runs probes and publishes results via gRPC health service.
// Overall status (empty service name) is SERVING only if every probe succeeds.
type HealthChecker struct {
	health   *health.Server
	interval time.Duration
	probes   []Probe
}

// NewHealthChecker builds new HealthChecker
func NewHealthChecker(hs *health.Server, interval time.Duration, probes ...Probe) *HealthChecker {
	return &HealthChecker{
		health:   hs,
		interval: interval,
		probes:   probes,
	}
}

// Check runs all probes once
func (h *HealthChecker) Check(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING

	for _, p := range h.probes {
		st := healthpb.HealthCheckResponse_SERVING

		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		if err := p.Check(probeCtx); err != nil {
			logrus.WithField("probe", p.Name).Warnf("health probe failed - %v", err)
			st = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		cancel()

		h.health.SetServingStatus(p.Name, st)
	}
	h.health.SetServingStatus("", overall)
}

// Run checks probes every interval until ctx is done, then marks all services as not serving
func (h *HealthChecker) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// HealthServer builds gRPC server exposing grpc.health.v1 service
func HealthServer(hs *health.Server) *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.RecoveryUnaryInterceptor(),
		interceptors.LoggingUnaryInterceptor(),
		interceptors.ErrorUnaryInterceptor(interceptors.UnaryApplicableForService(healthpb.Health_ServiceDesc.ServiceName)),
	))
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}
