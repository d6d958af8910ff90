package server

import (
	"context"
	"testing"
	"time"

	"go-shortlink/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestGRPCServer_Health(t *testing.T) {
	// Arrange
	srv := NewGRPCServer(&conf.Server{GRPC: &conf.Endpoint{
		Addr:    "127.0.0.1:0",
		Timeout: conf.Duration{Duration: time.Second},
	}}, log.DefaultLogger)
	endpoint, err := srv.Endpoint()
	require.NoError(t, err)

	go func() { _ = srv.Start(context.Background()) }()
	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	conn, err := grpc.NewClient(endpoint.Host, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := healthpb.NewHealthClient(conn)

	// Act & Assert
	assert.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 3*time.Second, 50*time.Millisecond)
}
