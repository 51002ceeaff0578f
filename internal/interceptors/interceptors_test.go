package interceptors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

func failingHandler(err error) grpc.UnaryHandler {
	return func(context.Context, any) (any, error) {
		return nil, err
	}
}

func TestErrorUnaryInterceptor(t *testing.T) {
	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: healthCheckMethod}
	interceptor := ErrorUnaryInterceptor()

	t.Log("status errors are passed as is")
	{
		_, err := interceptor(ctx, nil, info, failingHandler(status.Error(codes.NotFound, "unknown service")))
		require.Equal(t, codes.NotFound, status.Code(err))
	}

	t.Log("deadline is reported as deadline exceeded")
	{
		_, err := interceptor(ctx, nil, info, failingHandler(context.DeadlineExceeded))
		require.Equal(t, codes.DeadlineExceeded, status.Code(err))
	}

	t.Log("plain errors are hidden")
	{
		_, err := interceptor(ctx, nil, info, failingHandler(errors.New("connection refused")))
		require.Equal(t, codes.Internal, status.Code(err))
		require.Equal(t, "Internal server error", status.Convert(err).Message())
	}

	t.Log("interceptor is skipped for other services")
	{
		scoped := ErrorUnaryInterceptor(UnaryApplicableForService("loyalty.Admin"))
		plain := errors.New("connection refused")
		_, err := scoped(ctx, nil, info, failingHandler(plain))
		require.ErrorIs(t, err, plain)
	}
}

func TestRecoveryUnaryInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: healthCheckMethod}
	panicking := func(context.Context, any) (any, error) {
		panic("boom")
	}

	t.Log("panic is converted to internal error")
	{
		res, err := RecoveryUnaryInterceptor()(context.Background(), nil, info, panicking)
		require.Nil(t, res)
		require.Equal(t, codes.Internal, status.Code(err))
	}
}

func TestUnaryApplicableForService(t *testing.T) {
	applicable := UnaryApplicableForService("grpc.health.v1.Health")

	require.True(t, applicable(&grpc.UnaryServerInfo{FullMethod: healthCheckMethod}))
	require.False(t, applicable(&grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.HealthX/Check"}))
}
