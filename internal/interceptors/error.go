package interceptors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func contextErrToGrpcCode(err error) codes.Code {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// ErrorUnaryInterceptor converts error retrieved from handler to gRPC error with corresponding code
func ErrorUnaryInterceptor(applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		res, err := h(ctx, req)
		if err == nil {
			return res, nil
		}

		if _, ok := status.FromError(err); ok { // it is already grpc status error
			return nil, err
		}
		logrus.Errorf("error occurred on grpc request processing - %v", err)

		code := contextErrToGrpcCode(err)
		if code == codes.Internal {
			return nil, status.Error(code, "Internal server error")
		}
		return nil, status.Error(code, err.Error())
	}
}

// RecoveryUnaryInterceptor turns panic raised by handler into Internal error
func RecoveryUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (res any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("method", info.FullMethod).Errorf("panic recovered - %v", r)
				res, err = nil, status.Error(codes.Internal, "Internal server error")
			}
		}()
		return h(ctx, req)
	}
}

// LoggingUnaryInterceptor logs method, resulting code and latency of each call
func LoggingUnaryInterceptor(applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		start := time.Now()
		res, err := h(ctx, req)

		entry := logrus.WithFields(logrus.Fields{
			"method":  info.FullMethod,
			"code":    status.Code(err).String(),
			"latency": fmt.Sprint(time.Since(start)),
		})
		if err != nil {
			entry.Warn("grpc call failed")
		} else {
			entry.Debug("grpc call served")
		}
		return res, err
	}
}
