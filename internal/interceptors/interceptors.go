package interceptors

import (
	"strings"

	"google.golang.org/grpc"
)

// UnaryInterceptorApplicable reports whether interceptor must be applied to the call
type UnaryInterceptorApplicable func(*grpc.UnaryServerInfo) bool

func isUnaryInterceptorApplicable(info *grpc.UnaryServerInfo, fns ...UnaryInterceptorApplicable) bool {
	for _, fn := range fns {
		if !fn(info) {
			return false
		}
	}
	return true
}

// UnaryApplicableForService limits interceptor to methods of the service
func UnaryApplicableForService(svc string) UnaryInterceptorApplicable {
	return func(info *grpc.UnaryServerInfo) bool {
		// FullMethod is the full RPC method string, i.e., /package.service/method.
		return strings.HasPrefix(info.FullMethod, "/"+svc+"/")
	}
}
