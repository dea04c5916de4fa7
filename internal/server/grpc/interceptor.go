package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/common"
	pb "github.com/dmitrijs2005/idgateway/internal/proto"
	"github.com/dmitrijs2005/idgateway/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const callerKey ctxKey = "caller"

// CallerFromContext returns the service that authenticated the call, if any.
func CallerFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(callerKey).(string)
	return v, ok
}

// protectedMethods require a service token.
var protectedMethods = map[string]bool{
	pb.MembershipService_UpdateUserMembership_FullMethodName: true,
}

func (s *GRPCServer) serviceTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if len(s.serviceSecret) == 0 || !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.ServiceTokenHeaderName)
		if len(values) > 0 {
			token = strings.TrimSpace(strings.TrimPrefix(values[0], "Bearer "))
		}
	}
	if len(token) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	caller, err := auth.GetSubjectFromToken(token, auth.AudienceService, s.serviceSecret)
	if err != nil {
		s.logger.Warn(ctx, "rejected service token", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, callerKey, caller)
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
