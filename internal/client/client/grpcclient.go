package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/common"
	pb "github.com/dmitrijs2005/idgateway/internal/proto"
	"github.com/dmitrijs2005/idgateway/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// serviceTokenTTL bounds the lifetime of each minted token.
const serviceTokenTTL = time.Minute

type GRPCClient struct {
	endpointURL string
	caller      string
	secret      []byte
	conn        *grpc.ClientConn
	membership  pb.MembershipServiceClient
	profile     pb.ProfileServiceClient
	health      healthpb.HealthClient
}

func withServiceToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.ServiceTokenHeaderName)
	md.Set(common.ServiceTokenHeaderName, "Bearer "+token)

	return metadata.NewOutgoingContext(ctx, md)
}

// serviceTokenInterceptor attaches a fresh service token to every call when
// a secret is configured.
func (s *GRPCClient) serviceTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if len(s.secret) == 0 {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	token, err := auth.GenerateToken(s.caller, auth.AudienceService, s.secret, serviceTokenTTL)
	if err != nil {
		return fmt.Errorf("mint service token: %w", err)
	}

	return invoker(withServiceToken(ctx, token), method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily. caller and secret are used to mint
// service tokens; an empty secret sends none.
func NewGRPCClient(endpointURL, caller, secret string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, caller: caller, secret: []byte(secret)}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.serviceTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.membership = pb.NewMembershipServiceClient(conn)
	c.profile = pb.NewProfileServiceClient(conn)
	c.health = healthpb.NewHealthClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// UpdateMembership grants or revokes the administrative role. A refused
// update is reported through ok and message, not as an error.
func (s *GRPCClient) UpdateMembership(ctx context.Context, userID string, grant bool) (ok bool, message string, err error) {
	resp, err := s.membership.UpdateUserMembership(ctx, &pb.UpdateMembershipRequest{UserId: userID, Success: grant})
	if err != nil {
		return false, "", s.mapError(err)
	}
	return resp.GetSuccess(), resp.GetMessage(), nil
}

func (s *GRPCClient) Claims(ctx context.Context, subjectID string) ([]Claim, error) {
	resp, err := s.profile.GetProfileData(ctx, &pb.ProfileRequest{SubjectId: subjectID})
	if err != nil {
		return nil, s.mapError(err)
	}

	claims := make([]Claim, 0, len(resp.GetClaims()))
	for _, c := range resp.GetClaims() {
		claims = append(claims, Claim{Type: c.GetType(), Value: c.GetValue()})
	}
	return claims, nil
}

func (s *GRPCClient) IsActive(ctx context.Context, subjectID string) (bool, error) {
	resp, err := s.profile.IsActive(ctx, &pb.ProfileRequest{SubjectId: subjectID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetActive(), nil
}

// Health reports the overall serving status of the gateway.
func (s *GRPCClient) Health(ctx context.Context) (string, error) {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetStatus().String(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
