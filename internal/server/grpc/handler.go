package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/idgateway/internal/common"
	pb "github.com/dmitrijs2005/idgateway/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type membershipHandler struct {
	pb.UnimplementedMembershipServiceServer
	s *GRPCServer
}

// UpdateUserMembership never fails at the RPC level: every outcome,
// unknown user and store failure included, travels in the response.
func (h *membershipHandler) UpdateUserMembership(ctx context.Context, req *pb.UpdateMembershipRequest) (*pb.UpdateMembershipResponse, error) {
	caller, _ := CallerFromContext(ctx)
	h.s.logger.Info(ctx, "Membership update request", "user_id", req.GetUserId(), "success", req.GetSuccess(), "caller", caller)

	res := h.s.membership.UpdateMembership(ctx, req.GetUserId(), req.GetSuccess())

	return &pb.UpdateMembershipResponse{Success: res.Success, Message: res.Message}, nil
}

type profileHandler struct {
	pb.UnimplementedProfileServiceServer
	s *GRPCServer
}

func (h *profileHandler) GetProfileData(ctx context.Context, req *pb.ProfileRequest) (*pb.ProfileDataResponse, error) {
	if req.GetSubjectId() == "" {
		return nil, status.Error(codes.InvalidArgument, "subject_id is required")
	}

	claims, err := h.s.profile.ClaimsFor(ctx, req.GetSubjectId())
	if err != nil {
		return nil, h.s.statusFromError(ctx, err)
	}

	resp := &pb.ProfileDataResponse{Claims: make([]*pb.Claim, 0, len(claims))}
	for _, c := range claims {
		resp.Claims = append(resp.Claims, &pb.Claim{Type: c.Type, Value: c.Value})
	}
	return resp, nil
}

func (h *profileHandler) IsActive(ctx context.Context, req *pb.ProfileRequest) (*pb.IsActiveResponse, error) {
	if req.GetSubjectId() == "" {
		return nil, status.Error(codes.InvalidArgument, "subject_id is required")
	}

	active, err := h.s.profile.IsActive(ctx, req.GetSubjectId())
	if err != nil {
		return nil, h.s.statusFromError(ctx, err)
	}
	return &pb.IsActiveResponse{Active: active}, nil
}

func (s *GRPCServer) statusFromError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrSubjectNotFound):
		s.logger.Error(ctx, "profile requested for missing subject", "error", err)
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrStoreUnavailable):
		s.logger.Warn(ctx, "store unavailable", "error", err)
		return status.Error(codes.Unavailable, "store unavailable")
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
