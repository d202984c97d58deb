package server

import (
	"context"
	"testing"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/common/auth"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/config"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestUnaryJWTAuthInterceptorAndRBAC(t *testing.T) {
	authCfg := config.AuthConfig{
		Enabled:   true,
		JWTSecret: "test-secret",
		Issuer:    "towlinkdrive",
		Audience:  "towlinkdrive",
		RBAC: map[string][]string{
			"/towlink.job.JobService/CreateJob": {"dispatcher"},
			"/towlink.job.JobService/AcceptJob": {},
		},
	}

	tokenStr, _, err := auth.GenerateOperatorToken(authCfg, "tower-1", []string{"tower", "dispatcher"}, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	authIC := UnaryJWTAuthInterceptor(authCfg, nil)
	rbacIC := UnaryRBACInterceptor(authCfg)
	chain := UnaryChain(authIC, rbacIC)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+tokenStr))
	info := &grpc.UnaryServerInfo{FullMethod: "/towlink.job.JobService/CreateJob"}

	_, err = chain(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		op, ok := OperatorFromContext(ctx)
		if !ok {
			t.Fatalf("missing operator in ctx")
		}
		if op.TowerID != "tower-1" {
			t.Fatalf("tower id mismatch: %s", op.TowerID)
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("expected allow, got err=%v", err)
	}

	// 换一个只有 tower 角色的 token，应被 RBAC 拒绝
	tokenStr2, _, err := auth.GenerateOperatorToken(authCfg, "tower-2", []string{"tower"}, time.Hour)
	if err != nil {
		t.Fatalf("sign token2: %v", err)
	}
	ctx2 := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+tokenStr2))

	_, err = chain(ctx2, nil, info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	if err == nil {
		t.Fatalf("expected permission denied, got nil")
	}
}

func TestUnaryJWTAuthInterceptorMissingToken(t *testing.T) {
	authCfg := config.AuthConfig{
		Enabled:   true,
		JWTSecret: "test-secret",
		Issuer:    "towlinkdrive",
	}
	chain := UnaryChain(UnaryJWTAuthInterceptor(authCfg, nil))
	info := &grpc.UnaryServerInfo{FullMethod: "/towlink.job.JobService/GetJob"}

	_, err := chain(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	if err == nil {
		t.Fatalf("expected unauthenticated, got nil")
	}
}
