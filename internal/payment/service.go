// Package payment 实现支付授权边界：本地校验 + 熔断保护下的网关调用。
package payment

import (
	"context"
	"errors"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/common/logger"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/middleware"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
)

// Service 实现 job.PaymentAuthorizer。
type Service struct {
	gateway Gateway
	breaker *middleware.CircuitBreaker
	log     logger.Logger

	now func() time.Time
}

func NewService(gateway Gateway, maxFailures int, resetTimeout time.Duration, log logger.Logger) *Service {
	return &Service{
		gateway: gateway,
		breaker: middleware.NewCircuitBreaker("payment-gateway", maxFailures, resetTimeout),
		log:     log,
		now:     time.Now,
	}
}

// Authorize 先本地校验，再经熔断器调网关。
// 业务拒绝与 ctx 取消/超时不计入熔断失败；网关故障计入。
func (s *Service) Authorize(ctx context.Context, req job.PaymentRequest) (*job.PaymentAuthorization, error) {
	if err := ValidateRequest(req, s.now()); err != nil {
		return nil, err
	}

	var (
		authz    *job.PaymentAuthorization
		declined *job.PaymentDeclinedError
	)
	err := s.breaker.Call(ctx, func() error {
		result, err := s.gateway.Authorize(ctx, req)
		if err != nil {
			if errors.As(err, &declined) {
				// 拒绝是正常业务结果，不计入熔断失败
				s.logDecline(req, declined)
				return nil
			}
			return err
		}
		authz = result
		return nil
	})
	if err != nil {
		if errors.Is(err, middleware.ErrCircuitOpen) {
			if s.log != nil {
				s.log.WithField("job_id", req.JobID).Warn("payment gateway circuit open, rejecting authorize")
			}
		}
		return nil, err
	}
	if declined != nil {
		return nil, declined
	}
	return authz, nil
}

func (s *Service) logDecline(req job.PaymentRequest, declined *job.PaymentDeclinedError) {
	if s.log == nil {
		return
	}
	s.log.WithFields(map[string]interface{}{
		"job_id": req.JobID,
		"amount": req.Amount,
	}).Infof("payment declined: %s", declined.Reason)
}
