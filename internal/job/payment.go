package job

import (
	"context"
	"fmt"
	"time"
)

// CreditCard 信用卡数据（只在授权调用时使用，不落库）。
type CreditCard struct {
	Number         string
	ExpiryMonth    int
	ExpiryYear     int
	CVV            string
	CardholderName string
}

// PaymentRequest 支付授权入参。
// IdempotencyKey 由 job id + 版本号派生：超时重试不会二次扣款。
type PaymentRequest struct {
	JobID          string
	Amount         int64 // 单位：分
	Method         PaymentMethod
	Card           *CreditCard
	IdempotencyKey string
}

// PaymentAuthorization 授权成功的结果。
type PaymentAuthorization struct {
	TransactionID string
	AuthorizedAt  time.Time
}

// PaymentAuthorizer 支付授权边界：核心只调用这一个操作，结果即权威。
// 网关拒绝返回 *PaymentDeclinedError；超出调用方时限返回 ctx 错误。
type PaymentAuthorizer interface {
	Authorize(ctx context.Context, req PaymentRequest) (*PaymentAuthorization, error)
}

// PaymentDeclinedError 网关拒绝（与输入校验失败不同）；作业保持 towing，允许重新提交。
type PaymentDeclinedError struct {
	Reason string
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}
