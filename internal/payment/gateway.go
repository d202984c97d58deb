package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
)

// Gateway 外部支付网关的最小接口。
// 业务拒绝返回 *job.PaymentDeclinedError，其余错误视为网关故障。
type Gateway interface {
	Authorize(ctx context.Context, req job.PaymentRequest) (*job.PaymentAuthorization, error)
}

// DemoGateway 内置的演示网关：按幂等键缓存结果，卡号以 0000 结尾时拒绝。
// 生产部署通过 config 的 payment.gateway 换成真实实现。
type DemoGateway struct {
	mu     sync.Mutex
	issued map[string]*job.PaymentAuthorization

	// latency 模拟网关耗时，测试里可调小
	latency time.Duration
}

func NewDemoGateway() *DemoGateway {
	return &DemoGateway{
		issued:  make(map[string]*job.PaymentAuthorization),
		latency: 50 * time.Millisecond,
	}
}

func (g *DemoGateway) Authorize(ctx context.Context, req job.PaymentRequest) (*job.PaymentAuthorization, error) {
	g.mu.Lock()
	if prev, ok := g.issued[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		g.mu.Unlock()
		return prev, nil
	}
	g.mu.Unlock()

	select {
	case <-time.After(g.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if req.Method == job.PaymentCreditCard && req.Card != nil {
		number := strings.ReplaceAll(req.Card.Number, " ", "")
		if strings.HasSuffix(number, "0000") {
			return nil, &job.PaymentDeclinedError{Reason: "card declined by issuer"}
		}
	}

	authz := &job.PaymentAuthorization{
		TransactionID: fmt.Sprintf("txn_%d", time.Now().UnixMilli()),
		AuthorizedAt:  time.Now().UTC(),
	}

	g.mu.Lock()
	if req.IdempotencyKey != "" {
		g.issued[req.IdempotencyKey] = authz
	}
	g.mu.Unlock()
	return authz, nil
}
