package payment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/common/middleware"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
)

func validCard() *job.CreditCard {
	return &job.CreditCard{
		Number:         "4242 4242 4242 4242",
		ExpiryMonth:    12,
		ExpiryYear:     time.Now().Year() + 2,
		CVV:            "123",
		CardholderName: "Jane Driver",
	}
}

func cardRequest(card *job.CreditCard) job.PaymentRequest {
	return job.PaymentRequest{
		JobID:          "job-1",
		Amount:         12500,
		Method:         job.PaymentCreditCard,
		Card:           card,
		IdempotencyKey: "job-1:5",
	}
}

func TestValidateCreditCard(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	if err := ValidateCreditCard(validCard(), now); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*job.CreditCard)
		field  string
	}{
		{"short number", func(c *job.CreditCard) { c.Number = "4242" }, "cardNumber"},
		{"letters in number", func(c *job.CreditCard) { c.Number = "4242abcd42424242" }, "cardNumber"},
		{"month zero", func(c *job.CreditCard) { c.ExpiryMonth = 0 }, "cardExpiryMonth"},
		{"month thirteen", func(c *job.CreditCard) { c.ExpiryMonth = 13 }, "cardExpiryMonth"},
		{"past year", func(c *job.CreditCard) { c.ExpiryYear = 2024 }, "cardExpiryYear"},
		{"far future year", func(c *job.CreditCard) { c.ExpiryYear = 2099 }, "cardExpiryYear"},
		{"expired this year", func(c *job.CreditCard) { c.ExpiryYear = 2026; c.ExpiryMonth = 3 }, "cardExpiryMonth"},
		{"short cvv", func(c *job.CreditCard) { c.CVV = "12" }, "cardCvv"},
		{"long cvv", func(c *job.CreditCard) { c.CVV = "12345" }, "cardCvv"},
		{"blank name", func(c *job.CreditCard) { c.CardholderName = " " }, "cardholderName"},
	}
	for _, tc := range cases {
		card := validCard()
		tc.mutate(card)
		err := ValidateCreditCard(card, now)
		var ve *job.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: want ValidationError, got %v", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: want field %s, got %s", tc.name, tc.field, ve.Field)
		}
	}
}

func TestAuthorizeCashSkipsCardChecks(t *testing.T) {
	gw := NewDemoGateway()
	gw.latency = 0
	svc := NewService(gw, 5, time.Second, nil)

	authz, err := svc.Authorize(context.Background(), job.PaymentRequest{
		JobID:          "job-cash",
		Amount:         8000,
		Method:         job.PaymentCash,
		IdempotencyKey: "job-cash:3",
	})
	if err != nil {
		t.Fatalf("cash authorize failed: %v", err)
	}
	if authz.TransactionID == "" {
		t.Fatal("expected transaction id")
	}
}

func TestAuthorizeDecline(t *testing.T) {
	gw := NewDemoGateway()
	gw.latency = 0
	svc := NewService(gw, 5, time.Second, nil)

	card := validCard()
	card.Number = "4242424242420000"
	_, err := svc.Authorize(context.Background(), cardRequest(card))

	var declined *job.PaymentDeclinedError
	if !errors.As(err, &declined) {
		t.Fatalf("want PaymentDeclinedError, got %v", err)
	}
	if declined.Reason == "" {
		t.Fatal("expected decline reason")
	}
}

func TestAuthorizeIdempotent(t *testing.T) {
	gw := NewDemoGateway()
	gw.latency = 0
	svc := NewService(gw, 5, time.Second, nil)

	req := cardRequest(validCard())
	first, err := svc.Authorize(context.Background(), req)
	if err != nil {
		t.Fatalf("first authorize failed: %v", err)
	}
	second, err := svc.Authorize(context.Background(), req)
	if err != nil {
		t.Fatalf("second authorize failed: %v", err)
	}
	if first.TransactionID != second.TransactionID {
		t.Fatalf("same idempotency key produced %s then %s", first.TransactionID, second.TransactionID)
	}
}

type failingGateway struct{ calls int }

func (g *failingGateway) Authorize(ctx context.Context, req job.PaymentRequest) (*job.PaymentAuthorization, error) {
	g.calls++
	return nil, fmt.Errorf("gateway unreachable")
}

func TestAuthorizeCircuitOpensOnGatewayFailures(t *testing.T) {
	gw := &failingGateway{}
	svc := NewService(gw, 2, time.Minute, nil)

	req := job.PaymentRequest{JobID: "job-2", Amount: 5000, Method: job.PaymentCash}
	for i := 0; i < 2; i++ {
		if _, err := svc.Authorize(context.Background(), req); err == nil {
			t.Fatal("expected gateway failure")
		}
	}

	_, err := svc.Authorize(context.Background(), req)
	if !errors.Is(err, middleware.ErrCircuitOpen) {
		t.Fatalf("want ErrCircuitOpen, got %v", err)
	}
	if gw.calls != 2 {
		t.Fatalf("gateway called %d times after circuit open", gw.calls)
	}
}

func TestAuthorizeDeclinesDoNotTripCircuit(t *testing.T) {
	gw := NewDemoGateway()
	gw.latency = 0
	svc := NewService(gw, 2, time.Minute, nil)

	card := validCard()
	card.Number = "4242424242420000"
	for i := 0; i < 5; i++ {
		req := cardRequest(card)
		req.IdempotencyKey = fmt.Sprintf("job-1:%d", i)
		_, err := svc.Authorize(context.Background(), req)
		var declined *job.PaymentDeclinedError
		if !errors.As(err, &declined) {
			t.Fatalf("attempt %d: want decline, got %v", i, err)
		}
	}
	if svc.breaker.GetState() != middleware.StateClosed {
		t.Fatal("declines should not open the circuit")
	}
}

func TestAuthorizeContextTimeout(t *testing.T) {
	gw := NewDemoGateway()
	gw.latency = 10 * time.Second
	svc := NewService(gw, 5, time.Minute, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Authorize(ctx, cardRequest(validCard()))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
	// 超时是调用方预算问题，不计入熔断失败
	if svc.breaker.GetState() != middleware.StateClosed {
		t.Fatal("timeouts should not open the circuit")
	}
}
