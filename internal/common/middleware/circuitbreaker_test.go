package middleware

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerOpensOnFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)
	boom := errors.New("downstream unavailable")

	for i := 0; i < 3; i++ {
		if err := cb.Call(context.Background(), func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("call %d: want downstream error, got %v", i, err)
		}
	}
	if got := cb.GetState(); got != StateOpen {
		t.Fatalf("want open after maxFailures, got %v", got)
	}

	err := cb.Call(context.Background(), func() error {
		t.Fatal("fn must not run while open")
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("want ErrCircuitOpen, got %v", err)
	}
}

// 调用方预算内的取消/超时不代表下游故障，反复发生也不得打开熔断。
func TestCircuitBreakerIgnoresContextErrors(t *testing.T) {
	cb := NewCircuitBreaker("test", 2, time.Minute)

	for i := 0; i < 10; i++ {
		if err := cb.Call(context.Background(), func() error { return context.DeadlineExceeded }); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("call %d: want DeadlineExceeded, got %v", i, err)
		}
	}
	for i := 0; i < 10; i++ {
		if err := cb.Call(context.Background(), func() error { return context.Canceled }); !errors.Is(err, context.Canceled) {
			t.Fatalf("call %d: want Canceled, got %v", i, err)
		}
	}

	if got := cb.GetState(); got != StateClosed {
		t.Fatalf("want closed after context errors only, got %v", got)
	}
	if err := cb.Call(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("breaker must still pass calls through: %v", err)
	}
}

func TestCircuitBreakerSuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)
	boom := errors.New("downstream unavailable")

	_ = cb.Call(context.Background(), func() error { return boom })
	_ = cb.Call(context.Background(), func() error { return boom })
	if err := cb.Call(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("success call failed: %v", err)
	}

	// 计数已清零，再失败两次仍不应打开
	_ = cb.Call(context.Background(), func() error { return boom })
	_ = cb.Call(context.Background(), func() error { return boom })
	if got := cb.GetState(); got != StateClosed {
		t.Fatalf("want closed, got %v", got)
	}
}
