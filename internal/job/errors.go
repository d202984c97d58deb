package job

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 作业不存在或不归属于该 tower。
	ErrNotFound = errors.New("job not found")

	// ErrInvalidTransition 请求的流转没有对应的边（或作业已处于终态）。
	ErrInvalidTransition = errors.New("invalid job status transition")

	// ErrConcurrentModification 保存时版本号不匹配：有并发操作先提交了。
	// 调用方应重新加载后重试，不允许覆盖较新的状态。
	ErrConcurrentModification = errors.New("job was modified concurrently")

	// ErrPaymentTimeout 支付授权超出时限；作业保持 towing，可安全重试。
	ErrPaymentTimeout = errors.New("payment authorization timed out")
)

// ValidationError 必填输入缺失或格式不合法；调用方修正后重新提交。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("validation failed: field %s is required", e.Field)
	}
	return fmt.Sprintf("validation failed: field %s: %s", e.Field, e.Reason)
}

// NewValidationError 构造字段级校验错误。
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// TransitionError 携带具体的 from/to；errors.Is(err, ErrInvalidTransition) 成立。
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid job status transition: %s -> %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ReconciliationError 支付已成功但落库失败：不能自动重试（会二次扣款），
// 需要人工/离线任务按 TransactionID 对账。
type ReconciliationError struct {
	JobID         string
	TransactionID string
	Err           error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("payment %s for job %s succeeded but persisting completion failed: %v",
		e.TransactionID, e.JobID, e.Err)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }
