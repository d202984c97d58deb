package payment

import (
	"strings"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
)

// ValidateRequest 提交给网关前的本地校验。失败返回 *job.ValidationError，
// 此时不会产生任何网关调用。
func ValidateRequest(req job.PaymentRequest, now time.Time) error {
	if req.Amount <= 0 {
		return job.NewValidationError("paymentAmount", "must be positive")
	}
	if !req.Method.Valid() {
		return job.NewValidationError("paymentMethod", "")
	}
	if req.Method == job.PaymentCreditCard {
		return ValidateCreditCard(req.Card, now)
	}
	return nil
}

// ValidateCreditCard 信用卡字段校验：
// 卡号去空格后 13~19 位数字，月份 1~12，年份在当前年到十年后之间，
// CVV 3~4 位数字，持卡人姓名至少 2 个字符。
func ValidateCreditCard(card *job.CreditCard, now time.Time) error {
	if card == nil {
		return job.NewValidationError("card", "")
	}

	number := strings.ReplaceAll(card.Number, " ", "")
	if !allDigits(number) || len(number) < 13 || len(number) > 19 {
		return job.NewValidationError("cardNumber", "must be 13 to 19 digits")
	}
	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		return job.NewValidationError("cardExpiryMonth", "must be between 1 and 12")
	}
	year := now.Year()
	if card.ExpiryYear < year || card.ExpiryYear > year+10 {
		return job.NewValidationError("cardExpiryYear", "")
	}
	// 当年到期的卡还要看月份
	if card.ExpiryYear == year && card.ExpiryMonth < int(now.Month()) {
		return job.NewValidationError("cardExpiryMonth", "card expired")
	}
	if !allDigits(card.CVV) || len(card.CVV) < 3 || len(card.CVV) > 4 {
		return job.NewValidationError("cardCvv", "must be 3 or 4 digits")
	}
	if len(strings.TrimSpace(card.CardholderName)) < 2 {
		return job.NewValidationError("cardholderName", "")
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
