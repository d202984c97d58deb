package job

import (
	"time"
)

// AllowTransition 定义作业状态机的允许流转关系（有向图，无其他边）。
//
//	waiting    -> dispatched            派单
//	dispatched -> en_route / cancelled  接单 / 拒单
//	en_route   -> on_scene              到场
//	on_scene   -> towing                证据采集齐全后开始拖车
//	towing     -> completed             交车 + 收款完成
//
// completed / cancelled 为终态。
var AllowTransition = map[Status][]Status{
	StatusWaiting:    {StatusDispatched},
	StatusDispatched: {StatusEnRoute, StatusCancelled},
	StatusEnRoute:    {StatusOnScene},
	StatusOnScene:    {StatusTowing},
	StatusTowing:     {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
// 重复流转（from == to）不合法：接单只能接一次，重复 accept 会失败。
func CanTransition(from, to Status) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition 对作业应用状态变更，并维护关键时间字段。
// 流转非法或守卫条件不满足时返回错误且不修改作业（调用方直接丢弃即可，
// 失败的操作不允许产生任何半成品状态）。
func ApplyTransition(j *Job, to Status, now time.Time) error {
	if j == nil {
		return NewValidationError("job", "is nil")
	}
	from := j.Status
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}

	// 守卫：离开 on_scene 前 VIN/车牌/照片必须齐全
	if to == StatusTowing && !j.HasTowEvidence() {
		switch {
		case j.VIN == "":
			return NewValidationError("vin", "")
		case j.LicensePlate == "":
			return NewValidationError("licensePlate", "")
		default:
			return NewValidationError("vehiclePhotoRef", "")
		}
	}

	// 守卫：进入 completed 前双签字 + 支付流水必须齐全
	if to == StatusCompleted && !j.ReadyForCompletion() {
		switch {
		case j.CustomerSignatureRef == "":
			return NewValidationError("customerSignatureRef", "")
		case j.ImpoundLotSignatureRef == "":
			return NewValidationError("impoundLotSignatureRef", "")
		default:
			return NewValidationError("paymentTransactionId", "")
		}
	}

	j.Status = to

	switch to {
	case StatusCompleted:
		if j.CompletedAt == nil {
			t := now
			j.CompletedAt = &t
		}
	case StatusCancelled:
		if j.CancelledAt == nil {
			t := now
			j.CancelledAt = &t
		}
	}
	return nil
}

// progressOrder 进度条用的规范顺序；cancelled 不参与。
var progressOrder = []Status{
	StatusWaiting,
	StatusDispatched,
	StatusEnRoute,
	StatusOnScene,
	StatusTowing,
	StatusCompleted,
}

// ProgressFraction 作业进度 (ordinal+1)/6。
// cancelled 没有进度语义，返回 ok=false。
func ProgressFraction(s Status) (float64, bool) {
	for i, st := range progressOrder {
		if st == s {
			return float64(i+1) / float64(len(progressOrder)), true
		}
	}
	return 0, false
}
