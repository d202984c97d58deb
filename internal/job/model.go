package job

import "time"

// Status 作业状态枚举（持久化为字符串）。
type Status string

const (
	StatusWaiting    Status = "waiting"    // 已创建，待派单
	StatusDispatched Status = "dispatched" // 已派给 tower，待接单/拒单
	StatusEnRoute    Status = "en_route"   // 已接单，赶往现场
	StatusOnScene    Status = "on_scene"   // 到达现场，采集 VIN/车牌/照片
	StatusTowing     Status = "towing"     // 拖车中，待交车+收款
	StatusCompleted  Status = "completed"  // 已完成（终态）
	StatusCancelled  Status = "cancelled"  // 已取消（拒单，终态）
)

// Valid 判断是否是已知状态。
func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusDispatched, StatusEnRoute, StatusOnScene,
		StatusTowing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal 终态没有出边。
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Label 状态展示文案。
// 使用穷举 switch 而不是 map：新增状态时编译器会提示这里漏配。
func (s Status) Label() string {
	switch s {
	case StatusWaiting:
		return "Waiting"
	case StatusDispatched:
		return "Dispatched"
	case StatusEnRoute:
		return "En Route"
	case StatusOnScene:
		return "On Scene"
	case StatusTowing:
		return "Towing"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// Priority 作业优先级。只影响外部排序，不影响状态流转合法性。
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank 排序权重，urgent 最高。
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	case PriorityLow:
		return 0
	}
	return 0
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	}
	return string(p)
}

// PaymentMethod 收款方式。
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentCash       PaymentMethod = "cash"
	PaymentCheck      PaymentMethod = "check"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentCash, PaymentCheck:
		return true
	}
	return false
}

// Job 拖车作业 GORM 模型（聚合根）。
// 每个作业归属于唯一 tower；Version 字段用于保存时的乐观并发检查。
type Job struct {
	ID        string `gorm:"primaryKey;size:36"`
	JobNumber string `gorm:"uniqueIndex;size:32;not null"` // 形如 TJ-001

	// 业务关联
	TowerID  string   `gorm:"index;size:36;not null"`          // 归属运营者
	Status   Status   `gorm:"type:varchar(16);index;not null"` // 当前状态
	Priority Priority `gorm:"type:varchar(8);not null;default:'normal'"`

	// 客户信息
	CustomerName  string `gorm:"size:128;not null"`
	CustomerPhone string `gorm:"size:32;not null"`

	// 车辆信息（VIN/车牌/照片在到场采集前为空）
	VehicleMake     string `gorm:"size:64;not null"`
	VehicleModel    string `gorm:"size:64;not null"`
	VehicleYear     int    `gorm:"not null"`
	VehicleColor    string `gorm:"size:32"`
	VIN             string `gorm:"size:17"`
	LicensePlate    string `gorm:"size:32"`
	VehiclePhotoRef string `gorm:"size:255"`

	// 起终点信息
	PickupLocation  string `gorm:"size:255;not null"`
	DropoffLocation string `gorm:"size:255"`
	Distance        string `gorm:"size:32"`
	EstimatedTime   string `gorm:"size:32"`

	// 金额信息（单位：分）
	EstimatedCost int64 `gorm:"not null;default:0"`
	ActualCost    int64 `gorm:"not null;default:0"`

	// 收款信息（完成交车时写入）
	PaymentAmount        int64         `gorm:"not null;default:0"`
	PaymentMethod        PaymentMethod `gorm:"type:varchar(16)"`
	PaymentTransactionID string        `gorm:"size:64"`

	// 签字/备注
	CustomerSignatureRef   string `gorm:"size:255"`
	ImpoundLotSignatureRef string `gorm:"size:255"`
	DropoffNotes           string `gorm:"size:1024"`

	// 补充信息
	Description string `gorm:"size:512"`
	DriverName  string `gorm:"size:64"`
	TruckName   string `gorm:"size:64"`

	// 乐观锁版本号，每次保存 +1
	Version int64 `gorm:"not null;default:0"`

	// 时间信息（各字段只在对应流转中写入一次，永不清除）
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
	ScheduledAt        *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	DropoffCompletedAt *time.Time
	PaymentCompletedAt *time.Time
}

// HasTowEvidence 离开 on_scene 的前置条件：VIN/车牌/照片齐全。
func (j *Job) HasTowEvidence() bool {
	return j.VIN != "" && j.LicensePlate != "" && j.VehiclePhotoRef != ""
}

// ReadyForCompletion 进入 completed 的前置条件：双签字 + 成功的支付流水。
func (j *Job) ReadyForCompletion() bool {
	return j.CustomerSignatureRef != "" &&
		j.ImpoundLotSignatureRef != "" &&
		j.PaymentTransactionID != ""
}

// Clone 返回深拷贝（内存存储与失败回滚用）。
func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	c := *j
	c.ScheduledAt = cloneTime(j.ScheduledAt)
	c.CompletedAt = cloneTime(j.CompletedAt)
	c.CancelledAt = cloneTime(j.CancelledAt)
	c.DropoffCompletedAt = cloneTime(j.DropoffCompletedAt)
	c.PaymentCompletedAt = cloneTime(j.PaymentCompletedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
