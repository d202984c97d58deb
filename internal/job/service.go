package job

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/common/logger"
	"github.com/google/uuid"
)

// EventSink 流转事件出口（如 Kinesis）。实现必须快速返回且不得使流转失败。
type EventSink interface {
	JobTransitioned(eventType string, j *Job)
}

// Service 封装作业生命周期的核心用例（不依赖 gRPC / HTTP），便于复用和测试。
// 所有操作都要求显式的 towerID（操作者），归属不符按 ErrNotFound 处理。
type Service struct {
	store    Store
	payments PaymentAuthorizer
	log      logger.Logger

	events EventSink

	// authorizeTimeout 支付授权调用的时限；超时作业保持 towing。
	authorizeTimeout time.Duration

	// now 可注入的时钟：单次流转内所有时间字段共用同一个逻辑时刻。
	now func() time.Time
}

func NewService(store Store, payments PaymentAuthorizer, log logger.Logger) *Service {
	return &Service{
		store:            store,
		payments:         payments,
		log:              log,
		authorizeTimeout: 5 * time.Second,
		now:              time.Now,
	}
}

// SetEventSink 设置流转事件出口（可选）。
func (s *Service) SetEventSink(sink EventSink) { s.events = sink }

// SetAuthorizeTimeout 设置支付授权时限。
func (s *Service) SetAuthorizeTimeout(d time.Duration) {
	if d > 0 {
		s.authorizeTimeout = d
	}
}

// SetClock 注入时钟（测试用）。
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// CreateJobInput 创建作业的入参。
type CreateJobInput struct {
	JobNumber     string // 为空时自动生成
	Priority      Priority
	CustomerName  string
	CustomerPhone string
	VehicleMake   string
	VehicleModel  string
	VehicleYear   int
	VehicleColor  string

	PickupLocation  string
	DropoffLocation string
	Distance        string
	EstimatedTime   string

	EstimatedCost int64
	Description   string
	DriverName    string
	TruckName     string
	ScheduledAt   *time.Time
}

// Create 创建作业，初始状态 waiting。
// 创建时必填：取车地点、客户姓名/电话、车辆品牌/型号/年份；VIN/车牌/照片到场后采集。
func (s *Service) Create(ctx context.Context, towerID string, in CreateJobInput) (*Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	towerID = strings.TrimSpace(towerID)
	if towerID == "" {
		return nil, NewValidationError("towerId", "")
	}
	if strings.TrimSpace(in.PickupLocation) == "" {
		return nil, NewValidationError("pickupLocation", "")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, NewValidationError("customerName", "")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, NewValidationError("customerPhone", "")
	}
	if strings.TrimSpace(in.VehicleMake) == "" {
		return nil, NewValidationError("vehicleMake", "")
	}
	if strings.TrimSpace(in.VehicleModel) == "" {
		return nil, NewValidationError("vehicleModel", "")
	}
	if in.VehicleYear <= 0 {
		return nil, NewValidationError("vehicleYear", "must be positive")
	}

	priority := in.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	if !priority.Valid() {
		return nil, NewValidationError("priority", fmt.Sprintf("unknown priority %q", in.Priority))
	}

	id := uuid.NewString()
	jobNumber := strings.TrimSpace(in.JobNumber)
	if jobNumber == "" {
		jobNumber = generateJobNumber(id)
	}

	j := &Job{
		ID:              id,
		JobNumber:       jobNumber,
		TowerID:         towerID,
		Status:          StatusWaiting,
		Priority:        priority,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		VehicleMake:     strings.TrimSpace(in.VehicleMake),
		VehicleModel:    strings.TrimSpace(in.VehicleModel),
		VehicleYear:     in.VehicleYear,
		VehicleColor:    strings.TrimSpace(in.VehicleColor),
		PickupLocation:  strings.TrimSpace(in.PickupLocation),
		DropoffLocation: strings.TrimSpace(in.DropoffLocation),
		Distance:        strings.TrimSpace(in.Distance),
		EstimatedTime:   strings.TrimSpace(in.EstimatedTime),
		EstimatedCost:   in.EstimatedCost,
		Description:     strings.TrimSpace(in.Description),
		DriverName:      strings.TrimSpace(in.DriverName),
		TruckName:       strings.TrimSpace(in.TruckName),
		ScheduledAt:     in.ScheduledAt,
	}

	if err := s.store.Create(ctx, j); err != nil {
		return nil, err
	}
	s.emit("created", j)
	return j, nil
}

// Dispatch waiting -> dispatched，派单给已归属的 tower。
func (s *Service) Dispatch(ctx context.Context, towerID, jobID string) (*Job, error) {
	return s.transition(ctx, towerID, jobID, StatusDispatched, "dispatched")
}

// Accept dispatched -> en_route。只能接一次：重复 accept 返回 ErrInvalidTransition。
func (s *Service) Accept(ctx context.Context, towerID, jobID string) (*Job, error) {
	return s.transition(ctx, towerID, jobID, StatusEnRoute, "accepted")
}

// Decline dispatched -> cancelled（终态）。
func (s *Service) Decline(ctx context.Context, towerID, jobID string) (*Job, error) {
	return s.transition(ctx, towerID, jobID, StatusCancelled, "declined")
}

// Arrive en_route -> on_scene。
func (s *Service) Arrive(ctx context.Context, towerID, jobID string) (*Job, error) {
	return s.transition(ctx, towerID, jobID, StatusOnScene, "arrived")
}

// transition 通用流转：加载 -> 应用状态机 -> 条件保存 -> 发事件。
// 任一步失败都不产生状态变化。
func (s *Service) transition(ctx context.Context, towerID, jobID string, to Status, eventType string) (*Job, error) {
	j, err := s.load(ctx, towerID, jobID)
	if err != nil {
		return nil, err
	}

	expected := j.Version
	if err := ApplyTransition(j, to, s.now()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, j, expected); err != nil {
		return nil, err
	}

	s.emit(eventType, j)
	return j, nil
}

// EvidenceInput 到场采集的证据。
type EvidenceInput struct {
	VIN          string
	LicensePlate string
	PhotoRef     string
	Notes        string
}

// SubmitEvidence on_scene -> towing。
// VIN/车牌归一化（去空格、大写）后必须非空，VIN 必须是 17 位；照片引用必须非空。
// 任一校验失败返回 *ValidationError，作业保持 on_scene。
func (s *Service) SubmitEvidence(ctx context.Context, towerID, jobID string, in EvidenceInput) (*Job, error) {
	j, err := s.load(ctx, towerID, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != StatusOnScene {
		return nil, &TransitionError{From: j.Status, To: StatusTowing}
	}

	vin := strings.ToUpper(strings.TrimSpace(in.VIN))
	plate := strings.ToUpper(strings.TrimSpace(in.LicensePlate))
	photoRef := strings.TrimSpace(in.PhotoRef)

	if vin == "" {
		return nil, NewValidationError("vin", "")
	}
	if len(vin) != 17 {
		return nil, NewValidationError("vin", "must be 17 characters")
	}
	if plate == "" {
		return nil, NewValidationError("licensePlate", "")
	}
	if photoRef == "" {
		return nil, NewValidationError("vehiclePhotoRef", "")
	}

	expected := j.Version
	j.VIN = vin
	j.LicensePlate = plate
	j.VehiclePhotoRef = photoRef
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		j.DropoffNotes = notes
	}

	if err := ApplyTransition(j, StatusTowing, s.now()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, j, expected); err != nil {
		return nil, err
	}

	s.emit("evidence_collected", j)
	return j, nil
}

// DropoffInput 交车 + 收款的入参。
type DropoffInput struct {
	DropoffNotes           string
	ImpoundLotSignatureRef string
	CustomerSignatureRef   string
	Method                 PaymentMethod
	Amount                 int64
	Card                   *CreditCard
	ActualCost             int64
}

// CompleteDropoffAndPayment towing -> completed。
// 步骤（任一步失败整体中止，状态不变）：
//  1. 校验双签字引用非空
//  2. 调用支付授权（带时限与幂等键）；拒绝返回 *PaymentDeclinedError，
//     超时返回 ErrPaymentTimeout，两者都保持 towing 并允许重试
//  3. 授权成功后写入流水号与全部完成字段并条件保存；
//     此时保存失败返回 *ReconciliationError：已扣款，禁止自动重试，按流水号对账
func (s *Service) CompleteDropoffAndPayment(ctx context.Context, towerID, jobID string, in DropoffInput) (*Job, error) {
	if s.payments == nil {
		return nil, fmt.Errorf("payment authorizer not configured")
	}

	j, err := s.load(ctx, towerID, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != StatusTowing {
		return nil, &TransitionError{From: j.Status, To: StatusCompleted}
	}

	impoundSig := strings.TrimSpace(in.ImpoundLotSignatureRef)
	customerSig := strings.TrimSpace(in.CustomerSignatureRef)
	if impoundSig == "" {
		return nil, NewValidationError("impoundLotSignatureRef", "")
	}
	if customerSig == "" {
		return nil, NewValidationError("customerSignatureRef", "")
	}
	if in.Amount <= 0 {
		return nil, NewValidationError("paymentAmount", "must be positive")
	}
	if !in.Method.Valid() {
		return nil, NewValidationError("paymentMethod", fmt.Sprintf("unknown method %q", in.Method))
	}

	authCtx, cancel := context.WithTimeout(ctx, s.authorizeTimeout)
	defer cancel()

	authz, err := s.payments.Authorize(authCtx, PaymentRequest{
		JobID:  j.ID,
		Amount: in.Amount,
		Method: in.Method,
		Card:   in.Card,
		// 幂等键绑定作业当前版本：同一版本上的重试拿到同一笔流水
		IdempotencyKey: fmt.Sprintf("%s:%d", j.ID, j.Version),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrPaymentTimeout
		}
		return nil, err
	}

	now := s.now()
	expected := j.Version

	j.PaymentTransactionID = authz.TransactionID
	j.PaymentAmount = in.Amount
	j.PaymentMethod = in.Method
	j.ImpoundLotSignatureRef = impoundSig
	j.CustomerSignatureRef = customerSig
	if notes := strings.TrimSpace(in.DropoffNotes); notes != "" {
		j.DropoffNotes = notes
	}
	if in.ActualCost > 0 {
		j.ActualCost = in.ActualCost
	} else {
		j.ActualCost = in.Amount
	}
	t := now
	j.DropoffCompletedAt = &t
	t2 := now
	j.PaymentCompletedAt = &t2

	if err := ApplyTransition(j, StatusCompleted, now); err != nil {
		// 守卫在上面的赋值后不应再失败；真失败说明并发改动，按对账处理
		return nil, &ReconciliationError{JobID: j.ID, TransactionID: authz.TransactionID, Err: err}
	}
	if err := s.store.Save(ctx, j, expected); err != nil {
		if s.log != nil {
			s.log.WithFields(map[string]interface{}{
				"job_id":         j.ID,
				"transaction_id": authz.TransactionID,
			}).Errorf("payment succeeded but completion not persisted: %v", err)
		}
		return nil, &ReconciliationError{JobID: j.ID, TransactionID: authz.TransactionID, Err: err}
	}

	s.emit("completed", j)
	return j, nil
}

// Get 查询单个作业（带归属校验）。
func (s *Service) Get(ctx context.Context, towerID, jobID string) (*Job, error) {
	return s.load(ctx, towerID, jobID)
}

// List 队列视图：该 tower 的作业按创建时间倒序。
func (s *Service) List(ctx context.Context, towerID string, f ListFilter) ([]Job, int64, error) {
	if s == nil || s.store == nil {
		return nil, 0, fmt.Errorf("service not initialized")
	}
	towerID = strings.TrimSpace(towerID)
	if towerID == "" {
		return nil, 0, NewValidationError("towerId", "")
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, NewValidationError("status", fmt.Sprintf("unknown status %q", f.Status))
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return nil, 0, NewValidationError("priority", fmt.Sprintf("unknown priority %q", f.Priority))
	}
	return s.store.List(ctx, towerID, f)
}

// Stats 作业统计：总数、活跃数（en_route+on_scene+towing）、urgent 数、各状态分布。
type Stats struct {
	Total     int64
	Active    int64
	Urgent    int64
	Breakdown map[Status]int64
}

func (s *Service) Stats(ctx context.Context, towerID string) (*Stats, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	breakdown, err := s.store.CountByStatus(ctx, towerID)
	if err != nil {
		return nil, err
	}
	urgent, err := s.store.CountByPriority(ctx, towerID, PriorityUrgent)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		Urgent:    urgent,
		Breakdown: breakdown,
	}
	for _, n := range breakdown {
		st.Total += n
	}
	st.Active = breakdown[StatusEnRoute] + breakdown[StatusOnScene] + breakdown[StatusTowing]
	return st, nil
}

func (s *Service) load(ctx context.Context, towerID, jobID string) (*Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	towerID = strings.TrimSpace(towerID)
	jobID = strings.TrimSpace(jobID)
	if towerID == "" {
		return nil, NewValidationError("towerId", "")
	}
	if jobID == "" {
		return nil, NewValidationError("jobId", "")
	}
	return s.store.GetForTower(ctx, jobID, towerID)
}

func (s *Service) emit(eventType string, j *Job) {
	if s.events == nil {
		return
	}
	s.events.JobTransitioned(eventType, j)
}

// generateJobNumber 从作业 id 派生可读编号，如 TJ-3F9A2C。
func generateJobNumber(id string) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) > 6 {
		compact = compact[len(compact)-6:]
	}
	return "TJ-" + strings.ToUpper(compact)
}
