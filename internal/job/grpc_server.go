package job

import (
	"context"
	"errors"
	"strings"
	"time"

	jobpb "github.com/TowLinkDrive/TowLinkDrive/internal/api/proto/job"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/server"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GRPCServer struct {
	jobpb.UnimplementedJobServiceServer

	svc *Service
}

func NewGRPCServer(svc *Service) *GRPCServer {
	return &GRPCServer{svc: svc}
}

func (s *GRPCServer) CreateJob(ctx context.Context, req *jobpb.CreateJobRequest) (*jobpb.JobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	towerID, err := operatorTower(ctx)
	if err != nil {
		return nil, err
	}

	in := CreateJobInput{
		JobNumber:       strings.TrimSpace(req.JobNumber),
		Priority:        Priority(strings.TrimSpace(req.Priority)),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		VehicleMake:     req.VehicleMake,
		VehicleModel:    req.VehicleModel,
		VehicleYear:     int(req.VehicleYear),
		VehicleColor:    req.VehicleColor,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Distance:        req.Distance,
		EstimatedTime:   req.EstimatedTime,
		EstimatedCost:   req.EstimatedCost,
		Description:     req.Description,
		DriverName:      req.DriverName,
		TruckName:       req.TruckName,
	}
	if req.ScheduledAt > 0 {
		t := time.Unix(req.ScheduledAt, 0)
		in.ScheduledAt = &t
	}

	j, err := s.svc.Create(ctx, towerID, in)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &jobpb.JobResponse{Job: toPBJob(j)}, nil
}

func (s *GRPCServer) GetJob(ctx context.Context, req *jobpb.GetJobRequest) (*jobpb.JobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	towerID, err := operatorTower(ctx)
	if err != nil {
		return nil, err
	}
	j, err := s.svc.Get(ctx, towerID, req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &jobpb.JobResponse{Job: toPBJob(j)}, nil
}

func (s *GRPCServer) ListJobs(ctx context.Context, req *jobpb.ListJobsRequest) (*jobpb.ListJobsResponse, error) {
	towerID, err := operatorTower(ctx)
	if err != nil {
		return nil, err
	}

	f := ListFilter{}
	if req != nil {
		if st := strings.TrimSpace(req.Status); st != "" {
			f.Status = Status(st)
		}
		if p := strings.TrimSpace(req.Priority); p != "" {
			f.Priority = Priority(p)
		}
		page := int(req.Page)
		size := int(req.PageSize)
		if page <= 0 {
			page = 1
		}
		if size <= 0 || size > 200 {
			size = 20
		}
		f.Offset = (page - 1) * size
		f.Limit = size
	} else {
		f.Limit = 20
	}

	jobs, total, err := s.svc.List(ctx, towerID, f)
	if err != nil {
		return nil, statusFromError(err)
	}
	out := make([]*jobpb.Job, 0, len(jobs))
	for i := range jobs {
		j := jobs[i]
		out = append(out, toPBJob(&j))
	}
	return &jobpb.ListJobsResponse{Jobs: out, Total: total}, nil
}

func (s *GRPCServer) GetJobStats(ctx context.Context, _ *jobpb.GetJobStatsRequest) (*jobpb.JobStatsResponse, error) {
	towerID, err := operatorTower(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.svc.Stats(ctx, towerID)
	if err != nil {
		return nil, statusFromError(err)
	}
	breakdown := make(map[string]int64, len(st.Breakdown))
	for k, v := range st.Breakdown {
		breakdown[string(k)] = v
	}
	return &jobpb.JobStatsResponse{
		Total:     st.Total,
		Active:    st.Active,
		Urgent:    st.Urgent,
		Breakdown: breakdown,
	}, nil
}

func (s *GRPCServer) DispatchJob(ctx context.Context, req *jobpb.JobActionRequest) (*jobpb.JobResponse, error) {
	return s.action(ctx, req, s.svc.Dispatch)
}

func (s *GRPCServer) AcceptJob(ctx context.Context, req *jobpb.JobActionRequest) (*jobpb.JobResponse, error) {
	return s.action(ctx, req, s.svc.Accept)
}

func (s *GRPCServer) DeclineJob(ctx context.Context, req *jobpb.JobActionRequest) (*jobpb.JobResponse, error) {
	return s.action(ctx, req, s.svc.Decline)
}

func (s *GRPCServer) ArriveJob(ctx context.Context, req *jobpb.JobActionRequest) (*jobpb.JobResponse, error) {
	return s.action(ctx, req, s.svc.Arrive)
}

func (s *GRPCServer) action(ctx context.Context, req *jobpb.JobActionRequest, fn func(context.Context, string, string) (*Job, error)) (*jobpb.JobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	towerID, err := operatorTower(ctx)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(req.Id)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	j, err := fn(ctx, towerID, id)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &jobpb.JobResponse{Job: toPBJob(j)}, nil
}

func (s *GRPCServer) SubmitEvidence(ctx context.Context, req *jobpb.SubmitEvidenceRequest) (*jobpb.JobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	towerID, err := operatorTower(ctx)
	if err != nil {
		return nil, err
	}
	j, err := s.svc.SubmitEvidence(ctx, towerID, req.Id, EvidenceInput{
		VIN:          req.Vin,
		LicensePlate: req.LicensePlate,
		PhotoRef:     req.VehiclePhotoRef,
		Notes:        req.Notes,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &jobpb.JobResponse{Job: toPBJob(j)}, nil
}

func (s *GRPCServer) CompleteDropoffAndPayment(ctx context.Context, req *jobpb.CompleteDropoffRequest) (*jobpb.JobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	towerID, err := operatorTower(ctx)
	if err != nil {
		return nil, err
	}

	in := DropoffInput{
		DropoffNotes:           req.DropoffNotes,
		ImpoundLotSignatureRef: req.ImpoundLotSignatureRef,
		CustomerSignatureRef:   req.CustomerSignatureRef,
		Method:                 PaymentMethod(strings.TrimSpace(req.PaymentMethod)),
		Amount:                 req.PaymentAmount,
		ActualCost:             req.ActualCost,
	}
	if req.Card != nil {
		in.Card = &CreditCard{
			Number:         req.Card.Number,
			ExpiryMonth:    int(req.Card.ExpiryMonth),
			ExpiryYear:     int(req.Card.ExpiryYear),
			CVV:            req.Card.Cvv,
			CardholderName: req.Card.CardholderName,
		}
	}

	j, err := s.svc.CompleteDropoffAndPayment(ctx, towerID, req.Id, in)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &jobpb.JobResponse{Job: toPBJob(j)}, nil
}

func operatorTower(ctx context.Context) (string, error) {
	op, ok := server.OperatorFromContext(ctx)
	if !ok || strings.TrimSpace(op.TowerID) == "" {
		return "", status.Error(codes.Unauthenticated, "operator identity missing")
	}
	return op.TowerID, nil
}

// statusFromError 领域错误到 gRPC 状态码的映射。
func statusFromError(err error) error {
	var (
		ve *ValidationError
		de *PaymentDeclinedError
		re *ReconciliationError
		te *TransitionError
	)
	switch {
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, "job not found")
	case errors.As(err, &te):
		return status.Error(codes.FailedPrecondition, te.Error())
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.As(err, &de):
		return status.Error(codes.FailedPrecondition, de.Error())
	case errors.Is(err, ErrPaymentTimeout):
		return status.Error(codes.DeadlineExceeded, "payment authorization timed out")
	case errors.Is(err, ErrConcurrentModification):
		return status.Error(codes.Aborted, "job was modified concurrently, reload and retry")
	case errors.As(err, &re):
		// 已扣款但未落库：返回流水号，禁止调用方盲目重试
		return status.Errorf(codes.Internal, "payment captured (transaction %s) but job update failed, manual reconciliation required", re.TransactionID)
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toPBJob(j *Job) *jobpb.Job {
	if j == nil {
		return nil
	}
	out := &jobpb.Job{
		Id:                     j.ID,
		JobNumber:              j.JobNumber,
		TowerId:                j.TowerID,
		Status:                 string(j.Status),
		Priority:               string(j.Priority),
		CustomerName:           j.CustomerName,
		CustomerPhone:          j.CustomerPhone,
		VehicleMake:            j.VehicleMake,
		VehicleModel:           j.VehicleModel,
		VehicleYear:            int32(j.VehicleYear),
		VehicleColor:           j.VehicleColor,
		Vin:                    j.VIN,
		LicensePlate:           j.LicensePlate,
		VehiclePhotoRef:        j.VehiclePhotoRef,
		PickupLocation:         j.PickupLocation,
		DropoffLocation:        j.DropoffLocation,
		Distance:               j.Distance,
		EstimatedTime:          j.EstimatedTime,
		EstimatedCost:          j.EstimatedCost,
		ActualCost:             j.ActualCost,
		PaymentAmount:          j.PaymentAmount,
		PaymentMethod:          string(j.PaymentMethod),
		PaymentTransactionId:   j.PaymentTransactionID,
		CustomerSignatureRef:   j.CustomerSignatureRef,
		ImpoundLotSignatureRef: j.ImpoundLotSignatureRef,
		DropoffNotes:           j.DropoffNotes,
		Description:            j.Description,
		DriverName:             j.DriverName,
		TruckName:              j.TruckName,
		Version:                j.Version,
		CreatedAt:              j.CreatedAt.Unix(),
		UpdatedAt:              j.UpdatedAt.Unix(),
	}
	if j.ScheduledAt != nil {
		out.ScheduledAt = j.ScheduledAt.Unix()
	}
	if j.CompletedAt != nil {
		out.CompletedAt = j.CompletedAt.Unix()
	}
	if j.CancelledAt != nil {
		out.CancelledAt = j.CancelledAt.Unix()
	}
	if j.DropoffCompletedAt != nil {
		out.DropoffCompletedAt = j.DropoffCompletedAt.Unix()
	}
	if j.PaymentCompletedAt != nil {
		out.PaymentCompletedAt = j.PaymentCompletedAt.Unix()
	}
	// cancelled 没有进度，保持 0
	if fraction, ok := ProgressFraction(j.Status); ok {
		out.ProgressFraction = fraction
	}
	return out
}
