package job

import (
	"testing"
	"time"

	jobpb "github.com/TowLinkDrive/TowLinkDrive/internal/api/proto/job"
	"google.golang.org/protobuf/proto"
)

// 走一遍真实的 pb 编解码，确保描述符可用且字段映射无损。
func TestToPBJobWireRoundTrip(t *testing.T) {
	now := time.Now()
	j := &Job{
		ID:             "job-1",
		JobNumber:      "TJ-042",
		TowerID:        "tower-1",
		Status:         StatusTowing,
		Priority:       PriorityHigh,
		CustomerName:   "Maria Gonzalez",
		CustomerPhone:  "+1-555-0142",
		VehicleMake:    "Honda",
		VehicleModel:   "Civic",
		VehicleYear:    2019,
		VIN:            "1HGBH41JXMN109186",
		LicensePlate:   "8ABC123",
		PickupLocation: "I-95 North, mile marker 42",
		EstimatedCost:  14500,
		Version:        4,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	pb := toPBJob(j)
	data, err := proto.Marshal(pb)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := &jobpb.Job{}
	if err := proto.Unmarshal(data, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Id != "job-1" || got.JobNumber != "TJ-042" || got.TowerId != "tower-1" {
		t.Fatalf("identity fields lost: %+v", got)
	}
	if got.Status != "towing" || got.Priority != "high" {
		t.Fatalf("status/priority lost: %s/%s", got.Status, got.Priority)
	}
	if got.Vin != "1HGBH41JXMN109186" || got.LicensePlate != "8ABC123" {
		t.Fatalf("evidence fields lost: %s/%s", got.Vin, got.LicensePlate)
	}
	if got.EstimatedCost != 14500 || got.Version != 4 {
		t.Fatalf("numeric fields lost: cost=%d version=%d", got.EstimatedCost, got.Version)
	}
	if got.CreatedAt != now.Unix() {
		t.Fatalf("createdAt mismatch: %d != %d", got.CreatedAt, now.Unix())
	}

	want, ok := ProgressFraction(StatusTowing)
	if !ok || got.ProgressFraction != want {
		t.Fatalf("progress fraction: want %v, got %v", want, got.ProgressFraction)
	}
}

func TestToPBJobProgressFraction(t *testing.T) {
	base := Job{ID: "job-1", CreatedAt: time.Now(), UpdatedAt: time.Now()}

	completed := base
	completed.Status = StatusCompleted
	if pb := toPBJob(&completed); pb.ProgressFraction != 1 {
		t.Fatalf("completed: want 1, got %v", pb.ProgressFraction)
	}

	cancelled := base
	cancelled.Status = StatusCancelled
	if pb := toPBJob(&cancelled); pb.ProgressFraction != 0 {
		t.Fatalf("cancelled: want 0, got %v", pb.ProgressFraction)
	}
}

// map 字段走一遍编解码（嵌套的 entry 描述符最容易出错）。
func TestJobStatsResponseWireRoundTrip(t *testing.T) {
	in := &jobpb.JobStatsResponse{
		Total:  5,
		Active: 2,
		Urgent: 1,
		Breakdown: map[string]int64{
			"waiting": 2,
			"towing":  1,
		},
	}
	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := &jobpb.JobStatsResponse{}
	if err := proto.Unmarshal(data, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Total != 5 || got.Active != 2 || got.Urgent != 1 {
		t.Fatalf("counters lost: %+v", got)
	}
	if got.Breakdown["waiting"] != 2 || got.Breakdown["towing"] != 1 {
		t.Fatalf("breakdown lost: %+v", got.Breakdown)
	}
}
