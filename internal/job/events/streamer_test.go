package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
)

type fakeKinesis struct {
	inputs []*kinesis.PutRecordInput
	err    error
}

func (f *fakeKinesis) PutRecord(_ context.Context, params *kinesis.PutRecordInput, _ ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &kinesis.PutRecordOutput{}, nil
}

func TestJobTransitioned(t *testing.T) {
	fake := &fakeKinesis{}
	s := NewStreamer(fake, "job-events", nil)

	j := &job.Job{
		ID:        "j1",
		JobNumber: "TJ-0001",
		TowerID:   "tower-1",
		Status:    job.StatusEnRoute,
		Priority:  job.PriorityUrgent,
		Version:   2,
	}
	s.JobTransitioned("accepted", j)

	if len(fake.inputs) != 1 {
		t.Fatalf("want 1 record, got %d", len(fake.inputs))
	}
	in := fake.inputs[0]
	if *in.StreamName != "job-events" {
		t.Fatalf("unexpected stream %s", *in.StreamName)
	}
	if *in.PartitionKey != "j1" {
		t.Fatalf("partition key must be the job id, got %s", *in.PartitionKey)
	}

	var ev JobEvent
	if err := json.Unmarshal(in.Data, &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if ev.EventType != "accepted" || ev.Status != "en_route" || ev.Version != 2 {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.OccurredAt.IsZero() {
		t.Fatal("expected occurredAt set")
	}
}

func TestJobTransitionedSwallowsErrors(t *testing.T) {
	fake := &fakeKinesis{err: fmt.Errorf("stream unavailable")}
	s := NewStreamer(fake, "job-events", nil)

	// 发送失败不得 panic，也不影响调用方
	s.JobTransitioned("created", &job.Job{ID: "j1"})
	if len(fake.inputs) != 1 {
		t.Fatalf("want attempted put, got %d", len(fake.inputs))
	}
}

func TestJobTransitionedNilSafe(t *testing.T) {
	var s *Streamer
	s.JobTransitioned("created", &job.Job{ID: "j1"})

	NewStreamer(nil, "job-events", nil).JobTransitioned("created", nil)
}
