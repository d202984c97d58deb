// Package events 把作业流转事件写入 Kinesis，供下游（计费、通知、报表）消费。
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/common/logger"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
)

// KinesisAPI 只取用到的 PutRecord，便于测试替身。
type KinesisAPI interface {
	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

// JobEvent 流转事件的线格式。
type JobEvent struct {
	EventType  string    `json:"eventType"`
	JobID      string    `json:"jobId"`
	JobNumber  string    `json:"jobNumber"`
	TowerID    string    `json:"towerId"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
	Version    int64     `json:"version"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Streamer 实现 job.EventSink。发送失败只记日志，不影响流转结果。
type Streamer struct {
	client     KinesisAPI
	streamName string
	log        logger.Logger

	// putTimeout 单条发送的时限，避免拖慢流转调用方。
	putTimeout time.Duration
}

func NewStreamer(client KinesisAPI, streamName string, log logger.Logger) *Streamer {
	return &Streamer{
		client:     client,
		streamName: streamName,
		log:        log,
		putTimeout: 2 * time.Second,
	}
}

func (s *Streamer) JobTransitioned(eventType string, j *job.Job) {
	if s == nil || s.client == nil || j == nil {
		return
	}

	ev := JobEvent{
		EventType:  eventType,
		JobID:      j.ID,
		JobNumber:  j.JobNumber,
		TowerID:    j.TowerID,
		Status:     string(j.Status),
		Priority:   string(j.Priority),
		Version:    j.Version,
		OccurredAt: time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		s.logf("marshal job event failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.putTimeout)
	defer cancel()

	// 按作业 id 分区，保证同一作业的事件有序
	_, err = s.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(s.streamName),
		PartitionKey: aws.String(j.ID),
		Data:         data,
	})
	if err != nil {
		s.logf("put job event to kinesis failed: %v", err)
	}
}

func (s *Streamer) logf(format string, args ...interface{}) {
	if s.log == nil {
		return
	}
	s.log.Errorf(format, args...)
}
