// Package evidence 处理到场取证的车辆照片：类型校验、大小限制、落存储、生成引用。
package evidence

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
)

// MaxPhotoSize 单张照片上限 10MB。
const MaxPhotoSize = 10 << 20

// allowedPhotoTypes 允许的照片类型。
var allowedPhotoTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
}

// BlobStore 照片字节的落地存储。
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// Ref 一次成功采集的结果。
type Ref struct {
	URL        string
	CapturedAt time.Time
}

type Capturer struct {
	store BlobStore
	now   func() time.Time
}

func NewCapturer(store BlobStore) *Capturer {
	return &Capturer{store: store, now: time.Now}
}

// CapturePhoto 校验并存储车辆照片，返回可写入作业的引用。
// declaredType 为空时按内容嗅探；类型不在允许列表返回 *job.ValidationError。
func (c *Capturer) CapturePhoto(ctx context.Context, jobID string, declaredType string, data []byte) (*Ref, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, job.NewValidationError("jobId", "")
	}
	if len(data) == 0 {
		return nil, job.NewValidationError("photo", "empty file")
	}
	if len(data) > MaxPhotoSize {
		return nil, job.NewValidationError("photo", fmt.Sprintf("exceeds %d bytes", MaxPhotoSize))
	}

	contentType := normalizeContentType(declaredType)
	if contentType == "" {
		contentType = normalizeContentType(http.DetectContentType(data))
	}
	ext, ok := allowedPhotoTypes[contentType]
	if !ok {
		return nil, job.NewValidationError("photo", fmt.Sprintf("unsupported content type %q", contentType))
	}

	now := c.now()
	key := fmt.Sprintf("vehicle-photos/%s/%d-%06d.%s", jobID, now.UnixMilli(), rand.Intn(1000000), ext)
	url, err := c.store.Put(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}
	return &Ref{URL: url, CapturedAt: now}, nil
}

func normalizeContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	// 去掉 "image/jpeg; charset=..." 之类的参数
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "image/jpg" {
		return "image/jpeg"
	}
	return ct
}
