// Package signature 处理交车环节的电子签字：客户签字和扣车场签字。
package signature

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/evidence"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
)

// Type 签字方。
type Type string

const (
	Customer   Type = "customer"
	ImpoundLot Type = "impound_lot"
)

func (t Type) Valid() bool {
	return t == Customer || t == ImpoundLot
}

// ErrEmptySignature 签字板为空白（或纯色底）时返回。
var ErrEmptySignature = errors.New("signature is empty")

// MaxSignatureSize 签字 PNG 上限 1MB。
const MaxSignatureSize = 1 << 20

// Ref 一次成功采集的签字引用。
type Ref struct {
	URL      string
	SignedAt time.Time
}

type Capturer struct {
	store evidence.BlobStore
	now   func() time.Time
}

func NewCapturer(store evidence.BlobStore) *Capturer {
	return &Capturer{store: store, now: time.Now}
}

// Capture 校验并存储签字 PNG。
// 入参既可以是原始 PNG 字节，也可以是签字板导出的 data URL（data:image/png;base64,...）。
// 非 PNG 或超限返回 *job.ValidationError；空白画布返回 ErrEmptySignature。
func (c *Capturer) Capture(ctx context.Context, jobID string, sigType Type, data []byte) (*Ref, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, job.NewValidationError("jobId", "")
	}
	if !sigType.Valid() {
		return nil, job.NewValidationError("signatureType", fmt.Sprintf("unknown type %q", sigType))
	}
	if len(data) == 0 {
		return nil, ErrEmptySignature
	}

	data, err := decodeDataURL(data)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptySignature
	}
	if len(data) > MaxSignatureSize {
		return nil, job.NewValidationError("signature", fmt.Sprintf("exceeds %d bytes", MaxSignatureSize))
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, job.NewValidationError("signature", "must be a valid png")
	}
	if isBlank(img) {
		return nil, ErrEmptySignature
	}

	now := c.now()
	key := fmt.Sprintf("signatures/%s/%s-%d.png", jobID, sigType, now.UnixMilli())
	url, err := c.store.Put(ctx, key, "image/png", data)
	if err != nil {
		return nil, fmt.Errorf("store signature: %w", err)
	}
	return &Ref{URL: url, SignedAt: now}, nil
}

// decodeDataURL 还原签字板导出的 data URL；非 data URL 的输入原样返回。
func decodeDataURL(data []byte) ([]byte, error) {
	const scheme = "data:"
	if !bytes.HasPrefix(data, []byte(scheme)) {
		return data, nil
	}

	comma := bytes.IndexByte(data, ',')
	if comma < 0 {
		return nil, job.NewValidationError("signature", "malformed data url")
	}
	meta := string(data[len(scheme):comma])

	parts := strings.Split(meta, ";")
	if parts[0] != "" && parts[0] != "image/png" {
		return nil, job.NewValidationError("signature", "must be a valid png")
	}
	base64Encoded := false
	for _, p := range parts[1:] {
		if p == "base64" {
			base64Encoded = true
		}
	}
	if !base64Encoded {
		return nil, job.NewValidationError("signature", "data url must be base64 encoded")
	}

	decoded, err := base64.StdEncoding.DecodeString(string(data[comma+1:]))
	if err != nil {
		return nil, job.NewValidationError("signature", "malformed data url")
	}
	return decoded, nil
}

// isBlank 全部像素与左上角相同即视为空白画布。
func isBlank(img image.Image) bool {
	b := img.Bounds()
	if b.Empty() {
		return true
	}
	r0, g0, b0, a0 := img.At(b.Min.X, b.Min.Y).RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			if r != r0 || g != g0 || bb != b0 || a != a0 {
				return false
			}
		}
	}
	return true
}
