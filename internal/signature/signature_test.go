package signature

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/TowLinkDrive/TowLinkDrive/internal/evidence"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func strokedCanvas(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for i := 5; i < 35; i++ {
		img.Set(i, 10, color.Black)
	}
	return encodePNG(t, img)
}

func TestCapture(t *testing.T) {
	c := NewCapturer(evidence.NewMemoryStore())

	ref, err := c.Capture(context.Background(), "job-1", Customer, strokedCanvas(t))
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if !strings.Contains(ref.URL, "/signatures/job-1/customer-") {
		t.Fatalf("unexpected url %s", ref.URL)
	}
	if ref.SignedAt.IsZero() {
		t.Fatal("expected signed time")
	}
}

func TestCaptureImpoundLotKey(t *testing.T) {
	c := NewCapturer(evidence.NewMemoryStore())
	ref, err := c.Capture(context.Background(), "job-1", ImpoundLot, strokedCanvas(t))
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if !strings.Contains(ref.URL, "impound_lot-") {
		t.Fatalf("unexpected url %s", ref.URL)
	}
}

func TestCaptureBlankCanvas(t *testing.T) {
	c := NewCapturer(evidence.NewMemoryStore())

	blank := encodePNG(t, image.NewRGBA(image.Rect(0, 0, 40, 20)))
	if _, err := c.Capture(context.Background(), "job-1", Customer, blank); !errors.Is(err, ErrEmptySignature) {
		t.Fatalf("want ErrEmptySignature, got %v", err)
	}

	if _, err := c.Capture(context.Background(), "job-1", Customer, nil); !errors.Is(err, ErrEmptySignature) {
		t.Fatalf("want ErrEmptySignature for nil data, got %v", err)
	}
}

// 签字板导出的是 data URL，必须与原始 PNG 字节一样被接受。
func TestCaptureDataURL(t *testing.T) {
	c := NewCapturer(evidence.NewMemoryStore())

	dataURL := []byte("data:image/png;base64," + base64.StdEncoding.EncodeToString(strokedCanvas(t)))
	ref, err := c.Capture(context.Background(), "job-1", Customer, dataURL)
	if err != nil {
		t.Fatalf("capture data url failed: %v", err)
	}
	if !strings.Contains(ref.URL, "/signatures/job-1/customer-") {
		t.Fatalf("unexpected url %s", ref.URL)
	}
}

func TestCaptureDataURLBlankCanvas(t *testing.T) {
	c := NewCapturer(evidence.NewMemoryStore())

	blank := encodePNG(t, image.NewRGBA(image.Rect(0, 0, 40, 20)))
	dataURL := []byte("data:image/png;base64," + base64.StdEncoding.EncodeToString(blank))
	if _, err := c.Capture(context.Background(), "job-1", Customer, dataURL); !errors.Is(err, ErrEmptySignature) {
		t.Fatalf("want ErrEmptySignature, got %v", err)
	}
}

func TestCaptureRejectsBadDataURL(t *testing.T) {
	c := NewCapturer(evidence.NewMemoryStore())

	for _, payload := range []string{
		"data:image/png;base64",             // 没有逗号
		"data:image/jpeg;base64,AAAA",       // 非 PNG 媒体类型
		"data:image/png,rawbytes",           // 未声明 base64
		"data:image/png;base64,!!not-b64!!", // 非法 base64
	} {
		_, err := c.Capture(context.Background(), "job-1", Customer, []byte(payload))
		var ve *job.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("payload %q: want ValidationError, got %v", payload, err)
		}
	}
}

func TestCaptureRejectsNonPNG(t *testing.T) {
	c := NewCapturer(evidence.NewMemoryStore())

	_, err := c.Capture(context.Background(), "job-1", Customer, []byte("not a png"))
	var ve *job.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestCaptureRejectsUnknownType(t *testing.T) {
	c := NewCapturer(evidence.NewMemoryStore())

	_, err := c.Capture(context.Background(), "job-1", Type("witness"), strokedCanvas(t))
	var ve *job.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if ve.Field != "signatureType" {
		t.Fatalf("want signatureType field, got %s", ve.Field)
	}
}
