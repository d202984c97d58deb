package evidence

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
)

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00}

func TestCapturePhoto(t *testing.T) {
	store := NewMemoryStore()
	c := NewCapturer(store)

	data := append(append([]byte{}, jpegHeader...), bytes.Repeat([]byte{0x11}, 64)...)
	ref, err := c.CapturePhoto(context.Background(), "job-1", "image/jpeg", data)
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if !strings.HasPrefix(ref.URL, BaseURL+"/vehicle-photos/job-1/") {
		t.Fatalf("unexpected url %s", ref.URL)
	}
	if !strings.HasSuffix(ref.URL, ".jpg") {
		t.Fatalf("expected .jpg suffix, got %s", ref.URL)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one stored blob, got %d", store.Len())
	}
}

func TestCapturePhotoSniffsType(t *testing.T) {
	c := NewCapturer(NewMemoryStore())

	data := append(append([]byte{}, jpegHeader...), bytes.Repeat([]byte{0x22}, 64)...)
	ref, err := c.CapturePhoto(context.Background(), "job-1", "", data)
	if err != nil {
		t.Fatalf("capture without declared type failed: %v", err)
	}
	if !strings.HasSuffix(ref.URL, ".jpg") {
		t.Fatalf("sniffed type should map to .jpg, got %s", ref.URL)
	}
}

func TestCapturePhotoRejects(t *testing.T) {
	c := NewCapturer(NewMemoryStore())
	ctx := context.Background()

	cases := []struct {
		name        string
		jobID       string
		contentType string
		data        []byte
		field       string
	}{
		{"missing job id", "", "image/jpeg", jpegHeader, "jobId"},
		{"empty file", "job-1", "image/jpeg", nil, "photo"},
		{"pdf", "job-1", "application/pdf", []byte("%PDF-1.7"), "photo"},
		{"gif", "job-1", "image/gif", []byte("GIF89a"), "photo"},
		{"oversized", "job-1", "image/jpeg", make([]byte, MaxPhotoSize+1), "photo"},
	}
	for _, tc := range cases {
		_, err := c.CapturePhoto(ctx, tc.jobID, tc.contentType, tc.data)
		var ve *job.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: want ValidationError, got %v", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: want field %s, got %s", tc.name, tc.field, ve.Field)
		}
	}
}

func TestCapturePhotoNormalizesJpg(t *testing.T) {
	c := NewCapturer(NewMemoryStore())
	data := append(append([]byte{}, jpegHeader...), bytes.Repeat([]byte{0x33}, 16)...)
	if _, err := c.CapturePhoto(context.Background(), "job-1", "image/jpg; charset=binary", data); err != nil {
		t.Fatalf("image/jpg alias rejected: %v", err)
	}
}
