package job

import (
	"errors"
	"testing"
	"time"
)

func towingJob() *Job {
	return &Job{
		Status:          StatusTowing,
		VIN:             "1HGBH41JXMN109186",
		LicensePlate:    "8ABC123",
		VehiclePhotoRef: "https://storage.towlinkdrive.com/vehicle-photos/j1/1.jpg",
	}
}

func TestCanTransitionAndApply(t *testing.T) {
	if !CanTransition(StatusWaiting, StatusDispatched) {
		t.Fatalf("expected waiting -> dispatched allowed")
	}
	if CanTransition(StatusCompleted, StatusWaiting) {
		t.Fatalf("expected completed -> waiting not allowed")
	}

	j := &Job{Status: StatusWaiting}
	now := time.Now()
	if err := ApplyTransition(j, StatusDispatched, now); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if j.Status != StatusDispatched {
		t.Fatalf("expected status dispatched, got %s", j.Status)
	}

	if err := ApplyTransition(j, StatusCompleted, now); err == nil {
		t.Fatalf("expected invalid shortcut transition to fail")
	}
}

func TestNoSelfTransition(t *testing.T) {
	for _, s := range []Status{StatusWaiting, StatusDispatched, StatusEnRoute, StatusOnScene, StatusTowing} {
		if CanTransition(s, s) {
			t.Fatalf("expected %s -> %s not allowed", s, s)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		if !s.Terminal() {
			t.Fatalf("expected %s terminal", s)
		}
		for _, to := range []Status{StatusWaiting, StatusDispatched, StatusEnRoute, StatusOnScene, StatusTowing, StatusCompleted, StatusCancelled} {
			if CanTransition(s, to) {
				t.Fatalf("expected %s -> %s not allowed", s, to)
			}
		}
	}
}

func TestDeclineOnlyFromDispatched(t *testing.T) {
	if !CanTransition(StatusDispatched, StatusCancelled) {
		t.Fatalf("expected dispatched -> cancelled allowed")
	}
	for _, s := range []Status{StatusWaiting, StatusEnRoute, StatusOnScene, StatusTowing} {
		if CanTransition(s, StatusCancelled) {
			t.Fatalf("expected %s -> cancelled not allowed", s)
		}
	}
}

func TestTowingGuard(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		mutate func(*Job)
		field  string
	}{
		{"missing vin", func(j *Job) { j.VIN = "" }, "vin"},
		{"missing plate", func(j *Job) { j.LicensePlate = "" }, "licensePlate"},
		{"missing photo", func(j *Job) { j.VehiclePhotoRef = "" }, "vehiclePhotoRef"},
	}
	for _, tc := range cases {
		j := towingJob()
		j.Status = StatusOnScene
		tc.mutate(j)

		err := ApplyTransition(j, StatusTowing, now)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: want ValidationError, got %v", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: want field %s, got %s", tc.name, tc.field, ve.Field)
		}
		if j.Status != StatusOnScene {
			t.Fatalf("%s: status changed to %s on failed guard", tc.name, j.Status)
		}
	}
}

func TestCompletionGuard(t *testing.T) {
	now := time.Now()

	j := towingJob()
	err := ApplyTransition(j, StatusCompleted, now)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError for missing completion evidence, got %v", err)
	}

	j = towingJob()
	j.CustomerSignatureRef = "https://storage.towlinkdrive.com/signatures/j1/customer-1.png"
	j.ImpoundLotSignatureRef = "https://storage.towlinkdrive.com/signatures/j1/impound_lot-1.png"
	j.PaymentTransactionID = "txn_1"
	if err := ApplyTransition(j, StatusCompleted, now); err != nil {
		t.Fatalf("ApplyTransition to completed: %v", err)
	}
	if j.CompletedAt == nil || !j.CompletedAt.Equal(now) {
		t.Fatalf("expected CompletedAt set to now")
	}
}

func TestTransitionErrorMatchesSentinel(t *testing.T) {
	j := &Job{Status: StatusWaiting}
	err := ApplyTransition(j, StatusTowing, time.Now())
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("want TransitionError, got %v", err)
	}
	if te.From != StatusWaiting || te.To != StatusTowing {
		t.Fatalf("unexpected transition error %v", te)
	}
}

func TestProgressFraction(t *testing.T) {
	if f, ok := ProgressFraction(StatusWaiting); !ok || f <= 0 {
		t.Fatalf("waiting: got %v %v", f, ok)
	}
	if f, ok := ProgressFraction(StatusCompleted); !ok || f != 1 {
		t.Fatalf("completed: got %v %v", f, ok)
	}
	if _, ok := ProgressFraction(StatusCancelled); ok {
		t.Fatalf("cancelled should have no progress fraction")
	}
}
