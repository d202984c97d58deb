package job

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

const testTower = "tower-1"

type stubAuthorizer struct {
	calls   int
	err     error
	blockFn func(ctx context.Context) error
}

func (a *stubAuthorizer) Authorize(ctx context.Context, req PaymentRequest) (*PaymentAuthorization, error) {
	a.calls++
	if a.blockFn != nil {
		if err := a.blockFn(ctx); err != nil {
			return nil, err
		}
	}
	if a.err != nil {
		return nil, a.err
	}
	return &PaymentAuthorization{
		TransactionID: fmt.Sprintf("txn_%d", a.calls),
		AuthorizedAt:  time.Now().UTC(),
	}, nil
}

func newTestService(pay PaymentAuthorizer) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	svc := NewService(store, pay, nil)
	return svc, store
}

func createInput() CreateJobInput {
	return CreateJobInput{
		Priority:       PriorityNormal,
		CustomerName:   "Maria Gonzalez",
		CustomerPhone:  "+1-555-0142",
		VehicleMake:    "Honda",
		VehicleModel:   "Civic",
		VehicleYear:    2019,
		PickupLocation: "I-95 North, mile marker 42",
		EstimatedCost:  14500,
	}
}

func advanceToOnScene(t *testing.T, svc *Service, id string) {
	t.Helper()
	ctx := context.Background()
	if _, err := svc.Dispatch(ctx, testTower, id); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := svc.Accept(ctx, testTower, id); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := svc.Arrive(ctx, testTower, id); err != nil {
		t.Fatalf("arrive: %v", err)
	}
}

func evidenceInput() EvidenceInput {
	return EvidenceInput{
		VIN:          "1hgbh41jxmn109186",
		LicensePlate: " 8abc123 ",
		PhotoRef:     "https://storage.towlinkdrive.com/vehicle-photos/j1/1.jpg",
	}
}

func dropoffInput() DropoffInput {
	return DropoffInput{
		ImpoundLotSignatureRef: "https://storage.towlinkdrive.com/signatures/j1/impound_lot-1.png",
		CustomerSignatureRef:   "https://storage.towlinkdrive.com/signatures/j1/customer-1.png",
		Method:                 PaymentCash,
		Amount:                 14500,
	}
}

func TestFullLifecycle(t *testing.T) {
	pay := &stubAuthorizer{}
	svc, _ := newTestService(pay)
	ctx := context.Background()

	j, err := svc.Create(ctx, testTower, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if j.Status != StatusWaiting {
		t.Fatalf("expected waiting, got %s", j.Status)
	}
	if j.JobNumber == "" || j.ID == "" {
		t.Fatal("expected generated id and job number")
	}

	advanceToOnScene(t, svc, j.ID)

	j, err = svc.SubmitEvidence(ctx, testTower, j.ID, evidenceInput())
	if err != nil {
		t.Fatalf("evidence: %v", err)
	}
	if j.Status != StatusTowing {
		t.Fatalf("expected towing, got %s", j.Status)
	}
	if j.VIN != "1HGBH41JXMN109186" || j.LicensePlate != "8ABC123" {
		t.Fatalf("evidence not normalized: %q %q", j.VIN, j.LicensePlate)
	}

	j, err = svc.CompleteDropoffAndPayment(ctx, testTower, j.ID, dropoffInput())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if j.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", j.Status)
	}
	if j.PaymentTransactionID == "" {
		t.Fatal("expected payment transaction id")
	}
	if j.CompletedAt == nil || j.DropoffCompletedAt == nil || j.PaymentCompletedAt == nil {
		t.Fatal("expected all completion timestamps set")
	}
	if !j.CompletedAt.Equal(*j.DropoffCompletedAt) || !j.CompletedAt.Equal(*j.PaymentCompletedAt) {
		t.Fatal("completion timestamps should share one instant")
	}
	if pay.calls != 1 {
		t.Fatalf("expected one authorize call, got %d", pay.calls)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(&stubAuthorizer{})
	ctx := context.Background()

	in := createInput()
	in.PickupLocation = "  "
	_, err := svc.Create(ctx, testTower, in)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "pickupLocation" {
		t.Fatalf("want pickupLocation validation error, got %v", err)
	}

	in = createInput()
	in.Priority = Priority("extreme")
	if _, err := svc.Create(ctx, testTower, in); !errors.As(err, &ve) || ve.Field != "priority" {
		t.Fatalf("want priority validation error, got %v", err)
	}
}

func TestEvidenceValidationKeepsSnapshot(t *testing.T) {
	svc, store := newTestService(&stubAuthorizer{})
	ctx := context.Background()

	j, err := svc.Create(ctx, testTower, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	advanceToOnScene(t, svc, j.ID)
	before, _ := store.GetForTower(ctx, j.ID, testTower)

	in := evidenceInput()
	in.VIN = ""
	_, err = svc.SubmitEvidence(ctx, testTower, j.ID, in)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "vin" {
		t.Fatalf("want vin validation error, got %v", err)
	}

	in = evidenceInput()
	in.VIN = "TOOSHORT"
	if _, err := svc.SubmitEvidence(ctx, testTower, j.ID, in); !errors.As(err, &ve) || ve.Field != "vin" {
		t.Fatalf("want vin length error, got %v", err)
	}

	after, _ := store.GetForTower(ctx, j.ID, testTower)
	if after.Status != before.Status || after.VIN != before.VIN || after.Version != before.Version {
		t.Fatal("failed evidence submit must not change the stored job")
	}
}

func TestRepeatedAcceptFails(t *testing.T) {
	svc, _ := newTestService(&stubAuthorizer{})
	ctx := context.Background()

	j, _ := svc.Create(ctx, testTower, createInput())
	if _, err := svc.Dispatch(ctx, testTower, j.ID); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := svc.Accept(ctx, testTower, j.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := svc.Accept(ctx, testTower, j.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second accept: want ErrInvalidTransition, got %v", err)
	}
}

func TestDeclineThenAcceptFails(t *testing.T) {
	svc, store := newTestService(&stubAuthorizer{})
	ctx := context.Background()

	j, _ := svc.Create(ctx, testTower, createInput())
	if _, err := svc.Dispatch(ctx, testTower, j.ID); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	declined, err := svc.Decline(ctx, testTower, j.ID)
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	if declined.Status != StatusCancelled || declined.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %s", declined.Status)
	}

	if _, err := svc.Accept(ctx, testTower, j.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("accept after decline: want ErrInvalidTransition, got %v", err)
	}
	got, _ := store.GetForTower(ctx, j.ID, testTower)
	if got.Status != StatusCancelled {
		t.Fatalf("cancelled job mutated to %s", got.Status)
	}
}

func TestTowerScoping(t *testing.T) {
	svc, _ := newTestService(&stubAuthorizer{})
	ctx := context.Background()

	j, _ := svc.Create(ctx, testTower, createInput())
	if _, err := svc.Get(ctx, "tower-2", j.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign tower get: want ErrNotFound, got %v", err)
	}
	if _, err := svc.Dispatch(ctx, "tower-2", j.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign tower dispatch: want ErrNotFound, got %v", err)
	}
}

func TestPaymentDeclineKeepsTowing(t *testing.T) {
	pay := &stubAuthorizer{err: &PaymentDeclinedError{Reason: "card declined by issuer"}}
	svc, store := newTestService(pay)
	ctx := context.Background()

	j, _ := svc.Create(ctx, testTower, createInput())
	advanceToOnScene(t, svc, j.ID)
	if _, err := svc.SubmitEvidence(ctx, testTower, j.ID, evidenceInput()); err != nil {
		t.Fatalf("evidence: %v", err)
	}
	before, _ := store.GetForTower(ctx, j.ID, testTower)

	_, err := svc.CompleteDropoffAndPayment(ctx, testTower, j.ID, dropoffInput())
	var de *PaymentDeclinedError
	if !errors.As(err, &de) {
		t.Fatalf("want PaymentDeclinedError, got %v", err)
	}

	after, _ := store.GetForTower(ctx, j.ID, testTower)
	if after.Status != StatusTowing || after.PaymentTransactionID != "" || after.Version != before.Version {
		t.Fatal("declined payment must leave the job in towing untouched")
	}

	// 网关恢复后重试成功
	pay.err = nil
	if _, err := svc.CompleteDropoffAndPayment(ctx, testTower, j.ID, dropoffInput()); err != nil {
		t.Fatalf("retry after decline: %v", err)
	}
}

func TestPaymentTimeout(t *testing.T) {
	pay := &stubAuthorizer{blockFn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}
	svc, store := newTestService(pay)
	svc.SetAuthorizeTimeout(20 * time.Millisecond)
	ctx := context.Background()

	j, _ := svc.Create(ctx, testTower, createInput())
	advanceToOnScene(t, svc, j.ID)
	if _, err := svc.SubmitEvidence(ctx, testTower, j.ID, evidenceInput()); err != nil {
		t.Fatalf("evidence: %v", err)
	}

	if _, err := svc.CompleteDropoffAndPayment(ctx, testTower, j.ID, dropoffInput()); !errors.Is(err, ErrPaymentTimeout) {
		t.Fatalf("want ErrPaymentTimeout, got %v", err)
	}
	got, _ := store.GetForTower(ctx, j.ID, testTower)
	if got.Status != StatusTowing {
		t.Fatalf("timed out payment must keep towing, got %s", got.Status)
	}
}

func TestCompleteRequiresBothSignatures(t *testing.T) {
	svc, _ := newTestService(&stubAuthorizer{})
	ctx := context.Background()

	j, _ := svc.Create(ctx, testTower, createInput())
	advanceToOnScene(t, svc, j.ID)
	if _, err := svc.SubmitEvidence(ctx, testTower, j.ID, evidenceInput()); err != nil {
		t.Fatalf("evidence: %v", err)
	}

	in := dropoffInput()
	in.CustomerSignatureRef = ""
	_, err := svc.CompleteDropoffAndPayment(ctx, testTower, j.ID, in)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "customerSignatureRef" {
		t.Fatalf("want customerSignatureRef validation error, got %v", err)
	}

	in = dropoffInput()
	in.ImpoundLotSignatureRef = " "
	if _, err := svc.CompleteDropoffAndPayment(ctx, testTower, j.ID, in); !errors.As(err, &ve) || ve.Field != "impoundLotSignatureRef" {
		t.Fatalf("want impoundLotSignatureRef validation error, got %v", err)
	}
}

func TestReconciliationOnSaveFailure(t *testing.T) {
	pay := &stubAuthorizer{}
	svc, store := newTestService(pay)
	ctx := context.Background()

	j, _ := svc.Create(ctx, testTower, createInput())
	advanceToOnScene(t, svc, j.ID)
	if _, err := svc.SubmitEvidence(ctx, testTower, j.ID, evidenceInput()); err != nil {
		t.Fatalf("evidence: %v", err)
	}

	// 支付成功后条件保存失败（如版本冲突）走对账路径
	failing := &failingSaveStore{Store: store}
	svc2 := NewService(failing, pay, nil)

	_, err := svc2.CompleteDropoffAndPayment(ctx, testTower, j.ID, dropoffInput())
	var re *ReconciliationError
	if !errors.As(err, &re) {
		t.Fatalf("want ReconciliationError, got %v", err)
	}
	if re.TransactionID == "" || re.JobID != j.ID {
		t.Fatalf("reconciliation error missing identifiers: %+v", re)
	}
}

type failingSaveStore struct {
	Store
}

func (s *failingSaveStore) Save(context.Context, *Job, int64) error {
	return ErrConcurrentModification
}

func TestConcurrentAcceptsOneWins(t *testing.T) {
	svc, store := newTestService(&stubAuthorizer{})
	ctx := context.Background()

	j, _ := svc.Create(ctx, testTower, createInput())
	if _, err := svc.Dispatch(ctx, testTower, j.ID); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	// 两个操作者各自加载 dispatched 快照后先后提交
	first, _ := store.GetForTower(ctx, j.ID, testTower)
	second, _ := store.GetForTower(ctx, j.ID, testTower)

	dispatchedVersion := first.Version
	if err := ApplyTransition(first, StatusEnRoute, time.Now()); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := store.Save(ctx, first, dispatchedVersion); err != nil {
		t.Fatalf("first save: %v", err)
	}

	if err := ApplyTransition(second, StatusEnRoute, time.Now()); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if err := store.Save(ctx, second, second.Version); !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("second save: want ErrConcurrentModification, got %v", err)
	}

	got, _ := store.GetForTower(ctx, j.ID, testTower)
	if got.Status != StatusEnRoute || got.Version != dispatchedVersion+1 {
		t.Fatalf("unexpected winner state: %s v%d", got.Status, got.Version)
	}
}

func TestListAndStats(t *testing.T) {
	svc, _ := newTestService(&stubAuthorizer{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		in := createInput()
		if i == 0 {
			in.Priority = PriorityUrgent
		}
		j, err := svc.Create(ctx, testTower, in)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if i == 2 {
			if _, err := svc.Dispatch(ctx, testTower, j.ID); err != nil {
				t.Fatalf("dispatch: %v", err)
			}
			if _, err := svc.Accept(ctx, testTower, j.ID); err != nil {
				t.Fatalf("accept: %v", err)
			}
		}
	}

	jobs, total, err := svc.List(ctx, testTower, ListFilter{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(jobs) != 3 {
		t.Fatalf("want 3 jobs, got total=%d len=%d", total, len(jobs))
	}

	jobs, total, err = svc.List(ctx, testTower, ListFilter{Status: StatusWaiting, Limit: 10})
	if err != nil {
		t.Fatalf("list waiting: %v", err)
	}
	if total != 2 {
		t.Fatalf("want 2 waiting, got %d", total)
	}
	for _, j := range jobs {
		if j.Status != StatusWaiting {
			t.Fatalf("filter leaked status %s", j.Status)
		}
	}

	st, err := svc.Stats(ctx, testTower)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Total != 3 || st.Active != 1 || st.Urgent != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if st.Breakdown[StatusWaiting] != 2 || st.Breakdown[StatusEnRoute] != 1 {
		t.Fatalf("unexpected breakdown %+v", st.Breakdown)
	}
}

func TestMemoryStoreVersionConflict(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	j := &Job{ID: "j1", TowerID: testTower, Status: StatusWaiting}
	if err := store.Create(ctx, j); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := store.GetForTower(ctx, "j1", testTower)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := store.Save(ctx, loaded, loaded.Version); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, loaded, 0); !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("stale save: want ErrConcurrentModification, got %v", err)
	}
	if _, err := store.GetForTower(ctx, "missing", testTower); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing get: want ErrNotFound, got %v", err)
	}
}
