package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	bureau "github.com/mzafar/marriage-bureau"
	"github.com/mzafar/marriage-bureau/internal/domain"
)

type mockLetterRepo struct {
	created    *bureau.MarriageLetterCreate
	createdRef string
	createErr  error
	printedID  int64
	deletedID  int64
	listCalls  int
}

func (m *mockLetterRepo) Create(ctx context.Context, in bureau.MarriageLetterCreate, ref string) (*bureau.MarriageLetterResponse, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = &in
	m.createdRef = ref
	return &bureau.MarriageLetterResponse{ID: 1, ReferenceNumber: ref, HusbandName: in.Husband.FullName}, nil
}

func (m *mockLetterRepo) Get(ctx context.Context, id int64) (*bureau.MarriageLetter, error) {
	return &bureau.MarriageLetter{ID: id, ReferenceNumber: "MB-2026-000001"}, nil
}

func (m *mockLetterRepo) List(ctx context.Context, filter domain.LetterFilter) ([]bureau.LetterSummary, error) {
	m.listCalls++
	return []bureau.LetterSummary{{ID: 1}}, nil
}

func (m *mockLetterRepo) MarkPrinted(ctx context.Context, id int64, req bureau.LetterPrintRequest) (*bureau.MarriageLetterResponse, error) {
	m.printedID = id
	return &bureau.MarriageLetterResponse{ID: id, ReferenceNumber: "MB-2026-000001", IsPrinted: true}, nil
}

func (m *mockLetterRepo) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return nil
}

type mockIssuer struct{ ref string }

func (m *mockIssuer) Next(ctx context.Context) (string, error) { return m.ref, nil }

type mockDedup struct {
	seen    bool
	err     error
	forgets int
}

func (m *mockDedup) Seen(ctx context.Context, payload any) (bool, error) { return m.seen, m.err }

func (m *mockDedup) Forget(ctx context.Context, payload any) error {
	m.forgets++
	return nil
}

type mockSignal struct {
	events []domain.LetterEvent
}

func (m *mockSignal) Publish(ctx context.Context, event domain.LetterEvent) error {
	m.events = append(m.events, event)
	return nil
}

func letterInput() bureau.MarriageLetterCreate {
	person := bureau.PersonCreate{
		FullName:       "Omar Siddiqui",
		DateOfBirth:    bureau.NewDate(1991, time.June, 2),
		PlaceOfBirth:   "Karachi",
		Nationality:    "Pakistani",
		Religion:       bureau.ReligionIslam,
		Occupation:     "Teacher",
		EducationLevel: bureau.EducationMaster,
		Address:        "5 Clifton Block, Karachi",
		PhoneNumber:    "+92-321-0000000",
	}
	wife := person
	wife.FullName = "Ayesha Malik"
	return bureau.MarriageLetterCreate{
		LetterType:    bureau.LetterN1,
		Husband:       person,
		Wife:          wife,
		Purpose:       "Introduction for marriage proposal",
		ContactPerson: "Imran Siddiqui",
		ContactPhone:  "+92-333-1112223",
	}
}

func newLetterUsecase(repo *mockLetterRepo, dedup *mockDedup, signal *mockSignal) *LetterUsecase {
	return NewLetterUsecase(repo, &mockIssuer{ref: "MB-2026-000042"}, dedup, signal)
}

func TestLetterUsecaseCreate(t *testing.T) {
	repo := &mockLetterRepo{}
	signal := &mockSignal{}
	uc := newLetterUsecase(repo, &mockDedup{}, signal)

	resp, err := uc.Create(context.Background(), letterInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.ReferenceNumber != "MB-2026-000042" {
		t.Fatalf("expected issued reference, got %s", resp.ReferenceNumber)
	}
	if repo.created == nil {
		t.Fatalf("expected repository create to be called")
	}
	if repo.created.HusbandMaritalStatus != bureau.MaritalSingle {
		t.Fatalf("expected marital status default, got %q", repo.created.HusbandMaritalStatus)
	}
	if len(signal.events) != 1 || signal.events[0].Type != domain.EventLetterCreated {
		t.Fatalf("expected a letter.created event, got %v", signal.events)
	}
}

func TestLetterUsecaseCreateInvalid(t *testing.T) {
	repo := &mockLetterRepo{}
	uc := newLetterUsecase(repo, &mockDedup{}, &mockSignal{})

	in := letterInput()
	in.Purpose = ""
	_, err := uc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.created != nil {
		t.Fatalf("repository must not be called on invalid input")
	}
}

func TestLetterUsecaseCreateDuplicate(t *testing.T) {
	repo := &mockLetterRepo{}
	uc := newLetterUsecase(repo, &mockDedup{seen: true}, &mockSignal{})

	_, err := uc.Create(context.Background(), letterInput())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict on duplicate submission, got %v", err)
	}
}

func TestLetterUsecaseCreateDedupUnavailable(t *testing.T) {
	repo := &mockLetterRepo{}
	uc := newLetterUsecase(repo, &mockDedup{err: errors.New("memcached down")}, &mockSignal{})

	if _, err := uc.Create(context.Background(), letterInput()); err != nil {
		t.Fatalf("create should survive a dedup outage: %v", err)
	}
}

func TestLetterUsecaseCreateFailureReleasesDedup(t *testing.T) {
	repo := &mockLetterRepo{createErr: errors.New("db down")}
	dedup := &mockDedup{}
	uc := newLetterUsecase(repo, dedup, &mockSignal{})

	if _, err := uc.Create(context.Background(), letterInput()); err == nil {
		t.Fatal("expected create to fail")
	}
	if dedup.forgets != 1 {
		t.Fatalf("expected dedup hash to be released for a retry, got %d releases", dedup.forgets)
	}

	// a successful create keeps the hash parked for the TTL
	repo.createErr = nil
	if _, err := uc.Create(context.Background(), letterInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if dedup.forgets != 1 {
		t.Fatalf("hash must stay parked after a successful create, got %d releases", dedup.forgets)
	}
}

func TestLetterUsecaseListCaches(t *testing.T) {
	repo := &mockLetterRepo{}
	uc := newLetterUsecase(repo, &mockDedup{}, &mockSignal{})

	filter := domain.LetterFilter{LetterType: "N1"}
	if _, err := uc.List(context.Background(), filter); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := uc.List(context.Background(), filter); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected one repository hit, got %d", repo.listCalls)
	}

	// a write invalidates the cached summaries
	if _, err := uc.Create(context.Background(), letterInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := uc.List(context.Background(), filter); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected cache flush after create, got %d hits", repo.listCalls)
	}
}

func TestLetterUsecasePrint(t *testing.T) {
	repo := &mockLetterRepo{}
	signal := &mockSignal{}
	uc := newLetterUsecase(repo, &mockDedup{}, signal)

	resp, err := uc.Print(context.Background(), 7, bureau.LetterPrintRequest{})
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if !resp.IsPrinted || repo.printedID != 7 {
		t.Fatalf("expected letter 7 printed")
	}
	if len(signal.events) != 1 || signal.events[0].Type != domain.EventLetterPrinted {
		t.Fatalf("expected a letter.printed event")
	}

	_, err = uc.Print(context.Background(), 7, bureau.LetterPrintRequest{LetterID: 8})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected mismatched letter_id to be rejected, got %v", err)
	}
}

func TestLetterUsecaseDelete(t *testing.T) {
	repo := &mockLetterRepo{}
	signal := &mockSignal{}
	uc := newLetterUsecase(repo, &mockDedup{}, signal)

	if err := uc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if repo.deletedID != 3 {
		t.Fatalf("expected letter 3 deleted")
	}
	if len(signal.events) != 1 || signal.events[0].ReferenceNumber != "MB-2026-000001" {
		t.Fatalf("expected delete event with reference number, got %v", signal.events)
	}
}
