package usecase

import (
	"context"
	"errors"
	"testing"

	bureau "github.com/mzafar/marriage-bureau"
	"github.com/mzafar/marriage-bureau/internal/domain"
)

type mockPersonRepo struct {
	created   *bureau.PersonCreate
	listLimit int
}

func (m *mockPersonRepo) Create(ctx context.Context, in bureau.PersonCreate) (*bureau.Person, error) {
	m.created = &in
	return &bureau.Person{ID: 1, PersonCreate: in}, nil
}

func (m *mockPersonRepo) Get(ctx context.Context, id int64) (*bureau.Person, error) {
	return &bureau.Person{ID: id}, nil
}

func (m *mockPersonRepo) List(ctx context.Context, limit, offset int) ([]bureau.Person, error) {
	m.listLimit = limit
	return nil, nil
}

func (m *mockPersonRepo) Update(ctx context.Context, id int64, in bureau.PersonCreate) (*bureau.Person, error) {
	return &bureau.Person{ID: id, PersonCreate: in}, nil
}

func (m *mockPersonRepo) Delete(ctx context.Context, id int64) error { return nil }

func TestPersonUsecaseCreateValidates(t *testing.T) {
	repo := &mockPersonRepo{}
	uc := NewPersonUsecase(repo)

	_, err := uc.Create(context.Background(), bureau.PersonCreate{})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.created != nil {
		t.Fatalf("repository must not be called on invalid input")
	}

	in := letterInput().Husband
	if _, err := uc.Create(context.Background(), in); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if repo.created == nil {
		t.Fatalf("expected repository create to be called")
	}
}

func TestPersonUsecaseListClampsLimit(t *testing.T) {
	repo := &mockPersonRepo{}
	uc := NewPersonUsecase(repo)

	if _, err := uc.List(context.Background(), 0, 0); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", repo.listLimit)
	}

	if _, err := uc.List(context.Background(), 1000, 0); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listLimit != 100 {
		t.Fatalf("expected limit cap 100, got %d", repo.listLimit)
	}
}
