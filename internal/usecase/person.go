package usecase

import (
	"context"

	bureau "github.com/mzafar/marriage-bureau"
)

// PersonRepository defines persistence for standalone person records.
type PersonRepository interface {
	Create(ctx context.Context, in bureau.PersonCreate) (*bureau.Person, error)
	Get(ctx context.Context, id int64) (*bureau.Person, error)
	List(ctx context.Context, limit, offset int) ([]bureau.Person, error)
	Update(ctx context.Context, id int64, in bureau.PersonCreate) (*bureau.Person, error)
	Delete(ctx context.Context, id int64) error
}

type PersonUsecase struct {
	repo PersonRepository
}

func NewPersonUsecase(repo PersonRepository) *PersonUsecase {
	return &PersonUsecase{repo: repo}
}

func (uc *PersonUsecase) Create(ctx context.Context, in bureau.PersonCreate) (*bureau.Person, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

func (uc *PersonUsecase) Get(ctx context.Context, id int64) (*bureau.Person, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *PersonUsecase) List(ctx context.Context, limit, offset int) ([]bureau.Person, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.List(ctx, limit, offset)
}

func (uc *PersonUsecase) Update(ctx context.Context, id int64, in bureau.PersonCreate) (*bureau.Person, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in)
}

func (uc *PersonUsecase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
