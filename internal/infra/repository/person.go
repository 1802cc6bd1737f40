package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	bureau "github.com/mzafar/marriage-bureau"
	"github.com/mzafar/marriage-bureau/internal/domain"
	"github.com/mzafar/marriage-bureau/internal/infra/database/models"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(ctx context.Context, in bureau.PersonCreate) (*bureau.Person, error) {
	record := personModel(in)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	view := personView(record)
	return &view, nil
}

func (r *PersonRepository) Get(ctx context.Context, id int64) (*bureau.Person, error) {
	var record models.Person
	err := r.db.WithContext(ctx).Take(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "person"}
		}
		return nil, err
	}
	view := personView(record)
	return &view, nil
}

func (r *PersonRepository) List(ctx context.Context, limit, offset int) ([]bureau.Person, error) {
	var records []models.Person
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	views := make([]bureau.Person, 0, len(records))
	for _, record := range records {
		views = append(views, personView(record))
	}
	return views, nil
}

func (r *PersonRepository) Update(ctx context.Context, id int64, in bureau.PersonCreate) (*bureau.Person, error) {
	var view bureau.Person
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Person
		if err := tx.Take(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "person"}
			}
			return err
		}

		record := personModel(in)
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		view = personView(record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var referenced int64
		err := tx.Model(&models.MarriageLetter{}).
			Where("husband_id = ? OR wife_id = ?"+
				" OR husband_father_id = ? OR husband_mother_id = ?"+
				" OR wife_father_id = ? OR wife_mother_id = ?",
				id, id, id, id, id, id).
			Count(&referenced).Error
		if err != nil {
			return err
		}
		if referenced > 0 {
			return domain.ConflictError{Reason: "person is referenced by a marriage letter"}
		}

		res := tx.Delete(&models.Person{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "person"}
		}
		return nil
	})
}
