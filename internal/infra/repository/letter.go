package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	bureau "github.com/mzafar/marriage-bureau"
	"github.com/mzafar/marriage-bureau/internal/domain"
	"github.com/mzafar/marriage-bureau/internal/infra/database/models"
)

type LetterRepository struct {
	db *gorm.DB
}

func NewLetterRepository(db *gorm.DB) *LetterRepository {
	return &LetterRepository{db: db}
}

// Create inserts the whole composite document in one transaction: both
// principals, the optional parents, family backgrounds, and preference
// sets, then the letter row referencing them.
func (r *LetterRepository) Create(ctx context.Context, in bureau.MarriageLetterCreate, referenceNumber string) (*bureau.MarriageLetterResponse, error) {
	var resp *bureau.MarriageLetterResponse

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		newPerson := func(p *bureau.PersonCreate) (*int64, error) {
			if p == nil {
				return nil, nil
			}
			record := personModel(*p)
			if err := tx.Create(&record).Error; err != nil {
				return nil, err
			}
			return &record.ID, nil
		}
		newFamily := func(f *bureau.FamilyBackgroundCreate) (*int64, error) {
			if f == nil {
				return nil, nil
			}
			record := familyModel(*f)
			if err := tx.Create(&record).Error; err != nil {
				return nil, err
			}
			return &record.ID, nil
		}
		newPreferences := func(p *bureau.MarriagePreferencesCreate) (*int64, error) {
			if p == nil {
				return nil, nil
			}
			record := preferencesModel(*p)
			if err := tx.Create(&record).Error; err != nil {
				return nil, err
			}
			return &record.ID, nil
		}

		husband := personModel(in.Husband)
		if err := tx.Create(&husband).Error; err != nil {
			return err
		}
		wife := personModel(in.Wife)
		if err := tx.Create(&wife).Error; err != nil {
			return err
		}

		letter := models.MarriageLetter{
			LetterType:           string(in.LetterType),
			ReferenceNumber:      referenceNumber,
			HusbandID:            husband.ID,
			HusbandMaritalStatus: string(in.HusbandMaritalStatus),
			WifeID:               wife.ID,
			WifeMaritalStatus:    string(in.WifeMaritalStatus),
			Purpose:              in.Purpose,
			SpecialRequests:      in.SpecialRequests,
			ContactPerson:        in.ContactPerson,
			ContactPhone:         in.ContactPhone,
			ContactEmail:         in.ContactEmail,
			CustomFields:         in.CustomFields,
		}

		var err error
		if letter.HusbandFatherID, err = newPerson(in.HusbandFather); err != nil {
			return err
		}
		if letter.HusbandMotherID, err = newPerson(in.HusbandMother); err != nil {
			return err
		}
		if letter.WifeFatherID, err = newPerson(in.WifeFather); err != nil {
			return err
		}
		if letter.WifeMotherID, err = newPerson(in.WifeMother); err != nil {
			return err
		}
		if letter.HusbandFamilyID, err = newFamily(in.HusbandFamily); err != nil {
			return err
		}
		if letter.WifeFamilyID, err = newFamily(in.WifeFamily); err != nil {
			return err
		}
		if letter.HusbandPreferencesID, err = newPreferences(in.HusbandPreferences); err != nil {
			return err
		}
		if letter.WifePreferencesID, err = newPreferences(in.WifePreferences); err != nil {
			return err
		}

		if err := tx.Create(&letter).Error; err != nil {
			return err
		}

		resp = letterResponse(letter, husband.FullName, wife.FullName)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ConflictError{Reason: "reference number already exists"}
		}
		return nil, err
	}

	return resp, nil
}

func (r *LetterRepository) Get(ctx context.Context, id int64) (*bureau.MarriageLetter, error) {
	var letter models.MarriageLetter
	err := r.db.WithContext(ctx).
		Preload("Husband").
		Preload("HusbandFather").
		Preload("HusbandMother").
		Preload("HusbandFamily").
		Preload("HusbandPreferences").
		Preload("Wife").
		Preload("WifeFather").
		Preload("WifeMother").
		Preload("WifeFamily").
		Preload("WifePreferences").
		Take(&letter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "letter"}
		}
		return nil, err
	}
	return letterView(letter), nil
}

func (r *LetterRepository) List(ctx context.Context, filter domain.LetterFilter) ([]bureau.LetterSummary, error) {
	query := r.db.WithContext(ctx).
		Model(&models.MarriageLetter{}).
		Select("marriage_letters.id, marriage_letters.letter_type,"+
			" marriage_letters.reference_number,"+
			" husbands.full_name AS husband_name, wives.full_name AS wife_name,"+
			" marriage_letters.created_at, marriage_letters.is_printed").
		Joins("JOIN persons husbands ON husbands.id = marriage_letters.husband_id").
		Joins("JOIN persons wives ON wives.id = marriage_letters.wife_id")

	if filter.LetterType != "" {
		query = query.Where("marriage_letters.letter_type = ?", filter.LetterType)
	}
	if filter.Printed != nil {
		query = query.Where("marriage_letters.is_printed = ?", *filter.Printed)
	}

	var summaries []bureau.LetterSummary
	err := query.
		Order("marriage_letters.created_at DESC, marriage_letters.id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// MarkPrinted records the print request and flips the letter's print
// state. Re-printing an already printed letter refreshes print_date.
func (r *LetterRepository) MarkPrinted(ctx context.Context, id int64, req bureau.LetterPrintRequest) (*bureau.MarriageLetterResponse, error) {
	var resp *bureau.MarriageLetterResponse

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var letter models.MarriageLetter
		err := tx.Preload("Husband").Preload("Wife").
			Take(&letter, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "letter"}
			}
			return err
		}

		job := models.PrintJob{
			LetterID:        letter.ID,
			Format:          req.PrintFormat,
			IncludePhotos:   req.IncludePhotos,
			Letterhead:      req.Letterhead,
			AdditionalNotes: req.AdditionalNotes,
		}
		if err := tx.Create(&job).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		err = tx.Model(&letter).Updates(map[string]any{
			"is_printed": true,
			"print_date": now,
		}).Error
		if err != nil {
			return err
		}

		letter.IsPrinted = true
		letter.PrintDate = &now
		resp = letterResponse(letter, letter.Husband.FullName, letter.Wife.FullName)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (r *LetterRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PrintJob{}, "letter_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.MarriageLetter{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "letter"}
		}
		return nil
	})
}
