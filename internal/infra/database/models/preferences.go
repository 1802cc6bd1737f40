package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarriagePreferences captures the desired-partner criteria of one side.
type MarriagePreferences struct {
	ID                      int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	PreferredAgeMin         *int             `json:"preferred_age_min"`
	PreferredAgeMax         *int             `json:"preferred_age_max"`
	PreferredEducation      *string          `json:"preferred_education" gorm:"type:varchar(32)"`
	PreferredOccupation     string           `json:"preferred_occupation" gorm:"type:varchar(255);not null;default:''"`
	PreferredReligion       *string          `json:"preferred_religion" gorm:"type:varchar(32)"`
	PreferredNationality    string           `json:"preferred_nationality" gorm:"type:varchar(100);not null;default:''"`
	PreferredLocation       string           `json:"preferred_location" gorm:"type:varchar(255);not null;default:''"`
	PreferredIncomeMin      *decimal.Decimal `json:"preferred_income_min" gorm:"type:decimal(12,2)"`
	PreferredHeightMin      *int             `json:"preferred_height_min"`
	PreferredHeightMax      *int             `json:"preferred_height_max"`
	MaritalStatusAcceptable []string         `json:"marital_status_acceptable" gorm:"serializer:json"`
	AdditionalRequirements  string           `json:"additional_requirements" gorm:"type:varchar(1000);not null;default:''"`
	CreatedAt               time.Time        `json:"created_at" gorm:"<-:create;not null"`
}

func (MarriagePreferences) TableName() string { return "marriage_preferences" }
