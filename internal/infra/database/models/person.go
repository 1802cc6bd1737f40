package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person holds one individual: a husband, wife, or parent. The same
// table backs all six person roles a marriage letter can reference.
type Person struct {
	ID                   int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName             string           `json:"full_name" gorm:"type:varchar(255);not null"`
	DateOfBirth          time.Time        `json:"date_of_birth" gorm:"type:date;not null"`
	PlaceOfBirth         string           `json:"place_of_birth" gorm:"type:varchar(255);not null"`
	Nationality          string           `json:"nationality" gorm:"type:varchar(100);not null"`
	Religion             string           `json:"religion" gorm:"type:varchar(32);not null"`
	Occupation           string           `json:"occupation" gorm:"type:varchar(255);not null"`
	EducationLevel       string           `json:"education_level" gorm:"type:varchar(32);not null"`
	InstitutionName      string           `json:"institution_name" gorm:"type:varchar(255);not null;default:''"`
	GraduationYear       *int             `json:"graduation_year"`
	MonthlyIncome        *decimal.Decimal `json:"monthly_income" gorm:"type:decimal(12,2)"`
	Address              string           `json:"address" gorm:"type:varchar(500);not null"`
	PhoneNumber          string           `json:"phone_number" gorm:"type:varchar(20);not null"`
	Email                string           `json:"email" gorm:"type:varchar(255);not null;default:''"`
	HeightCm             *int             `json:"height_cm"`
	WeightKg             *decimal.Decimal `json:"weight_kg" gorm:"type:decimal(5,1)"`
	Complexion           string           `json:"complexion" gorm:"type:varchar(100);not null;default:''"`
	PhysicalDisabilities string           `json:"physical_disabilities" gorm:"type:varchar(500);not null;default:''"`
	HealthConditions     string           `json:"health_conditions" gorm:"type:varchar(500);not null;default:''"`
	Hobbies              string           `json:"hobbies" gorm:"type:varchar(500);not null;default:''"`
	AdditionalNotes      string           `json:"additional_notes" gorm:"type:varchar(1000);not null;default:''"`
	CreatedAt            time.Time        `json:"created_at" gorm:"<-:create;not null"`
}

func (Person) TableName() string { return "persons" }
