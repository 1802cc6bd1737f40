package models

import "time"

// FamilyBackground describes one side's lineage and social context.
type FamilyBackground struct {
	ID                int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FamilyOrigin      string    `json:"family_origin" gorm:"type:varchar(255);not null"`
	AncestralHome     string    `json:"ancestral_home" gorm:"type:varchar(255);not null"`
	FamilyTraditions  string    `json:"family_traditions" gorm:"type:varchar(1000);not null;default:''"`
	SocialStatus      string    `json:"social_status" gorm:"type:varchar(255);not null;default:''"`
	FamilyValues      string    `json:"family_values" gorm:"type:varchar(1000);not null;default:''"`
	NumberOfSiblings  int       `json:"number_of_siblings" gorm:"not null;default:0"`
	SiblingsDetails   string    `json:"siblings_details" gorm:"type:varchar(1000);not null;default:''"`
	FamilyIncomeRange string    `json:"family_income_range" gorm:"type:varchar(100);not null;default:''"`
	PropertyDetails   string    `json:"property_details" gorm:"type:varchar(500);not null;default:''"`
	FamilyReputation  string    `json:"family_reputation" gorm:"type:varchar(500);not null;default:''"`
	CreatedAt         time.Time `json:"created_at" gorm:"<-:create;not null"`
}

func (FamilyBackground) TableName() string { return "family_backgrounds" }
