package models

import "time"

// MarriageLetter is the composite biodata document. It references the
// persons table through six role-specific foreign keys and the family
// and preferences tables through two each; only the two principals are
// mandatory.
type MarriageLetter struct {
	ID              int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	LetterType      string `json:"letter_type" gorm:"type:varchar(8);not null;index"`
	ReferenceNumber string `json:"reference_number" gorm:"type:varchar(50);not null;uniqueIndex"`

	HusbandID            int64                `json:"husband_id" gorm:"not null;index"`
	Husband              Person               `json:"-" gorm:"foreignKey:HusbandID"`
	HusbandFatherID      *int64               `json:"husband_father_id"`
	HusbandFather        *Person              `json:"-" gorm:"foreignKey:HusbandFatherID"`
	HusbandMotherID      *int64               `json:"husband_mother_id"`
	HusbandMother        *Person              `json:"-" gorm:"foreignKey:HusbandMotherID"`
	HusbandMaritalStatus string               `json:"husband_marital_status" gorm:"type:varchar(16);not null;default:'single'"`
	HusbandFamilyID      *int64               `json:"husband_family_id"`
	HusbandFamily        *FamilyBackground    `json:"-" gorm:"foreignKey:HusbandFamilyID"`
	HusbandPreferencesID *int64               `json:"husband_preferences_id"`
	HusbandPreferences   *MarriagePreferences `json:"-" gorm:"foreignKey:HusbandPreferencesID"`

	WifeID            int64                `json:"wife_id" gorm:"not null;index"`
	Wife              Person               `json:"-" gorm:"foreignKey:WifeID"`
	WifeFatherID      *int64               `json:"wife_father_id"`
	WifeFather        *Person              `json:"-" gorm:"foreignKey:WifeFatherID"`
	WifeMotherID      *int64               `json:"wife_mother_id"`
	WifeMother        *Person              `json:"-" gorm:"foreignKey:WifeMotherID"`
	WifeMaritalStatus string               `json:"wife_marital_status" gorm:"type:varchar(16);not null;default:'single'"`
	WifeFamilyID      *int64               `json:"wife_family_id"`
	WifeFamily        *FamilyBackground    `json:"-" gorm:"foreignKey:WifeFamilyID"`
	WifePreferencesID *int64               `json:"wife_preferences_id"`
	WifePreferences   *MarriagePreferences `json:"-" gorm:"foreignKey:WifePreferencesID"`

	Purpose         string `json:"purpose" gorm:"type:varchar(500);not null"`
	SpecialRequests string `json:"special_requests" gorm:"type:varchar(1000);not null;default:''"`
	ContactPerson   string `json:"contact_person" gorm:"type:varchar(255);not null"`
	ContactPhone    string `json:"contact_phone" gorm:"type:varchar(20);not null"`
	ContactEmail    string `json:"contact_email" gorm:"type:varchar(255);not null;default:''"`

	IsPrinted bool       `json:"is_printed" gorm:"not null;default:false;index"`
	PrintDate *time.Time `json:"print_date"`
	CreatedAt time.Time  `json:"created_at" gorm:"<-:create;not null"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"not null"`

	CustomFields map[string]any `json:"custom_fields" gorm:"serializer:json"`
}

func (MarriageLetter) TableName() string { return "marriage_letters" }

// PrintJob records one print request against a letter.
type PrintJob struct {
	ID              int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	LetterID        int64          `json:"letter_id" gorm:"not null;index"`
	Letter          MarriageLetter `json:"-" gorm:"foreignKey:LetterID;constraint:OnDelete:CASCADE;"`
	Format          string         `json:"format" gorm:"type:varchar(10);not null"`
	IncludePhotos   bool           `json:"include_photos" gorm:"not null;default:false"`
	Letterhead      string         `json:"letterhead" gorm:"type:varchar(255);not null;default:''"`
	AdditionalNotes string         `json:"additional_notes" gorm:"type:varchar(500);not null;default:''"`
	CreatedAt       time.Time      `json:"created_at" gorm:"<-:create;not null"`
}

func (PrintJob) TableName() string { return "print_jobs" }
