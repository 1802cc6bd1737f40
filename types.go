package bureau

import (
	"time"

	"github.com/shopspring/decimal"
)

// PersonCreate is the input shape for a person record. The same shape
// serves husband, wife, and parent entries on a marriage letter.
type PersonCreate struct {
	FullName             string           `json:"full_name"`
	DateOfBirth          Date             `json:"date_of_birth"`
	PlaceOfBirth         string           `json:"place_of_birth"`
	Nationality          string           `json:"nationality"`
	Religion             Religion         `json:"religion"`
	Occupation           string           `json:"occupation"`
	EducationLevel       EducationLevel   `json:"education_level"`
	InstitutionName      string           `json:"institution_name,omitempty"`
	GraduationYear       *int             `json:"graduation_year,omitempty"`
	MonthlyIncome        *decimal.Decimal `json:"monthly_income,omitempty"`
	Address              string           `json:"address"`
	PhoneNumber          string           `json:"phone_number"`
	Email                string           `json:"email,omitempty"`
	HeightCm             *int             `json:"height_cm,omitempty"`
	WeightKg             *decimal.Decimal `json:"weight_kg,omitempty"`
	Complexion           string           `json:"complexion,omitempty"`
	PhysicalDisabilities string           `json:"physical_disabilities,omitempty"`
	HealthConditions     string           `json:"health_conditions,omitempty"`
	Hobbies              string           `json:"hobbies,omitempty"`
	AdditionalNotes      string           `json:"additional_notes,omitempty"`
}

// Person is the persisted person record as served by the API.
type Person struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	PersonCreate
}

// FamilyBackgroundCreate is the input shape for family background
// information attached to one side of a letter.
type FamilyBackgroundCreate struct {
	FamilyOrigin      string `json:"family_origin"`
	AncestralHome     string `json:"ancestral_home"`
	FamilyTraditions  string `json:"family_traditions,omitempty"`
	SocialStatus      string `json:"social_status,omitempty"`
	FamilyValues      string `json:"family_values,omitempty"`
	NumberOfSiblings  int    `json:"number_of_siblings,omitempty"`
	SiblingsDetails   string `json:"siblings_details,omitempty"`
	FamilyIncomeRange string `json:"family_income_range,omitempty"`
	PropertyDetails   string `json:"property_details,omitempty"`
	FamilyReputation  string `json:"family_reputation,omitempty"`
}

type FamilyBackground struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	FamilyBackgroundCreate
}

// MarriagePreferencesCreate is the input shape for desired partner
// criteria. All fields are optional.
type MarriagePreferencesCreate struct {
	PreferredAgeMin         *int             `json:"preferred_age_min,omitempty"`
	PreferredAgeMax         *int             `json:"preferred_age_max,omitempty"`
	PreferredEducation      *EducationLevel  `json:"preferred_education,omitempty"`
	PreferredOccupation     string           `json:"preferred_occupation,omitempty"`
	PreferredReligion       *Religion        `json:"preferred_religion,omitempty"`
	PreferredNationality    string           `json:"preferred_nationality,omitempty"`
	PreferredLocation       string           `json:"preferred_location,omitempty"`
	PreferredIncomeMin      *decimal.Decimal `json:"preferred_income_min,omitempty"`
	PreferredHeightMin      *int             `json:"preferred_height_min,omitempty"`
	PreferredHeightMax      *int             `json:"preferred_height_max,omitempty"`
	MaritalStatusAcceptable []string         `json:"marital_status_acceptable,omitempty"`
	AdditionalRequirements  string           `json:"additional_requirements,omitempty"`
}

type MarriagePreferences struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	MarriagePreferencesCreate
}

// MarriageLetterCreate is the composite input for a new letter: the two
// principal persons are required, parents, family backgrounds, and
// preference sets are optional and created alongside the letter.
type MarriageLetterCreate struct {
	LetterType LetterType `json:"letter_type"`

	Husband              PersonCreate               `json:"husband_data"`
	HusbandFather        *PersonCreate              `json:"husband_father_data,omitempty"`
	HusbandMother        *PersonCreate              `json:"husband_mother_data,omitempty"`
	HusbandMaritalStatus MaritalStatus              `json:"husband_marital_status,omitempty"`
	HusbandFamily        *FamilyBackgroundCreate    `json:"husband_family_data,omitempty"`
	HusbandPreferences   *MarriagePreferencesCreate `json:"husband_preferences_data,omitempty"`

	Wife              PersonCreate               `json:"wife_data"`
	WifeFather        *PersonCreate              `json:"wife_father_data,omitempty"`
	WifeMother        *PersonCreate              `json:"wife_mother_data,omitempty"`
	WifeMaritalStatus MaritalStatus              `json:"wife_marital_status,omitempty"`
	WifeFamily        *FamilyBackgroundCreate    `json:"wife_family_data,omitempty"`
	WifePreferences   *MarriagePreferencesCreate `json:"wife_preferences_data,omitempty"`

	Purpose         string `json:"purpose"`
	SpecialRequests string `json:"special_requests,omitempty"`
	ContactPerson   string `json:"contact_person"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email,omitempty"`

	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// MarriageLetter is the full letter document with every referenced
// record resolved, as served by GET /api/v1/letters/:id.
type MarriageLetter struct {
	ID              int64      `json:"id"`
	LetterType      LetterType `json:"letter_type"`
	ReferenceNumber string     `json:"reference_number"`

	Husband              Person               `json:"husband"`
	HusbandFather        *Person              `json:"husband_father,omitempty"`
	HusbandMother        *Person              `json:"husband_mother,omitempty"`
	HusbandMaritalStatus MaritalStatus        `json:"husband_marital_status"`
	HusbandFamily        *FamilyBackground    `json:"husband_family,omitempty"`
	HusbandPreferences   *MarriagePreferences `json:"husband_preferences,omitempty"`

	Wife              Person               `json:"wife"`
	WifeFather        *Person              `json:"wife_father,omitempty"`
	WifeMother        *Person              `json:"wife_mother,omitempty"`
	WifeMaritalStatus MaritalStatus        `json:"wife_marital_status"`
	WifeFamily        *FamilyBackground    `json:"wife_family,omitempty"`
	WifePreferences   *MarriagePreferences `json:"wife_preferences,omitempty"`

	Purpose         string `json:"purpose"`
	SpecialRequests string `json:"special_requests,omitempty"`
	ContactPerson   string `json:"contact_person"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email,omitempty"`

	IsPrinted bool       `json:"is_printed"`
	PrintDate *time.Time `json:"print_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// MarriageLetterResponse is the condensed letter view returned from
// create and print operations.
type MarriageLetterResponse struct {
	ID              int64      `json:"id"`
	LetterType      LetterType `json:"letter_type"`
	ReferenceNumber string     `json:"reference_number"`
	Purpose         string     `json:"purpose"`
	ContactPerson   string     `json:"contact_person"`
	ContactPhone    string     `json:"contact_phone"`
	ContactEmail    string     `json:"contact_email,omitempty"`
	IsPrinted       bool       `json:"is_printed"`
	PrintDate       *time.Time `json:"print_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	HusbandName     string     `json:"husband_name"`
	WifeName        string     `json:"wife_name"`
}

// LetterSummary is one row of the letter listing.
type LetterSummary struct {
	ID              int64      `json:"id"`
	LetterType      LetterType `json:"letter_type"`
	ReferenceNumber string     `json:"reference_number"`
	HusbandName     string     `json:"husband_name"`
	WifeName        string     `json:"wife_name"`
	CreatedAt       time.Time  `json:"created_at"`
	IsPrinted       bool       `json:"is_printed"`
}

// LetterPrintRequest asks the bureau to mark a letter printed. The
// letter id travels in the URL; a body value, when present, must match.
type LetterPrintRequest struct {
	LetterID        int64  `json:"letter_id,omitempty"`
	PrintFormat     string `json:"print_format,omitempty"`
	IncludePhotos   bool   `json:"include_photos,omitempty"`
	Letterhead      string `json:"letterhead,omitempty"`
	AdditionalNotes string `json:"additional_notes,omitempty"`
}
