package bureau

import (
	"fmt"
	"unicode/utf8"

	"github.com/mzafar/marriage-bureau/internal/domain"
)

func required(field, value string, max int) error {
	if value == "" {
		return domain.ValidationError{Field: field, Reason: "is required"}
	}
	return limited(field, value, max)
}

// limits count characters, not bytes
func limited(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return domain.ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}

// prefixed qualifies a nested ValidationError with the enclosing field,
// e.g. "husband_data.full_name".
func prefixed(prefix string, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(domain.ValidationError); ok {
		ve.Field = prefix + "." + ve.Field
		return ve
	}
	return err
}

func (p PersonCreate) Validate() error {
	if err := required("full_name", p.FullName, 255); err != nil {
		return err
	}
	if p.DateOfBirth.IsZero() {
		return domain.ValidationError{Field: "date_of_birth", Reason: "is required"}
	}
	if err := required("place_of_birth", p.PlaceOfBirth, 255); err != nil {
		return err
	}
	if err := required("nationality", p.Nationality, 100); err != nil {
		return err
	}
	if !p.Religion.Valid() {
		return domain.ValidationError{Field: "religion", Reason: "unknown value"}
	}
	if err := required("occupation", p.Occupation, 255); err != nil {
		return err
	}
	if !p.EducationLevel.Valid() {
		return domain.ValidationError{Field: "education_level", Reason: "unknown value"}
	}
	if err := limited("institution_name", p.InstitutionName, 255); err != nil {
		return err
	}
	if err := required("address", p.Address, 500); err != nil {
		return err
	}
	if err := required("phone_number", p.PhoneNumber, 20); err != nil {
		return err
	}
	if err := limited("email", p.Email, 255); err != nil {
		return err
	}
	if p.HeightCm != nil && *p.HeightCm <= 0 {
		return domain.ValidationError{Field: "height_cm", Reason: "must be positive"}
	}
	if err := limited("complexion", p.Complexion, 100); err != nil {
		return err
	}
	if err := limited("physical_disabilities", p.PhysicalDisabilities, 500); err != nil {
		return err
	}
	if err := limited("health_conditions", p.HealthConditions, 500); err != nil {
		return err
	}
	if err := limited("hobbies", p.Hobbies, 500); err != nil {
		return err
	}
	return limited("additional_notes", p.AdditionalNotes, 1000)
}

func (f FamilyBackgroundCreate) Validate() error {
	if err := required("family_origin", f.FamilyOrigin, 255); err != nil {
		return err
	}
	if err := required("ancestral_home", f.AncestralHome, 255); err != nil {
		return err
	}
	if err := limited("family_traditions", f.FamilyTraditions, 1000); err != nil {
		return err
	}
	if err := limited("social_status", f.SocialStatus, 255); err != nil {
		return err
	}
	if err := limited("family_values", f.FamilyValues, 1000); err != nil {
		return err
	}
	if f.NumberOfSiblings < 0 {
		return domain.ValidationError{Field: "number_of_siblings", Reason: "must not be negative"}
	}
	if err := limited("siblings_details", f.SiblingsDetails, 1000); err != nil {
		return err
	}
	if err := limited("family_income_range", f.FamilyIncomeRange, 100); err != nil {
		return err
	}
	if err := limited("property_details", f.PropertyDetails, 500); err != nil {
		return err
	}
	return limited("family_reputation", f.FamilyReputation, 500)
}

func (m MarriagePreferencesCreate) Validate() error {
	if m.PreferredAgeMin != nil && *m.PreferredAgeMin < 0 {
		return domain.ValidationError{Field: "preferred_age_min", Reason: "must not be negative"}
	}
	if m.PreferredAgeMin != nil && m.PreferredAgeMax != nil && *m.PreferredAgeMin > *m.PreferredAgeMax {
		return domain.ValidationError{Field: "preferred_age_min", Reason: "must not exceed preferred_age_max"}
	}
	if m.PreferredEducation != nil && !m.PreferredEducation.Valid() {
		return domain.ValidationError{Field: "preferred_education", Reason: "unknown value"}
	}
	if err := limited("preferred_occupation", m.PreferredOccupation, 255); err != nil {
		return err
	}
	if m.PreferredReligion != nil && !m.PreferredReligion.Valid() {
		return domain.ValidationError{Field: "preferred_religion", Reason: "unknown value"}
	}
	if err := limited("preferred_nationality", m.PreferredNationality, 100); err != nil {
		return err
	}
	if err := limited("preferred_location", m.PreferredLocation, 255); err != nil {
		return err
	}
	if m.PreferredHeightMin != nil && m.PreferredHeightMax != nil && *m.PreferredHeightMin > *m.PreferredHeightMax {
		return domain.ValidationError{Field: "preferred_height_min", Reason: "must not exceed preferred_height_max"}
	}
	for _, status := range m.MaritalStatusAcceptable {
		if !MaritalStatus(status).Valid() {
			return domain.ValidationError{Field: "marital_status_acceptable", Reason: fmt.Sprintf("unknown value %q", status)}
		}
	}
	return limited("additional_requirements", m.AdditionalRequirements, 1000)
}

// Normalize fills the defaulted fields of a letter create request.
func (l *MarriageLetterCreate) Normalize() {
	if l.HusbandMaritalStatus == "" {
		l.HusbandMaritalStatus = MaritalSingle
	}
	if l.WifeMaritalStatus == "" {
		l.WifeMaritalStatus = MaritalSingle
	}
}

func (l MarriageLetterCreate) Validate() error {
	if !l.LetterType.Valid() {
		return domain.ValidationError{Field: "letter_type", Reason: "unknown value"}
	}
	if err := prefixed("husband_data", l.Husband.Validate()); err != nil {
		return err
	}
	if l.HusbandFather != nil {
		if err := prefixed("husband_father_data", l.HusbandFather.Validate()); err != nil {
			return err
		}
	}
	if l.HusbandMother != nil {
		if err := prefixed("husband_mother_data", l.HusbandMother.Validate()); err != nil {
			return err
		}
	}
	if !l.HusbandMaritalStatus.Valid() {
		return domain.ValidationError{Field: "husband_marital_status", Reason: "unknown value"}
	}
	if l.HusbandFamily != nil {
		if err := prefixed("husband_family_data", l.HusbandFamily.Validate()); err != nil {
			return err
		}
	}
	if l.HusbandPreferences != nil {
		if err := prefixed("husband_preferences_data", l.HusbandPreferences.Validate()); err != nil {
			return err
		}
	}
	if err := prefixed("wife_data", l.Wife.Validate()); err != nil {
		return err
	}
	if l.WifeFather != nil {
		if err := prefixed("wife_father_data", l.WifeFather.Validate()); err != nil {
			return err
		}
	}
	if l.WifeMother != nil {
		if err := prefixed("wife_mother_data", l.WifeMother.Validate()); err != nil {
			return err
		}
	}
	if !l.WifeMaritalStatus.Valid() {
		return domain.ValidationError{Field: "wife_marital_status", Reason: "unknown value"}
	}
	if l.WifeFamily != nil {
		if err := prefixed("wife_family_data", l.WifeFamily.Validate()); err != nil {
			return err
		}
	}
	if l.WifePreferences != nil {
		if err := prefixed("wife_preferences_data", l.WifePreferences.Validate()); err != nil {
			return err
		}
	}
	if err := required("purpose", l.Purpose, 500); err != nil {
		return err
	}
	if err := limited("special_requests", l.SpecialRequests, 1000); err != nil {
		return err
	}
	if err := required("contact_person", l.ContactPerson, 255); err != nil {
		return err
	}
	if err := required("contact_phone", l.ContactPhone, 20); err != nil {
		return err
	}
	return limited("contact_email", l.ContactEmail, 255)
}

// Normalize fills the defaulted fields of a print request.
func (r *LetterPrintRequest) Normalize() {
	if r.PrintFormat == "" {
		r.PrintFormat = PrintFormatPDF
	}
}

func (r LetterPrintRequest) Validate() error {
	switch r.PrintFormat {
	case PrintFormatPDF, PrintFormatDocx:
	default:
		return domain.ValidationError{Field: "print_format", Reason: "unknown value"}
	}
	if err := limited("letterhead", r.Letterhead, 255); err != nil {
		return err
	}
	return limited("additional_notes", r.AdditionalNotes, 500)
}
