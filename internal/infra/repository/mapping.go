package repository

import (
	bureau "github.com/mzafar/marriage-bureau"
	"github.com/mzafar/marriage-bureau/internal/infra/database/models"
)

func personModel(in bureau.PersonCreate) models.Person {
	return models.Person{
		FullName:             in.FullName,
		DateOfBirth:          in.DateOfBirth.Time,
		PlaceOfBirth:         in.PlaceOfBirth,
		Nationality:          in.Nationality,
		Religion:             string(in.Religion),
		Occupation:           in.Occupation,
		EducationLevel:       string(in.EducationLevel),
		InstitutionName:      in.InstitutionName,
		GraduationYear:       in.GraduationYear,
		MonthlyIncome:        in.MonthlyIncome,
		Address:              in.Address,
		PhoneNumber:          in.PhoneNumber,
		Email:                in.Email,
		HeightCm:             in.HeightCm,
		WeightKg:             in.WeightKg,
		Complexion:           in.Complexion,
		PhysicalDisabilities: in.PhysicalDisabilities,
		HealthConditions:     in.HealthConditions,
		Hobbies:              in.Hobbies,
		AdditionalNotes:      in.AdditionalNotes,
	}
}

func personView(m models.Person) bureau.Person {
	return bureau.Person{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		PersonCreate: bureau.PersonCreate{
			FullName:             m.FullName,
			DateOfBirth:          bureau.Date{Time: m.DateOfBirth},
			PlaceOfBirth:         m.PlaceOfBirth,
			Nationality:          m.Nationality,
			Religion:             bureau.Religion(m.Religion),
			Occupation:           m.Occupation,
			EducationLevel:       bureau.EducationLevel(m.EducationLevel),
			InstitutionName:      m.InstitutionName,
			GraduationYear:       m.GraduationYear,
			MonthlyIncome:        m.MonthlyIncome,
			Address:              m.Address,
			PhoneNumber:          m.PhoneNumber,
			Email:                m.Email,
			HeightCm:             m.HeightCm,
			WeightKg:             m.WeightKg,
			Complexion:           m.Complexion,
			PhysicalDisabilities: m.PhysicalDisabilities,
			HealthConditions:     m.HealthConditions,
			Hobbies:              m.Hobbies,
			AdditionalNotes:      m.AdditionalNotes,
		},
	}
}

func familyModel(in bureau.FamilyBackgroundCreate) models.FamilyBackground {
	return models.FamilyBackground{
		FamilyOrigin:      in.FamilyOrigin,
		AncestralHome:     in.AncestralHome,
		FamilyTraditions:  in.FamilyTraditions,
		SocialStatus:      in.SocialStatus,
		FamilyValues:      in.FamilyValues,
		NumberOfSiblings:  in.NumberOfSiblings,
		SiblingsDetails:   in.SiblingsDetails,
		FamilyIncomeRange: in.FamilyIncomeRange,
		PropertyDetails:   in.PropertyDetails,
		FamilyReputation:  in.FamilyReputation,
	}
}

func familyView(m models.FamilyBackground) bureau.FamilyBackground {
	return bureau.FamilyBackground{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		FamilyBackgroundCreate: bureau.FamilyBackgroundCreate{
			FamilyOrigin:      m.FamilyOrigin,
			AncestralHome:     m.AncestralHome,
			FamilyTraditions:  m.FamilyTraditions,
			SocialStatus:      m.SocialStatus,
			FamilyValues:      m.FamilyValues,
			NumberOfSiblings:  m.NumberOfSiblings,
			SiblingsDetails:   m.SiblingsDetails,
			FamilyIncomeRange: m.FamilyIncomeRange,
			PropertyDetails:   m.PropertyDetails,
			FamilyReputation:  m.FamilyReputation,
		},
	}
}

func preferencesModel(in bureau.MarriagePreferencesCreate) models.MarriagePreferences {
	var education, religion *string
	if in.PreferredEducation != nil {
		s := string(*in.PreferredEducation)
		education = &s
	}
	if in.PreferredReligion != nil {
		s := string(*in.PreferredReligion)
		religion = &s
	}
	return models.MarriagePreferences{
		PreferredAgeMin:         in.PreferredAgeMin,
		PreferredAgeMax:         in.PreferredAgeMax,
		PreferredEducation:      education,
		PreferredOccupation:     in.PreferredOccupation,
		PreferredReligion:       religion,
		PreferredNationality:    in.PreferredNationality,
		PreferredLocation:       in.PreferredLocation,
		PreferredIncomeMin:      in.PreferredIncomeMin,
		PreferredHeightMin:      in.PreferredHeightMin,
		PreferredHeightMax:      in.PreferredHeightMax,
		MaritalStatusAcceptable: in.MaritalStatusAcceptable,
		AdditionalRequirements:  in.AdditionalRequirements,
	}
}

func preferencesView(m models.MarriagePreferences) bureau.MarriagePreferences {
	var education *bureau.EducationLevel
	if m.PreferredEducation != nil {
		e := bureau.EducationLevel(*m.PreferredEducation)
		education = &e
	}
	var religion *bureau.Religion
	if m.PreferredReligion != nil {
		r := bureau.Religion(*m.PreferredReligion)
		religion = &r
	}
	return bureau.MarriagePreferences{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		MarriagePreferencesCreate: bureau.MarriagePreferencesCreate{
			PreferredAgeMin:         m.PreferredAgeMin,
			PreferredAgeMax:         m.PreferredAgeMax,
			PreferredEducation:      education,
			PreferredOccupation:     m.PreferredOccupation,
			PreferredReligion:       religion,
			PreferredNationality:    m.PreferredNationality,
			PreferredLocation:       m.PreferredLocation,
			PreferredIncomeMin:      m.PreferredIncomeMin,
			PreferredHeightMin:      m.PreferredHeightMin,
			PreferredHeightMax:      m.PreferredHeightMax,
			MaritalStatusAcceptable: m.MaritalStatusAcceptable,
			AdditionalRequirements:  m.AdditionalRequirements,
		},
	}
}

func letterResponse(m models.MarriageLetter, husbandName, wifeName string) *bureau.MarriageLetterResponse {
	return &bureau.MarriageLetterResponse{
		ID:              m.ID,
		LetterType:      bureau.LetterType(m.LetterType),
		ReferenceNumber: m.ReferenceNumber,
		Purpose:         m.Purpose,
		ContactPerson:   m.ContactPerson,
		ContactPhone:    m.ContactPhone,
		ContactEmail:    m.ContactEmail,
		IsPrinted:       m.IsPrinted,
		PrintDate:       m.PrintDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		HusbandName:     husbandName,
		WifeName:        wifeName,
	}
}

func letterView(m models.MarriageLetter) *bureau.MarriageLetter {
	out := &bureau.MarriageLetter{
		ID:                   m.ID,
		LetterType:           bureau.LetterType(m.LetterType),
		ReferenceNumber:      m.ReferenceNumber,
		Husband:              personView(m.Husband),
		HusbandMaritalStatus: bureau.MaritalStatus(m.HusbandMaritalStatus),
		Wife:                 personView(m.Wife),
		WifeMaritalStatus:    bureau.MaritalStatus(m.WifeMaritalStatus),
		Purpose:              m.Purpose,
		SpecialRequests:      m.SpecialRequests,
		ContactPerson:        m.ContactPerson,
		ContactPhone:         m.ContactPhone,
		ContactEmail:         m.ContactEmail,
		IsPrinted:            m.IsPrinted,
		PrintDate:            m.PrintDate,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		CustomFields:         m.CustomFields,
	}
	if m.HusbandFather != nil {
		p := personView(*m.HusbandFather)
		out.HusbandFather = &p
	}
	if m.HusbandMother != nil {
		p := personView(*m.HusbandMother)
		out.HusbandMother = &p
	}
	if m.HusbandFamily != nil {
		f := familyView(*m.HusbandFamily)
		out.HusbandFamily = &f
	}
	if m.HusbandPreferences != nil {
		p := preferencesView(*m.HusbandPreferences)
		out.HusbandPreferences = &p
	}
	if m.WifeFather != nil {
		p := personView(*m.WifeFather)
		out.WifeFather = &p
	}
	if m.WifeMother != nil {
		p := personView(*m.WifeMother)
		out.WifeMother = &p
	}
	if m.WifeFamily != nil {
		f := familyView(*m.WifeFamily)
		out.WifeFamily = &f
	}
	if m.WifePreferences != nil {
		p := preferencesView(*m.WifePreferences)
		out.WifePreferences = &p
	}
	return out
}
