// Package bureau holds the wire-level types shared between the marriage
// bureau service, its HTTP handlers, and the Go client: the enumerations
// used across biodata records and the create/response shapes for persons,
// family backgrounds, partner preferences, and marriage letters.
package bureau

import (
	"fmt"
	"time"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

func (m MaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

type EducationLevel string

const (
	EducationPrimary      EducationLevel = "primary"
	EducationSecondary    EducationLevel = "secondary"
	EducationDiploma      EducationLevel = "diploma"
	EducationBachelor     EducationLevel = "bachelor"
	EducationMaster       EducationLevel = "master"
	EducationDoctorate    EducationLevel = "doctorate"
	EducationProfessional EducationLevel = "professional"
)

func (e EducationLevel) Valid() bool {
	switch e {
	case EducationPrimary, EducationSecondary, EducationDiploma,
		EducationBachelor, EducationMaster, EducationDoctorate,
		EducationProfessional:
		return true
	}
	return false
}

type Religion string

const (
	ReligionIslam        Religion = "islam"
	ReligionChristianity Religion = "christianity"
	ReligionHinduism     Religion = "hinduism"
	ReligionBuddhism     Religion = "buddhism"
	ReligionJudaism      Religion = "judaism"
	ReligionOther        Religion = "other"
)

func (r Religion) Valid() bool {
	switch r {
	case ReligionIslam, ReligionChristianity, ReligionHinduism,
		ReligionBuddhism, ReligionJudaism, ReligionOther:
		return true
	}
	return false
}

// LetterType selects the bureau letter template (N1 through N5).
type LetterType string

const (
	LetterN1 LetterType = "N1"
	LetterN2 LetterType = "N2"
	LetterN3 LetterType = "N3"
	LetterN4 LetterType = "N4"
	LetterN5 LetterType = "N5"
)

func (t LetterType) Valid() bool {
	switch t {
	case LetterN1, LetterN2, LetterN3, LetterN4, LetterN5:
		return true
	}
	return false
}

// Print formats accepted by the print endpoint. The service records the
// request and the print state only; rendering happens downstream.
const (
	PrintFormatPDF  = "pdf"
	PrintFormatDocx = "docx"
)

const dateLayout = "2006-01-02"

// Date is a calendar date carried as "YYYY-MM-DD" on the wire.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date %s: expected %s", s, dateLayout)
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}
