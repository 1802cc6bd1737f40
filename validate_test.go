package bureau

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzafar/marriage-bureau/internal/domain"
)

func validPerson() PersonCreate {
	return PersonCreate{
		FullName:       "Ahmed Khan",
		DateOfBirth:    NewDate(1992, time.March, 14),
		PlaceOfBirth:   "Lahore",
		Nationality:    "Pakistani",
		Religion:       ReligionIslam,
		Occupation:     "Engineer",
		EducationLevel: EducationBachelor,
		Address:        "12 Canal Road, Lahore",
		PhoneNumber:    "+92-300-1234567",
	}
}

func validLetter() MarriageLetterCreate {
	wife := validPerson()
	wife.FullName = "Fatima Noor"
	return MarriageLetterCreate{
		LetterType:    LetterN1,
		Husband:       validPerson(),
		Wife:          wife,
		Purpose:       "Formal introduction between families",
		ContactPerson: "Bilal Khan",
		ContactPhone:  "+92-300-7654321",
	}
}

func TestPersonCreateValidate(t *testing.T) {
	require.NoError(t, validPerson().Validate())

	missing := validPerson()
	missing.FullName = ""
	err := missing.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalid))

	long := validPerson()
	long.FullName = strings.Repeat("x", 256)
	assert.Error(t, long.Validate())

	// limits are character counts, so multibyte names well under the
	// limit must pass even when their byte length exceeds it
	urdu := validPerson()
	urdu.FullName = strings.Repeat("م", 200)
	assert.NoError(t, urdu.Validate())

	urdu.FullName = strings.Repeat("م", 256)
	assert.Error(t, urdu.Validate())

	badEnum := validPerson()
	badEnum.Religion = "agnostic"
	assert.Error(t, badEnum.Validate())

	badPhone := validPerson()
	badPhone.PhoneNumber = strings.Repeat("9", 21)
	assert.Error(t, badPhone.Validate())
}

func TestPreferencesValidate(t *testing.T) {
	min, max := 30, 25
	p := MarriagePreferencesCreate{PreferredAgeMin: &min, PreferredAgeMax: &max}
	assert.Error(t, p.Validate())

	p = MarriagePreferencesCreate{MaritalStatusAcceptable: []string{"single", "complicated"}}
	assert.Error(t, p.Validate())

	p = MarriagePreferencesCreate{MaritalStatusAcceptable: []string{"single", "widowed"}}
	assert.NoError(t, p.Validate())
}

func TestLetterCreateValidate(t *testing.T) {
	letter := validLetter()
	letter.Normalize()
	require.NoError(t, letter.Validate())
	assert.Equal(t, MaritalSingle, letter.HusbandMaritalStatus)

	bad := validLetter()
	bad.Normalize()
	bad.Wife.Religion = "unknown"
	err := bad.Validate()
	require.Error(t, err)
	var ve domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "wife_data.religion", ve.Field)

	noType := validLetter()
	noType.Normalize()
	noType.LetterType = "N9"
	assert.Error(t, noType.Validate())
}

func TestPrintRequestValidate(t *testing.T) {
	var req LetterPrintRequest
	req.Normalize()
	assert.Equal(t, PrintFormatPDF, req.PrintFormat)
	assert.NoError(t, req.Validate())

	req.PrintFormat = "papyrus"
	assert.Error(t, req.Validate())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1990, time.December, 1)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-12-01"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"01/12/1990"`), &parsed))
}
