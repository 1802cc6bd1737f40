package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bureau "github.com/mzafar/marriage-bureau"
	"github.com/mzafar/marriage-bureau/internal/infra/database/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Person{},
		&models.FamilyBackground{},
		&models.MarriagePreferences{},
		&models.MarriageLetter{},
		&models.PrintJob{},
	))
	return db
}

func testPerson(name string) bureau.PersonCreate {
	return bureau.PersonCreate{
		FullName:       name,
		DateOfBirth:    bureau.NewDate(1991, time.June, 2),
		PlaceOfBirth:   "Karachi",
		Nationality:    "Pakistani",
		Religion:       bureau.ReligionIslam,
		Occupation:     "Teacher",
		EducationLevel: bureau.EducationMaster,
		Address:        "5 Clifton Block, Karachi",
		PhoneNumber:    "+92-321-0000000",
	}
}

func testLetter() bureau.MarriageLetterCreate {
	in := bureau.MarriageLetterCreate{
		LetterType:    bureau.LetterN2,
		Husband:       testPerson("Omar Siddiqui"),
		Wife:          testPerson("Ayesha Malik"),
		Purpose:       "Introduction for marriage proposal",
		ContactPerson: "Imran Siddiqui",
		ContactPhone:  "+92-333-1112223",
	}
	in.Normalize()
	return in
}
