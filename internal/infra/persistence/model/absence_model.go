package model

import (
	"time"

	"github.com/google/uuid"
)

// AbsenceModel mirrors the 'absences' table. Times of day are stored as minutes since midnight.
type AbsenceModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManicuristID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_absences_manicurist_date,priority:1"`
	Date               time.Time `gorm:"type:date;not null;uniqueIndex:idx_absences_manicurist_date,priority:2"`
	Kind               string    `gorm:"type:varchar(10);not null"`
	Type               string    `gorm:"type:varchar(10)"`
	ArrivalMinute      *int      `gorm:"type:smallint"`
	AbsenceStartMinute *int      `gorm:"type:smallint"`
	AbsenceEndMinute   *int      `gorm:"type:smallint"`
	Notes              string    `gorm:"type:text"`
	CreatedAt          time.Time

	Manicurist *AccountModel `gorm:"foreignKey:ManicuristID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (AbsenceModel) TableName() string {
	return "absences"
}
