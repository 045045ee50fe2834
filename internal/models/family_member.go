package models

import "time"

// FamilyMember is a person record in the family tree. FatherID and MotherID
// are nullable self-references into the same table; nil means the parent is
// not recorded.
type FamilyMember struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	BirthDate string
	FatherID  *uint `gorm:"index"`
	MotherID  *uint `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
