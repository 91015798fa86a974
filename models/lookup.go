package models

// Lookup tables resolved to display labels on the read side. Seeded with fixed
// rows by database/seeders.

type PhoneType struct {
	BaseModel
	Description string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

type ElectronicAddressType struct {
	BaseModel
	Description string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

type EventType struct {
	BaseModel
	Description string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

type EventStatus struct {
	BaseModel
	Description string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

type ReferralSource struct {
	BaseModel
	Description string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

// Role describes a person's function within the agency ("Agent", "Booker").
type Role struct {
	BaseModel
	Description string `gorm:"type:varchar(100);uniqueIndex;not null"`
}
