package models

// Person is the concrete extension for a contact. Exactly one row exists per
// owning Entity.
type Person struct {
	BaseModel
	EntityID         uint   `gorm:"uniqueIndex;not null"` // entities.id FK
	FirstName        string `gorm:"type:varchar(100);not null"`
	LastName         string `gorm:"type:varchar(100);not null"`
	JobTitle         string `gorm:"type:varchar(150)"`
	Note             string `gorm:"type:text"`
	ReferralSourceID *uint  `gorm:"index"` // referral_sources.id FK
	AgentID          *uint  `gorm:"index"` // persons.id FK, the agency contact handling this person

	Entity         Entity          `gorm:"foreignKey:EntityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ReferralSource *ReferralSource `gorm:"foreignKey:ReferralSourceID"`
	Agent          *Person         `gorm:"foreignKey:AgentID"`
}

// TableName pins the table to "persons"; the default inflection is "people".
func (Person) TableName() string { return "persons" }

// FullName joins first and last name for display.
func (p Person) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
