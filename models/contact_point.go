package models

// Dependent rows. All three are keyed by the owning entity id, not by the
// concrete person/organization table, so they survive unchanged regardless of
// which concrete type owns them.

// Address is a postal address owned by an Entity.
type Address struct {
	BaseModel
	EntityID   uint   `gorm:"not null;index"` // entities.id FK
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	Region     string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(100)"`
}

// Phone is a phone number owned by an Entity.
type Phone struct {
	BaseModel
	EntityID    uint   `gorm:"not null;index"` // entities.id FK
	PhoneTypeID *uint  `gorm:"index"`          // phone_types.id FK
	Number      string `gorm:"type:varchar(50);not null"`

	Type *PhoneType `gorm:"foreignKey:PhoneTypeID"`
}

// ElectronicAddress is an email address, website or social handle owned by an
// Entity.
type ElectronicAddress struct {
	BaseModel
	EntityID                uint   `gorm:"not null;index"` // entities.id FK
	ElectronicAddressTypeID *uint  `gorm:"index"`          // electronic_address_types.id FK
	Address                 string `gorm:"type:varchar(255);not null"`

	Type *ElectronicAddressType `gorm:"foreignKey:ElectronicAddressTypeID"`
}
