package models

// Entity is the abstract row unifying every concrete record type (person,
// organization, product, event) under one id space. Dependent rows (Address,
// Phone, ElectronicAddress) reference the entity id, never the concrete table.
type Entity struct {
	BaseModel
	EntityTypeID uint `gorm:"not null;index"` // entity_types.id FK

	Type EntityType `gorm:"foreignKey:EntityTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// EntityType is the discriminator lookup identifying which concrete table owns
// the extension row.
type EntityType struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

// Fixed discriminator ids, seeded by database/seeders.
const (
	EntityTypePerson       uint = 1
	EntityTypeOrganization uint = 2
	EntityTypeProduct      uint = 3
	EntityTypeEvent        uint = 4
)

const (
	EntityTypeNamePerson       = "PERSON"
	EntityTypeNameOrganization = "ORGANIZATION"
	EntityTypeNameProduct      = "PRODUCT"
	EntityTypeNameEvent        = "EVENT"
)
