package models

// Product is a bookable offering: an act, a show package or a piece of
// equipment. Entertainers carry a 1:1 extension row.
type Product struct {
	BaseModel
	EntityID         uint    `gorm:"uniqueIndex;not null"` // entities.id FK
	Name             string  `gorm:"type:varchar(200);not null;index"`
	GrossPrice       float64 `gorm:"type:numeric(12,2);default:0"`
	FeePercent       float64 `gorm:"type:numeric(5,2);default:0"`
	IsAvailable      bool    `gorm:"default:true;index"`
	BookingContactID *uint   `gorm:"index"` // persons.id FK

	Entity         Entity       `gorm:"foreignKey:EntityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BookingContact *Person      `gorm:"foreignKey:BookingContactID"`
	Entertainer    *Entertainer `gorm:"foreignKey:ProductID"`
}

// Entertainer is the optional specialization of a Product.
type Entertainer struct {
	BaseModel
	ProductID   uint   `gorm:"uniqueIndex;not null"` // products.id FK
	Bio         string `gorm:"type:text"`
	BandSize    int    `gorm:"default:0"`
	LeaderID    *uint  `gorm:"index"` // persons.id FK
	IsExclusive bool   `gorm:"default:false"`

	Leader *Person `gorm:"foreignKey:LeaderID"`
}
