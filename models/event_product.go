package models

import "time"

// EventProduct books one Product into one Event. It is a priced line item, not
// a bare join row: price and fee are snapshotted at booking time and the row
// carries its own status and contract/payment dates.
type EventProduct struct {
	BaseModel
	EventID       uint    `gorm:"not null;index:idx_event_product,unique"` // events.id FK
	ProductID     uint    `gorm:"not null;index:idx_event_product,unique"` // products.id FK
	GrossPrice    float64 `gorm:"type:numeric(12,2);default:0"`
	FeePercent    float64 `gorm:"type:numeric(5,2);default:0"`
	StatusID      *uint   `gorm:"index"` // event_statuses.id FK
	VenueEntityID *uint   `gorm:"index"` // entities.id FK, overrides the event venue when set

	ContractSentDate     *time.Time
	ContractReceivedDate *time.Time
	PaymentDueDate       *time.Time
	PaymentReceivedDate  *time.Time

	Event   Event        `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Product Product      `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Status  *EventStatus `gorm:"foreignKey:StatusID"`
}
