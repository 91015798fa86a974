package models

import "time"

// Event is a booked engagement. Client and venue may each be a person or an
// organization, so both are referenced by entity id.
type Event struct {
	BaseModel
	EntityID         uint      `gorm:"uniqueIndex;not null"` // entities.id FK
	Name             string    `gorm:"type:varchar(200);not null;index"`
	StartDate        time.Time `gorm:"index"`
	EndDate          time.Time
	Location         string    `gorm:"type:varchar(255)"`
	Budget           float64   `gorm:"type:numeric(12,2);default:0"`
	ClientEntityID   *uint     `gorm:"index"` // entities.id FK (person or organization)
	VenueEntityID    *uint     `gorm:"index"` // entities.id FK (person or organization)
	BillingContactID *uint     `gorm:"index"` // persons.id FK
	AgentID          *uint     `gorm:"index"` // persons.id FK
	EventTypeID      *uint     `gorm:"index"`
	EventStatusID    *uint     `gorm:"index"`

	ContractSentDate     *time.Time
	ContractReceivedDate *time.Time

	// Operational free-text fields carried on the running sheet.
	Attendance    string `gorm:"type:varchar(100)"`
	ArrivalTime   string `gorm:"type:varchar(100)"`
	ReportTo      string `gorm:"type:varchar(200)"`
	BreakroomNote string `gorm:"type:text"`
	EquipmentNote string `gorm:"type:text"`

	Entity         Entity       `gorm:"foreignKey:EntityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BillingContact *Person      `gorm:"foreignKey:BillingContactID"`
	Agent          *Person      `gorm:"foreignKey:AgentID"`
	Type           *EventType   `gorm:"foreignKey:EventTypeID"`
	Status         *EventStatus `gorm:"foreignKey:EventStatusID"`

	Bookings []EventProduct `gorm:"foreignKey:EventID"`
}
