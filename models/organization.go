package models

// Organization is the concrete extension for a company or venue operator.
type Organization struct {
	BaseModel
	EntityID         uint   `gorm:"uniqueIndex;not null"` // entities.id FK
	Name             string `gorm:"type:varchar(200);not null;index"`
	Note             string `gorm:"type:text"`
	ReferralSourceID *uint  `gorm:"index"`
	AgentID          *uint  `gorm:"index"` // persons.id FK
	ContactID        *uint  `gorm:"index"` // persons.id FK, primary contact at the organization

	Entity         Entity             `gorm:"foreignKey:EntityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ReferralSource *ReferralSource    `gorm:"foreignKey:ReferralSourceID"`
	Agent          *Person            `gorm:"foreignKey:AgentID"`
	Contact        *Person            `gorm:"foreignKey:ContactID"`
	Types          []OrganizationType `gorm:"many2many:organization_type_links;"`
}

// OrganizationType is a tag such as "Venue", "Promoter" or "Sponsor"; an
// organization carries zero or more of them.
type OrganizationType struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}
