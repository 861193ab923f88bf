package models

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	OwnerID        uint   `gorm:"not null;index:idx_tickets_owner_issued,priority:1;index:idx_tickets_owner_class_issued,priority:1"`
	Number         string `gorm:"size:50;not null"`
	ServiceClass   string `gorm:"size:20;not null;index:idx_tickets_owner_class_issued,priority:2"`
	Status         string `gorm:"size:20;not null;index"`
	PriorityWeight int    `gorm:"not null;default:0"`
	EstimatedWait  int    `gorm:"not null;default:0"`
	IssuedAt       int64  `gorm:"not null;index:idx_tickets_owner_issued,priority:2;index:idx_tickets_owner_class_issued,priority:3"`
	ServedAt       *int64
	CompletedAt    *int64
	NoShowAt       *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
