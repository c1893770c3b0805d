package tickets

import "time"

const (
	StatusOpen    = "open"
	StatusPending = "pending"
	StatusClosed  = "closed"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusPending, StatusClosed:
		return true
	}
	return false
}

const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

type Ticket struct {
	ID             string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Subject        string    `gorm:"type:varchar(255);not null" json:"subject"`
	RequesterName  string    `gorm:"type:varchar(255)" json:"requester_name"`
	RequesterEmail string    `gorm:"type:varchar(255)" json:"requester_email"`
	Status         string    `gorm:"type:varchar(16);not null;default:open" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `gorm:"index:ix_tickets_updated_at" json:"updated_at"`
}

func (Ticket) TableName() string { return "tickets" }

type Activity struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	TicketID  string    `gorm:"type:char(36);not null;index:ix_ticket_activities_ticket" json:"ticket_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Direction string    `gorm:"type:varchar(8);not null" json:"direction"` // inbound | outbound
	Sender    string    `gorm:"type:varchar(255)" json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

func (Activity) TableName() string { return "ticket_activities" }
