package quotations

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// QuotationRequest is an inbound inquiry submitted through the public
// contact form. ProductID is optional; general inquiries leave it nil.
type QuotationRequest struct {
	bun.BaseModel `bun:"table:quotation_requests,alias:qr"`

	ID          uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Name        string     `bun:"name,notnull" json:"name"`
	Email       string     `bun:"email,notnull" json:"email"`
	Phone       string     `bun:"phone,notnull,default:''" json:"phone"`
	CompanyName string     `bun:"company_name,notnull,default:''" json:"company_name"`
	ProductID   *uuid.UUID `bun:"product_id,type:uuid,nullzero" json:"product_id,omitempty"`
	Quantity    int        `bun:"quantity,notnull,default:0" json:"quantity"`
	Message     string     `bun:"message,notnull,default:''" json:"message"`
	Status      string     `bun:"status,notnull,default:'new'" json:"status"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Quotation statuses walk the inquiry through the sales follow-up flow.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)

// KnownStatuses lists the quotation statuses in flow order.
func KnownStatuses() []string {
	return []string{StatusNew, StatusContacted, StatusClosed}
}
