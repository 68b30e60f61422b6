package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Point of Sale: products, sales, shifts
// ============================================================

// Product represents a store item sold at the front desk
type Product struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  uint           `gorm:"index;not null" json:"tenant_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Price     float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int            `gorm:"not null;default:0" json:"stock"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// Payment methods
const (
	PaymentCash = "CASH"
	PaymentCard = "CARD"
	PaymentUPI  = "UPI"
)

// Sale represents one checkout (membership payment or store purchase)
type Sale struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TenantID      uint      `gorm:"index;not null" json:"tenant_id"`
	MemberID      *uint     `gorm:"index" json:"member_id"`
	ShiftID       *uint     `gorm:"index" json:"shift_id"`
	ReceiptNo     string    `gorm:"size:40;uniqueIndex;not null" json:"receipt_no"`
	Total         float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMethod string    `gorm:"size:20;not null" json:"payment_method"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Items  []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Member *Member    `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale
type SaleItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SaleID    uint    `gorm:"index;not null" json:"sale_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Subtotal  float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}

func (SaleItem) TableName() string {
	return "sale_items"
}

// Shift statuses
const (
	ShiftStatusOpen   = "OPEN"
	ShiftStatusClosed = "CLOSED"
)

// Shift represents a cash-register shift. On close, ExpectedCash is the
// opening float plus all cash sales recorded during the shift and Difference
// is CashCounted minus ExpectedCash.
type Shift struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TenantID     uint       `gorm:"index;not null" json:"tenant_id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Status       string     `gorm:"size:20;default:'OPEN';index" json:"status"`
	OpenedAt     time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt     *time.Time `json:"closed_at"`
	OpeningFloat float64    `gorm:"type:decimal(10,2);not null" json:"opening_float"`
	CashCounted  *float64   `gorm:"type:decimal(10,2)" json:"cash_counted"`
	ExpectedCash float64    `gorm:"type:decimal(10,2)" json:"expected_cash"`
	Difference   float64    `gorm:"type:decimal(10,2)" json:"difference"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Shift) TableName() string {
	return "shifts"
}

// ============================================================
// Member Activity: attendance & workout log
// ============================================================

// Attendance is one gym check-in
type Attendance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TenantID    uint      `gorm:"index;not null" json:"tenant_id"`
	MemberID    uint      `gorm:"index;not null" json:"member_id"`
	CheckedInAt time.Time `gorm:"not null;index" json:"checked_in_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// WorkoutLog is one exercise entry in a member's workout diary
type WorkoutLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  uint           `gorm:"index;not null" json:"tenant_id"`
	MemberID  uint           `gorm:"index;not null" json:"member_id"`
	Exercise  string         `gorm:"size:100;not null" json:"exercise"`
	Sets      int            `json:"sets"`
	Reps      int            `json:"reps"`
	Weight    float64        `gorm:"type:decimal(6,2)" json:"weight"`
	Notes     string         `gorm:"type:text" json:"notes"`
	LoggedOn  time.Time      `gorm:"type:date;not null;index" json:"logged_on"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WorkoutLog) TableName() string {
	return "workout_logs"
}
