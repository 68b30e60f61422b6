package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Tenancy & Staff Tables
// ============================================================

// Tenant represents a gym account (one row per gym)
type Tenant struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	CurrencySymbol string         `gorm:"size:8;default:'$'" json:"currency_symbol"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// User represents a staff account (owner or front-desk staff) of one tenant
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  uint           `gorm:"index;not null" json:"tenant_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'STAFF'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// User roles
const (
	RoleOwner = "OWNER"
	RoleStaff = "STAFF"
)

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	TenantID  uint      `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Members & Memberships
// ============================================================

// Plan represents a membership plan offered by a tenant
type Plan struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TenantID     uint           `gorm:"index;not null" json:"tenant_id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Price        float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationDays int            `gorm:"not null;default:30" json:"duration_days"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Plan) TableName() string {
	return "plans"
}

// Member represents a gym patron. Status mirrors the member's most relevant
// membership status and is recomputed by the daily lifecycle job.
type Member struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  uint           `gorm:"index;not null" json:"tenant_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Phone     string         `gorm:"size:20" json:"phone"`
	CardCode  string         `gorm:"size:40;uniqueIndex" json:"card_code"`
	Status    string         `gorm:"size:20;default:'ACTIVE'" json:"status"`
	JoinedAt  time.Time      `json:"joined_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Tenant      *Tenant      `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Memberships []Membership `gorm:"foreignKey:MemberID" json:"memberships,omitempty"`
}

func (Member) TableName() string {
	return "members"
}

// Membership represents one member's subscription term.
// Status must equal Classify(NextDueDate, today) after the daily job runs;
// it may be stale between runs.
type Membership struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TenantID    uint           `gorm:"index;not null" json:"tenant_id"`
	MemberID    uint           `gorm:"index;not null" json:"member_id"`
	PlanID      *uint          `json:"plan_id"`
	PlanName    string         `gorm:"size:100" json:"plan_name"`
	Amount      float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	NextDueDate time.Time      `gorm:"type:date;not null;index" json:"next_due_date"`
	Status      string         `gorm:"size:20;default:'ACTIVE';index" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations (preloaded by the lifecycle bulk read)
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Plan   *Plan   `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

func (Membership) TableName() string {
	return "memberships"
}

// MembershipResponse DTO
type MembershipResponse struct {
	ID          uint      `json:"id"`
	TenantID    uint      `json:"tenant_id"`
	MemberID    uint      `json:"member_id"`
	MemberName  string    `json:"member_name,omitempty"`
	PlanName    string    `json:"plan_name"`
	Amount      float64   `json:"amount"`
	NextDueDate time.Time `json:"next_due_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *Membership) ToResponse() *MembershipResponse {
	resp := &MembershipResponse{
		ID:          m.ID,
		TenantID:    m.TenantID,
		MemberID:    m.MemberID,
		PlanName:    m.PlanName,
		Amount:      m.Amount,
		NextDueDate: m.NextDueDate,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}

	if m.Member != nil {
		resp.MemberName = m.Member.Name
	}

	return resp
}

// MemberCardResponse is the digital membership card payload for the member PWA
type MemberCardResponse struct {
	CardCode   string              `json:"card_code"`
	MemberName string              `json:"member_name"`
	TenantName string              `json:"tenant_name"`
	Status     string              `json:"status"`
	Membership *MembershipResponse `json:"membership,omitempty"`
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Tenancy & staff
		&Tenant{},
		&User{},
		&RefreshToken{},
		// Members & memberships
		&Plan{},
		&Member{},
		&Membership{},
		// Lifecycle & outboxes
		&ReminderLog{},
		&PushOutbox{},
		&WhatsAppOutbox{},
		// Store & shifts
		&Product{},
		&Sale{},
		&SaleItem{},
		&Shift{},
		// Member activity
		&Attendance{},
		&WorkoutLog{},
	)
}
