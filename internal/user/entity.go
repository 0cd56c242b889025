// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID                     string     `db:"id"`
	Email                  string     `db:"email"`
	PasswordHash           string     `db:"password_hash"`
	Name                   string     `db:"name"`
	Role                   string     `db:"role"`
	PlanType               string     `db:"plan_type"`
	SubscriptionStatus     string     `db:"subscription_status"`
	RazorpayCustomerID     *string    `db:"razorpay_customer_id"`
	RazorpaySubscriptionID *string    `db:"razorpay_subscription_id"`
	ExpiryDate             *time.Time `db:"expiry_date"`
	IsDisabled             bool       `db:"is_disabled"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsPro() bool {
	return u.PlanType == PlanPro
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	PlanFree = "FREE"
	PlanPro  = "PRO"
)

const (
	StatusInactive = "inactive"
	StatusActive   = "active"
)
