package domain

import "time"

type (
	// Role is the access role of an account.
	Role string
	// DriverStatus is the onboarding state of a driver application.
	DriverStatus string
)

// List of account roles
const (
	RoleBuyer  Role = "BUYER"
	RoleDriver Role = "DRIVER"
	RoleAdmin  Role = "ADMIN"
)

// List of driver onboarding states
const (
	DriverStatusNone     DriverStatus = ""
	DriverStatusPending  DriverStatus = "PENDING"
	DriverStatusApproved DriverStatus = "APPROVED"
	DriverStatusRejected DriverStatus = "REJECTED"
)

// AddressDetails describes the customer's dwelling.
type AddressDetails struct {
	Type   string
	Number string
}

// DriverDocs holds opaque object-storage references to identity documents.
type DriverDocs struct {
	Selfie  string
	IDFront string
	IDBack  string
}

// Complete reports whether all three documents are present.
func (d DriverDocs) Complete() bool {
	return d.Selfie != "" && d.IDFront != "" && d.IDBack != ""
}

// Account represents a registered user; drivers are accounts with driver data.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Role         Role
	IsVerified   bool
	Location     *Location
	Address      AddressDetails
	ShegaID      string
	DriverStatus DriverStatus
	DriverType   JobType
	DriverDocs   DriverDocs
	DriverStats  DriverStats
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Registration carries sign-up input.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Location  *Location
	Address   AddressDetails
}

// DriverApplication carries a driver onboarding request.
type DriverApplication struct {
	AccountID int64
	JobType   JobType
	Docs      DriverDocs
}
