// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

// Valid reports whether r is one of the roles the application can route
func (r Role) Valid() bool {
	return r == RoleLandlord || r == RoleTenant
}

const (
	HouseTypeShared      = "Shared House"
	HouseTypeMultiUnit   = "Multi-Unit House"
	HouseTypeSingle      = "Single Family Home"
	HouseTypeStudent     = "Student Housing"
	HouseTypeTownhouse   = "Townhouse"
	HouseTypeCondominium = "Condominium"
)

var HouseTypes = []string{
	HouseTypeShared,
	HouseTypeMultiUnit,
	HouseTypeSingle,
	HouseTypeStudent,
	HouseTypeTownhouse,
	HouseTypeCondominium,
}

const (
	LeaseStatusPending   = "pending"
	LeaseStatusActive    = "active"
	LeaseStatusEnded     = "ended"
	LeaseStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"

	PaymentMethodCash = "cash"
)

const (
	MaintenanceStatusOpen       = "Open"
	MaintenanceStatusInProgress = "In Progress"
	MaintenanceStatusResolved   = "Resolved"
	MaintenanceStatusClosed     = "Closed"

	MaintenancePriorityLow    = "Low"
	MaintenancePriorityMedium = "Medium"
	MaintenancePriorityHigh   = "High"
)

// Profile is the application record of an identity. Role is nil when the
// identity was never provisioned with one.
type Profile struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Role      *Role     `db:"role" json:"role"`
	CreatedBy *string   `db:"created_by" json:"created_by,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// HasRole is true when the profile carries r
func (p *Profile) HasRole(r Role) bool {
	return p != nil && p.Role != nil && *p.Role == r
}

type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// PersonSummary is the slice of a profile embedded in leases and requests
type PersonSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Unit struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Size   string `json:"size,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type House struct {
	ID         string    `db:"id" json:"id"`
	LandlordID string    `db:"landlord_id" json:"landlord_id"`
	Name       string    `db:"name" json:"name"`
	Address    string    `db:"address" json:"address"`
	Type       string    `db:"type" json:"type"`
	Rooms      *int      `db:"rooms" json:"rooms"`
	Units      []Unit    `db:"units" json:"units"`
	Notes      string    `db:"notes" json:"notes"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// HouseSummary is the slice of a house embedded in leases and requests
type HouseSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type,omitempty"`
}

type Lease struct {
	ID             string    `db:"id" json:"id"`
	LandlordID     string    `db:"landlord_id" json:"landlord_id"`
	HouseID        string    `db:"house_id" json:"house_id"`
	TenantID       string    `db:"tenant_id" json:"tenant_id"`
	RoomOrUnitID   string    `db:"room_or_unit_id" json:"room_or_unit_id"`
	RentAmount     float64   `db:"rent_amount" json:"rent_amount"`
	Deposit        float64   `db:"deposit" json:"deposit"`
	LeaseStartDate time.Time `db:"lease_start_date" json:"lease_start_date"`
	LeaseEndDate   time.Time `db:"lease_end_date" json:"lease_end_date"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`

	House  *HouseSummary  `json:"house,omitempty"`
	Tenant *PersonSummary `json:"tenant,omitempty"`
}

// LeaseFilter selects leases for bulk removal, empty fields are ignored
type LeaseFilter struct {
	LandlordID string
	TenantID   string
	HouseID    string
}

func (f LeaseFilter) Empty() bool {
	return f.LandlordID == "" && f.TenantID == "" && f.HouseID == ""
}

type Payment struct {
	ID          string    `db:"id" json:"id"`
	LeaseID     string    `db:"lease_id" json:"lease_id"`
	Amount      float64   `db:"amount" json:"amount"`
	PaymentDate time.Time `db:"payment_date" json:"payment_date"`
	Method      string    `db:"method" json:"method"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type MaintenanceRequest struct {
	ID              string     `db:"id" json:"id"`
	LeaseID         string     `db:"lease_id" json:"lease_id"`
	HouseID         string     `db:"house_id" json:"house_id"`
	TenantID        string     `db:"tenant_id" json:"tenant_id"`
	Description     string     `db:"description" json:"description"`
	Priority        string     `db:"priority" json:"priority"`
	Status          string     `db:"status" json:"status"`
	SubmittedDate   time.Time  `db:"submitted_date" json:"submitted_date"`
	ResolvedAt      *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
	ResolutionNotes *string    `db:"resolution_notes" json:"resolution_notes,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`

	RoomOrUnitID string         `json:"room_or_unit_id,omitempty"`
	House        *HouseSummary  `json:"house,omitempty"`
	Tenant       *PersonSummary `json:"tenant,omitempty"`
}

// IsTerminalMaintenanceStatus is true for statuses that carry a resolution timestamp
func IsTerminalMaintenanceStatus(status string) bool {
	return status == MaintenanceStatusResolved || status == MaintenanceStatusClosed
}

// MaintenanceFilter selects requests either by a set of houses or by the
// tenant who filed them
type MaintenanceFilter struct {
	HouseIDs []string
	TenantID string
}
