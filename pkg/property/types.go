// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"time"

	"github.com/tenantflow/tenantflow/internal/types"
)

type CreateTenantRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=50"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=50"`
}

func (r *UpdateProfileRequest) ProfileUpdate() *types.ProfileUpdate {
	return &types.ProfileUpdate{Name: r.Name, Phone: r.Phone}
}

type UnitRequest struct {
	ID     string `json:"id,omitempty"`
	Number string `json:"number" validate:"required,max=50"`
	Size   string `json:"size" validate:"required,max=50"`
	Notes  string `json:"notes,omitempty" validate:"max=1000"`
}

type HouseRequest struct {
	Name    string        `json:"name" validate:"required,max=200"`
	Address string        `json:"address" validate:"required,max=500"`
	Type    string        `json:"type" validate:"omitempty,oneof='Shared House' 'Multi-Unit House' 'Single Family Home' 'Student Housing' 'Townhouse' 'Condominium'"`
	Rooms   *int          `json:"rooms,omitempty" validate:"omitempty,min=1,max=1000"`
	Units   []UnitRequest `json:"units,omitempty" validate:"omitempty,dive"`
	Notes   string        `json:"notes,omitempty" validate:"max=2000"`
}

func (r *HouseRequest) House(id string) *types.House {
	h := &types.House{
		ID:      id,
		Name:    r.Name,
		Address: r.Address,
		Type:    r.Type,
		Rooms:   r.Rooms,
		Notes:   r.Notes,
	}

	if r.Units != nil {
		h.Units = make([]types.Unit, 0, len(r.Units))
		for _, u := range r.Units {
			h.Units = append(h.Units, types.Unit{ID: u.ID, Number: u.Number, Size: u.Size, Notes: u.Notes})
		}
	}

	return h
}

type LeaseRequest struct {
	HouseID        string    `json:"house_id" validate:"required"`
	TenantID       string    `json:"tenant_id" validate:"required"`
	RoomOrUnitID   string    `json:"room_or_unit_id,omitempty" validate:"max=100"`
	RentAmount     float64   `json:"rent_amount" validate:"gte=0"`
	Deposit        float64   `json:"deposit" validate:"gte=0"`
	LeaseStartDate time.Time `json:"lease_start_date"`
	LeaseEndDate   time.Time `json:"lease_end_date"`
	Status         string    `json:"status,omitempty" validate:"omitempty,oneof=pending active ended cancelled"`
}

func (r *LeaseRequest) Lease(id string) *types.Lease {
	return &types.Lease{
		ID:             id,
		HouseID:        r.HouseID,
		TenantID:       r.TenantID,
		RoomOrUnitID:   r.RoomOrUnitID,
		RentAmount:     r.RentAmount,
		Deposit:        r.Deposit,
		LeaseStartDate: r.LeaseStartDate,
		LeaseEndDate:   r.LeaseEndDate,
		Status:         r.Status,
	}
}

type PaymentRequest struct {
	LeaseID     string    `json:"lease_id" validate:"required"`
	Amount      float64   `json:"amount" validate:"gt=0"`
	PaymentDate time.Time `json:"payment_date"`
	Method      string    `json:"method,omitempty" validate:"max=50"`
}

func (r *PaymentRequest) Payment() *types.Payment {
	return &types.Payment{
		LeaseID:     r.LeaseID,
		Amount:      r.Amount,
		PaymentDate: r.PaymentDate,
		Method:      r.Method,
	}
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type MaintenanceRequestRequest struct {
	LeaseID     string `json:"lease_id" validate:"required"`
	HouseID     string `json:"house_id,omitempty"`
	Description string `json:"description" validate:"required,max=5000"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
}

func (r *MaintenanceRequestRequest) MaintenanceRequest() *types.MaintenanceRequest {
	return &types.MaintenanceRequest{
		LeaseID:     r.LeaseID,
		HouseID:     r.HouseID,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

type MaintenanceStatusRequest struct {
	Status          string  `json:"status" validate:"required,oneof='Open' 'In Progress' 'Resolved' 'Closed'"`
	ResolutionNotes *string `json:"resolution_notes,omitempty" validate:"omitempty,max=5000"`
}

// DeleteLeasesResponse reports how many leases a bulk delete removed
type DeleteLeasesResponse struct {
	Deleted int64 `json:"deleted"`
}
