// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	SELF_RELATION     = "self"
	MANAGER_RELATION  = "manager"
	LANDLORD_RELATION = "landlord"
	TENANT_RELATION   = "tenant"
	HOUSE_RELATION    = "house"

	CAN_VIEW_PERMISSION                = "can_view"
	CAN_EDIT_PERMISSION                = "can_edit"
	CAN_PAY_PERMISSION                 = "can_pay"
	CAN_REQUEST_MAINTENANCE_PERMISSION = "can_request_maintenance"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func ProfileTuple(profileId string) string {
	return "profile:" + profileId
}

func HouseTuple(houseId string) string {
	return "house:" + houseId
}

func LeaseTuple(leaseId string) string {
	return "lease:" + leaseId
}
