package wizard

import (
	"strings"

	"glowspa/models"
)

// RoleClass is the two-way split the wizard branches on.
type RoleClass string

const (
	RoleCustomer RoleClass = "customer"
	RoleStaff    RoleClass = "staff"
)

// staffRoles covers everyone who books on behalf of walk-ins.
var staffRoles = map[string]bool{
	"receptionist": true,
	"manager":      true,
	"admin":        true,
}

// ClassifyRole maps a user's role/sub-role onto customer or staff. It is the
// single source of truth for both the customer-details step and the payment
// prefill identity.
func ClassifyRole(role, subRole string) RoleClass {
	if staffRoles[strings.ToLower(role)] || staffRoles[strings.ToLower(subRole)] {
		return RoleStaff
	}
	return RoleCustomer
}

// IsMassageCategory reports whether a category name selects the massage flow.
func IsMassageCategory(name string) bool {
	return strings.EqualFold(name, "massage")
}

// IsMassageService reports whether room selection applies to the service.
func IsMassageService(svc *models.Service) bool {
	if svc == nil {
		return false
	}
	return IsMassageCategory(svc.Category.Name)
}
