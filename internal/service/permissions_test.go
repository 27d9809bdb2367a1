package service

import (
	"testing"

	"github.com/flipzokart/api/internal/constants"
)

func TestDefaultPermissions(t *testing.T) {
	admin := DefaultPermissions(constants.RoleAdmin)
	for _, resource := range []string{
		constants.PermDashboard, constants.PermUsers, constants.PermProducts,
		constants.PermOrders, constants.PermPayments, constants.PermSettings,
		constants.PermMarketing,
	} {
		if !admin.Allows(resource) {
			t.Fatalf("admin missing %q", resource)
		}
	}

	manager := DefaultPermissions(constants.RoleManager)
	if manager.Allows(constants.PermUsers) || manager.Allows(constants.PermSettings) {
		t.Fatal("manager must not manage users or settings")
	}
	for _, resource := range []string{
		constants.PermDashboard, constants.PermProducts, constants.PermOrders,
		constants.PermPayments, constants.PermMarketing,
	} {
		if !manager.Allows(resource) {
			t.Fatalf("manager missing %q", resource)
		}
	}

	support := DefaultPermissions(constants.RoleSupport)
	if !support.Allows(constants.PermDashboard) || !support.Allows(constants.PermOrders) {
		t.Fatal("support needs dashboard and orders")
	}
	for _, resource := range []string{
		constants.PermUsers, constants.PermProducts, constants.PermPayments,
		constants.PermSettings, constants.PermMarketing,
	} {
		if support.Allows(resource) {
			t.Fatalf("support must not have %q", resource)
		}
	}

	customer := DefaultPermissions(constants.RoleCustomer)
	for _, resource := range []string{
		constants.PermDashboard, constants.PermUsers, constants.PermProducts,
		constants.PermOrders, constants.PermPayments, constants.PermSettings,
		constants.PermMarketing,
	} {
		if customer.Allows(resource) {
			t.Fatalf("customer must not have %q", resource)
		}
	}

	if DefaultPermissions("nonsense").Allows(constants.PermDashboard) {
		t.Fatal("unknown role must map to no permissions")
	}
}

func TestPermissionsAllowsUnknownResource(t *testing.T) {
	admin := DefaultPermissions(constants.RoleAdmin)
	if admin.Allows("nonexistent") {
		t.Fatal("unknown resource must be denied")
	}
}
