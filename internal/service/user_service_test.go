package service

import (
	"errors"
	"testing"

	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	db := newServiceTestDB(t)
	auth := newTestAuthService(t, db)
	return NewUserService(repository.NewUserRepository(db), auth)
}

func TestCreateStaffDefaultsToSupport(t *testing.T) {
	svc := newTestUserService(t)

	user, err := svc.CreateStaff(CreateStaffInput{
		FirstName: "Nina",
		LastName:  "Das",
		Email:     "Nina@Example.com",
		Password:  "secret123",
		Role:      "customer",
	})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	if user.Role != constants.RoleSupport {
		t.Fatalf("role want support got %s", user.Role)
	}
	if user.Email != "nina@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if !user.Permissions.Dashboard || !user.Permissions.Orders {
		t.Fatalf("support staff should get dashboard and orders permissions: %+v", user.Permissions)
	}
	if user.Permissions.Users || user.Permissions.Settings {
		t.Fatalf("support staff should not get users or settings permissions: %+v", user.Permissions)
	}
}

func TestCreateStaffRejectsDuplicateEmail(t *testing.T) {
	svc := newTestUserService(t)

	input := CreateStaffInput{FirstName: "A", LastName: "B", Email: "dup@example.com", Password: "secret123", Role: constants.RoleManager}
	if _, err := svc.CreateStaff(input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateStaff(input); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
}

func TestSetBlocked(t *testing.T) {
	svc := newTestUserService(t)
	created, err := svc.CreateStaff(CreateStaffInput{FirstName: "A", LastName: "B", Email: "block@example.com", Password: "secret123", Role: constants.RoleSupport})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}

	blocked, err := svc.SetBlocked(created.ID, true)
	if err != nil {
		t.Fatalf("block failed: %v", err)
	}
	if !blocked.IsBlocked {
		t.Fatalf("user should be blocked")
	}

	unblocked, err := svc.SetBlocked(created.ID, false)
	if err != nil {
		t.Fatalf("unblock failed: %v", err)
	}
	if unblocked.IsBlocked {
		t.Fatalf("user should be unblocked")
	}

	if _, err := svc.SetBlocked(99999, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user want ErrNotFound got %v", err)
	}
}

func TestSetRoleResetsPermissions(t *testing.T) {
	svc := newTestUserService(t)
	created, err := svc.CreateStaff(CreateStaffInput{FirstName: "A", LastName: "B", Email: "role@example.com", Password: "secret123", Role: constants.RoleAdmin})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	if !created.Permissions.Settings {
		t.Fatalf("admin should start with settings permission")
	}

	updated, err := svc.SetRole(created.ID, constants.RoleSupport)
	if err != nil {
		t.Fatalf("set role failed: %v", err)
	}
	if updated.Role != constants.RoleSupport {
		t.Fatalf("role want support got %s", updated.Role)
	}
	if updated.Permissions.Settings || updated.Permissions.Users {
		t.Fatalf("demotion should reset permissions to the role default: %+v", updated.Permissions)
	}
	if !updated.Permissions.Orders {
		t.Fatalf("support default should keep orders permission")
	}

	if _, err := svc.SetRole(created.ID, "superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("unknown role want ErrInvalidRole got %v", err)
	}
}

func TestSetPermissionsOverridesFlags(t *testing.T) {
	svc := newTestUserService(t)
	created, err := svc.CreateStaff(CreateStaffInput{FirstName: "A", LastName: "B", Email: "perm@example.com", Password: "secret123", Role: constants.RoleSupport})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}

	updated, err := svc.SetPermissions(created.ID, models.Permissions{Dashboard: true, Products: true})
	if err != nil {
		t.Fatalf("set permissions failed: %v", err)
	}
	if !updated.Permissions.Products {
		t.Fatalf("products flag should be granted")
	}
	if updated.Permissions.Orders {
		t.Fatalf("orders flag should be cleared by the override")
	}
}
