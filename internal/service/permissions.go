package service

import (
	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/models"
)

// DefaultPermissions maps a role to its permission set. The mapping is
// fixed; grants are adjusted per user after creation, not per role.
func DefaultPermissions(role string) models.Permissions {
	switch role {
	case constants.RoleAdmin:
		return models.Permissions{
			Dashboard: true,
			Users:     true,
			Products:  true,
			Orders:    true,
			Payments:  true,
			Settings:  true,
			Marketing: true,
		}
	case constants.RoleManager:
		return models.Permissions{
			Dashboard: true,
			Products:  true,
			Orders:    true,
			Payments:  true,
			Marketing: true,
		}
	case constants.RoleSupport:
		return models.Permissions{
			Dashboard: true,
			Orders:    true,
		}
	default:
		return models.Permissions{}
	}
}
