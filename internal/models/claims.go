package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// User permissions
	PermissionAccountRead      = "account:read"
	PermissionAccountWrite     = "account:write"
	PermissionCardRead         = "card:read"
	PermissionCardWrite        = "card:write"
	PermissionTransactionWrite = "transaction:write"
	PermissionUserRead         = "user:read"
	PermissionUserWrite        = "user:write"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID      uint     `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionAccountRead,
			PermissionAccountWrite,
			PermissionCardRead,
			PermissionCardWrite,
			PermissionTransactionWrite,
			PermissionUserRead,
			PermissionUserWrite,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case RoleUser:
		return []string{
			PermissionAccountRead,
			PermissionAccountWrite,
			PermissionCardRead,
			PermissionCardWrite,
			PermissionTransactionWrite,
			PermissionUserRead,
		}
	default:
		return []string{}
	}
}
