package constants

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

var AdminRoles = []string{RoleAdmin, RoleSuperAdmin}
