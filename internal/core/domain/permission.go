package domain

// PermissionAction is the fixed enumeration of action kinds a permission can grant.
type PermissionAction string

const (
	ActionCreate PermissionAction = "CREATE"
	ActionRead   PermissionAction = "READ"
	ActionUpdate PermissionAction = "UPDATE"
	ActionDelete PermissionAction = "DELETE"
	ActionManage PermissionAction = "MANAGE"
)

// ValidAction reports whether a is one of the known permission actions.
func ValidAction(a PermissionAction) bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManage:
		return true
	}
	return false
}

// Permission is an atomic named capability scoped to a module and an action kind.
type Permission struct {
	PermissionID string           `json:"permissionID"`
	Name         string           `json:"name"` // unique, e.g. "payrolls.manage"
	Module       string           `json:"module"`
	Action       PermissionAction `json:"action"`
	AuditFields
}
