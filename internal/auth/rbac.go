package auth

// Role is the closed set of roles a user account can hold.
type Role string

const (
	RoleUser      Role = "user"
	RoleChefDept  Role = "chef_dept"
	RoleDirection Role = "direction"
	RoleComptable Role = "comptable"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleChefDept, RoleDirection, RoleComptable:
		return true
	}
	return false
}

// Action names a capability checked against the permission table. New
// endpoints must route authorization through Can rather than comparing
// role strings inline.
type Action string

const (
	// ActionViewAllLines allows reading and editing budget lines owned by
	// other users.
	ActionViewAllLines Action = "view_all_lines"
	// ActionModerateLines allows listing the pending queue and
	// approving or rejecting submitted lines.
	ActionModerateLines Action = "moderate_lines"
	// ActionManageUsers allows provisioning accounts.
	ActionManageUsers Action = "manage_users"
)

var permissionTable = map[Role]map[Action]bool{
	RoleUser: {},
	RoleChefDept: {
		ActionViewAllLines:  true,
		ActionModerateLines: true,
	},
	RoleDirection: {
		ActionViewAllLines:  true,
		ActionModerateLines: true,
		ActionManageUsers:   true,
	},
	RoleComptable: {
		ActionViewAllLines:  true,
		ActionModerateLines: true,
	},
}

func (r Role) Can(action Action) bool {
	actions, ok := permissionTable[r]
	if !ok {
		return false
	}
	return actions[action]
}

// IsReviewer reports whether the role participates in consolidation.
func (r Role) IsReviewer() bool {
	return r.Can(ActionModerateLines)
}
