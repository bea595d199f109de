package rbac

// Default policy. Raters work through their own session; admins additionally
// see aggregate shuffle and event data.
var RolePermissions = map[string][]string{
	"rater": {
		"session:view",
		"session:ack",
		"session:answer",
		"session:advance",
	},
	"admin": {
		"*", // everything
	},
}
