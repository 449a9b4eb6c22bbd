package domain

// CanAct reports whether an actor may touch a resource owned by ownerID.
// Admins may touch anything, everyone else only their own resources.
func CanAct(actorID, actorRole, ownerID string) bool {
	return actorRole == RoleAdmin || actorID == ownerID
}

func IsAdmin(role string) bool {
	return role == RoleAdmin
}
