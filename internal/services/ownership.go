package services

// Owned is implemented by every record that belongs to a single user.
type Owned interface {
	OwnerID() uint
}

// Owns is the single authorization predicate applied before any read or
// write of a user-owned record.
func Owns(callerID uint, entity Owned) bool {
	return callerID != 0 && entity != nil && entity.OwnerID() == callerID
}
