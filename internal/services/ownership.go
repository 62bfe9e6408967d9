package services

import "bloghub/internal/models"

// Owned is implemented by every resource that has a single owning user.
type Owned interface {
	OwnerID() (int64, bool)
}

// IsOwner reports whether p owns r. A missing resource is never owned.
func IsOwner(p models.Principal, r Owned) bool {
	if r == nil {
		return false
	}
	id, ok := r.OwnerID()
	return ok && id == p.ID
}
