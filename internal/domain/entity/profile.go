// Package entity contains the core business objects of the booking dashboard,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserProfile is the service provider who owns the dashboard.
type UserProfile struct {
	ID           string    `json:"id"`           // Immutable identifier.
	Name         string    `json:"name"`         // Display name shown on the public page.
	Username     string    `json:"username"`     // Key of the public booking route.
	Email        string    `json:"email"`        // Contact email.
	Bio          string    `json:"bio"`          // Short free-form description.
	Phone        string    `json:"phone"`        // Contact phone number.
	ProfileImage string    `json:"profileImage"` // URL of the avatar.
	CreatedAt    time.Time `json:"createdAt"`    // Set at seed time and again when onboarding completes.
}

// UserPatch is a partial update of a UserProfile. Nil fields are left untouched.
// ID is deliberately absent: it can never be patched.
type UserPatch struct {
	Name         *string
	Username     *string
	Email        *string
	Bio          *string
	Phone        *string
	ProfileImage *string
	CreatedAt    *time.Time
}

// Apply returns a copy of u with every non-nil field of p written over it.
func (u UserProfile) Apply(p UserPatch) UserProfile {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.CreatedAt != nil {
		u.CreatedAt = *p.CreatedAt
	}

	return u
}

// IsEmpty reports whether the patch carries no field at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Username == nil && p.Email == nil && p.Bio == nil &&
		p.Phone == nil && p.ProfileImage == nil && p.CreatedAt == nil
}
