/**
 * @description
 * This file defines the Profile domain model mirroring the `profiles` table
 * managed by the auth provider. The property service reads profiles but never
 * creates or mutates them.
 */
package domain

import "github.com/google/uuid"

// Profile is a user profile row. FullName and Email are nullable upstream,
// so callers should fall back to a placeholder when empty.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FullName  *string   `json:"full_name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role,omitempty"` // "landlord" or "tenant"
}

// DisplayName returns the profile's full name, or "Tenant" when unset.
func (p Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return "Tenant"
}
