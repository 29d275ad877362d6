// Package entity defines the domain entities for the identity feature.
package entity

import (
	"time"

	"parcel_backend/internal/shared/optional"
)

// Role is the authorization level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a local account keyed by the identifier of an external login.
type User struct {
	// ID is the local identifier that owns every record.
	ID uint `gorm:"primaryKey"`

	// OpenID is assigned by the external login provider and never changes.
	OpenID string `gorm:"column:open_id;uniqueIndex;size:64;not null"`

	Name        *string `gorm:"type:text"`
	Email       *string `gorm:"size:320"`
	LoginMethod *string `gorm:"size:64"`
	Role        Role    `gorm:"size:16;not null;default:user"`

	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn time.Time `gorm:"not null"`
}

// Profile is what the external login reports about a user. Unset fields are
// left untouched on an existing row; a null clears the column.
type Profile struct {
	OpenID       string
	Name         optional.Value[string]
	Email        optional.Value[string]
	LoginMethod  optional.Value[string]
	Role         optional.Value[Role]
	LastSignedIn optional.Value[time.Time]
}

// UserPatch is the set of columns written when the user already exists.
type UserPatch struct {
	Name         optional.Value[string]
	Email        optional.Value[string]
	LoginMethod  optional.Value[string]
	Role         optional.Value[Role]
	LastSignedIn optional.Value[time.Time]
}

// Empty reports whether the patch writes nothing.
func (p UserPatch) Empty() bool {
	return !p.Name.IsSet() && !p.Email.IsSet() && !p.LoginMethod.IsSet() &&
		!p.Role.IsSet() && !p.LastSignedIn.IsSet()
}

// TouchesProfile reports whether any column other than last_signed_in is written.
func (p UserPatch) TouchesProfile() bool {
	return p.Name.IsSet() || p.Email.IsSet() || p.LoginMethod.IsSet() || p.Role.IsSet()
}
