package models

import "gorm.io/gorm"

// User represents a registered account.
type User struct {
	gorm.Model
	FirstName    string  `gorm:"size:255;not null"`
	LastName     string  `gorm:"size:255;not null"`
	Email        string  `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	IsActive     bool    `gorm:"not null;default:true"`
	Roles        []*Role `gorm:"many2many:user_roles;"`
}

// Role represents a role grantable to users (e.g. "User", "Admin").
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`
}

// RoleNames returns the names of the user's assigned roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		if role != nil {
			names = append(names, role.Name)
		}
	}
	return names
}
