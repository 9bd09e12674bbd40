package dto

import "github.com/noah-isme/tinta-academy-api/internal/models"

// ShellView is the application chrome for one variant.
type ShellView struct {
	Variant    models.ShellVariant `json:"variant"`
	Navigation []models.NavItem    `json:"navigation"`
	User       *ShellUserView      `json:"user,omitempty"`
}

// ShellUserView is the signed-in user with derived display fields.
type ShellUserView struct {
	models.ShellUser
	Initials  string `json:"initials"`
	RoleLabel string `json:"roleLabel"`
}
