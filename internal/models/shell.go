package models

import "github.com/golang-jwt/jwt/v5"

// Role of the signed-in user.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEducator Role = "educator"
	RoleAdmin    Role = "admin"
)

// ShellVariant selects which navigation the application shell renders.
type ShellVariant string

const (
	ShellPublic   ShellVariant = "public"
	ShellStudent  ShellVariant = "student"
	ShellEducator ShellVariant = "educator"
	ShellAdmin    ShellVariant = "admin"
)

// ShellUser is the current user as supplied by the session layer.
type ShellUser struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      Role   `json:"role"`
}

// NavItem is one navigation entry. Children are only used by the admin variant.
type NavItem struct {
	Label    string    `json:"label"`
	Href     string    `json:"href"`
	Icon     string    `json:"icon"`
	IsActive bool      `json:"isActive"`
	Children []NavItem `json:"children,omitempty"`
}

// SessionClaims is the token payload minted by the external session layer.
type SessionClaims struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      Role   `json:"role"`
	jwt.RegisteredClaims
}

// User projects the claims onto the shell user.
func (c *SessionClaims) User() *ShellUser {
	if c == nil {
		return nil
	}
	return &ShellUser{Name: c.Name, Email: c.Email, AvatarURL: c.AvatarURL, Role: c.Role}
}
