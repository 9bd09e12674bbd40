package service

import (
	"strings"
	"unicode"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

var roleLabels = map[models.Role]string{
	models.RoleStudent:  "Alumno",
	models.RoleEducator: "Educador",
	models.RoleAdmin:    "Administrador",
}

// RoleLabel is the Spanish role name; unknown roles read as student.
func RoleLabel(r models.Role) string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return roleLabels[models.RoleStudent]
}

// Initials takes the first letter of up to two words, upper cased.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		if n == 2 {
			break
		}
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
		n++
	}
	return b.String()
}

func nav(label, href, icon string, children ...models.NavItem) models.NavItem {
	return models.NavItem{Label: label, Href: href, Icon: icon, Children: children}
}

var shellNavigation = map[models.ShellVariant][]models.NavItem{
	models.ShellPublic: {
		nav("Inicio", "/", ""),
		nav("Cursos", "/cursos", ""),
		nav("Sobre WSET", "/wset", ""),
		nav("Contacto", "/contacto", ""),
	},
	models.ShellStudent: {
		nav("Mis Cursos", "/student", "book-open"),
		nav("Continuar Aprendiendo", "/student/continue", "graduation-cap"),
		nav("Calendario", "/student/calendar", "calendar"),
		nav("Mi Progreso", "/student/progress", "trending-up"),
		nav("Mis Datos", "/student/profile", "user"),
	},
	models.ShellEducator: {
		nav("Dashboard", "/educator", "layout-dashboard"),
		nav("Mis Cursos", "/educator/courses", "book-open"),
		nav("Crear Curso", "/educator/courses/new", "plus-circle"),
		nav("Alumnos", "/educator/students", "users"),
		nav("Comunicaciones", "/educator/communications", "mail"),
		nav("Estadísticas", "/educator/stats", "bar-chart-3"),
	},
	models.ShellAdmin: {
		nav("Dashboard", "/admin", "layout-dashboard"),
		nav("Cursos", "/admin/courses", "book-open",
			nav("Todos los Cursos", "/admin/courses", ""),
			nav("Crear Curso", "/admin/courses/new", ""),
		),
		nav("Usuarios", "/admin/users", "users",
			nav("Alumnos", "/admin/users/students", ""),
			nav("Educadores", "/admin/users/educators", ""),
			nav("Administradores", "/admin/users/admins", ""),
		),
		nav("Órdenes", "/admin/orders", "credit-card"),
		nav("Cupones", "/admin/coupons", "ticket"),
		nav("Datos Bancarios", "/admin/bank-data", "landmark"),
		nav("Comunicaciones", "/admin/communications", "mail",
			nav("Templates", "/admin/communications/templates", ""),
			nav("Historial", "/admin/communications/history", ""),
		),
		nav("Configuración", "/admin/settings", "settings"),
	},
}

// ParseShellVariant falls back to the public shell.
func ParseShellVariant(raw string) models.ShellVariant {
	v := models.ShellVariant(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := shellNavigation[v]; ok {
		return v
	}
	return models.ShellPublic
}

// Navigation returns a fresh copy of the variant's items with the entry for path
// marked active. A parent is active when one of its children is. An empty path
// activates the variant's first item.
func Navigation(variant models.ShellVariant, path string) []models.NavItem {
	items := cloneNav(shellNavigation[ParseShellVariant(string(variant))])
	if path == "" && len(items) > 0 {
		path = items[0].Href
	}
	for i := range items {
		markActive(&items[i], path)
	}
	return items
}

func cloneNav(items []models.NavItem) []models.NavItem {
	if items == nil {
		return nil
	}
	out := make([]models.NavItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Children = cloneNav(item.Children)
	}
	return out
}

func markActive(item *models.NavItem, path string) bool {
	childActive := false
	for i := range item.Children {
		if markActive(&item.Children[i], path) {
			childActive = true
		}
	}
	item.IsActive = item.Href == path || childActive
	return item.IsActive
}

// BuildShell assembles navigation and, when present, the current user.
func BuildShell(variant models.ShellVariant, path string, user *models.ShellUser) dto.ShellView {
	v := ParseShellVariant(string(variant))
	view := dto.ShellView{Variant: v, Navigation: Navigation(v, path)}
	if user != nil {
		view.User = &dto.ShellUserView{ShellUser: *user, Initials: Initials(user.Name), RoleLabel: RoleLabel(user.Role)}
	}
	return view
}
