package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

func activeHrefs(items []models.NavItem) []string {
	var hrefs []string
	for _, item := range items {
		if item.IsActive {
			hrefs = append(hrefs, item.Href)
		}
		hrefs = append(hrefs, activeHrefs(item.Children)...)
	}
	return hrefs
}

func TestRoleLabelAndInitials(t *testing.T) {
	assert.Equal(t, "Educador", RoleLabel(models.RoleEducator))
	assert.Equal(t, "Alumno", RoleLabel(models.Role("guest")))
	assert.Equal(t, "LM", Initials("lucía  martínez pereira"))
	assert.Equal(t, "Á", Initials("Álvaro"))
	assert.Equal(t, "", Initials("   "))
}

func TestParseShellVariant(t *testing.T) {
	assert.Equal(t, models.ShellEducator, ParseShellVariant(" Educator "))
	assert.Equal(t, models.ShellPublic, ParseShellVariant("backoffice"))
}

func TestNavigationMarksActive(t *testing.T) {
	items := Navigation(models.ShellStudent, "/student/profile")
	assert.Equal(t, []string{"/student/profile"}, activeHrefs(items))

	items = Navigation(models.ShellEducator, "")
	assert.Equal(t, []string{"/educator"}, activeHrefs(items))

	items = Navigation(models.ShellAdmin, "/admin/users/educators")
	assert.Equal(t, []string{"/admin/users", "/admin/users/educators"}, activeHrefs(items))
}

func TestNavigationReturnsFreshCopies(t *testing.T) {
	first := Navigation(models.ShellAdmin, "/admin/communications/templates")
	first[0].Label = "changed"
	first[2].Children[0].IsActive = true

	second := Navigation(models.ShellAdmin, "/admin")
	assert.Equal(t, "Dashboard", second[0].Label)
	assert.Equal(t, []string{"/admin"}, activeHrefs(second))
}

func TestBuildShell(t *testing.T) {
	view := BuildShell(models.ShellVariant("unknown"), "/cursos", nil)
	assert.Equal(t, models.ShellPublic, view.Variant)
	assert.Nil(t, view.User)
	assert.Equal(t, []string{"/cursos"}, activeHrefs(view.Navigation))

	view = BuildShell(models.ShellEducator, "/educator/courses", &models.ShellUser{Name: "Lucía Martínez", Email: "lucia@tinta.uy", Role: models.RoleEducator})
	require.NotNil(t, view.User)
	assert.Equal(t, "LM", view.User.Initials)
	assert.Equal(t, "Educador", view.User.RoleLabel)
	assert.Equal(t, "lucia@tinta.uy", view.User.Email)
}
