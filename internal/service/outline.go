package service

import (
	"sort"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// EditorTabs lists the editor sections; content is only offered for online courses.
func EditorTabs(m models.Modality) []dto.EditorTab {
	tabs := []dto.EditorTab{
		{ID: "info", Label: "Info Básica"},
		{ID: "pricing", Label: "Precios"},
		{ID: "settings", Label: "Configuración"},
	}
	if m == models.ModalityOnline {
		tabs = append(tabs, dto.EditorTab{ID: "content", Label: "Contenido"})
	}
	return tabs
}

// BuildCourseOutline orders modules by position and attaches each module's lessons,
// also ordered by position. Lessons of unknown modules are dropped.
func BuildCourseOutline(course models.EducatorCourse, modules []models.CourseModule, lessons []models.CourseLesson) dto.CourseOutline {
	sorted := append([]models.CourseModule(nil), modules...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	byModule := make(map[string][]models.CourseLesson, len(sorted))
	for _, l := range lessons {
		byModule[l.ModuleID] = append(byModule[l.ModuleID], l)
	}

	outline := dto.CourseOutline{
		Course:     course,
		PriceLabel: PriceLabel(course),
		Tabs:       EditorTabs(course.Modality),
		Modules:    make([]dto.OutlineModule, 0, len(sorted)),
	}
	for _, m := range sorted {
		ls := byModule[m.ID]
		sort.SliceStable(ls, func(i, j int) bool { return ls[i].Order < ls[j].Order })
		if ls == nil {
			ls = []models.CourseLesson{}
		}
		for _, l := range ls {
			outline.TotalDuration += l.VideoDuration
		}
		outline.TotalLessons += len(ls)
		outline.Modules = append(outline.Modules, dto.OutlineModule{CourseModule: m, Lessons: ls})
	}
	return outline
}
