package service

import (
	"sort"
	"strings"
	"sync"

	"github.com/osteele/liquid"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
)

// FilterTemplates matches search on name or subject and orders by usage, most used first.
func FilterTemplates(templates []models.EmailTemplate, search string) []models.EmailTemplate {
	query := strings.ToLower(search)
	out := make([]models.EmailTemplate, 0, len(templates))
	for _, t := range templates {
		if query != "" && !containsFold(t.Name, query) && !containsFold(t.Subject, query) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UsageCount > out[j].UsageCount
	})
	return out
}

// Sample values used when previewing a template.
const (
	PreviewStudentName = "Juan"
	PreviewCourseTitle = "[Curso]"
)

// TemplateRenderer renders email templates with Liquid.
type TemplateRenderer struct {
	engine *liquid.Engine
	cache  sync.Map // source -> *liquid.Template
}

// NewTemplateRenderer constructs a renderer.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{engine: liquid.NewEngine()}
}

func (r *TemplateRenderer) render(source string, bindings liquid.Bindings) (string, error) {
	if cached, ok := r.cache.Load(source); ok {
		return cached.(*liquid.Template).RenderString(bindings)
	}
	tpl, err := r.engine.ParseString(source)
	if err != nil {
		return "", err
	}
	r.cache.Store(source, tpl)
	return tpl.RenderString(bindings)
}

// Preview renders t with the sample student name and courseTitle. An empty title
// renders as the "[Curso]" placeholder. Declared variables without a sample value are
// kept as literal placeholders.
func (r *TemplateRenderer) Preview(t models.EmailTemplate, courseTitle string) (*dto.TemplatePreview, error) {
	if courseTitle == "" {
		courseTitle = PreviewCourseTitle
	}
	bindings := liquid.Bindings{}
	for _, v := range t.Variables {
		bindings[v] = "{{" + v + "}}"
	}
	bindings["nombre"] = PreviewStudentName
	bindings["curso"] = courseTitle

	subject, err := r.render(t.Subject, bindings)
	if err != nil {
		return nil, appErrors.Invalid(err, "template subject is not valid")
	}
	body, err := r.render(t.Body, bindings)
	if err != nil {
		return nil, appErrors.Invalid(err, "template body is not valid")
	}
	return &dto.TemplatePreview{TemplateID: t.ID, Subject: subject, Body: body}, nil
}
