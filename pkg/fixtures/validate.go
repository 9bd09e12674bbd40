package fixtures

import (
	"fmt"
	"strings"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// Problem is a single integrity violation found in a bundle.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string {
	return p.Path + ": " + p.Message
}

// ValidationError lists every problem found by Validate.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		lines = append(lines, p.String())
	}
	return fmt.Sprintf("%d fixture problem(s):\n%s", len(e.Problems), strings.Join(lines, "\n"))
}

type checker struct {
	problems []Problem
}

func (c *checker) add(path, format string, args ...interface{}) {
	c.problems = append(c.problems, Problem{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) unique(path, kind string, ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			c.add(fmt.Sprintf("%s[%d]", path, i), "%s id is empty", kind)
			continue
		}
		if _, dup := set[id]; dup {
			c.add(fmt.Sprintf("%s[%d]", path, i), "duplicate %s id %q", kind, id)
		}
		set[id] = struct{}{}
	}
	return set
}

func (c *checker) oneOf(path, field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	c.add(path, "%s %q not in %v", field, value, allowed)
}

// Validate checks identity uniqueness, enum values, ranges and references.
func Validate(b *Bundle) error {
	c := &checker{}

	tagIDs := make([]string, 0, len(b.Catalog.Tags))
	for _, t := range b.Catalog.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	tags := c.unique("catalog.tags", "tag", tagIDs)

	educatorIDs := make([]string, 0, len(b.Catalog.Educators))
	for _, e := range b.Catalog.Educators {
		educatorIDs = append(educatorIDs, e.ID)
	}
	educators := c.unique("catalog.educators", "educator", educatorIDs)

	courseIDs := make([]string, 0)
	lists := []struct {
		name    string
		courses []models.CatalogCourse
	}{{"catalog.upcoming", b.Catalog.Upcoming}, {"catalog.past", b.Catalog.Past}}
	for _, list := range lists {
		for i, course := range list.courses {
			path := fmt.Sprintf("%s[%d]", list.name, i)
			courseIDs = append(courseIDs, course.ID)
			c.oneOf(path, "type", string(course.Type), "wset", "taller", "cata", "curso")
			c.oneOf(path, "modality", string(course.Modality), "presencial", "online")
			c.oneOf(path, "status", string(course.Status), "announced", "enrolling", "full", "in_progress", "finished", "available")
			if _, ok := educators[course.EducatorID]; !ok {
				c.add(path, "unknown educator %q", course.EducatorID)
			}
			for _, tagID := range course.TagIDs {
				if _, ok := tags[tagID]; !ok {
					c.add(path, "unknown tag %q", tagID)
				}
			}
			if course.PriceUSD < 0 {
				c.add(path, "negative price")
			}
		}
	}
	c.unique("catalog.courses", "course", courseIDs)

	workspaceIDs := make([]string, 0, len(b.Educators))
	for i, ws := range b.Educators {
		workspaceIDs = append(workspaceIDs, ws.Profile.ID)
		c.validateWorkspace(fmt.Sprintf("educators[%d]", i), ws)
	}
	c.unique("educators", "educator", workspaceIDs)

	studentIDs := make([]string, 0, len(b.Students))
	for i, acc := range b.Students {
		studentIDs = append(studentIDs, acc.Profile.ID)
		c.validateAccount(fmt.Sprintf("students[%d]", i), acc)
	}
	c.unique("students", "student", studentIDs)

	if len(c.problems) > 0 {
		return &ValidationError{Problems: c.problems}
	}
	return nil
}

func (c *checker) validateWorkspace(path string, ws models.EducatorWorkspace) {
	ids := make([]string, 0, len(ws.Courses))
	for _, course := range ws.Courses {
		ids = append(ids, course.ID)
	}
	courses := c.unique(path+".courses", "course", ids)
	for i, course := range ws.Courses {
		p := fmt.Sprintf("%s.courses[%d]", path, i)
		c.oneOf(p, "modality", string(course.Modality), "online", "presencial")
		c.oneOf(p, "status", string(course.Status), "draft", "published", "finished")
	}

	moduleIDs := make([]string, 0, len(ws.Modules))
	for i, m := range ws.Modules {
		moduleIDs = append(moduleIDs, m.ID)
		if _, ok := courses[m.CourseID]; !ok {
			c.add(fmt.Sprintf("%s.modules[%d]", path, i), "unknown course %q", m.CourseID)
		}
	}
	modules := c.unique(path+".modules", "module", moduleIDs)
	for i, l := range ws.Lessons {
		if _, ok := modules[l.ModuleID]; !ok {
			c.add(fmt.Sprintf("%s.lessons[%d]", path, i), "unknown module %q", l.ModuleID)
		}
	}

	for i, s := range ws.Students {
		p := fmt.Sprintf("%s.students[%d]", path, i)
		if _, ok := courses[s.CourseID]; !ok {
			c.add(p, "unknown course %q", s.CourseID)
		}
		if s.Progress < 0 || s.Progress > 100 {
			c.add(p, "progress %d out of range 0..100", s.Progress)
		}
	}

	templateIDs := make([]string, 0, len(ws.Templates))
	for _, t := range ws.Templates {
		templateIDs = append(templateIDs, t.ID)
	}
	templates := c.unique(path+".templates", "template", templateIDs)
	for i, camp := range ws.Campaigns {
		p := fmt.Sprintf("%s.campaigns[%d]", path, i)
		c.oneOf(p, "status", string(camp.Status), "draft", "scheduled", "sent")
		if _, ok := templates[camp.TemplateID]; !ok {
			c.add(p, "unknown template %q", camp.TemplateID)
		}
	}
}

func (c *checker) validateAccount(path string, acc models.LearnerAccount) {
	for i, course := range acc.Courses {
		p := fmt.Sprintf("%s.courses[%d]", path, i)
		c.oneOf(p, "courseType", string(course.CourseType), "online", "in_person")
		c.oneOf(p, "status", string(course.Status), "in_progress", "completed", "upcoming")
		if course.Progress != nil && (course.Progress.Percentage < 0 || course.Progress.Percentage > 100) {
			c.add(p, "progress %d out of range 0..100", course.Progress.Percentage)
		}
	}
	for i, o := range acc.Orders {
		p := fmt.Sprintf("%s.orders[%d]", path, i)
		c.oneOf(p, "currency", string(o.Currency), "USD", "UYU")
		c.oneOf(p, "status", string(o.Status), "created", "pending", "payment_sent", "paid", "rejected", "refunded", "cancelled")
		c.oneOf(p, "paymentMethod", string(o.PaymentMethod), "mercadopago", "transfer", "free")
	}
}
