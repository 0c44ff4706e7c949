package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/internal/client"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// entityRow is one line of an entity list.
type entityRow struct {
	ID     string
	Name   string
	Detail string
	Entity any
}

func resourceTitle(res adapter.Resource) string {
	switch res {
	case adapter.ResourceStudy:
		return "Studies"
	case adapter.ResourceForm:
		return "Forms"
	case adapter.ResourceField:
		return "Fields"
	case adapter.ResourceEnum:
		return "Enums"
	case adapter.ResourceFoodEnum:
		return "Food screens"
	case adapter.ResourceFoodItem:
		return "Food items"
	case adapter.ResourceFoodImage:
		return "Food images"
	}
	return string(res)
}

func localized(l *models.LocalizedStr) string {
	if l == nil {
		return ""
	}
	return l.Text(models.DefaultLanguage)
}

func rowsFor(res adapter.Resource, b models.SchemaBundle) []entityRow {
	var rows []entityRow
	switch res {
	case adapter.ResourceStudy:
		for _, s := range b.Studies {
			rows = append(rows, entityRow{ID: s.ID, Name: s.Title.Text(models.DefaultLanguage),
				Detail: fmt.Sprintf("%d days", s.DefaultRuntimeDays), Entity: s})
		}
	case adapter.ResourceForm:
		for _, f := range b.Forms {
			rows = append(rows, entityRow{ID: f.ID, Name: f.Identifier,
				Detail: fmt.Sprintf("%d fields", len(f.Fields)), Entity: f})
		}
	case adapter.ResourceField:
		for _, f := range b.Fields {
			rows = append(rows, entityRow{ID: f.ID, Name: f.Identifier,
				Detail: fieldTypeText(f), Entity: f})
		}
	case adapter.ResourceEnum:
		for _, e := range b.Enums {
			rows = append(rows, entityRow{ID: e.ID, Name: e.Identifier,
				Detail: fmt.Sprintf("%d items", len(e.Items)), Entity: e})
		}
	case adapter.ResourceFoodEnum:
		for _, fe := range b.FoodEnums {
			rows = append(rows, entityRow{ID: fe.ID, Name: fe.Identifier,
				Detail: fmt.Sprintf("%d items, %d transitions", len(fe.ItemIDs), len(fe.Transitions)), Entity: fe})
		}
	case adapter.ResourceFoodItem:
		for _, it := range b.FoodItems {
			detail := it.Label.Text(models.DefaultLanguage)
			if it.IsFoodItem {
				detail += " (food)"
			}
			rows = append(rows, entityRow{ID: it.ID, Name: it.Identifier, Detail: detail, Entity: it})
		}
	case adapter.ResourceFoodImage:
		for _, img := range b.FoodImages {
			rows = append(rows, entityRow{ID: img.ID, Name: valueOrDash(img.Filename),
				Detail: localized(img.Label), Entity: img})
		}
	}
	return rows
}

func fieldTypeText(f models.InputField) string {
	t := string(f.Datatype)
	if f.ElementsType != nil {
		t += " of " + string(*f.ElementsType)
	}
	if ref := f.ReferenceID(); ref != "" {
		t += " -> " + ref
	}
	return t
}

// badge summarizes a local validation result. Entities without a result,
// such as food images, show nothing.
func badge(res schema.Result, ok bool) string {
	switch {
	case !ok:
		return "  "
	case len(res.Errors) > 0:
		return badgeErrorStyle.Render(fmt.Sprintf("x%d", len(res.Errors)))
	case len(res.Warnings) > 0:
		return badgeWarningStyle.Render(fmt.Sprintf("!%d", len(res.Warnings)))
	}
	return badgeOKStyle.Render("ok")
}

// invalidCount counts the entities of res whose local validation failed.
func invalidCount(res adapter.Resource, snap client.MirrorSnapshot) int {
	n := 0
	for _, row := range rowsFor(res, snap.Bundle) {
		if r, ok := snap.Results[row.ID]; ok && !r.OK() {
			n++
		}
	}
	return n
}

func renderIssues(res schema.Result) string {
	if len(res.Errors) == 0 && len(res.Warnings) == 0 {
		return badgeOKStyle.Render("No issues")
	}

	var b strings.Builder
	for _, issue := range res.Errors {
		b.WriteString(badgeErrorStyle.Render("error  "))
		b.WriteString(issue.String())
		b.WriteString("\n")
	}
	for _, issue := range res.Warnings {
		b.WriteString(badgeWarningStyle.Render("warning "))
		b.WriteString(issue.String())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// nameOf resolves an entity id to a readable name using the cached schema.
func nameOf(snap client.MirrorSnapshot, id string) string {
	if !snap.Loaded() {
		return id
	}
	if fe, ok := snap.Catalog.FoodEnums[id]; ok && fe.Identifier != "" {
		return fe.Identifier + " (" + id + ")"
	}
	if f, ok := snap.Catalog.Forms[id]; ok && f.Identifier != "" {
		return f.Identifier + " (" + id + ")"
	}
	if f, ok := snap.Catalog.Fields[id]; ok && f.Identifier != "" {
		return f.Identifier + " (" + id + ")"
	}
	return id
}

// renderPermissions lists the access of every configurable role to f.
func renderPermissions(f models.InputField) string {
	lines := make([]string, 0, len(models.ConfigurableRoles))
	for _, role := range models.ConfigurableRoles {
		access := "none"
		if p, ok := f.PermissionFor(role); ok {
			access = strings.ToLower(string(p))
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, access))
	}
	return strings.Join(lines, "\n")
}
