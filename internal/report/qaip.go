package report

import (
	"fmt"
	"strings"

	"ia-admin/internal/models"
)

type checklistItem struct {
	label string
	flag  func(*models.QAChecklist) *bool
}

var qaCategories = []checklistItem{
	{"Clarity", func(c *models.QAChecklist) *bool { return &c.CategoryClarity }},
	{"Completeness", func(c *models.QAChecklist) *bool { return &c.CategoryCompleteness }},
	{"Consistency", func(c *models.QAChecklist) *bool { return &c.CategoryConsistency }},
	{"Others", func(c *models.QAChecklist) *bool { return &c.CategoryOthers }},
}

var qaStages = []checklistItem{
	{"Planning", func(c *models.QAChecklist) *bool { return &c.StagePlanning }},
	{"Fieldwork", func(c *models.QAChecklist) *bool { return &c.StageFieldwork }},
	{"Reporting", func(c *models.QAChecklist) *bool { return &c.StageReporting }},
	{"Post Audit Activity", func(c *models.QAChecklist) *bool { return &c.StagePostAuditAct }},
}

var qaDeliverables = []checklistItem{
	{"1a", func(c *models.QAChecklist) *bool { return &c.Deliverable1a }},
	{"1b", func(c *models.QAChecklist) *bool { return &c.Deliverable1b }},
	{"1c", func(c *models.QAChecklist) *bool { return &c.Deliverable1c }},
	{"1d", func(c *models.QAChecklist) *bool { return &c.Deliverable1d }},
	{"1e", func(c *models.QAChecklist) *bool { return &c.Deliverable1e }},
	{"1f", func(c *models.QAChecklist) *bool { return &c.Deliverable1f }},
	{"1g", func(c *models.QAChecklist) *bool { return &c.Deliverable1g }},
	{"1h", func(c *models.QAChecklist) *bool { return &c.Deliverable1h }},
	{"1i", func(c *models.QAChecklist) *bool { return &c.Deliverable1i }},
	{"1j", func(c *models.QAChecklist) *bool { return &c.Deliverable1j }},
	{"1k", func(c *models.QAChecklist) *bool { return &c.Deliverable1k }},
	{"2", func(c *models.QAChecklist) *bool { return &c.Deliverable2 }},
	{"3", func(c *models.QAChecklist) *bool { return &c.Deliverable3 }},
	{"4", func(c *models.QAChecklist) *bool { return &c.Deliverable4 }},
	{"5", func(c *models.QAChecklist) *bool { return &c.Deliverable5 }},
	{"6", func(c *models.QAChecklist) *bool { return &c.Deliverable6 }},
	{"7", func(c *models.QAChecklist) *bool { return &c.Deliverable7 }},
}

// ChecklistError reports a label that does not name a checklist item.
type ChecklistError struct {
	Group string
	Label string
}

func (e *ChecklistError) Error() string {
	return fmt.Sprintf("Given %s (%s) is not allowed", e.Group, e.Label)
}

func labels(c models.QAChecklist, items []checklistItem) []string {
	var out []string
	for _, it := range items {
		if *it.flag(&c) {
			out = append(out, it.label)
		}
	}
	return out
}

func QACategories(c models.QAChecklist) []string   { return labels(c, qaCategories) }
func QAStages(c models.QAChecklist) []string       { return labels(c, qaStages) }
func QADeliverables(c models.QAChecklist) []string { return labels(c, qaDeliverables) }

// JoinLabels renders labels the way the QA table displays them.
func JoinLabels(l []string) string { return strings.Join(l, ", ") }

// setLabels clears the group and sets the flags named in the comma separated
// list. Labels match case-insensitively.
func setLabels(c *models.QAChecklist, group string, items []checklistItem, list string) error {
	flags := make([]bool, len(items))
	for _, raw := range strings.Split(list, ",") {
		label := strings.TrimSpace(raw)
		if label == "" {
			continue
		}
		found := false
		for i, it := range items {
			if strings.EqualFold(it.label, label) {
				flags[i] = true
				found = true
				break
			}
		}
		if !found {
			return &ChecklistError{Group: group, Label: label}
		}
	}
	for i, it := range items {
		*it.flag(c) = flags[i]
	}
	return nil
}

func SetQACategories(c *models.QAChecklist, list string) error {
	return setLabels(c, "category", qaCategories, list)
}

func SetQAStages(c *models.QAChecklist, list string) error {
	return setLabels(c, "stage", qaStages, list)
}

func SetQADeliverables(c *models.QAChecklist, list string) error {
	return setLabels(c, "deliverable", qaDeliverables, list)
}
