package presenter

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/crettaz/cartable/internal/application/usecase"
)

// AllSubjectsLabel is the first entry of the subject selector.
const AllSubjectsLabel = "Toutes les matières"

// Entry is a view model for agenda list rows: either a date separator or one
// agenda item carrying its position in the built view.
type Entry struct {
	TitleText string
	InfoText  string
	DueText   string
	Duration  string
	BadgeText string
	ToneName  string
	SepLabel  string
	ViewIndex int
	Today     bool
	Tomorrow  bool
	Dimmed    bool
}

// FilterValue implements list.Item.
func (e *Entry) FilterValue() string { return e.TitleText }

// Title returns the row title.
func (e *Entry) Title() string { return e.TitleText }

// IsSeparator reports whether the row is a date heading.
func (e *Entry) IsSeparator() bool { return e.SepLabel != "" }

// BuildAgendaListItems builds list rows for a built view, inserting a
// separator row whenever the raw date label changes.
func BuildAgendaListItems(view usecase.View) []list.Item {
	rows := make([]list.Item, 0, 2*len(view.Entries))
	for i, entry := range view.Entries {
		if entry.Separator != "" {
			rows = append(rows, &Entry{SepLabel: entry.Separator, ViewIndex: -1})
		}

		item := entry.Item
		info := ""
		if ShowInfo(item) {
			info = item.Info
		}
		pulse := AllowPulse(item)
		rows = append(rows, &Entry{
			TitleText: item.Title,
			InfoText:  info,
			DueText:   item.Due,
			Duration:  item.Duration,
			BadgeText: item.Category.Label(),
			ToneName:  ToneFor(item),
			ViewIndex: i,
			Today:     item.IsToday && pulse,
			Tomorrow:  !item.IsToday && item.IsTomorrow && pulse,
			Dimmed:    !item.Interactive(),
		})
	}
	return rows
}

// ApplyAgendaList replaces the agenda list content with the given view.
func ApplyAgendaList(model *list.Model, view usecase.View) {
	model.SetItems(BuildAgendaListItems(view))
	if model.Index() >= len(model.Items()) {
		model.Select(0)
	}
}

// Subject is a view model for the subject selector sidebar.
type Subject struct {
	Name string // empty means "all subjects"
}

// FilterValue implements list.Item.
func (s *Subject) FilterValue() string { return s.Title() }

// Title returns the display name.
func (s *Subject) Title() string {
	if s.Name == "" {
		return AllSubjectsLabel
	}
	return s.Name
}

// BuildSubjectListItems builds the subject selector rows: the all-subjects
// entry first, then the collated subject names.
func BuildSubjectListItems(subjects []string) []list.Item {
	items := make([]list.Item, len(subjects)+1)
	items[0] = &Subject{}
	for i, name := range subjects {
		items[i+1] = &Subject{Name: name}
	}
	return items
}

// ApplySubjectList replaces the subject list content and keeps the current
// selection when the subject is still present.
func ApplySubjectList(model *list.Model, subjects []string, selected string) {
	model.SetItems(BuildSubjectListItems(subjects))
	model.Select(0)
	if selected == "" {
		return
	}
	for i, name := range subjects {
		if name == selected {
			model.Select(i + 1)
			return
		}
	}
}
