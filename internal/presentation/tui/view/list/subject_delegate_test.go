package listview

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/crettaz/cartable/internal/presentation/tui/presenter"
)

func TestSubjectDelegate_Render(t *testing.T) {
	d := NewSubjectDelegate(lipgloss.Color("244"))

	tests := []struct {
		name     string
		item     list.Item
		mdlIndex int
		contains string
	}{
		{
			name:     "All subjects entry",
			item:     &presenter.Subject{},
			mdlIndex: 1,
			contains: presenter.AllSubjectsLabel,
		},
		{
			name:     "Named subject",
			item:     &presenter.Subject{Name: "Maths"},
			mdlIndex: 1,
			contains: "Maths",
		},
		{
			name:     "Selected subject",
			item:     &presenter.Subject{Name: "Allemand"},
			mdlIndex: 0,
			contains: "Allemand",
		},
		{
			name:     "Invalid item writes nothing",
			item:     nil,
			mdlIndex: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := list.New([]list.Item{}, d, 40, 10)
			l.Select(tc.mdlIndex)

			d.Render(buf, l, 0, tc.item)

			if tc.contains == "" {
				if buf.Len() > 0 {
					t.Errorf("Expected empty output, got %q", buf.String())
				}
				return
			}
			if !bytes.Contains(buf.Bytes(), []byte(tc.contains)) {
				t.Errorf("Expected output to contain %q, got %q", tc.contains, buf.String())
			}
		})
	}
}
