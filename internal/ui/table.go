package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aidanlsb/rolo/internal/model"
)

// Alignment represents column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ColumnDef defines a column in a ListTable.
type ColumnDef struct {
	Name       string         // Header text
	WidthRatio float64        // Proportion of flexible width, 0 means fixed width
	MinWidth   int            // Minimum width in characters
	MaxWidth   int            // Maximum width (0 = no limit)
	Align      Alignment      // Text alignment
	Style      lipgloss.Style // Style to apply to cells in this column
	Accent     bool           // Use the configured accent instead of Style
}

// cellStyle resolves the column style at render time so a theme configured
// after package init still applies.
func (c ColumnDef) cellStyle() lipgloss.Style {
	if c.Accent {
		return Accent
	}
	return c.Style
}

// Standard layouts.
var (
	colNum = ColumnDef{Name: "#", MinWidth: 4, Align: AlignRight, Style: Muted}

	PersonLayout = []ColumnDef{
		colNum,
		{Name: "Name", WidthRatio: 0.22, MinWidth: 12, MaxWidth: 32, Accent: true},
		{Name: "Phone", MinWidth: 12},
		{Name: "Email", WidthRatio: 0.22, MinWidth: 14, MaxWidth: 36},
		{Name: "Address", WidthRatio: 0.3, MinWidth: 14, MaxWidth: 48},
		{Name: "Priority", MinWidth: 8, Style: Muted},
		{Name: "Tags", WidthRatio: 0.16, MinWidth: 8, MaxWidth: 30, Style: Muted},
	}

	AppointmentLayout = []ColumnDef{
		colNum,
		{Name: "With", WidthRatio: 0.3, MinWidth: 12, MaxWidth: 32, Accent: true},
		{Name: "From", MinWidth: 16},
		{Name: "To", MinWidth: 16},
		{Name: "Description", WidthRatio: 0.7, MinWidth: 12, Style: Muted},
	}
)

// ListTable renders an indexed list with lipgloss/table.
type ListTable struct {
	display *DisplayContext
	columns []ColumnDef
	rows    [][]string
}

// NewListTable creates a table for the given layout.
func NewListTable(display *DisplayContext, columns []ColumnDef) *ListTable {
	return &ListTable{display: display, columns: columns}
}

// AddRow adds a row. Missing cells are left blank.
func (t *ListTable) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows added.
func (t *ListTable) Len() int { return len(t.rows) }

// calculateWidths gives fixed columns their minimum and splits the rest of
// the terminal width by ratio.
func (t *ListTable) calculateWidths() []int {
	const columnPadding = 2
	widths := make([]int, len(t.columns))

	var totalRatio float64
	fixed := 0
	for i, col := range t.columns {
		if col.WidthRatio == 0 {
			widths[i] = col.MinWidth
			fixed += widths[i]
			continue
		}
		totalRatio += col.WidthRatio
	}

	available := t.display.AvailableWidth(2) - fixed - (len(t.columns)-1)*columnPadding
	if available < 0 {
		available = 0
	}
	for i, col := range t.columns {
		if col.WidthRatio == 0 {
			continue
		}
		w := int(float64(available) * col.WidthRatio / totalRatio)
		if w < col.MinWidth {
			w = col.MinWidth
		}
		if col.MaxWidth > 0 && w > col.MaxWidth {
			w = col.MaxWidth
		}
		widths[i] = w
	}
	return widths
}

// Render returns the table, or "" when it has no rows.
func (t *ListTable) Render() string {
	if len(t.rows) == 0 {
		return ""
	}
	widths := t.calculateWidths()

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Name
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = TruncateWithEllipsis(cell, widths[j])
		}
	}

	tbl := table.New().
		Border(lipgloss.Border{Top: "─", Bottom: "─", Middle: "─"}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderRow(false).
		BorderColumn(false).
		BorderStyle(Muted).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col >= len(t.columns) {
				return lipgloss.NewStyle()
			}
			def := t.columns[col]
			style := def.cellStyle()
			if row == table.HeaderRow {
				style = Bold
			}
			if def.Align == AlignRight {
				style = style.Align(lipgloss.Right)
			} else {
				style = style.Align(lipgloss.Left)
			}
			// Width includes padding.
			if col < len(t.columns)-1 {
				return style.PaddingRight(2).Width(widths[col] + 2)
			}
			return style.Width(widths[col])
		}).
		Rows(rows...)

	return tbl.Render()
}

// PersonTable renders the displayed person list.
func PersonTable(display *DisplayContext, persons []model.Person) string {
	t := NewListTable(display, PersonLayout)
	for i, p := range persons {
		priority := ""
		if p.Priority() != model.PriorityNone {
			priority = strings.ToLower(p.Priority().String())
		}
		t.AddRow(
			fmt.Sprintf("%d.", i+1),
			string(p.Name()),
			string(p.Phone()),
			string(p.Email()),
			string(p.Address()),
			priority,
			formatTags(p.Tags()),
		)
	}
	return t.Render()
}

// AppointmentTable renders the displayed appointment list.
func AppointmentTable(display *DisplayContext, appts []model.Appointment) string {
	t := NewListTable(display, AppointmentLayout)
	for i, a := range appts {
		t.AddRow(
			fmt.Sprintf("%d.", i+1),
			string(a.Person),
			a.Start.Format(model.AppointmentTimeLayout),
			a.End.Format(model.AppointmentTimeLayout),
			a.Description,
		)
	}
	return t.Render()
}

func formatTags(tags []model.Tag) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = string(tag)
	}
	return strings.Join(parts, ", ")
}

// TruncateWithEllipsis truncates a string to maxLen runes, adding an
// ellipsis if needed. It tries to break at word boundaries.
func TruncateWithEllipsis(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	truncated := string(r[:maxLen-3])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}
