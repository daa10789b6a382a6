// Package render draws month grids for the terminal. All presentation state
// lives in State and is passed in on every call.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/model"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 5

type State struct {
	Year  int
	Month time.Month
	// list namedays below the grid
	ShowNameDays bool
	// highlighted day, zero for none
	Selected time.Time
}

type Renderer struct {
	header   lipgloss.Style
	plain    lipgloss.Style
	weekday  lipgloss.Style
	weekend  lipgloss.Style
	holiday  lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	waste    map[model.WasteType]lipgloss.Style
}

// Create a renderer whose color profile matches w
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		header:   r.NewStyle().Bold(true).Width(7*cellWidth + 6).Align(lipgloss.Center),
		plain:    r.NewStyle(),
		weekday:  r.NewStyle().Bold(true),
		weekend:  r.NewStyle().Foreground(lipgloss.Color("#c92a2a")),
		holiday:  r.NewStyle().Foreground(lipgloss.Color("#c92a2a")).Bold(true),
		selected: r.NewStyle().Reverse(true),
		muted:    r.NewStyle().Faint(true),
		waste: map[model.WasteType]lipgloss.Style{
			model.WasteSelective: r.NewStyle().Foreground(lipgloss.Color("#f59f00")),
			model.WasteGreen:     r.NewStyle().Foreground(lipgloss.Color("#2f9e44")),
			model.WasteMixed:     r.NewStyle().Foreground(lipgloss.Color("#868e96")),
			model.WasteGlass:     r.NewStyle().Foreground(lipgloss.Color("#1971c2")),
		},
	}
}

// One letter marker of a waste type in the grid
func Marker(t model.WasteType) string {
	switch t {
	case model.WasteSelective:
		return "S"
	case model.WasteGreen:
		return "Z"
	case model.WasteMixed:
		return "V"
	case model.WasteGlass:
		return "Ü"
	default:
		return "?"
	}
}

// Draw the month of state with the events of data below it
func (r *Renderer) Month(state State, data model.CalendarData) string {
	return r.month(state, calendar.MonthGrid(state.Year, state.Month), data)
}

// Draw all twelve months of state.Year, each followed by its events
func (r *Renderer) Year(state State, data model.CalendarData) string {
	months := make([]string, 0, 12)
	for i, cells := range calendar.YearGrid(state.Year) {
		state.Month = time.Month(i + 1)
		months = append(months, r.month(state, cells, data))
	}
	return strings.Join(months, "\n")
}

func (r *Renderer) month(state State, cells []*time.Time, data model.CalendarData) string {
	var sb strings.Builder
	sb.WriteString(r.header.Render(fmt.Sprintf("%s %d", calendar.MonthName(state.Month), state.Year)))
	sb.WriteString("\n")

	headers := make([]string, 0, 7)
	for _, name := range calendar.WeekdayShortNames() {
		headers = append(headers, r.weekday.Render(pad(name)))
	}
	sb.WriteString(strings.Join(headers, " "))
	sb.WriteString("\n")

	row := make([]string, 0, 7)
	for i, cell := range cells {
		row = append(row, r.cell(state, data, cell))
		if len(row) == 7 || i == len(cells)-1 {
			sb.WriteString(strings.TrimRight(strings.Join(row, " "), " "))
			sb.WriteString("\n")
			row = row[:0]
		}
	}

	if events := r.events(state, data); events != "" {
		sb.WriteString("\n")
		sb.WriteString(events)
	}
	return sb.String()
}

func (r *Renderer) cell(state State, data model.CalendarData, date *time.Time) string {
	if date == nil {
		return strings.Repeat(" ", cellWidth)
	}

	text := fmt.Sprintf("%2d", date.Day())
	style := r.plain
	day := data[calendar.Key(*date)]
	if day != nil {
		if primary, ok := day.PrimaryWaste(); ok {
			text += r.waste[primary].Render(Marker(primary))
		}
		if len(day.Waste) > 1 {
			text += "+"
		}
	}
	switch {
	case !state.Selected.IsZero() && calendar.Key(state.Selected) == calendar.Key(*date):
		style = r.selected
	case day != nil && day.Holiday != nil:
		style = r.holiday
	case calendar.IsWeekend(*date):
		style = r.weekend
	}
	return style.Render(pad(text))
}

// Right-pad to the cell width, ignoring escape sequences
func pad(text string) string {
	if w := lipgloss.Width(text); w < cellWidth {
		return text + strings.Repeat(" ", cellWidth-w)
	}
	return text
}

// Lines describing the events of the month, in date order
func (r *Renderer) events(state State, data model.CalendarData) string {
	prefix := fmt.Sprintf("%04d-%02d-", state.Year, state.Month)
	var lines []string
	for _, key := range data.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if line := r.Day(data[key], state.ShowNameDays); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Describe a single day on one line, "" when nothing is worth showing
func (r *Renderer) Day(day *model.CalendarDay, withNameDay bool) string {
	if day == nil {
		return ""
	}
	var parts []string
	if day.Holiday != nil {
		parts = append(parts, r.holiday.Render(day.Holiday.LocalName))
	}
	for _, event := range day.Waste {
		parts = append(parts, r.waste[event.Type].Render(event.Type.String()))
	}
	if withNameDay && day.NameDay != nil {
		parts = append(parts, r.muted.Render("Névnap: "+day.NameDay.Names))
	}
	if len(parts) == 0 {
		return ""
	}

	weekday := calendar.WeekdayShortNames()[calendar.MondayIndex(day.Date)]
	return fmt.Sprintf("%s %s  %s", day.Date.Format("01-02"), weekday, strings.Join(parts, ", "))
}
