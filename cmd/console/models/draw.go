package models

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/sorteio/api/cmd/console/components"
	"github.com/sorteio/api/internal/draw"
)

type fieldID int

const (
	fieldQuantity fieldID = iota
	fieldMin
	fieldMax
	fieldRepetition
	fieldMembers
	fieldDistribute
	fieldReverse
	fieldInterval
)

// field is one editable setting in a draw form. Integer fields move by
// step and never go below floor; boolean fields toggle.
type field struct {
	id     fieldID
	label  string
	toggle bool
	value  int
	on     bool
	step   int
	floor  int
	noMin  bool
}

func intField(id fieldID, label string, value, step, floor int) field {
	return field{id: id, label: label, value: value, step: step, floor: floor}
}

func boolField(id fieldID, label string, on bool) field {
	return field{id: id, label: label, toggle: true, on: on}
}

func (f *field) adjust(delta int) {
	if f.toggle {
		f.on = !f.on
		return
	}
	f.value += delta * f.step
	if !f.noMin && f.value < f.floor {
		f.value = f.floor
	}
}

func (f field) display() string {
	if f.toggle {
		if f.on {
			return "[x]"
		}
		return "[ ]"
	}
	if f.id == fieldInterval {
		return (time.Duration(f.value) * time.Millisecond).String()
	}
	return strconv.Itoa(f.value)
}

// drawResultMsg carries a finished draw back to the view that asked for it.
type drawResultMsg struct {
	kind   draw.Kind
	items  []string
	groups [][]string
	winner string
	notice string
	err    error
}

// DrawModel is the form and result view shared by every draw kind.
type DrawModel struct {
	kind    draw.Kind
	title   string
	service *draw.Service

	fields []field
	cursor int
	width  int
	height int

	isDrawing  bool
	errorMsg   string
	notice     string
	items      []string
	groups     [][]string
	winner     string
	reveal     Reveal
	generation int
}

// NewDrawModel builds the form for one draw kind with the defaults the
// service would apply.
func NewDrawModel(kind draw.Kind, service *draw.Service, interval time.Duration) DrawModel {
	ms := int(interval / time.Millisecond)
	reveal := []field{
		boolField(fieldReverse, "Reverse order", false),
		intField(fieldInterval, "Reveal interval", ms, 100, 0),
	}

	m := DrawModel{kind: kind, service: service}
	switch kind {
	case draw.KindNames:
		m.title = "Draw Names"
		m.fields = []field{
			intField(fieldQuantity, "Quantity", 1, 1, 1),
			boolField(fieldRepetition, "Allow repetition", false),
		}
	case draw.KindNumbers:
		m.title = "Draw Numbers"
		m.fields = []field{
			intField(fieldQuantity, "Quantity", 1, 1, 1),
			rangeField(fieldMin, "Minimum", draw.DefaultMinValue),
			rangeField(fieldMax, "Maximum", draw.DefaultMaxValue),
			boolField(fieldRepetition, "Allow repetition", false),
		}
	case draw.KindSequence:
		m.title = "Generate Sequence"
		m.fields = []field{
			intField(fieldQuantity, "Sequence length", draw.DefaultSequenceLength, 1, 1),
			rangeField(fieldMin, "Minimum", draw.DefaultMinValue),
			rangeField(fieldMax, "Maximum", draw.DefaultMaxValue),
			boolField(fieldRepetition, "Allow repetition", false),
		}
	case draw.KindGroups:
		m.title = "Draw Groups"
		m.fields = []field{
			intField(fieldMembers, "Members per group", 2, 1, 1),
			boolField(fieldDistribute, "Distribute evenly", true),
		}
	case draw.KindElimination:
		m.title = "Elimination Raffle"
		// Eliminations always end on the winner.
		reveal = reveal[1:]
	}
	m.fields = append(m.fields, reveal...)

	return m
}

func rangeField(id fieldID, label string, value int) field {
	f := intField(id, label, value, 1, 0)
	f.noMin = true
	return f
}

func (m DrawModel) Init() tea.Cmd {
	return nil
}

func (m DrawModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.fields) - 1
			}
		case "down", "j":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}
		case "left", "h", "-":
			m.fields[m.cursor].adjust(-1)
		case "right", "l", "+", "=":
			m.fields[m.cursor].adjust(1)
		case " ", "space":
			if m.fields[m.cursor].toggle {
				m.fields[m.cursor].adjust(1)
			}
		case "enter":
			if m.isDrawing {
				return m, nil
			}
			m.isDrawing = true
			m.errorMsg = ""
			return m, m.drawCmd()
		case "s":
			m.reveal.Skip()
		case "esc":
			m.clearResult()
		}

	case drawResultMsg:
		m.isDrawing = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			m.clearResult()
			return m, nil
		}
		return m, m.startReveal(msg)

	case revealTickMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		if m.reveal.Advance() {
			return m, revealTick(m.kind, m.generation, m.interval())
		}
	}

	return m, nil
}

func (m *DrawModel) clearResult() {
	m.items = nil
	m.groups = nil
	m.winner = ""
	m.notice = ""
	m.generation++
	m.reveal = Reveal{}
}

func (m *DrawModel) startReveal(msg drawResultMsg) tea.Cmd {
	m.clearResult()
	m.items = msg.items
	m.groups = msg.groups
	m.winner = msg.winner
	m.notice = msg.notice

	n := len(m.items)
	if m.groups != nil {
		n = len(m.groups)
	}
	m.reveal = NewReveal(n, m.boolValue(fieldReverse))

	interval := m.interval()
	if interval <= 0 {
		m.reveal.Skip()
		return nil
	}
	if m.reveal.Advance() {
		return revealTick(m.kind, m.generation, interval)
	}
	return nil
}

func (m DrawModel) interval() time.Duration {
	return time.Duration(m.intValue(fieldInterval)) * time.Millisecond
}

func (m DrawModel) intValue(id fieldID) int {
	for _, f := range m.fields {
		if f.id == id {
			return f.value
		}
	}
	return 0
}

func (m DrawModel) boolValue(id fieldID) bool {
	for _, f := range m.fields {
		if f.id == id {
			return f.on
		}
	}
	return false
}

// drawCmd runs the draw off the update loop.
func (m DrawModel) drawCmd() tea.Cmd {
	kind := m.kind
	service := m.service
	quantity := m.intValue(fieldQuantity)
	minValue := m.intValue(fieldMin)
	maxValue := m.intValue(fieldMax)
	repetition := m.boolValue(fieldRepetition)
	members := m.intValue(fieldMembers)
	distribute := m.boolValue(fieldDistribute)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		out := drawResultMsg{kind: kind}
		switch kind {
		case draw.KindNames:
			res, err := service.DrawNames(ctx, draw.NamesRequest{AllowRepetition: repetition, Quantity: quantity})
			if err != nil {
				out.err = err
				break
			}
			out.items = res.Names
			if res.Truncated {
				out.notice = fmt.Sprintf("Only %d of %d requested names were available", len(res.Names), res.Requested)
			}

		case draw.KindNumbers:
			res, err := service.DrawNumbers(ctx, draw.NumbersRequest{
				AllowRepetition: repetition,
				Quantity:        quantity,
				MinValue:        &minValue,
				MaxValue:        &maxValue,
			})
			if err != nil {
				out.err = err
				break
			}
			out.items = formatNumbers(res.Numbers)

		case draw.KindSequence:
			res, err := service.DrawSequence(ctx, draw.SequenceRequest{
				AllowRepetition: repetition,
				SequenceLength:  &quantity,
				MinValue:        &minValue,
				MaxValue:        &maxValue,
			})
			if err != nil {
				out.err = err
				break
			}
			out.items = formatNumbers(res.Numbers)

		case draw.KindGroups:
			res, err := service.DrawGroups(ctx, draw.GroupsRequest{MembersPerGroup: members, DistributeEvenly: &distribute})
			if err != nil {
				out.err = err
				break
			}
			out.groups = res.Groups
			if !res.Plan.PerfectDivision && res.Plan.Participants > 0 {
				out.notice = fmt.Sprintf("%d participants do not split evenly into groups of %d", res.Plan.Participants, res.Plan.MembersPerGroup)
			}

		case draw.KindElimination:
			res, err := service.DrawElimination(ctx, draw.EliminationRequest{})
			if err != nil {
				out.err = err
				break
			}
			out.items = append(res.Eliminated, res.Winner)
			out.winner = res.Winner
		}
		return out
	}
}

func formatNumbers(numbers []int) []string {
	items := make([]string, len(numbers))
	for i, n := range numbers {
		items[i] = strconv.Itoa(n)
	}
	return items
}

func (m DrawModel) View() string {
	var s strings.Builder

	s.WriteString(components.TitleStyle.Render(m.title) + "\n")

	var rows []string
	for i, f := range m.fields {
		style := components.FieldStyle
		if i == m.cursor {
			style = components.FocusedFieldStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%-20s %s", f.label, f.display())))
	}
	s.WriteString(components.FocusedBorderStyle.Render(strings.Join(rows, "\n")) + "\n\n")

	if m.errorMsg != "" {
		s.WriteString(components.ErrorStyle.Render("Error: "+m.errorMsg) + "\n\n")
	}
	if m.isDrawing {
		s.WriteString("Drawing...\n\n")
	}

	if result := m.renderResult(); result != "" {
		s.WriteString(components.BorderStyle.Render(result) + "\n")
		if shown, total := m.reveal.Progress(); shown < total {
			s.WriteString(components.HelpStyle.Render(fmt.Sprintf("Revealing %d/%d • s to show all", shown, total)) + "\n")
		}
	}
	if m.notice != "" {
		s.WriteString(components.WarningStyle.Render(m.notice) + "\n")
	}

	statusBar := components.StatusBarStyle.Width(m.width).Render(
		"↑/↓ select • ←/→ change • space toggle • enter draw • esc clear • q back",
	)
	s.WriteString("\n" + statusBar)

	return s.String()
}

func (m DrawModel) renderResult() string {
	visible := m.reveal.Visible()
	if len(visible) == 0 {
		return ""
	}

	switch m.kind {
	case draw.KindNumbers, draw.KindSequence:
		var balls []string
		for _, i := range visible {
			balls = append(balls, components.BallStyle.Render(m.items[i]))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, balls...)

	case draw.KindGroups:
		var boxes []string
		for _, i := range visible {
			body := components.SubtitleStyle.Render(fmt.Sprintf("Group %d", i+1)) + "\n" + strings.Join(m.groups[i], "\n")
			boxes = append(boxes, components.GroupStyle.Render(body))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	case draw.KindElimination:
		var lines []string
		for n, i := range visible {
			if m.reveal.Done() && n == len(visible)-1 {
				lines = append(lines, components.WinnerStyle.Render("Winner: "+m.winner))
				continue
			}
			lines = append(lines, fmt.Sprintf("%2d. %s is out", n+1, m.items[i]))
		}
		return strings.Join(lines, "\n")
	}

	var lines []string
	for n, i := range visible {
		lines = append(lines, fmt.Sprintf("%2d. %s", n+1, m.items[i]))
	}
	return strings.Join(lines, "\n")
}

// SetSize updates the view size
func (m *DrawModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
