package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mycafe/internal/game"
)

var gameStyles = struct {
	title    lipgloss.Style
	bar      lipgloss.Style
	status   lipgloss.Style
	menu     lipgloss.Style
	selected lipgloss.Style
	message  lipgloss.Style
	help     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#D2691E")).
		Padding(0, 1),

	bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFE0B2")),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D2691E")),

	menu: lipgloss.NewStyle().
		Padding(0, 2),

	selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),

	message: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4CAF50")),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#757575")),
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	sections := []string{
		m.renderTopBar(),
		"",
	}

	if m.Message != "" && game.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, gameStyles.message.Render(m.Message), "")
	}

	if m.State.Location == game.LocationCafe {
		sections = append(sections, m.renderCafe())
	} else {
		sections = append(sections, m.renderHome())
	}

	help := "tab café/home • arrows move • enter select/prepare • b restock • r reset • q quit"
	if m.State.Running != nil {
		help = "esc abandon activity • q quit"
	}
	sections = append(sections, "", gameStyles.help.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func makeBar(value float64) string {
	filled := int(value) / 20
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	return b.String()
}

func (m Model) renderTopBar() string {
	s := m.State
	title := gameStyles.title.Render("☕ My Café ☕")

	clock := fmt.Sprintf("%s %d:00  Day %d", s.Clock.DayPhaseIcon(), s.Clock.Hour, s.Clock.Day)
	if !s.Clock.IsBusinessOpen() {
		clock += "  (closed)"
	}

	money := fmt.Sprintf("💰 $%d   ⭐ Level %d   XP %d/%d   🏆 %d served",
		s.Money, s.Level, s.Experience, s.RequiredXp(), s.ServedCount)

	mood := fmt.Sprintf("%s %s   ⚡ [%s] %3.0f%%   ❤️ [%s] %3.0f%%",
		s.Character.Mood, s.Character.Status,
		makeBar(s.Character.Energy), s.Character.Energy,
		makeBar(s.Needs.Wellbeing()), s.Needs.Wellbeing())

	var needBars []string
	for _, k := range []game.NeedKind{game.NeedHunger, game.NeedRest, game.NeedHygiene, game.NeedFun, game.NeedSocial} {
		needBars = append(needBars, fmt.Sprintf("%s[%s]", k.Icon(), makeBar(s.Needs.Get(k))))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		gameStyles.status.Render(clock),
		gameStyles.status.Render(money),
		gameStyles.status.Render(mood),
		gameStyles.bar.Render(strings.Join(needBars, " ")),
	)
}

func (m Model) renderCafe() string {
	s := m.State

	var lines []string
	if len(s.Customers) == 0 {
		if s.Clock.IsBusinessOpen() {
			lines = append(lines, "No customers yet... they'll be here soon.")
		} else {
			lines = append(lines, "The café is closed for the night.")
		}
	}

	for i, c := range s.Customers {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}

		var steps []string
		for j, step := range c.Steps {
			switch {
			case j < c.CurrentStep:
				steps = append(steps, step+"✓")
			case j == c.CurrentStep && m.Preparing && s.Selected == c.ID:
				steps = append(steps, "✨"+step)
			default:
				steps = append(steps, step)
			}
		}

		line := fmt.Sprintf("%s %s %s ($%d, %s)  %s  ⏳[%s]",
			cursor, c.Icon, c.OrderName, c.Price, c.Category,
			strings.Join(steps, " "), makeBar(c.Patience))
		if !s.Inventory.CanPrepare(c.Steps[c.CurrentStep:]) {
			line += "  ⚠️ no stock"
		}
		if s.Selected == c.ID {
			line = gameStyles.selected.Render(line)
		}
		lines = append(lines, line)
	}

	inv := fmt.Sprintf("Stock:  ☕ %d   🍫 %d   🎂 %d   🍪 %d    [b] restock $%d",
		s.Inventory.Basic, s.Inventory.Premium, s.Inventory.Cakes, s.Inventory.Cookies, game.RestockCost)

	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.menu.Render(strings.Join(lines, "\n")),
		"",
		gameStyles.bar.Render(inv),
	)
}

func (m Model) renderHome() string {
	s := m.State

	if s.Running != nil {
		a := s.Running.Activity
		return gameStyles.menu.Render(fmt.Sprintf("%s %s in progress...", a.Icon(), a))
	}

	var lines []string
	for i, a := range game.Activities {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s %-13s", cursor, a.Icon(), a)
		if cost := a.Cost(); cost > 0 {
			line += fmt.Sprintf(" $%d", cost)
		}
		if err := a.Available(s); err != nil {
			line += "  (" + gameStyles.help.Render(err.Error()) + ")"
		}
		lines = append(lines, line)
	}

	return gameStyles.menu.Render(strings.Join(lines, "\n"))
}
