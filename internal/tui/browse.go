// Package tui implements an interactive browser over a loaded catalog:
// pick a level, pick a verb, see its stems, guidance, and format mappings
// resolved for the level in view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mjelks/bloomdex/internal/cli"
	"github.com/mjelks/bloomdex/internal/index"
	"github.com/mjelks/bloomdex/internal/loader"
	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/resolve"
)

// State represents the current browser screen.
type State int

const (
	StateLevels State = iota
	StateVerbs
	StateDetail
)

// Model holds the browser state.
type Model struct {
	catalog      *loader.Catalog
	levelList    list.Model
	verbList     list.Model
	groups       []index.LevelGroup
	currentLevel model.Level
	currentVerb  model.VerbEntry
	state        State
	width        int
	height       int
	quitting     bool
}

type levelItem struct {
	level model.Level
	count int
}

func (i levelItem) Title() string { return i.level.Name }
func (i levelItem) Description() string {
	return fmt.Sprintf("%s (%d verbs)", i.level.ShortDefinition, i.count)
}
func (i levelItem) FilterValue() string { return i.level.Name }

type verbItem struct {
	entry model.VerbEntry
}

func (i verbItem) Title() string { return i.entry.Verb }
func (i verbItem) Description() string {
	if i.entry.Meaning.Short != "" {
		return i.entry.Meaning.Short
	}
	return strings.Join(i.entry.LevelNames, ", ")
}
func (i verbItem) FilterValue() string {
	return i.entry.Verb + " " + strings.Join(i.entry.SearchKeywords, " ")
}

// NewModel builds the browser for a loaded catalog.
func NewModel(cat *loader.Catalog) Model {
	groups := cat.Index().GroupByLevel(cat.Verbs)

	items := make([]list.Item, 0, len(groups))
	for _, g := range groups {
		items = append(items, levelItem{level: g.Level, count: len(g.Entries)})
	}

	levelList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	levelList.Title = "Taxonomy levels"

	verbList := list.New(nil, list.NewDefaultDelegate(), 0, 0)

	return Model{
		catalog:   cat,
		groups:    groups,
		levelList: levelList,
		verbList:  verbList,
		state:     StateLevels,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.levelList.SetSize(msg.Width, msg.Height)
		m.verbList.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			switch m.state {
			case StateDetail:
				m.state = StateVerbs
			case StateVerbs:
				m.state = StateLevels
			}
			return m, nil
		case "enter":
			switch m.state {
			case StateLevels:
				if item, ok := m.levelList.SelectedItem().(levelItem); ok {
					m.enterLevel(item.level)
				}
				return m, nil
			case StateVerbs:
				if item, ok := m.verbList.SelectedItem().(verbItem); ok {
					m.currentVerb = item.entry
					m.state = StateDetail
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateLevels:
		m.levelList, cmd = m.levelList.Update(msg)
	case StateVerbs:
		m.verbList, cmd = m.verbList.Update(msg)
	}
	return m, cmd
}

func (m *Model) enterLevel(lvl model.Level) {
	for _, g := range m.groups {
		if g.Level.ID != lvl.ID {
			continue
		}
		items := make([]list.Item, 0, len(g.Entries))
		for _, e := range g.Entries {
			items = append(items, verbItem{entry: e})
		}
		m.verbList.SetItems(items)
		m.verbList.Title = lvl.Name
		m.verbList.Select(0)
		m.currentLevel = lvl
		m.state = StateVerbs
		return
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case StateVerbs:
		return m.verbList.View()
	case StateDetail:
		return m.detailView()
	default:
		return m.levelList.View()
	}
}

func (m Model) detailView() string {
	e := m.currentVerb
	levelStyle := cli.LevelStyle(m.currentLevel)

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render(e.Verb))
	b.WriteString("\n")
	b.WriteString(levelStyle.Render("Viewing from: " + m.currentLevel.Name))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("Levels: " + strings.Join(e.LevelNames, ", ")))
	b.WriteString("\n\n")

	if e.Meaning.Short != "" {
		b.WriteString(e.Meaning.Short)
		b.WriteString("\n\n")
	}

	stems := resolve.Stems(&e, m.currentLevel.ID)
	if len(stems) > 0 {
		b.WriteString(cli.BoldStyle.Render("Example stems"))
		b.WriteString("\n")
		for _, s := range stems {
			b.WriteString("  • " + s + "\n")
		}
		b.WriteString("\n")
	}

	if g := resolve.Guidance(&e, m.currentLevel.ID); g != "" {
		b.WriteString(cli.BoldStyle.Render("Guidance"))
		b.WriteString("\n  " + g + "\n\n")
	}

	mappings := resolve.SortedMappings(&e)
	if len(mappings) > 0 {
		b.WriteString(cli.BoldStyle.Render("Assessment formats"))
		b.WriteString("\n")
		for _, fm := range mappings {
			tier := cli.TierStyle(fm.Suitability).Render(string(fm.Suitability))
			b.WriteString(fmt.Sprintf("  %s  %s\n", tier, fm.FormatName))
		}
		b.WriteString("\n")
	}

	b.WriteString(cli.SubtleStyle.Render("esc back · q quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Run starts the browser and blocks until the user quits.
func Run(cat *loader.Catalog) error {
	p := tea.NewProgram(NewModel(cat), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
