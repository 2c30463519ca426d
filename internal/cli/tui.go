package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/injectgraph/pkg/dag"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Class filters cycled with tab.
const (
	filterAll = iota
	filterClasses
	filterInterfaces
)

var filterNames = []string{"all", "classes", "interfaces"}

// =============================================================================
// ExploreModel - Interactive class browser
// =============================================================================

// ExploreModel is the bubbletea model for browsing a layered graph.
// Classes are listed by layer; the selected class's dependencies and
// dependents are shown below the list.
type ExploreModel struct {
	Graph  *dag.DAG
	Nodes  []*dag.Node // visible nodes after filtering
	Cursor int
	Height int
	Offset int
	Filter int
}

// NewExploreModel creates a browser over g.
func NewExploreModel(g *dag.DAG) ExploreModel {
	m := ExploreModel{Graph: g, Height: 15}
	m.Nodes = m.visible()
	return m
}

func (m ExploreModel) visible() []*dag.Node {
	var out []*dag.Node
	for _, n := range m.Graph.SortedNodes() {
		switch {
		case m.Filter == filterClasses && n.IsInterface():
			continue
		case m.Filter == filterInterfaces && !n.IsInterface():
			continue
		}
		out = append(out, n)
	}
	slices.SortStableFunc(out, func(a, b *dag.Node) int { return a.Row - b.Row })
	return out
}

// Selected returns the node under the cursor, or nil for an empty list.
func (m ExploreModel) Selected() *dag.Node {
	if m.Cursor < 0 || m.Cursor >= len(m.Nodes) {
		return nil
	}
	return m.Nodes[m.Cursor]
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if len(m.Nodes) > 0 {
				m.Cursor = len(m.Nodes) - 1
				m.Offset = max(0, m.Cursor-m.Height+1)
			}
		case "tab":
			m.Filter = (m.Filter + 1) % len(filterNames)
			m.Nodes = m.visible()
			m.Cursor, m.Offset = 0, 0
		case "enter":
			m.jumpToFirstDependency()
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-14, 5)
	}
	return m, nil
}

// jumpToFirstDependency moves the cursor to the first visible dependency
// of the selected class.
func (m *ExploreModel) jumpToFirstDependency() {
	sel := m.Selected()
	if sel == nil {
		return
	}
	for _, e := range m.Graph.OutEdges(sel.ID) {
		i := slices.IndexFunc(m.Nodes, func(n *dag.Node) bool { return n.ID == e.To })
		if i < 0 {
			continue
		}
		m.Cursor = i
		if m.Cursor < m.Offset {
			m.Offset = m.Cursor
		} else if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
		return
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Dependency Graph"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d classes · %d edges · showing %s",
		m.Graph.NodeCount(), m.Graph.EdgeCount(), filterNames[m.Filter])))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ follow dependency  tab filter  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Nodes))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, n.ID, n.Kind.String(), strconv.Itoa(n.Row),
			strconv.Itoa(m.Graph.OutDegree(n.ID)), strconv.Itoa(m.Graph.InDegree(n.ID))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Class", "Kind", "Layer", "Deps", "Used by").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Nodes) {
				return lipgloss.NewStyle()
			}
			switch {
			case idx == m.Cursor:
				return listSelectedStyle
			case col == 2 && m.Nodes[idx].IsInterface():
				return StyleInterface
			case col >= 3:
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	if sel := m.Selected(); sel != nil {
		b.WriteString(m.details(sel))
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Nodes)), len(m.Nodes))))
	return b.String()
}

func (m ExploreModel) details(n *dag.Node) string {
	var b strings.Builder
	if path, ok := n.Meta["path"].(string); ok {
		b.WriteString("  " + listDimStyle.Render(path) + "\n")
	}
	deps := make([]string, 0, m.Graph.OutDegree(n.ID))
	for _, e := range m.Graph.OutEdges(n.ID) {
		deps = append(deps, edgeLabel(e.To, e))
	}
	users := make([]string, 0, m.Graph.InDegree(n.ID))
	for _, e := range m.Graph.InEdges(n.ID) {
		users = append(users, edgeLabel(e.From, e))
	}
	b.WriteString("  " + StyleValue.Render("depends on ") + listOrDash(deps) + "\n")
	b.WriteString("  " + StyleValue.Render("used by    ") + listOrDash(users) + "\n")
	return b.String()
}

func edgeLabel(id string, e dag.Edge) string {
	var via []string
	if v, ok := e.Meta["via"].([]string); ok {
		via = v
	}
	if e.Kind == dag.EdgeInheritance && len(via) == 0 {
		via = []string{e.Kind.String()}
	}
	if len(via) == 0 {
		return id
	}
	return id + listDimStyle.Render(" ("+strings.Join(via, ", ")+")")
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return listDimStyle.Render("—")
	}
	slices.Sort(items)
	return strings.Join(items, ", ")
}
