// Package model holds the Bubble Tea models behind omnitab's TUI.
package model

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/omnitab/internal/application/usecase"
	"github.com/bnema/omnitab/internal/cli/styles"
	"github.com/bnema/omnitab/internal/domain/autocomplete"
	"github.com/bnema/omnitab/internal/logging"
)

// PostMsg carries a callback from the suggestion worker onto the update loop.
type PostMsg func()

// Poster adapts a message sender (usually (*tea.Program).Send) into a
// dispatcher Poster.
func Poster(send func(tea.Msg)) usecase.Poster {
	return func(fn func()) { send(PostMsg(fn)) }
}

// actionMsg reports the outcome of a tab or navigation command.
type actionMsg struct {
	status string
	err    error
}

// OmniboxDeps are the use cases the browse TUI drives.
type OmniboxDeps struct {
	Omnibox   *usecase.OmniboxUseCase
	Tabs      *usecase.ManageTabsUseCase
	Navigate  *usecase.NavigateUseCase
	Bookmarks *usecase.ManageBookmarksUseCase
}

// suggestionState is shared between model copies so results posted by the
// dispatcher land in the live model.
type suggestionState struct {
	items    []autocomplete.Suggestion
	selected int
}

func (s *suggestionState) set(items []autocomplete.Suggestion) {
	s.items = items
	s.selected = -1
}

// OmniboxModel is the Bubble Tea model for the browse TUI.
type OmniboxModel struct {
	input textinput.Model
	help  help.Model
	keys  styles.OmniboxKeyMap

	suggestions *suggestionState
	lastQuery   string
	status      string
	err         error
	width       int

	ctx         context.Context
	deps        OmniboxDeps
	theme       *styles.Theme
	tabsView    *styles.TabsCLIRenderer
	suggestView *styles.SuggestionRenderer
}

// NewOmniboxModel creates the browse model.
func NewOmniboxModel(ctx context.Context, theme *styles.Theme, deps OmniboxDeps) OmniboxModel {
	input := styles.NewOmniboxInput(theme)
	input.Focus()

	return OmniboxModel{
		input:       input,
		help:        styles.NewStyledHelp(theme),
		keys:        styles.DefaultOmniboxKeyMap(),
		suggestions: &suggestionState{selected: -1},
		ctx:         logging.WithComponent(ctx, "tui"),
		deps:        deps,
		theme:       theme,
		tabsView:    styles.NewTabsCLIRenderer(theme),
		suggestView: styles.NewSuggestionRenderer(theme),
		width:       80,
	}
}

// Init implements tea.Model.
func (m OmniboxModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m OmniboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		// Input width stays unbounded so ghost text follows the value.
		return m, nil

	case PostMsg:
		msg()
		return m, nil

	case actionMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m OmniboxModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.deps.Omnibox.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.resetInput()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m.open()

	case key.Matches(msg, m.keys.Complete) && m.cursorAtEnd() && m.Ghost() != "":
		m.input.SetValue(m.input.Value() + m.Ghost())
		m.input.CursorEnd()
		m.lastQuery = m.input.Value()
		m.deps.Omnibox.Input(m.ctx, m.lastQuery, m.suggestions.set)
		return m, nil

	case key.Matches(msg, m.keys.NewTab):
		m.resetInput()
		return m, m.run("new tab", func(ctx context.Context) error {
			_, err := m.deps.Tabs.Create(ctx, false)
			return err
		})

	case key.Matches(msg, m.keys.CloseTab):
		return m, m.run("tab closed", m.deps.Tabs.CloseActive)

	case key.Matches(msg, m.keys.NextTab):
		return m, m.run("", m.deps.Tabs.SwitchNext)

	case key.Matches(msg, m.keys.PrevTab):
		return m, m.run("", m.deps.Tabs.SwitchPrevious)

	case key.Matches(msg, m.keys.Back):
		return m, m.run("", func(ctx context.Context) error {
			_, err := m.deps.Navigate.Back(ctx)
			return err
		})

	case key.Matches(msg, m.keys.Forward):
		return m, m.run("", func(ctx context.Context) error {
			_, err := m.deps.Navigate.Forward(ctx)
			return err
		})

	case key.Matches(msg, m.keys.Home):
		return m, m.run("", m.deps.Navigate.GoHome)

	case key.Matches(msg, m.keys.Bookmark):
		return m, m.toggleBookmark()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.lastQuery {
		m.lastQuery = value
		m.deps.Omnibox.Input(m.ctx, value, m.suggestions.set)
	}
	return m, cmd
}

func (m OmniboxModel) cursorAtEnd() bool {
	return m.input.Position() == utf8.RuneCountInString(m.input.Value())
}

// Ghost returns the inline completion for the typed text, taken from the
// highlighted suggestion or the top one.
func (m OmniboxModel) Ghost() string {
	items := m.suggestions.items
	if len(items) == 0 {
		return ""
	}
	s := items[0]
	if sel := m.suggestions.selected; sel >= 0 && sel < len(items) {
		s = items[sel]
	}
	suffix, ok := autocomplete.InlineCompletion(m.input.Value(), s.TargetURL)
	if !ok {
		return ""
	}
	return suffix
}

func (m *OmniboxModel) moveSelection(delta int) {
	n := len(m.suggestions.items)
	if n == 0 {
		return
	}
	m.suggestions.selected = (m.suggestions.selected + delta + n) % n
}

func (m *OmniboxModel) resetInput() {
	m.deps.Omnibox.Cancel()
	m.input.SetValue("")
	m.lastQuery = ""
	m.suggestions.set(nil)
}

// open navigates to the highlighted suggestion, or to the typed text.
func (m OmniboxModel) open() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	sel := m.suggestions.selected
	var chosen *autocomplete.Suggestion
	if sel >= 0 && sel < len(m.suggestions.items) {
		s := m.suggestions.items[sel]
		chosen = &s
	}
	if chosen == nil && text == "" {
		return m, nil
	}

	m.resetInput()
	if chosen != nil {
		s := *chosen
		return m, m.run("", func(ctx context.Context) error {
			return m.deps.Omnibox.Select(ctx, s)
		})
	}
	return m, m.run("", func(ctx context.Context) error {
		_, err := m.deps.Omnibox.Submit(ctx, text)
		return err
	})
}

func (m OmniboxModel) toggleBookmark() tea.Cmd {
	active, _, ok := m.deps.Tabs.Active()
	if !ok || active.URL == "" {
		return nil
	}
	return func() tea.Msg {
		added, err := m.deps.Bookmarks.Toggle(m.ctx, active.URL, active.Title)
		if err != nil {
			return actionMsg{err: err}
		}
		if added {
			return actionMsg{status: "bookmarked " + active.URL}
		}
		return actionMsg{status: "bookmark removed"}
	}
}

// run executes fn off the update loop; renderers may block on navigation.
// The tab use case orders concurrent commands against the renderer.
func (m OmniboxModel) run(status string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if err := fn(ctx); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("action failed")
			return actionMsg{err: err}
		}
		return actionMsg{status: status}
	}
}

// View implements tea.Model.
func (m OmniboxModel) View() string {
	t := m.theme
	var sections []string

	sections = append(sections, m.tabsView.RenderTabBar(m.deps.Tabs.List()))
	field := m.input.View()
	if ghost := m.Ghost(); ghost != "" && m.cursorAtEnd() {
		field += t.Subtle.Render(ghost)
	}
	sections = append(sections, t.InputFocused.Width(max(m.width-4, 20)).Render(field))

	if len(m.suggestions.items) > 0 {
		sections = append(sections, m.suggestView.RenderList(m.suggestions.items, m.suggestions.selected))
	}

	sections = append(sections, m.statusLine())
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OmniboxModel) statusLine() string {
	t := m.theme
	if m.err != nil {
		return t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err))
	}

	active, index, ok := m.deps.Tabs.Active()
	if !ok {
		return ""
	}
	line := t.Subtle.Render(fmt.Sprintf("%d/%d ", index+1, m.deps.Tabs.Count()))
	if active.URL == "" {
		line += t.Subtle.Render("blank tab")
	} else {
		line += t.Normal.Render(active.URL) + " " + t.CategoryBadge(active.Category)
		if m.deps.Bookmarks.IsBookmarked(active.URL) {
			line += " " + t.Highlight.Render(styles.IconBookmark)
		}
	}
	if m.status != "" {
		line += "  " + t.SuccessStyle.Render(m.status)
	}
	return line
}

// Suggestions returns the suggestions currently shown.
func (m OmniboxModel) Suggestions() []autocomplete.Suggestion {
	return m.suggestions.items
}

// Value returns the typed text.
func (m OmniboxModel) Value() string {
	return m.input.Value()
}

// Selected returns the highlighted suggestion index, or -1.
func (m OmniboxModel) Selected() int {
	return m.suggestions.selected
}

// Err returns the last action error.
func (m OmniboxModel) Err() error {
	return m.err
}
