package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookvibe/internal/domain"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if m.cancelCheckout != nil {
			m.cancelCheckout()
		}
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		m.State = m.helpFrom
		return m, nil

	case StateSearching:
		var cmd tea.Cmd
		var submitted bool
		m.Search, cmd, submitted = m.Search.Update(msg)
		if submitted {
			m.State = StateBrowsing
			return m.startSearch()
		}
		if !m.Search.IsActive() {
			m.State = StateBrowsing
		}
		return m, cmd

	case StatePayment:
		if key.Matches(msg, Keys.Escape) {
			return m.closePayment()
		}
		var cmd tea.Cmd
		var submitted bool
		m.Payment, cmd, submitted = m.Payment.Update(msg)
		if submitted {
			return m.submitPayment()
		}
		return m, cmd

	case StateProcessing:
		if key.Matches(msg, Keys.Escape) && m.cancelCheckout != nil {
			m.cancelCheckout()
		}
		return m, nil

	case StateSuccess:
		if key.Matches(msg, Keys.Enter, Keys.Escape) {
			return m.showLibrary()
		}
		return m, nil

	case StateDetails:
		return m.handleDetailsKey(msg)

	case StateLibrary:
		return m.handleLibraryKey(msg)
	}

	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Route to the results filter while it is being typed
	if m.Grid.IsFilterTyping() {
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.helpFrom = m.State
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.Grid.IsFiltering() {
			m.Grid.ClearFilter()
			return m, nil
		}
		m.Notice = ""
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.State = StateSearching
		cmd := m.Search.Focus()
		return m, cmd

	case key.Matches(msg, Keys.Filter):
		cmd := m.Grid.ToggleFilter()
		return m, cmd

	case key.Matches(msg, Keys.NextGenre, Keys.PrevGenre):
		step := 1
		if key.Matches(msg, Keys.PrevGenre) {
			step = -1
		}
		genre := m.Search.CycleGenre(step)
		if m.Search.Terms() != "" {
			return m.startSearch()
		}
		return m.setStatus("Genre: "+domain.GenreLabel(genre), false)

	case key.Matches(msg, Keys.QuickSearch):
		idx := int(msg.String()[0] - '1')
		if idx < 0 || idx >= len(domain.QuickSearches) {
			return m, nil
		}
		m.Search.SetTerms(strings.ToLower(domain.QuickSearches[idx]))
		return m.startSearch()

	case key.Matches(msg, Keys.Popular):
		m.Search.SetTerms("")
		return m.startSearch()

	case key.Matches(msg, Keys.ToggleView):
		m.Grid.ToggleMode()
		return m.setStatus("View: "+m.Grid.Mode().String(), false)

	case key.Matches(msg, Keys.Favorite):
		return m.toggleFavorite(m.Grid.Selected())

	case key.Matches(msg, Keys.Buy):
		return m.openPayment(m.Grid.Selected())

	case key.Matches(msg, Keys.Preview):
		return m.openPreview(m.Grid.Selected())

	case key.Matches(msg, Keys.Library):
		return m.showLibrary()

	case key.Matches(msg, Keys.Enter):
		return m.openDetails()

	case key.Matches(msg, Keys.Up):
		m.Grid.Move(0, -1)
	case key.Matches(msg, Keys.Down):
		m.Grid.Move(0, 1)
	case key.Matches(msg, Keys.Left):
		m.Grid.Move(-1, 0)
	case key.Matches(msg, Keys.Right):
		m.Grid.Move(1, 0)
	case key.Matches(msg, Keys.Home):
		m.Grid.First()
	case key.Matches(msg, Keys.End):
		m.Grid.Last()
	}
	return m, nil
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Escape, Keys.Enter):
		m.details = nil
		m.State = StateBrowsing
	case key.Matches(msg, Keys.Buy):
		return m.openPayment(m.details)
	case key.Matches(msg, Keys.Favorite):
		return m.toggleFavorite(m.details)
	case key.Matches(msg, Keys.Preview):
		return m.openPreview(m.details)
	}
	return m, nil
}

func (m Model) handleLibraryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Library.IsFilterTyping() {
		var cmd tea.Cmd
		m.Library, cmd = m.Library.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.helpFrom = m.State
		m.State = StateHelp
	case key.Matches(msg, Keys.Escape):
		m.State = StateBrowsing
	case key.Matches(msg, Keys.Search):
		cmd := m.Library.StartFilter()
		return m, cmd
	case key.Matches(msg, Keys.Read, Keys.Enter):
		return m.openPreview(m.Library.Selected())
	case key.Matches(msg, Keys.Up, Keys.Left):
		m.Library.Move(-1)
	case key.Matches(msg, Keys.Down, Keys.Right):
		m.Library.Move(1)
	case key.Matches(msg, Keys.Home):
		m.Library.Move(-m.Library.Len())
	case key.Matches(msg, Keys.End):
		m.Library.Move(m.Library.Len())
	}
	return m, nil
}
