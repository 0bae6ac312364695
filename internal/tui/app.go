package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/service"
	"github.com/mmcdole/bookvibe/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateDetails
	StatePayment
	StateProcessing
	StateSuccess
	StateLibrary
	StateHelp
)

const (
	tickInterval     = 100 * time.Millisecond
	statusDuration   = 3 * time.Second
	errorDuration    = 5 * time.Second
	defaultSuccessIn = 2 * time.Second
)

// Services groups everything the model talks to
type Services struct {
	Browse    *service.BrowseService
	Favorites *service.FavoritesService
	Purchases *service.PurchaseService
	Checkout  *service.CheckoutService
	Opener    Opener
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State       ApplicationState
	helpFrom    ApplicationState
	paymentFrom ApplicationState
	Ready       bool
	services    Services
	currency    string
	successIn   time.Duration

	// UI Components
	Grid    components.BookGrid
	Search  components.SearchBar
	Payment components.PaymentForm
	Library components.Library

	// Data
	owned   map[string]bool
	bought  int // purchase records, repeats included
	details *domain.Book
	receipt *domain.Receipt

	// Dimensions
	Width  int
	Height int

	// UI state
	Notice       string
	StatusMsg    string
	StatusIsErr  bool
	Loading      bool
	LoadingText  string
	SpinnerFrame int

	// seq identifies the latest catalog request; older results are dropped
	seq            int
	cancelCheckout context.CancelFunc
}

// NewModel creates a new application model
func NewModel(svcs Services, cfg config.Config) Model {
	successIn := cfg.Checkout.SuccessDelay
	if successIn <= 0 {
		successIn = defaultSuccessIn
	}
	return Model{
		State:     StateBrowsing,
		services:  svcs,
		currency:  cfg.Checkout.Currency,
		successIn: successIn,
		Grid:      components.NewBookGrid(components.ParseViewMode(cfg.UI.DefaultView), cfg.UI.GridColumns, cfg.Checkout.Currency),
		Search:    components.NewSearchBar(),
		Payment:   components.NewPaymentForm(),
		Library:   components.NewLibrary(),
		owned:     make(map[string]bool),

		// Init starts the landing page load as request 1
		Loading:     true,
		LoadingText: "Loading popular books...",
		seq:         1,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCountsCmd(m.services.Favorites, m.services.Purchases),
		LoadPopularCmd(m.services.Browse, m.seq),
		TickCmd(tickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(tickInterval)

	case BooksLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.Loading = false
		m.Grid.SetBooks(msg.Result.Books)
		m.Notice = msg.Result.Notice
		m.updateLayout()
		return m, nil

	case CountsLoadedMsg:
		m.Grid.SetFavorites(msg.Favorites)
		m.owned = make(map[string]bool, len(msg.Owned))
		for _, id := range msg.Owned {
			m.owned[id] = true
		}
		m.bought = len(msg.Owned)
		return m, nil

	case FavoriteToggledMsg:
		m.Grid.SetFavorite(msg.BookID, msg.Favorited)
		if msg.Favorited {
			return m.setStatus(fmt.Sprintf("Added %q to favorites", msg.Title), false)
		}
		return m.setStatus(fmt.Sprintf("Removed %q from favorites", msg.Title), false)

	case PaymentFailedMsg:
		m.cancelCheckout = nil
		if m.State != StateProcessing {
			return m, nil
		}
		m.State = StatePayment
		if errors.Is(msg.Err, domain.ErrPaymentCanceled) {
			return m.setStatus("Payment canceled", false)
		}
		cmd := m.Payment.SetError(msg.Err)
		return m, cmd

	case PurchaseCompletedMsg:
		m.cancelCheckout = nil
		m.receipt = msg.Receipt
		m.owned[msg.Receipt.Book.ID] = true
		m.bought++
		m.Payment.Close()
		m.details = nil
		m.State = StateSuccess
		return m, ShowLibraryAfterCmd(m.successIn)

	case ShowLibraryMsg:
		if m.State != StateSuccess {
			return m, nil
		}
		return m.showLibrary()

	case LibraryLoadedMsg:
		m.Loading = false
		m.Library.SetBooks(msg.Books)
		return m, nil

	case PreviewOpenedMsg:
		return m.setStatus("Opening preview for "+msg.Title, false)

	case ErrMsg:
		m.Loading = false
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(errorDuration)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	switch m.State {
	case StateSearching:
		m.Search, cmd, _ = m.Search.Update(msg)
	case StatePayment:
		m.Payment, cmd, _ = m.Payment.Update(msg)
	case StateLibrary:
		m.Library, cmd = m.Library.Update(msg)
	case StateBrowsing:
		m.Grid, cmd = m.Grid.Update(msg)
	}
	return m, cmd
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	if isErr {
		return m, ClearStatusCmd(errorDuration)
	}
	return m, ClearStatusCmd(statusDuration)
}

// startSearch runs the current search bar query. Blank terms reload the landing page.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.seq++
	m.Loading = true
	m.Notice = ""
	m.Grid.ClearFilter()
	m.updateLayout()

	terms := m.Search.Terms()
	if terms == "" {
		m.LoadingText = "Loading popular books..."
		return m, LoadPopularCmd(m.services.Browse, m.seq)
	}
	m.LoadingText = "Searching for books..."
	return m, SearchCmd(m.services.Browse, terms, m.Search.Genre(), m.seq)
}

func (m Model) openDetails() (tea.Model, tea.Cmd) {
	book := m.Grid.Selected()
	if book == nil {
		return m, nil
	}
	m.details = book
	m.State = StateDetails
	return m, nil
}

func (m Model) openPayment(book *domain.Book) (tea.Model, tea.Cmd) {
	if book == nil {
		return m, nil
	}
	m.paymentFrom = m.State
	m.State = StatePayment
	m.Payment.SetSize(m.modalWidth())
	cmd := m.Payment.Open(*book, m.services.Checkout.Quote(*book))
	return m, cmd
}

// submitPayment validates the form locally and starts processing
func (m Model) submitPayment() (tea.Model, tea.Cmd) {
	details := m.Payment.Details()
	if err := m.services.Checkout.Validate(details); err != nil {
		cmd := m.Payment.SetError(err)
		return m, cmd
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelCheckout = cancel
	m.State = StateProcessing
	return m, CheckoutCmd(ctx, m.services.Checkout, m.Payment.Book(), details)
}

func (m Model) closePayment() (tea.Model, tea.Cmd) {
	m.Payment.Close()
	m.State = m.paymentFrom
	return m, nil
}

func (m Model) showLibrary() (tea.Model, tea.Cmd) {
	m.State = StateLibrary
	m.details = nil
	m.receipt = nil
	return m, LoadLibraryCmd(m.services.Purchases)
}

func (m Model) toggleFavorite(book *domain.Book) (tea.Model, tea.Cmd) {
	if book == nil {
		return m, nil
	}
	return m, ToggleFavoriteCmd(m.services.Favorites, *book)
}

func (m Model) openPreview(book *domain.Book) (tea.Model, tea.Cmd) {
	if book == nil {
		return m, nil
	}
	return m, OpenPreviewCmd(m.services.Opener, *book)
}
