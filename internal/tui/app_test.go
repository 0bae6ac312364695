package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/service"
	"github.com/mmcdole/bookvibe/internal/store"
	"github.com/mmcdole/bookvibe/internal/tui/components"
)

type fakeCatalog struct {
	mu      sync.Mutex
	results map[string][]domain.Book
	calls   []domain.Query
}

func (f *fakeCatalog) Search(ctx context.Context, q domain.Query) ([]domain.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, q)
	books, ok := f.results[q.Encode()]
	if !ok {
		return nil, domain.ErrCatalogUnavailable
	}
	return books, nil
}

type fakeOpener struct {
	urls []string
	err  error
}

func (f *fakeOpener) Open(url string) error {
	f.urls = append(f.urls, url)
	return f.err
}

func testBook(id, title, author string) domain.Book {
	return domain.Book{
		ID: id,
		VolumeInfo: domain.VolumeInfo{
			Title:       title,
			Authors:     []string{author},
			ImageLinks:  &domain.ImageLinks{Thumbnail: "http://books.example/" + id + ".jpg"},
			PreviewLink: "http://books.example/preview/" + id,
		},
	}
}

type harness struct {
	model     Model
	catalog   *fakeCatalog
	opener    *fakeOpener
	services  Services
	purchases *service.PurchaseService
}

func newHarness(t *testing.T, delay time.Duration) *harness {
	t.Helper()

	fc := &fakeCatalog{results: map[string][]domain.Book{
		"bestsellers": {
			testBook("b1", "Emma", "Jane Austen"),
			testBook("b2", "Dune", "Frank Herbert"),
			testBook("b3", "Ulysses", "James Joyce"),
		},
		"mystery": {testBook("m1", "Gone Girl", "Gillian Flynn")},
	}}
	opener := &fakeOpener{}

	cfg := config.Default()
	cfg.Checkout.ProcessingDelay = delay
	cfg.Checkout.SuccessDelay = time.Millisecond

	storage := store.Memory()
	purchases := service.NewPurchaseService(storage)
	svcs := Services{
		Browse:    service.NewBrowseService(fc, []string{"bestsellers"}, nil),
		Favorites: service.NewFavoritesService(storage),
		Purchases: purchases,
		Checkout:  service.NewCheckoutService(purchases, cfg.Checkout, nil),
		Opener:    opener,
	}

	m := NewModel(svcs, *cfg)
	h := &harness{model: m, catalog: fc, opener: opener, services: svcs, purchases: purchases}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	h.send(LoadCountsCmd(svcs.Favorites, svcs.Purchases)())
	h.send(LoadPopularCmd(svcs.Browse, 1)())
	return h
}

// send feeds msg to the model and returns the resulting command
func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.send(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (h *harness) fillPayment() {
	values := map[int]string{
		components.FieldCardNumber: "4242 4242 4242 4242",
		components.FieldExpiry:     "12/29",
		components.FieldCVV:        "123",
		components.FieldName:       "Ada Lovelace",
		components.FieldEmail:      "ada@example.com",
		components.FieldAddress:    "12 Analytical Way",
		components.FieldCity:       "London",
		components.FieldZip:        "N1 9GU",
	}
	for i, v := range values {
		h.model.Payment.SetValue(i, v)
	}
	h.model.Payment.SetCountry("uk")
}

func TestModelLoadsPopularBooks(t *testing.T) {
	h := newHarness(t, 0)

	assert.False(t, h.model.Loading)
	assert.Empty(t, h.model.Notice)
	assert.Len(t, h.model.Grid.Books(), 3)
	require.NotNil(t, h.model.Grid.Selected())
	assert.Equal(t, "b1", h.model.Grid.Selected().ID)
	assert.Contains(t, h.model.View(), "Discover Amazing Books")
}

func TestModelDropsStaleResults(t *testing.T) {
	h := newHarness(t, 0)

	h.send(BooksLoadedMsg{Seq: 0, Result: service.BrowseResult{Books: []domain.Book{testBook("x", "Old", "Nobody")}}})
	assert.Len(t, h.model.Grid.Books(), 3)
}

func TestModelQuickSearch(t *testing.T) {
	h := newHarness(t, 0)

	cmd := h.press("2")
	require.NotNil(t, cmd)
	assert.True(t, h.model.Loading)
	assert.Equal(t, "Searching for books...", h.model.LoadingText)

	h.send(cmd())
	assert.False(t, h.model.Loading)
	require.Len(t, h.model.Grid.Books(), 1)
	assert.Equal(t, "m1", h.model.Grid.Books()[0].ID)
	assert.Equal(t, "mystery", h.model.Search.Terms())
}

func TestModelSearchFailureShowsNotice(t *testing.T) {
	h := newHarness(t, 0)

	h.press("/")
	assert.Equal(t, StateSearching, h.model.State)
	h.press("z", "z", "z")
	cmd := h.press("enter")
	assert.Equal(t, StateBrowsing, h.model.State)
	require.NotNil(t, cmd)

	h.send(cmd())
	assert.Equal(t, service.NoticeSearchFailed, h.model.Notice)
	assert.NotEmpty(t, h.model.Grid.Books())

	h.press("esc")
	assert.Empty(t, h.model.Notice)
}

func TestModelSearchEscapeCancels(t *testing.T) {
	h := newHarness(t, 0)

	h.press("/", "q", "esc")
	assert.Equal(t, StateBrowsing, h.model.State)
	assert.False(t, h.model.Loading)
}

func TestModelToggleFavorite(t *testing.T) {
	h := newHarness(t, 0)

	cmd := h.press("f")
	require.NotNil(t, cmd)
	h.send(cmd())
	assert.True(t, h.model.Grid.IsFavorite("b1"))
	assert.Equal(t, `Added "Emma" to favorites`, h.model.StatusMsg)

	h.send(h.press("f")())
	assert.False(t, h.model.Grid.IsFavorite("b1"))

	favs, err := h.services.Favorites.List()
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestModelDetails(t *testing.T) {
	h := newHarness(t, 0)

	h.press("l", "enter")
	assert.Equal(t, StateDetails, h.model.State)
	require.NotNil(t, h.model.details)
	assert.Equal(t, "b2", h.model.details.ID)
	assert.Contains(t, h.model.View(), "Dune")

	h.press("esc")
	assert.Equal(t, StateBrowsing, h.model.State)
	assert.Nil(t, h.model.details)
}

func TestModelPurchaseFlow(t *testing.T) {
	h := newHarness(t, 0)

	h.press("enter", "b")
	require.Equal(t, StatePayment, h.model.State)
	assert.Contains(t, h.model.View(), "Secure Checkout")

	h.fillPayment()
	cmd := h.press("enter")
	require.Equal(t, StateProcessing, h.model.State)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, PurchaseCompletedMsg{}, msg)
	h.send(msg)
	assert.Equal(t, StateSuccess, h.model.State)
	assert.Contains(t, h.model.View(), "Purchase Successful!")
	assert.True(t, h.model.owned["b1"])

	cmd = h.send(ShowLibraryMsg{})
	assert.Equal(t, StateLibrary, h.model.State)
	require.NotNil(t, cmd)
	h.send(cmd())
	assert.Equal(t, 1, h.model.Library.Len())
	assert.Contains(t, h.model.View(), "Your Collection (1 books)")

	count, err := h.purchases.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Buying an owned book again appends a second record
	h.press("esc", "b")
	require.Equal(t, StatePayment, h.model.State)
	h.fillPayment()
	cmd = h.press("enter")
	require.NotNil(t, cmd)
	h.send(cmd())
	assert.Equal(t, StateSuccess, h.model.State)

	books, err := h.purchases.List()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "b1", books[0].ID)
	assert.Equal(t, "b1", books[1].ID)

	h.send(h.send(ShowLibraryMsg{})())
	assert.Equal(t, 2, h.model.Library.Len())
	assert.Contains(t, h.model.View(), "My Library (2)")
}

func TestModelPaymentValidation(t *testing.T) {
	h := newHarness(t, 0)

	h.press("b")
	require.Equal(t, StatePayment, h.model.State)
	h.model.Payment.SetValue(components.FieldCardNumber, "4242 4242 4242 4242")

	h.press("enter")
	assert.Equal(t, StatePayment, h.model.State)
	assert.Empty(t, h.model.Payment.ErrorFor("CardNumber"))
	assert.Equal(t, "Expiry Date is required", h.model.Payment.ErrorFor("ExpiryDate"))
	assert.Equal(t, components.FieldExpiry, h.model.Payment.Focused())

	count, err := h.purchases.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	// esc returns to where the purchase started
	h.press("esc")
	assert.Equal(t, StateBrowsing, h.model.State)
	assert.False(t, h.model.Payment.IsVisible())
}

func TestModelCancelPayment(t *testing.T) {
	h := newHarness(t, time.Minute)

	h.press("enter", "b")
	h.fillPayment()
	cmd := h.press("enter")
	require.Equal(t, StateProcessing, h.model.State)

	h.press("esc")
	msg := cmd()
	failed, ok := msg.(PaymentFailedMsg)
	require.True(t, ok)
	assert.True(t, errors.Is(failed.Err, domain.ErrPaymentCanceled))

	h.send(msg)
	assert.Equal(t, StatePayment, h.model.State)
	assert.Equal(t, "Payment canceled", h.model.StatusMsg)

	count, err := h.purchases.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestModelOpenPreview(t *testing.T) {
	h := newHarness(t, 0)

	cmd := h.press("o")
	require.NotNil(t, cmd)
	h.send(cmd())
	assert.Equal(t, []string{"http://books.example/preview/b1"}, h.opener.urls)
	assert.Equal(t, "Opening preview for Emma", h.model.StatusMsg)
}

func TestModelPreviewMissingLink(t *testing.T) {
	h := newHarness(t, 0)

	book := testBook("np", "No Preview", "Anon")
	book.VolumeInfo.PreviewLink = ""
	h.send(BooksLoadedMsg{Seq: h.model.seq, Result: service.BrowseResult{Books: []domain.Book{book}}})

	h.send(h.press("o")())
	assert.Empty(t, h.opener.urls)
	assert.True(t, h.model.StatusIsErr)
	assert.Equal(t, "No preview available for No Preview", h.model.StatusMsg)
}

func TestModelEmptyLibrary(t *testing.T) {
	h := newHarness(t, 0)

	cmd := h.press("L")
	assert.Equal(t, StateLibrary, h.model.State)
	h.send(cmd())
	assert.Contains(t, h.model.View(), "Your Library is Empty")
}

func TestModelToggleView(t *testing.T) {
	h := newHarness(t, 0)

	mode := h.model.Grid.Mode()
	h.press("v")
	assert.NotEqual(t, mode, h.model.Grid.Mode())
}

func TestModelHelp(t *testing.T) {
	h := newHarness(t, 0)

	h.press("?")
	assert.Equal(t, StateHelp, h.model.State)
	assert.Contains(t, h.model.View(), "Press any key to return")

	h.press("x")
	assert.Equal(t, StateBrowsing, h.model.State)
}

func TestModelErrorStatus(t *testing.T) {
	h := newHarness(t, 0)

	cmd := h.send(ErrMsg{Err: domain.ErrStorageClosed, Context: "loading library"})
	assert.NotNil(t, cmd)
	assert.True(t, h.model.StatusIsErr)
	assert.Equal(t, "loading library: storage is closed", h.model.StatusMsg)

	h.send(ClearStatusMsg{})
	assert.Empty(t, h.model.StatusMsg)
}
