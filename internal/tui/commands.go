package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/launcher"
	"github.com/mmcdole/bookvibe/internal/service"
)

// Command factories for async operations

// Opener opens links outside the terminal
type Opener interface {
	Open(url string) error
}

// LoadPopularCmd loads the landing page books
func LoadPopularCmd(svc *service.BrowseService, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		return BooksLoadedMsg{Result: svc.Popular(ctx), Seq: seq}
	}
}

// SearchCmd searches the catalog for terms within genre
func SearchCmd(svc *service.BrowseService, terms, genre string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return BooksLoadedMsg{Result: svc.Search(ctx, terms, genre), Seq: seq}
	}
}

// LoadCountsCmd reads favorites and the number of purchases from storage
func LoadCountsCmd(favorites *service.FavoritesService, purchases *service.PurchaseService) tea.Cmd {
	return func() tea.Msg {
		favs, err := favorites.List()
		if err != nil {
			return ErrMsg{Err: err, Context: "loading favorites"}
		}
		books, err := purchases.List()
		if err != nil {
			return ErrMsg{Err: err, Context: "loading purchases"}
		}
		owned := make([]string, len(books))
		for i, b := range books {
			owned[i] = b.ID
		}
		return CountsLoadedMsg{Favorites: favs, Owned: owned}
	}
}

// ToggleFavoriteCmd flips the favorite state of a book
func ToggleFavoriteCmd(svc *service.FavoritesService, book domain.Book) tea.Cmd {
	return func() tea.Msg {
		favorited, err := svc.Toggle(book.ID)
		if err != nil {
			return ErrMsg{Err: err, Context: "updating favorites"}
		}
		return FavoriteToggledMsg{BookID: book.ID, Title: book.Title(), Favorited: favorited}
	}
}

// CheckoutCmd runs the simulated payment. ctx is canceled when the user aborts.
func CheckoutCmd(ctx context.Context, svc *service.CheckoutService, book domain.Book, details domain.PaymentDetails) tea.Cmd {
	return func() tea.Msg {
		receipt, err := svc.Checkout(ctx, book, details)
		if err != nil {
			return PaymentFailedMsg{Err: err}
		}
		return PurchaseCompletedMsg{Receipt: receipt}
	}
}

// LoadLibraryCmd loads the purchased books
func LoadLibraryCmd(svc *service.PurchaseService) tea.Cmd {
	return func() tea.Msg {
		books, err := svc.List()
		if err != nil {
			return ErrMsg{Err: err, Context: "loading library"}
		}
		return LibraryLoadedMsg{Books: books}
	}
}

// OpenPreviewCmd opens a book's preview link in the browser
func OpenPreviewCmd(opener Opener, book domain.Book) tea.Cmd {
	return func() tea.Msg {
		if book.VolumeInfo.PreviewLink == "" {
			return StatusMsg{Message: "No preview available for " + book.Title(), IsError: true}
		}
		if err := opener.Open(book.VolumeInfo.PreviewLink); err != nil {
			return ErrMsg{Err: err, Context: "opening preview"}
		}
		return PreviewOpenedMsg{Title: book.Title()}
	}
}

// ShowLibraryAfterCmd switches to the library after d
func ShowLibraryAfterCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ShowLibraryMsg{}
	})
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// TickCmd returns a tick command for animations
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

var _ Opener = (*launcher.Launcher)(nil)
