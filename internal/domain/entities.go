package domain

import (
	"net/url"
	"strings"
)

// Book is a catalog volume as returned by the books API.
// The JSON shape matches the API so records can be stored and reloaded verbatim.
type Book struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
	SaleInfo   *SaleInfo  `json:"saleInfo,omitempty"`
}

// VolumeInfo holds the descriptive metadata of a book
type VolumeInfo struct {
	Title         string      `json:"title"`
	Authors       []string    `json:"authors,omitempty"`
	Description   string      `json:"description,omitempty"`
	ImageLinks    *ImageLinks `json:"imageLinks,omitempty"`
	AverageRating float64     `json:"averageRating,omitempty"` // 0-5 scale
	RatingsCount  int         `json:"ratingsCount,omitempty"`
	PublishedDate string      `json:"publishedDate,omitempty"` // "2004", "2004-05" or "2004-05-01"
	Categories    []string    `json:"categories,omitempty"`
	PageCount     int         `json:"pageCount,omitempty"`
	Language      string      `json:"language,omitempty"`
	PreviewLink   string      `json:"previewLink,omitempty"`
}

// ImageLinks holds cover image URLs
type ImageLinks struct {
	Thumbnail      string `json:"thumbnail,omitempty"`
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
}

// SaleInfo holds price hints. Either price may be absent.
type SaleInfo struct {
	ListPrice   *Money `json:"listPrice,omitempty"`
	RetailPrice *Money `json:"retailPrice,omitempty"`
}

// Money is an amount in a currency
type Money struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}

// UnknownAuthor is shown for books without authors
const UnknownAuthor = "Unknown Author"

// UnknownYear is shown for books without a publication date
const UnknownYear = "Unknown"

// Title returns the book title
func (b Book) Title() string {
	return b.VolumeInfo.Title
}

// HasTitleAndAuthor reports whether the book has a title and at least one author.
// Records failing this check are not displayed.
func (b Book) HasTitleAndAuthor() bool {
	return strings.TrimSpace(b.VolumeInfo.Title) != "" && len(b.VolumeInfo.Authors) > 0
}

// HasCover reports whether the book has any cover image
func (b Book) HasCover() bool {
	links := b.VolumeInfo.ImageLinks
	return links != nil && (links.Thumbnail != "" || links.SmallThumbnail != "")
}

// AuthorLine returns the authors joined with commas
func (b Book) AuthorLine() string {
	if len(b.VolumeInfo.Authors) == 0 {
		return UnknownAuthor
	}
	return strings.Join(b.VolumeInfo.Authors, ", ")
}

// CoverURL returns the best cover image, falling back to a generated placeholder
func (b Book) CoverURL() string {
	if links := b.VolumeInfo.ImageLinks; links != nil {
		if links.Thumbnail != "" {
			return links.Thumbnail
		}
		if links.SmallThumbnail != "" {
			return links.SmallThumbnail
		}
	}
	return "/placeholder.svg?height=300&width=200&query=" + url.QueryEscape("book cover "+b.VolumeInfo.Title)
}

// PublishedYear returns the year part of the publication date
func (b Book) PublishedYear() string {
	date := strings.TrimSpace(b.VolumeInfo.PublishedDate)
	if date == "" {
		return UnknownYear
	}
	year, _, _ := strings.Cut(date, "-")
	return year
}

// CatalogPrice returns the retail price, then the list price.
// ok is false when the catalog carries no usable price.
func (b Book) CatalogPrice() (Money, bool) {
	if b.SaleInfo == nil {
		return Money{}, false
	}
	if p := b.SaleInfo.RetailPrice; p != nil && p.Amount > 0 {
		return *p, true
	}
	if p := b.SaleInfo.ListPrice; p != nil && p.Amount > 0 {
		return *p, true
	}
	return Money{}, false
}

// TopCategories returns at most n categories
func (b Book) TopCategories(n int) []string {
	if len(b.VolumeInfo.Categories) <= n {
		return b.VolumeInfo.Categories
	}
	return b.VolumeInfo.Categories[:n]
}
