package catalog

import "github.com/mmcdole/bookvibe/internal/domain"

// SampleBooks returns the offline book set shown when the catalog cannot be used.
// A fresh slice is returned on every call.
func SampleBooks() []domain.Book {
	return []domain.Book{
		sample("sample-1", "The Great Gatsby", "F. Scott Fitzgerald",
			"A classic American novel set in the Jazz Age, exploring themes of wealth, love, and the American Dream through the eyes of narrator Nick Carraway.",
			"/placeholder-qb79i.png", 4.2, 1250, 180, 12.99, "Fiction", "Classic Literature"),
		sample("sample-2", "To Kill a Mockingbird", "Harper Lee",
			"A gripping tale of racial injustice and childhood innocence in the American South, told through the eyes of Scout Finch.",
			"/mockingbird.png", 4.5, 2100, 324, 14.99, "Fiction", "Classic Literature"),
		sample("sample-3", "1984", "George Orwell",
			"A dystopian social science fiction novel about totalitarian control, surveillance, and the power of language and thought.",
			"/dystopian-book-cover.png", 4.3, 1800, 328, 13.99, "Fiction", "Dystopian", "Science Fiction"),
		sample("sample-4", "Pride and Prejudice", "Jane Austen",
			"A romantic novel about manners, upbringing, morality, and marriage in Georgian England, featuring Elizabeth Bennet and Mr. Darcy.",
			"/pride-and-prejudice-cover.png", 4.4, 1650, 432, 11.99, "Fiction", "Romance", "Classic Literature"),
		sample("sample-5", "The Catcher in the Rye", "J.D. Salinger",
			"A controversial novel about teenage rebellion and alienation, following Holden Caulfield's experiences in New York City.",
			"/catcher-in-the-rye-cover.png", 3.8, 980, 277, 13.49, "Fiction", "Coming of Age"),
		sample("sample-6", "Harry Potter and the Sorcerer's Stone", "J.K. Rowling",
			"The first book in the beloved Harry Potter series, following a young wizard's journey at Hogwarts School of Witchcraft and Wizardry.",
			"/harry-potter-sorcerers-stone-book.png", 4.7, 3200, 309, 15.99, "Fiction", "Fantasy", "Young Adult"),
		sample("sample-7", "The Lord of the Rings", "J.R.R. Tolkien",
			"An epic high fantasy novel about the quest to destroy the One Ring and defeat the Dark Lord Sauron.",
			"/lord-of-the-rings-cover.png", 4.6, 2800, 1216, 18.99, "Fiction", "Fantasy", "Adventure"),
		sample("sample-8", "Dune", "Frank Herbert",
			"A science fiction masterpiece set on the desert planet Arrakis, following Paul Atreides in his quest for revenge and power.",
			"/dune-desert-planet.png", 4.4, 1900, 688, 16.99, "Fiction", "Science Fiction", "Adventure"),
	}
}

func sample(id, title, author, description, thumbnail string, rating float64, ratings, pages int, price float64, categories ...string) domain.Book {
	return domain.Book{
		ID: id,
		VolumeInfo: domain.VolumeInfo{
			Title:         title,
			Authors:       []string{author},
			Description:   description,
			ImageLinks:    &domain.ImageLinks{Thumbnail: thumbnail},
			AverageRating: rating,
			RatingsCount:  ratings,
			Categories:    categories,
			PageCount:     pages,
			Language:      "en",
		},
		SaleInfo: &domain.SaleInfo{
			RetailPrice: &domain.Money{Amount: price, CurrencyCode: "USD"},
		},
	}
}
