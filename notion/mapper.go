package notion

import (
	"github.com/karigane/bookscan/model"
	"github.com/karigane/bookscan/util"
)

// BuildProperties maps a book onto the database schema. It never fails:
// missing source fields degrade to empty text or an explicit null so partial
// catalog data can always be submitted. The output depends only on the
// inputs, mapping the same book twice yields identical payloads.
func BuildProperties(book *model.Book, schema Schema) map[string]any {
	props := map[string]any{
		schema.Title:       Title(book.Title),
		schema.ISBN:        Text(book.ISBN),
		schema.Author:      Text(book.Author()),
		schema.Status:      Select(StatusNew),
		schema.ReadStatus:  Select(ReadStatusWantToRead),
		schema.StartDate:   NullDate(),
		schema.FinishDate:  NullDate(),
		schema.Favorite:    Checkbox(false),
		schema.CurrentPage: Number(0),
		schema.Progress:    Number(0),
		schema.MyRate:      NullNumber(),
	}

	// Date-typed when the normalizer recognizes the granularity, the raw
	// string as plain text otherwise.
	switch canonical, ok := util.NormalizeDate(book.PublishedDate); {
	case book.PublishedDate == "":
		props[schema.PublishedDate] = Text("")
	case ok:
		props[schema.PublishedDate] = Date(canonical)
	default:
		props[schema.PublishedDate] = Text(book.PublishedDate)
	}

	props[schema.Publisher] = Text(book.Publisher)
	props[schema.Description] = Text(util.Truncate(book.Description, MaxDescriptionLength))
	props[schema.Category] = Text(book.Category())
	props[schema.Language] = Text(book.Language)

	if book.PageCount > 0 {
		props[schema.PageCount] = Number(float64(book.PageCount))
	} else {
		props[schema.PageCount] = NullNumber()
	}

	if book.CoverImage != "" {
		props[schema.CoverImage] = URL(book.CoverImage)
	} else {
		props[schema.CoverImage] = Text("")
	}

	if schema.PublishPlace != "" {
		props[schema.PublishPlace] = Text(book.PublishPlace)
	}
	if schema.AMZCoverImage != "" {
		props[schema.AMZCoverImage] = Text("")
	}
	if schema.ReadLog != "" {
		props[schema.ReadLog] = Text("")
	}

	return props
}
