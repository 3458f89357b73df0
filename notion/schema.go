package notion

// Workflow defaults for a freshly added, unread, unrated book.
const (
	StatusNew            = "New"
	ReadStatusWantToRead = "Want to Read"

	// MaxDescriptionLength is the rich text limit enforced by the store.
	MaxDescriptionLength = 2000
)

// Schema enumerates the field names of the target database. Deployments
// whose database predates the PublishPlace/AMZ-CoverImage/ReadLog columns
// clear the matching names and the mapper skips them.
type Schema struct {
	Title         string
	ISBN          string
	Status        string
	Author        string
	Publisher     string
	PublishedDate string
	Description   string
	PageCount     string
	Category      string
	ReadStatus    string
	StartDate     string
	FinishDate    string
	Favorite      string
	CurrentPage   string
	Language      string
	MyRate        string
	CoverImage    string
	Progress      string

	// Optional columns, skipped when empty.
	PublishPlace  string
	AMZCoverImage string
	ReadLog       string
}

// DefaultSchema matches the column set of the stock reading tracker
// database.
func DefaultSchema() Schema {
	return Schema{
		Title:         "BookName",
		ISBN:          "ISBN",
		Status:        "Status",
		Author:        "Author",
		Publisher:     "Publisher",
		PublishedDate: "Published Date",
		Description:   "Descriptions",
		PageCount:     "Page Count",
		Category:      "Category",
		ReadStatus:    "ReadStatus",
		StartDate:     "StartDate",
		FinishDate:    "FinishDate",
		Favorite:      "Favorite",
		CurrentPage:   "Currentpage",
		Language:      "Language",
		MyRate:        "MyRate",
		CoverImage:    "Cover image",
		Progress:      "My Progress",
		PublishPlace:  "PublishPlace",
		AMZCoverImage: "AMZ-CoverImage",
		ReadLog:       "ReadLog",
	}
}
