package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/karigane/bookscan/config"
	"github.com/karigane/bookscan/log"
	"github.com/karigane/bookscan/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNotFound means the catalog has no volume for the ISBN. A user-facing
// condition, not an internal fault.
var ErrNotFound = errors.New("book not found in catalog")

const lookupTimeout = 10 * time.Second

// Client queries the Google Books volumes API by ISBN. Lookups are
// idempotent and safe to retry by the caller; the client itself makes a
// single attempt per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient builds a catalog client. apiKey may be empty or a placeholder,
// in which case requests go out unauthenticated.
func NewClient(baseURL, apiKey string) *Client {
	if config.IsPlaceholder(apiKey) {
		apiKey = ""
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: lookupTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
}

// volumesResponse matches the volumes endpoint body, reduced to the fields
// the mapper consumes.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo volumeInfo `json:"volumeInfo"`
	} `json:"items"`
}

type volumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"publishedDate"`
	Description   string   `json:"description"`
	PageCount     int      `json:"pageCount"`
	Categories    []string `json:"categories"`
	Language      string   `json:"language"`
	ImageLinks    struct {
		Large     string `json:"large"`
		Medium    string `json:"medium"`
		Small     string `json:"small"`
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
}

// Lookup fetches the first matching volume for a validated ISBN and
// normalizes it into a Book. Returns ErrNotFound on a zero-result response,
// any other error is a lookup fault carrying the underlying cause.
func (c *Client) Lookup(ctx context.Context, isbn string) (*model.Book, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "catalog lookup")
	}

	params := url.Values{}
	params.Set("q", "isbn:"+isbn)
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	u := fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "catalog lookup")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "catalog lookup")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("catalog lookup: unexpected status code: %d", resp.StatusCode)
	}

	var body volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "catalog lookup: malformed body")
	}

	if body.TotalItems == 0 || len(body.Items) == 0 {
		log.Debug("No catalog match", zap.String("isbn", isbn))
		return nil, ErrNotFound
	}

	return bookFromVolume(isbn, &body.Items[0].VolumeInfo), nil
}

func bookFromVolume(isbn string, info *volumeInfo) *model.Book {
	book := &model.Book{
		ISBN:          isbn,
		Title:         info.Title,
		Authors:       info.Authors,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		Description:   info.Description,
		PageCount:     info.PageCount,
		Categories:    info.Categories,
		Language:      info.Language,
		CoverImage:    pickCover(info),
	}

	if book.Title == "" {
		book.Title = "Unknown Title"
	}
	if len(book.Authors) == 0 {
		book.Authors = []string{"Unknown Author"}
	}
	if book.Language == "" {
		book.Language = "en"
	}
	if book.Categories == nil {
		book.Categories = []string{}
	}
	return book
}

// pickCover applies the fixed size preference: large > medium > small >
// thumbnail.
func pickCover(info *volumeInfo) string {
	links := info.ImageLinks
	for _, u := range []string{links.Large, links.Medium, links.Small, links.Thumbnail} {
		if u != "" {
			return u
		}
	}
	return ""
}
