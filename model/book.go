package model

import "strings"

// ManualISBN is the sentinel stored for manually entered books that have no
// usable ISBN.
const ManualISBN = "N/A"

// Book is the normalized record produced by a catalog lookup or manual
// entry. Authors and Categories are never nil, absence is the empty slice.
type Book struct {
	ISBN          string   `json:"isbn"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"published_date"`
	Description   string   `json:"description"`
	PageCount     int      `json:"page_count"`
	Categories    []string `json:"categories"`
	Language      string   `json:"language"`
	PublishPlace  string   `json:"publish_place"`
	CoverImage    string   `json:"cover_image"`
}

// Author returns the display form of the author list.
func (b *Book) Author() string {
	return strings.Join(b.Authors, ", ")
}

// Category returns the display form of the category list.
func (b *Book) Category() string {
	return strings.Join(b.Categories, ", ")
}

// ManualEntry carries the fields of a hand-typed book. Only the title is
// required, everything else degrades to the mapper defaults.
type ManualEntry struct {
	ISBN          string   `json:"isbn"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"published_date"`
	Description   string   `json:"description"`
	PageCount     int      `json:"page_count"`
	Categories    []string `json:"categories"`
	Language      string   `json:"language"`
	CoverImage    string   `json:"cover_image"`
}

// BatchResult summarizes a batch run. Errors is capped by the pipeline,
// Failed counts every failure.
type BatchResult struct {
	Processed int      `json:"processed"`
	Total     int      `json:"total"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}
