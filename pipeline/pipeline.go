// Package pipeline wires validation, catalog lookup, record mapping and
// store submission into the single/batch/manual entry points the API serves.
package pipeline

import (
	"context"
	"fmt"

	"github.com/karigane/bookscan/catalog"
	"github.com/karigane/bookscan/log"
	"github.com/karigane/bookscan/model"
	"github.com/karigane/bookscan/notion"
	"github.com/karigane/bookscan/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Catalog looks a validated ISBN up in the external book catalog.
type Catalog interface {
	Lookup(ctx context.Context, isbn string) (*model.Book, error)
}

// Submitter writes a mapped record to the external store and returns the
// assigned record id.
type Submitter interface {
	CreatePage(ctx context.Context, properties map[string]any) (string, error)
}

// Journal records submission attempts for the audit log. Implementations
// must not block the pipeline on failure.
type Journal interface {
	RecordSubmission(sub *model.Submission)
}

// Result is the success payload of a single or manual submission.
type Result struct {
	Book   *model.Book `json:"book"`
	PageID string      `json:"notion_id"`
}

// Batch errors are reported capped, every failure is still counted.
const maxBatchErrors = 10

const (
	sourceLookup = "lookup"
	sourceManual = "manual"
	sourceBatch  = "batch"
)

type Processor struct {
	catalog Catalog
	store   Submitter
	schema  notion.Schema
	journal Journal
}

func NewProcessor(c Catalog, s Submitter, schema notion.Schema) *Processor {
	return &Processor{
		catalog: c,
		store:   s,
		schema:  schema,
	}
}

// AttachJournal enables audit logging of submission attempts. The pipeline
// works without one.
func (p *Processor) AttachJournal(j Journal) {
	p.journal = j
}

// ProcessSingle runs the full pipeline for one raw ISBN: validate, look up,
// map, submit.
func (p *Processor) ProcessSingle(ctx context.Context, rawISBN string) (*Result, error) {
	return p.processOne(ctx, rawISBN, sourceLookup)
}

// ProcessManual submits a hand-typed book, bypassing the catalog. A missing
// or malformed ISBN degrades to the manual sentinel instead of blocking.
func (p *Processor) ProcessManual(ctx context.Context, entry *model.ManualEntry) (*Result, error) {
	book := bookFromManual(entry)
	return p.submit(ctx, book, sourceManual)
}

// ProcessBatch runs each ISBN through the single pipeline sequentially. One
// item's failure never aborts its siblings.
func (p *Processor) ProcessBatch(ctx context.Context, isbns []string) *model.BatchResult {
	result := &model.BatchResult{
		Total:  len(isbns),
		Errors: []string{},
	}

	for _, raw := range isbns {
		if _, err := p.processOne(ctx, raw, sourceBatch); err != nil {
			result.Failed++
			if len(result.Errors) < maxBatchErrors {
				result.Errors = append(result.Errors, fmt.Sprintf("ISBN %s: %s", raw, UserMessage(err)))
			}
			log.Warn("Batch item failed",
				zap.String("isbn", raw),
				zap.String("error_kind", ErrorKind(err)),
			)
			continue
		}
		result.Processed++
	}
	return result
}

func (p *Processor) processOne(ctx context.Context, rawISBN, source string) (*Result, error) {
	isbn, err := util.NormalizeISBN(rawISBN)
	if err != nil {
		return nil, err
	}

	book, err := p.catalog.Lookup(ctx, isbn)
	if err != nil {
		p.record(&model.Book{ISBN: isbn}, source, "", err)
		return nil, err
	}

	return p.submit(ctx, book, source)
}

func (p *Processor) submit(ctx context.Context, book *model.Book, source string) (*Result, error) {
	props := notion.BuildProperties(book, p.schema)
	pageID, err := p.store.CreatePage(ctx, props)
	p.record(book, source, pageID, err)
	if err != nil {
		return nil, err
	}

	log.Info("Book submitted",
		zap.String("isbn", book.ISBN),
		zap.String("title", book.Title),
		zap.String("page_id", pageID),
	)
	return &Result{Book: book, PageID: pageID}, nil
}

func (p *Processor) record(book *model.Book, source, pageID string, err error) {
	if p.journal == nil {
		return
	}

	sub := &model.Submission{
		ISBN:   book.ISBN,
		Title:  book.Title,
		Author: book.Author(),
		Source: source,
		Status: model.SubmissionStatusOK,
		PageID: pageID,
	}
	if err != nil {
		sub.Status = model.SubmissionStatusFailed
		sub.ErrorKind = ErrorKind(err)
	}
	p.journal.RecordSubmission(sub)
}

func bookFromManual(entry *model.ManualEntry) *model.Book {
	book := &model.Book{
		ISBN:          model.ManualISBN,
		Title:         entry.Title,
		Authors:       entry.Authors,
		Publisher:     entry.Publisher,
		PublishedDate: entry.PublishedDate,
		Description:   entry.Description,
		PageCount:     entry.PageCount,
		Categories:    entry.Categories,
		Language:      entry.Language,
		CoverImage:    entry.CoverImage,
	}

	if entry.ISBN != "" {
		if isbn, err := util.NormalizeISBN(entry.ISBN); err == nil {
			book.ISBN = isbn
		}
	}
	if book.Title == "" {
		book.Title = "Unknown Title"
	}
	if len(book.Authors) == 0 {
		book.Authors = []string{"Unknown Author"}
	}
	if book.Categories == nil {
		book.Categories = []string{}
	}
	return book
}

// UserMessage reduces a pipeline error to the short string surfaced to
// callers. Diagnostic detail stays in the server logs.
func UserMessage(err error) string {
	var submitErr *notion.SubmitError
	switch {
	case errors.Is(err, util.ErrInvalidISBN):
		return "Invalid ISBN format"
	case errors.Is(err, catalog.ErrNotFound):
		return "Book not found in catalog"
	case errors.Is(err, notion.ErrNotConfigured):
		return "External store is not configured"
	case errors.As(err, &submitErr):
		return "Failed to add book to the store"
	default:
		return "Book lookup failed"
	}
}

// ErrorKind names the failure class for the journal and batch logs.
func ErrorKind(err error) string {
	var submitErr *notion.SubmitError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, util.ErrInvalidISBN):
		return "invalid_format"
	case errors.Is(err, catalog.ErrNotFound):
		return "not_found"
	case errors.Is(err, notion.ErrNotConfigured):
		return "not_configured"
	case errors.As(err, &submitErr):
		return "submit_failed"
	default:
		return "lookup_failed"
	}
}
