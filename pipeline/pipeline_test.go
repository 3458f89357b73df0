package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/karigane/bookscan/catalog"
	"github.com/karigane/bookscan/model"
	"github.com/karigane/bookscan/notion"
	"github.com/karigane/bookscan/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	calls    int
	notFound map[string]bool
	failWith error
}

func (f *fakeCatalog) Lookup(ctx context.Context, isbn string) (*model.Book, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.notFound[isbn] {
		return nil, catalog.ErrNotFound
	}
	return &model.Book{
		ISBN:       isbn,
		Title:      "Harry Potter and the Deathly Hallows",
		Authors:    []string{"J. K. Rowling"},
		Language:   "en",
		Categories: []string{},
	}, nil
}

type fakeSubmitter struct {
	calls     int
	failWith  error
	lastProps map[string]any
}

func (f *fakeSubmitter) CreatePage(ctx context.Context, properties map[string]any) (string, error) {
	f.calls++
	f.lastProps = properties
	if f.failWith != nil {
		return "", f.failWith
	}
	return fmt.Sprintf("page-%d", f.calls), nil
}

type fakeJournal struct {
	subs []*model.Submission
}

func (f *fakeJournal) RecordSubmission(sub *model.Submission) {
	f.subs = append(f.subs, sub)
}

func newTestProcessor() (*Processor, *fakeCatalog, *fakeSubmitter, *fakeJournal) {
	c := &fakeCatalog{notFound: map[string]bool{}}
	s := &fakeSubmitter{}
	j := &fakeJournal{}
	p := NewProcessor(c, s, notion.DefaultSchema())
	p.AttachJournal(j)
	return p, c, s, j
}

func TestProcessSingle(t *testing.T) {
	p, c, s, j := newTestProcessor()

	result, err := p.ProcessSingle(context.Background(), "978-0-545-01022-1")
	require.NoError(t, err)

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, "page-1", result.PageID)
	assert.Equal(t, "9780545010221", result.Book.ISBN, "lookup must receive the normalized ISBN")

	title := s.lastProps["BookName"].(notion.TitleProperty)
	assert.Equal(t, "Harry Potter and the Deathly Hallows", title.Title[0].Text.Content)
	assert.Equal(t, notion.Select("New"), s.lastProps["Status"])
	assert.Equal(t, notion.Select("Want to Read"), s.lastProps["ReadStatus"])
	assert.Equal(t, notion.Checkbox(false), s.lastProps["Favorite"])

	require.Len(t, j.subs, 1)
	assert.Equal(t, model.SubmissionStatusOK, j.subs[0].Status)
	assert.Equal(t, "page-1", j.subs[0].PageID)
	assert.Equal(t, "lookup", j.subs[0].Source)
}

func TestProcessSingleInvalidISBN(t *testing.T) {
	p, c, s, _ := newTestProcessor()

	_, err := p.ProcessSingle(context.Background(), "not-an-isbn")
	assert.ErrorIs(t, err, util.ErrInvalidISBN)
	assert.Zero(t, c.calls, "validation failures must not reach the catalog")
	assert.Zero(t, s.calls)
}

// A zero-result lookup must not trigger a store submission.
func TestProcessSingleNotFound(t *testing.T) {
	p, c, s, j := newTestProcessor()
	c.notFound["0000000000"] = true

	_, err := p.ProcessSingle(context.Background(), "0000000000")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Zero(t, s.calls)

	require.Len(t, j.subs, 1)
	assert.Equal(t, model.SubmissionStatusFailed, j.subs[0].Status)
	assert.Equal(t, "not_found", j.subs[0].ErrorKind)
}

func TestProcessSingleSubmitFailure(t *testing.T) {
	p, _, s, j := newTestProcessor()
	s.failWith = &notion.SubmitError{StatusCode: 502, Body: "bad gateway"}

	_, err := p.ProcessSingle(context.Background(), "9780545010221")
	require.Error(t, err)
	assert.Equal(t, "submit_failed", ErrorKind(err))

	require.Len(t, j.subs, 1)
	assert.Equal(t, model.SubmissionStatusFailed, j.subs[0].Status)
}

func TestProcessManual(t *testing.T) {
	p, c, s, j := newTestProcessor()

	result, err := p.ProcessManual(context.Background(), &model.ManualEntry{
		Title:         "My Field Notes",
		Authors:       []string{"A. Naturalist"},
		PublishedDate: "1999",
	})
	require.NoError(t, err)

	assert.Zero(t, c.calls, "manual entry must bypass the catalog")
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, model.ManualISBN, result.Book.ISBN)

	// year-only manual date goes through the same normalizer
	assert.Equal(t, notion.Date("1999-01-01"), s.lastProps["Published Date"])

	require.Len(t, j.subs, 1)
	assert.Equal(t, "manual", j.subs[0].Source)
}

func TestProcessManualDefaults(t *testing.T) {
	p, _, s, _ := newTestProcessor()

	result, err := p.ProcessManual(context.Background(), &model.ManualEntry{
		PublishedDate: "sometime in the 90s",
	})
	require.NoError(t, err)

	assert.Equal(t, "Unknown Title", result.Book.Title)
	assert.Equal(t, []string{"Unknown Author"}, result.Book.Authors)
	assert.Equal(t, model.ManualISBN, result.Book.ISBN)
	assert.Equal(t, notion.Text("sometime in the 90s"), s.lastProps["Published Date"])
}

func TestProcessManualWithValidISBN(t *testing.T) {
	p, _, _, _ := newTestProcessor()

	result, err := p.ProcessManual(context.Background(), &model.ManualEntry{
		Title: "My Field Notes",
		ISBN:  "978-0-545-01022-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "9780545010221", result.Book.ISBN)
}

func TestProcessManualWithBadISBN(t *testing.T) {
	p, _, _, _ := newTestProcessor()

	// a malformed manual ISBN degrades to the sentinel instead of blocking
	result, err := p.ProcessManual(context.Background(), &model.ManualEntry{
		Title: "My Field Notes",
		ISBN:  "12345",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ManualISBN, result.Book.ISBN)
}

func TestProcessBatch(t *testing.T) {
	p, c, s, _ := newTestProcessor()
	c.notFound["1111111111111"] = true
	c.notFound["2222222222222"] = true

	result := p.ProcessBatch(context.Background(), []string{
		"9780545010221",
		"1111111111111",
		"9780439064866",
		"2222222222222",
		"9780439136358",
	})

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 3, s.calls, "failed lookups must not reach the store")
}

// All failures are counted, only the first ten are reported.
func TestProcessBatchCapsReportedErrors(t *testing.T) {
	p, _, _, _ := newTestProcessor()

	isbns := make([]string, 15)
	for i := range isbns {
		isbns[i] = "bad"
	}
	result := p.ProcessBatch(context.Background(), isbns)

	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 15, result.Total)
	assert.Equal(t, 15, result.Failed)
	assert.Len(t, result.Errors, 10)
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	p, c, _, _ := newTestProcessor()
	c.notFound["1111111111111"] = true

	result := p.ProcessBatch(context.Background(), []string{
		"1111111111111",
		"9780545010221",
	})

	assert.Equal(t, 1, result.Processed, "a failing item must not abort its siblings")
	assert.Equal(t, 1, result.Failed)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{util.ErrInvalidISBN, "Invalid ISBN format"},
		{catalog.ErrNotFound, "Book not found in catalog"},
		{notion.ErrNotConfigured, "External store is not configured"},
		{&notion.SubmitError{StatusCode: 500, Body: "secret detail"}, "Failed to add book to the store"},
		{fmt.Errorf("dial tcp: timeout"), "Book lookup failed"},
	}

	for _, tc := range tests {
		got := UserMessage(tc.err)
		assert.Equal(t, tc.expected, got)
		assert.NotContains(t, got, "secret detail", "diagnostic detail must not leak")
	}
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "invalid_format", ErrorKind(util.ErrInvalidISBN))
	assert.Equal(t, "not_found", ErrorKind(catalog.ErrNotFound))
	assert.Equal(t, "not_configured", ErrorKind(notion.ErrNotConfigured))
	assert.Equal(t, "submit_failed", ErrorKind(&notion.SubmitError{StatusCode: 400}))
	assert.Equal(t, "lookup_failed", ErrorKind(fmt.Errorf("dial tcp: timeout")))
}

// Works with no journal attached.
func TestProcessorWithoutJournal(t *testing.T) {
	c := &fakeCatalog{notFound: map[string]bool{}}
	s := &fakeSubmitter{}
	p := NewProcessor(c, s, notion.DefaultSchema())

	_, err := p.ProcessSingle(context.Background(), "9780545010221")
	assert.NoError(t, err)
}
