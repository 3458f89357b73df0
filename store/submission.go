package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/karigane/bookscan/log"
	"github.com/karigane/bookscan/model"
	"github.com/karigane/bookscan/util"
	"go.uber.org/zap"
)

const defaultListLimit = 50

// AddSubmission appends one attempt to the journal.
func (s *Store) AddSubmission(sub *model.Submission) (*model.Submission, error) {
	if sub.ID == "" {
		sub.ID = util.GenUUID()
	}
	if sub.CreatedTime == "" {
		sub.CreatedTime = time.Now().UTC().Format(time.RFC3339)
	}

	stmt := `
        INSERT INTO submissions (
            id,
            isbn,
            title,
            author,
            source,
            status,
            page_id,
            error_kind,
            created_ts
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{
		sub.ID,
		sub.ISBN,
		sub.Title,
		sub.Author,
		sub.Source,
		sub.Status,
		sub.PageID,
		sub.ErrorKind,
		sub.CreatedTime,
	}

	if _, err := s.db.Exec(stmt, args...); err != nil {
		return nil, err
	}
	return sub, nil
}

// RecordSubmission is the non-blocking journal hook used by the pipeline. A
// journal write failure is logged and swallowed, it must never fail a
// submission that the store already accepted.
func (s *Store) RecordSubmission(sub *model.Submission) {
	if _, err := s.AddSubmission(sub); err != nil {
		log.Error("Failed to record submission", zap.Error(err), zap.String("isbn", sub.ISBN))
	}
}

// ListSubmissions returns journal rows, newest first.
func (s *Store) ListSubmissions(find *model.FindSubmission) ([]*model.Submission, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ISBN; v != nil {
		where, args = append(where, "isbn = ?"), append(args, *v)
	}
	if v := find.Status; v != nil {
		where, args = append(where, "status = ?"), append(args, *v)
	}

	limit := defaultListLimit
	if v := find.Limit; v != nil && *v > 0 {
		limit = *v
	}

	query := `
        SELECT
            id,
            isbn,
            title,
            author,
            source,
            status,
            page_id,
            error_kind,
            created_ts
        FROM submissions
        WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created_ts DESC`
	query += fmt.Sprintf(" LIMIT %d", limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.Submission, 0)
	for rows.Next() {
		var sub model.Submission
		if err := rows.Scan(
			&sub.ID,
			&sub.ISBN,
			&sub.Title,
			&sub.Author,
			&sub.Source,
			&sub.Status,
			&sub.PageID,
			&sub.ErrorKind,
			&sub.CreatedTime,
		); err != nil {
			return nil, err
		}
		list = append(list, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
