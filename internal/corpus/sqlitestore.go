//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

// https://pkg.go.dev/modernc.org/sqlite
// the pure-go driver: no cgo, so the corpus file travels with the binary

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/akratos/themestream/internal/str"
	_ "modernc.org/sqlite"
)

const (
	sqliteDocumentQuery = `
		SELECT id, DENSE_RANK() OVER (ORDER BY pub_date) AS time_rank, body
		FROM documents
		ORDER BY time_rank, id`

	sqliteCreateDocuments = `
		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			pub_date TEXT NOT NULL,
			body TEXT NOT NULL
		)`
)

// SQLiteStore - a document Store backed by a sqlite file (or ":memory:")
type SQLiteStore struct {
	DB *sql.DB
}

// OpenSQLite - open the documents db and make sure the schema is there
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite() could not open '%s': %w", path, err)
	}

	if _, err = db.Exec(sqliteCreateDocuments); err != nil {
		return nil, fmt.Errorf("OpenSQLite() could not ensure schema in '%s': %w", path, err)
	}

	return &SQLiteStore{DB: db}, nil
}

// InsertDocument - add one dated document; the body is a whitespace-separated token sequence
func (s *SQLiteStore) InsertDocument(ctx context.Context, id string, date string, body string) error {
	const (
		INS = `INSERT OR REPLACE INTO documents (id, pub_date, body) VALUES (?, ?, ?)`
	)
	_, err := s.DB.ExecContext(ctx, INS, id, date, body)
	return err
}

// LoadDocuments - pull every document; time ranks are dense-ranked over pub_date inside sqlite itself
func (s *SQLiteStore) LoadDocuments(ctx context.Context) ([]str.Document, error) {
	rows, err := s.DB.QueryContext(ctx, sqliteDocumentQuery)
	if err != nil {
		return nil, fmt.Errorf("SQLiteStore.LoadDocuments() query failed: %w", err)
	}
	defer rows.Close()

	var docs []str.Document
	for rows.Next() {
		var id, body string
		var rank int
		if err = rows.Scan(&id, &rank, &body); err != nil {
			return nil, fmt.Errorf("SQLiteStore.LoadDocuments() scan failed: %w", err)
		}
		docs = append(docs, str.Document{ID: id, TimeRank: rank, Tokens: strings.Fields(body)})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("SQLiteStore.LoadDocuments() iteration failed: %w", err)
	}

	return docs, nil
}

func (s *SQLiteStore) Close() error {
	return s.DB.Close()
}
