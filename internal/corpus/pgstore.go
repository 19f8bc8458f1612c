//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/akratos/themestream/internal/str"
	"github.com/jackc/pgx/v5/pgxpool"
)

//
// the postgres twin of the sqlite store; same table shape, same query shape
//

const (
	pgDocumentQuery = `
		SELECT id, DENSE_RANK() OVER (ORDER BY pub_date) AS time_rank, body
		FROM documents
		ORDER BY time_rank, id`
)

// PGStore - a document Store backed by a postgres pool
type PGStore struct {
	Pool *pgxpool.Pool
}

// FillPGPool - build the pgxpool that LoadDocuments will Acquire() from
func FillPGPool(ctx context.Context, pl str.PostgresLogin, workers int) (*PGStore, error) {
	const (
		UTPL = "postgres://%s:%s@%s:%d/%s?pool_min_conns=%d&pool_max_conns=%d"
	)

	// loading is a single streamed query; a couple of spare connections is plenty
	min := 1
	max := workers + 1

	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName, min, max)

	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("FillPGPool() could not execute ParseConfig() via '%s': %w", url, err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("FillPGPool() could not connect to postgres at '%s:%d': %w", pl.Host, pl.Port, err)
	}

	return &PGStore{Pool: pool}, nil
}

// LoadDocuments - pull every document; time ranks are dense-ranked over pub_date inside postgres itself
func (p *PGStore) LoadDocuments(ctx context.Context) ([]str.Document, error) {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("PGStore.LoadDocuments() could not acquire a connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, pgDocumentQuery)
	if err != nil {
		return nil, fmt.Errorf("PGStore.LoadDocuments() query failed: %w", err)
	}
	defer rows.Close()

	var docs []str.Document
	for rows.Next() {
		var id, body string
		var rank int
		if err = rows.Scan(&id, &rank, &body); err != nil {
			return nil, fmt.Errorf("PGStore.LoadDocuments() scan failed: %w", err)
		}
		docs = append(docs, str.Document{ID: id, TimeRank: rank, Tokens: strings.Fields(body)})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PGStore.LoadDocuments() iteration failed: %w", err)
	}

	return docs, nil
}

func (p *PGStore) Close() {
	p.Pool.Close()
}
