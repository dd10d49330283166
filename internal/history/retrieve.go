// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandkit/brandkit/pkg/types"
)

// QueryOptions holds parameters for history queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string, matched against record
	// topics and content.
	Query string

	// Kind filters by generation kind.
	Kind types.GenerationKind

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Kind == ""
}

// Retrieve queries the history with optional full-text search and a kind
// filter. Full-text queries are ranked by relevance; otherwise records
// come back newest first.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.GenerationRecord, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT r.id, r.kind, r.topic, r.platform, r.length, r.period,
				r.count, r.model, r.content, r.created_at, records_fts.rank
			FROM records_fts
			JOIN records r ON r.rowid = records_fts.rowid
			WHERE records_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT r.id, r.kind, r.topic, r.platform, r.length, r.period,
				r.count, r.model, r.content, r.created_at, 0 AS rank
			FROM records r
			WHERE 1=1`)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND r.kind = ?`)
		args = append(args, string(opts.Kind))
	}

	if useFTS {
		qb.WriteString(` ORDER BY records_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY r.created_at DESC`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var results []types.GenerationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}

	return results, rows.Err()
}
