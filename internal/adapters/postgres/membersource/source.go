package membersource

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trinity-got/member-query-api/internal/domain"
	"github.com/trinity-got/member-query-api/internal/ports/out/membersource"
)

// Source is a Postgres implementation of membersource.Source. It only reads:
// the members table is populated out-of-band and treated as immutable while
// the service runs.
type Source struct {
	pool *pgxpool.Pool
}

var _ membersource.Source = (*Source)(nil)

func NewSource(pool *pgxpool.Pool) *Source {
	return &Source{pool: pool}
}

// GetAllMembers loads the full roster in collection order (ascending id).
func (s *Source) GetAllMembers(ctx context.Context) ([]domain.Member, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, name, house, title, salary, dob
		FROM members
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		var row memberRow
		if err := rows.Scan(&row.ID, &row.Name, &row.House, &row.Title, &row.Salary, &row.DOB); err != nil {
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		m, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate member rows: %w", err)
	}
	return out, nil
}
