package membersource

import (
	"context"

	"github.com/trinity-got/member-query-api/internal/domain"
)

// Source supplies the full, pre-populated member roster.
//
// Result ordering expectations:
// - GetAllMembers returns members in collection order (ascending id) so that
//   every consumer sees the same deterministic tie-break basis.
// - The returned slice is a fresh copy; callers may retain or reorder it.
//
// The roster is immutable: it is loaded once before any query is issued and
// never changes afterward.
type Source interface {
	GetAllMembers(ctx context.Context) ([]domain.Member, error)
}
