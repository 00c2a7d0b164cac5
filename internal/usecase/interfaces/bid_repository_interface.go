package interfaces

import (
	"context"

	"assessoria_licitacoes/internal/domain/entities"
)

//go:generate mockgen -source=bid_repository_interface.go -destination=mocks/bid_repository_interface_mock.go -package=mock_interfaces

// IBidRepository is the Bid Record Store.
//
// Contract:
//   - Get/Patch return a zero-valued Bid (empty ID) when the licitação does not exist.
//   - Patch is all-or-nothing; there are no transactions or lock tokens, so concurrent
//     read-modify-write cycles are last-write-wins.

type IBidRepository interface {
	Create(ctx context.Context, b entities.Bid) (entities.Bid, error)
	Get(ctx context.Context, id string) (entities.Bid, error)
	List(ctx context.Context) ([]entities.Bid, error)
	Patch(ctx context.Context, id string, patch entities.BidPatch) (entities.Bid, error)
}
