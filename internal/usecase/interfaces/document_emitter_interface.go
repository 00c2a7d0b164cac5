package interfaces

import (
	"context"

	"assessoria_licitacoes/internal/domain/entities"
)

//go:generate mockgen -source=document_emitter_interface.go -destination=mocks/document_emitter_interface_mock.go -package=mock_interfaces

// IDocumentEmitter renders the documents of a concluded dispute: the session minutes
// (ata da sessão) and the client's final proposal. It returns the stored object keys.
//
// Failures are reported to the caller but never affect dispute state.
type IDocumentEmitter interface {
	Emit(ctx context.Context, bid entities.Bid, company entities.CompanyConfig, operator entities.Operator) ([]string, error)
	// Link returns a time-limited download URL for a key previously returned by Emit.
	Link(ctx context.Context, key string) (string, error)
}

// IObjectStorage stores rendered artifacts.
type IObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignedURL(ctx context.Context, key string) (string, error)
}
