package messaging

import (
	"context"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// Publisher defines the interface for publishing ledger events to the message
// broker consumed by indexers
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a ledger event
	PublishEvent(ctx context.Context, event *domain.NFTEvent) error
	// Close closes the connection
	Close()
}
