package interfaces

import (
	"context"

	"thaki_platform/internal/domain/entities"
)

// IKeyValueStore is the flat durable layer under the record store: a fixed
// set of named entries, each holding a JSON blob or a scalar string. Get
// returns (nil, nil) for a missing entry; Set replaces the whole entry in a
// single call.
//
// Backends: DynamoDB, SQLite, in-memory (tests).
type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// IRecordRepository is the typed record store the use cases depend on.
//
// Collections come back in stored order (insertion order; reviews are kept
// newest-first by their mutator). SaveXxx replaces the whole collection.
// A corrupt or unparsable entry is logged and read as empty rather than
// failing the caller.
type IRecordRepository interface {
	Interests(ctx context.Context) ([]entities.ServiceInterest, error)
	SaveInterests(ctx context.Context, list []entities.ServiceInterest) error

	Reviews(ctx context.Context) ([]entities.Review, error)
	SaveReviews(ctx context.Context, list []entities.Review) error

	Payments(ctx context.Context) ([]entities.PaymentRequest, error)
	SavePayments(ctx context.Context, list []entities.PaymentRequest) error

	Messages(ctx context.Context) ([]entities.ContactMessage, error)
	SaveMessages(ctx context.Context, list []entities.ContactMessage) error

	Applications(ctx context.Context) ([]entities.JobApplication, error)
	SaveApplications(ctx context.Context, list []entities.JobApplication) error

	Orders(ctx context.Context) ([]entities.StockOrder, error)
	SaveOrders(ctx context.Context, list []entities.StockOrder) error

	VisitorCount(ctx context.Context) (int, error)
	IncrementVisitorCount(ctx context.Context) (int, error)

	// HeroImage returns the cached hero image, or "" when none was stored
	// on the current calendar day.
	HeroImage(ctx context.Context) (string, error)
	SetHeroImage(ctx context.Context, image string) error
}
