package repository

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase/interfaces"
)

// Entry names of the stored-state layout. There is no schema version field;
// new optional record fields must tolerate older stored JSON lacking them.
const (
	keyInterests     = "interests"
	keyReviews       = "reviews"
	keyPayments      = "payments"
	keyApplications  = "applications"
	keyOrders        = "orders"
	keyMessages      = "messages"
	keyVisitorCount  = "visitor-count"
	keyHeroImage     = "hero-image"
	keyHeroImageDate = "hero-image-date"
)

// The counter reads as this value until the first increment is stored.
const visitorCountSeed = 12450

// RecordRepository implements the typed record store on top of a flat
// key-value backend: every collection is one JSON array read and rewritten
// wholesale on mutation.

type RecordRepository struct {
	kv  interfaces.IKeyValueStore
	now func() time.Time
}

var _ interfaces.IRecordRepository = (*RecordRepository)(nil)

func NewRecordRepository(kv interfaces.IKeyValueStore) *RecordRepository {
	return &RecordRepository{kv: kv, now: time.Now}
}

// loadCollection reads one JSON-array entry. A corrupt entry is reported to
// the operator log and read as empty; callers never see a decode failure.
func loadCollection[T any](ctx context.Context, kv interfaces.IKeyValueStore, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Printf("[records][repository] corrupt entry key=%s len=%d treated as empty err=%v", key, len(raw), err)
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

func storeCollection[T any](ctx context.Context, kv interfaces.IKeyValueStore, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, b)
}

func (r *RecordRepository) Interests(ctx context.Context) ([]entities.ServiceInterest, error) {
	return loadCollection[entities.ServiceInterest](ctx, r.kv, keyInterests)
}

func (r *RecordRepository) SaveInterests(ctx context.Context, list []entities.ServiceInterest) error {
	return storeCollection(ctx, r.kv, keyInterests, list)
}

func (r *RecordRepository) Reviews(ctx context.Context) ([]entities.Review, error) {
	return loadCollection[entities.Review](ctx, r.kv, keyReviews)
}

func (r *RecordRepository) SaveReviews(ctx context.Context, list []entities.Review) error {
	return storeCollection(ctx, r.kv, keyReviews, list)
}

func (r *RecordRepository) Payments(ctx context.Context) ([]entities.PaymentRequest, error) {
	return loadCollection[entities.PaymentRequest](ctx, r.kv, keyPayments)
}

func (r *RecordRepository) SavePayments(ctx context.Context, list []entities.PaymentRequest) error {
	return storeCollection(ctx, r.kv, keyPayments, list)
}

func (r *RecordRepository) Messages(ctx context.Context) ([]entities.ContactMessage, error) {
	return loadCollection[entities.ContactMessage](ctx, r.kv, keyMessages)
}

func (r *RecordRepository) SaveMessages(ctx context.Context, list []entities.ContactMessage) error {
	return storeCollection(ctx, r.kv, keyMessages, list)
}

func (r *RecordRepository) Applications(ctx context.Context) ([]entities.JobApplication, error) {
	return loadCollection[entities.JobApplication](ctx, r.kv, keyApplications)
}

func (r *RecordRepository) SaveApplications(ctx context.Context, list []entities.JobApplication) error {
	return storeCollection(ctx, r.kv, keyApplications, list)
}

func (r *RecordRepository) Orders(ctx context.Context) ([]entities.StockOrder, error) {
	return loadCollection[entities.StockOrder](ctx, r.kv, keyOrders)
}

func (r *RecordRepository) SaveOrders(ctx context.Context, list []entities.StockOrder) error {
	return storeCollection(ctx, r.kv, keyOrders, list)
}

func (r *RecordRepository) VisitorCount(ctx context.Context) (int, error) {
	raw, err := r.kv.Get(ctx, keyVisitorCount)
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return visitorCountSeed, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		log.Printf("[records][repository] corrupt entry key=%s value=%q treated as unset err=%v", keyVisitorCount, raw, err)
		return visitorCountSeed, nil
	}
	return n, nil
}

func (r *RecordRepository) IncrementVisitorCount(ctx context.Context) (int, error) {
	current, err := r.VisitorCount(ctx)
	if err != nil {
		return 0, err
	}

	next := current + 1
	if err := r.kv.Set(ctx, keyVisitorCount, []byte(strconv.Itoa(next))); err != nil {
		return 0, err
	}
	return next, nil
}

func (r *RecordRepository) HeroImage(ctx context.Context) (string, error) {
	date, err := r.kv.Get(ctx, keyHeroImageDate)
	if err != nil {
		return "", err
	}
	if string(date) != r.today() {
		return "", nil
	}

	img, err := r.kv.Get(ctx, keyHeroImage)
	if err != nil {
		return "", err
	}
	return string(img), nil
}

func (r *RecordRepository) SetHeroImage(ctx context.Context, image string) error {
	if err := r.kv.Set(ctx, keyHeroImage, []byte(image)); err != nil {
		return err
	}
	return r.kv.Set(ctx, keyHeroImageDate, []byte(r.today()))
}

func (r *RecordRepository) today() string {
	return r.now().UTC().Format("2006-01-02")
}
