package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// FeeConfigDocument is the stored form of model.FeeConfig. Amounts are Decimal128
// so they round-trip without float error.
type FeeConfigDocument struct {
	FeeType               string               `bson:"fee_type"`
	FlatFee               primitive.Decimal128 `bson:"flat_fee"`
	PerMileFee            primitive.Decimal128 `bson:"per_mile_fee"`
	PerItemFee            primitive.Decimal128 `bson:"per_item_fee"`
	FreeDeliveryThreshold primitive.Decimal128 `bson:"free_delivery_threshold"`
}

// StoreSettingsDocument is one version of a location's settings.
type StoreSettingsDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	LocationID string             `bson:"location_id"`
	Name       string             `bson:"name"`
	Delivery   FeeConfigDocument  `bson:"delivery"`
	Hours      map[string]string  `bson:"hours,omitempty"`
	Version    int                `bson:"version"`
	Active     bool               `bson:"active"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
	UpdatedBy  string             `bson:"updated_by,omitempty"`
}

// StoreSettingsRepository stores versioned settings per location.
type StoreSettingsRepository struct {
	collection *mongo.Collection
}

// NewStoreSettingsRepository creates a new store settings repository.
func NewStoreSettingsRepository(db *MongoDB) *StoreSettingsRepository {
	return &StoreSettingsRepository{
		collection: db.StoreSettings,
	}
}

// GetActive returns the active settings of a location, or nil when there are none.
func (r *StoreSettingsRepository) GetActive(ctx context.Context, locationID string) (*model.StoreSettings, error) {
	var doc StoreSettingsDocument
	err := r.collection.FindOne(ctx, bson.M{"location_id": locationID, "active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active settings for %s: %w", locationID, err)
	}

	settings, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save stores settings as the new active version of its location. The previous
// active version is kept, deactivated, for history.
func (r *StoreSettingsRepository) Save(ctx context.Context, settings model.StoreSettings) (*model.StoreSettings, error) {
	version, err := r.latestVersion(ctx, settings.LocationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"location_id": settings.LocationID, "active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, fmt.Errorf("deactivate settings for %s: %w", settings.LocationID, err)
	}

	settings.Version = version + 1
	settings.Active = true
	settings.CreatedAt = now
	settings.UpdatedAt = now

	doc := newStoreSettingsDocument(settings)
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert settings for %s: %w", settings.LocationID, err)
	}

	settings.Hours = settings.Hours.Clone()
	return &settings, nil
}

// List returns the settings versions of a location, newest first.
func (r *StoreSettingsRepository) List(ctx context.Context, locationID string, limit int) ([]model.StoreSettings, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"location_id": locationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list settings for %s: %w", locationID, err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []StoreSettingsDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode settings for %s: %w", locationID, err)
	}

	out := make([]model.StoreSettings, 0, len(docs))
	for _, doc := range docs {
		s, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *StoreSettingsRepository) latestVersion(ctx context.Context, locationID string) (int, error) {
	var doc struct {
		Version int `bson:"version"`
	}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "version", Value: -1}}).
		SetProjection(bson.M{"version": 1})
	err := r.collection.FindOne(ctx, bson.M{"location_id": locationID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find latest settings version for %s: %w", locationID, err)
	}
	return doc.Version, nil
}

func newStoreSettingsDocument(s model.StoreSettings) StoreSettingsDocument {
	hours := make(map[string]string, len(s.Hours))
	for day, h := range s.Hours {
		if day.Valid() {
			hours[day.String()] = h
		}
	}
	return StoreSettingsDocument{
		LocationID: s.LocationID,
		Name:       s.Name,
		Delivery: FeeConfigDocument{
			FeeType:               string(s.Delivery.FeeType),
			FlatFee:               toDecimal128(s.Delivery.FlatFee),
			PerMileFee:            toDecimal128(s.Delivery.PerMileFee),
			PerItemFee:            toDecimal128(s.Delivery.PerItemFee),
			FreeDeliveryThreshold: toDecimal128(s.Delivery.FreeDeliveryThreshold),
		},
		Hours:     hours,
		Version:   s.Version,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		UpdatedBy: s.UpdatedBy,
	}
}

func (d StoreSettingsDocument) toModel() (model.StoreSettings, error) {
	fee := model.FeeConfig{FeeType: model.FeeType(d.Delivery.FeeType)}
	amounts := []struct {
		field string
		src   primitive.Decimal128
		dst   *decimal.Decimal
	}{
		{"flat_fee", d.Delivery.FlatFee, &fee.FlatFee},
		{"per_mile_fee", d.Delivery.PerMileFee, &fee.PerMileFee},
		{"per_item_fee", d.Delivery.PerItemFee, &fee.PerItemFee},
		{"free_delivery_threshold", d.Delivery.FreeDeliveryThreshold, &fee.FreeDeliveryThreshold},
	}
	for _, a := range amounts {
		v, err := fromDecimal128(a.src)
		if err != nil {
			return model.StoreSettings{}, fmt.Errorf("settings %s v%d: %s: %w", d.LocationID, d.Version, a.field, err)
		}
		*a.dst = v
	}

	hours := make(model.WeeklyHours, len(d.Hours))
	for name, h := range d.Hours {
		day, ok := model.ParseWeekday(name)
		if !ok {
			return model.StoreSettings{}, fmt.Errorf("settings %s v%d: unknown day %q", d.LocationID, d.Version, name)
		}
		hours[day] = h
	}

	return model.StoreSettings{
		LocationID: d.LocationID,
		Name:       d.Name,
		Delivery:   fee,
		Hours:      hours,
		Version:    d.Version,
		Active:     d.Active,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		UpdatedBy:  d.UpdatedBy,
	}, nil
}

func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		// more than 34 significant digits
		v, _ = primitive.ParseDecimal128(d.StringFixed(6))
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	if v.IsZero() {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(v.String())
}
