package listing

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/huts-app/huts-backend/internal/store"
	"github.com/huts-app/huts-backend/pkg/metrics"
)

// SampleProperties returns the demo listings inserted on first startup.
func SampleProperties() []bson.M {
	return []bson.M{
		{
			"title":           "Cozy Mountain Hut",
			"description":     "A charming wooden hut nestled in the mountains with breathtaking views.",
			"location":        "Aspen, Colorado",
			"country":         "USA",
			"price_per_night": 220.0,
			"max_guests":      4,
			"bedrooms":        2,
			"bathrooms":       1,
			"rating":          4.8,
			"review_count":    128,
			"amenities":       []string{"Fireplace", "Hot tub", "Wi-Fi", "Kitchen"},
			"image_urls": []string{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750",
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d95",
			},
		},
		{
			"title":           "Lakeside Cabin Retreat",
			"description":     "Quiet cabin right on the lake. Perfect for fishing and sunsets.",
			"location":        "Lake Tahoe, California",
			"country":         "USA",
			"price_per_night": 180.0,
			"max_guests":      5,
			"bedrooms":        2,
			"bathrooms":       2,
			"rating":          4.6,
			"review_count":    86,
			"amenities":       []string{"Canoe", "Deck", "Grill", "Parking"},
			"image_urls": []string{
				"https://images.unsplash.com/photo-1501183638710-841dd1904471",
				"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee",
			},
		},
		{
			"title":           "Nordic Forest Lodge",
			"description":     "Modern Scandinavian lodge surrounded by pine forests.",
			"location":        "Rovaniemi, Finland",
			"country":         "Finland",
			"price_per_night": 260.0,
			"max_guests":      6,
			"bedrooms":        3,
			"bathrooms":       2,
			"rating":          4.9,
			"review_count":    203,
			"amenities":       []string{"Sauna", "Heated floors", "Wi-Fi", "Ski-in"},
			"image_urls": []string{
				"https://images.unsplash.com/photo-1519999482648-25049ddd37b1",
				"https://images.unsplash.com/photo-1544989164-31dc3c645987",
			},
		},
	}
}

// Seed inserts the sample listings once, when the property collection is
// empty. It runs before the server accepts traffic; a failure leaves the
// collection as-is and is reported to the caller, who logs it and continues.
// The count-then-insert sequence is not transactional, which is acceptable
// only because nothing else writes during startup.
func Seed(ctx context.Context, st store.Store) error {
	if st == nil {
		return nil
	}
	count, err := st.Count(ctx, PropertyCollection)
	if err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if count != 0 {
		return nil
	}
	for _, doc := range SampleProperties() {
		if _, err := st.Insert(ctx, PropertyCollection, doc); err != nil {
			return fmt.Errorf("insert sample property: %w", err)
		}
		metrics.SeededDocuments.Inc()
	}
	return nil
}
