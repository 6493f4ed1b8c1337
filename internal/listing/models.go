package listing

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names used in the document store.
const (
	PropertyCollection = "property"
	BookingCollection  = "booking"
)

// FieldError describes one schema violation in an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Property is the inbound payload for a rental listing. Numeric fields that
// are required or carry non-zero defaults are pointers so an absent field can
// be told apart from an explicit zero.
type Property struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Country       *string  `json:"country"`
	PricePerNight *float64 `json:"price_per_night"`
	MaxGuests     *int     `json:"max_guests"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	Rating        *float64 `json:"rating"`
	ReviewCount   *int     `json:"review_count"`
	Amenities     []string `json:"amenities"`
	ImageURLs     []string `json:"image_urls"`
}

// Validate checks field-level constraints and returns one FieldError per
// violation. An empty slice means the payload is valid.
func (p *Property) Validate() []FieldError {
	var errs []FieldError
	if p.Title == "" {
		errs = append(errs, FieldError{"title", "field required"})
	}
	if p.Description == "" {
		errs = append(errs, FieldError{"description", "field required"})
	}
	if p.Location == "" {
		errs = append(errs, FieldError{"location", "field required"})
	}
	switch {
	case p.PricePerNight == nil:
		errs = append(errs, FieldError{"price_per_night", "field required"})
	case *p.PricePerNight < 0:
		errs = append(errs, FieldError{"price_per_night", "must be greater than or equal to 0"})
	}
	switch {
	case p.MaxGuests == nil:
		errs = append(errs, FieldError{"max_guests", "field required"})
	case *p.MaxGuests < 1:
		errs = append(errs, FieldError{"max_guests", "must be greater than or equal to 1"})
	}
	if p.Bedrooms != nil && *p.Bedrooms < 0 {
		errs = append(errs, FieldError{"bedrooms", "must be greater than or equal to 0"})
	}
	if p.Bathrooms != nil && *p.Bathrooms < 0 {
		errs = append(errs, FieldError{"bathrooms", "must be greater than or equal to 0"})
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		errs = append(errs, FieldError{"rating", "must be between 0 and 5"})
	}
	return errs
}

// Document converts a validated payload into the persisted shape, applying
// the schema defaults (bedrooms/bathrooms 1, review_count 0, empty slices).
func (p *Property) Document() bson.M {
	doc := bson.M{
		"title":           p.Title,
		"description":     p.Description,
		"location":        p.Location,
		"price_per_night": *p.PricePerNight,
		"max_guests":      *p.MaxGuests,
		"bedrooms":        1,
		"bathrooms":       1,
		"review_count":    0,
		"amenities":       []string{},
		"image_urls":      []string{},
	}
	if p.Country != nil {
		doc["country"] = *p.Country
	}
	if p.Bedrooms != nil {
		doc["bedrooms"] = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		doc["bathrooms"] = *p.Bathrooms
	}
	if p.Rating != nil {
		doc["rating"] = *p.Rating
	}
	if p.ReviewCount != nil {
		doc["review_count"] = *p.ReviewCount
	}
	if p.Amenities != nil {
		doc["amenities"] = p.Amenities
	}
	if p.ImageURLs != nil {
		doc["image_urls"] = p.ImageURLs
	}
	return doc
}

// Booking is the inbound payload for a booking inquiry. The referenced
// property id is stored as-is and is not checked against the property
// collection; check_out is not required to come after check_in.
type Booking struct {
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     *int    `json:"guests"`
	Message    *string `json:"message"`
}

const dateLayout = "2006-01-02"

func (b *Booking) Validate() []FieldError {
	var errs []FieldError
	if b.PropertyID == "" {
		errs = append(errs, FieldError{"property_id", "field required"})
	}
	if b.Name == "" {
		errs = append(errs, FieldError{"name", "field required"})
	}
	if b.Email == "" {
		errs = append(errs, FieldError{"email", "field required"})
	}
	if b.CheckIn == "" {
		errs = append(errs, FieldError{"check_in", "field required"})
	} else if _, err := time.Parse(dateLayout, b.CheckIn); err != nil {
		errs = append(errs, FieldError{"check_in", "invalid date format, expected YYYY-MM-DD"})
	}
	if b.CheckOut == "" {
		errs = append(errs, FieldError{"check_out", "field required"})
	} else if _, err := time.Parse(dateLayout, b.CheckOut); err != nil {
		errs = append(errs, FieldError{"check_out", "invalid date format, expected YYYY-MM-DD"})
	}
	switch {
	case b.Guests == nil:
		errs = append(errs, FieldError{"guests", "field required"})
	case *b.Guests < 1:
		errs = append(errs, FieldError{"guests", "must be greater than or equal to 1"})
	}
	return errs
}

func (b *Booking) Document() bson.M {
	doc := bson.M{
		"property_id": b.PropertyID,
		"name":        b.Name,
		"email":       b.Email,
		"check_in":    b.CheckIn,
		"check_out":   b.CheckOut,
		"guests":      *b.Guests,
	}
	if b.Phone != nil {
		doc["phone"] = *b.Phone
	}
	if b.Message != nil {
		doc["message"] = *b.Message
	}
	return doc
}

// PropertyView is the response shape for a stored property, with defaults
// filled in for fields missing from older or hand-inserted documents.
type PropertyView struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Country       *string  `json:"country"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Rating        *float64 `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Amenities     []string `json:"amenities"`
	ImageURLs     []string `json:"image_urls"`
}

// ViewFromDoc projects a stored document into the response shape: required
// text fields fall back to "", max_guests/bedrooms/bathrooms to 1,
// review_count to 0, sequences to empty; country and rating stay optional.
func ViewFromDoc(doc bson.M) PropertyView {
	return PropertyView{
		ID:            docID(doc["_id"]),
		Title:         docString(doc["title"]),
		Description:   docString(doc["description"]),
		Location:      docString(doc["location"]),
		Country:       docOptString(doc["country"]),
		PricePerNight: docFloat(doc["price_per_night"], 0),
		MaxGuests:     docInt(doc["max_guests"], 1),
		Bedrooms:      docInt(doc["bedrooms"], 1),
		Bathrooms:     docInt(doc["bathrooms"], 1),
		Rating:        docOptFloat(doc["rating"]),
		ReviewCount:   docInt(doc["review_count"], 0),
		Amenities:     docStrings(doc["amenities"]),
		ImageURLs:     docStrings(doc["image_urls"]),
	}
}

func docID(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func docString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func docOptString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func docFloat(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

func docOptFloat(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	}
	return nil
}

func docInt(v interface{}, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

func docStrings(v interface{}) []string {
	switch seq := v.(type) {
	case []string:
		return seq
	case primitive.A:
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}
