package listing

import "go.mongodb.org/mongo-driver/bson"

// BuildFilter turns the optional search parameters of the property listing
// endpoint into a document-store filter. All provided conditions combine with
// AND; a free-text query matches title, description or location as a
// case-insensitive substring. Absent parameters add no clause at all, so a
// missing min_price is not the same as min_price=0.
func BuildFilter(q, location string, minPrice, maxPrice *float64) bson.M {
	filter := bson.M{}
	if q != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": q, "$options": "i"}},
			{"description": bson.M{"$regex": q, "$options": "i"}},
			{"location": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	if location != "" {
		filter["location"] = bson.M{"$regex": location, "$options": "i"}
	}
	price := bson.M{}
	if minPrice != nil {
		price["$gte"] = *minPrice
	}
	if maxPrice != nil {
		price["$lte"] = *maxPrice
	}
	if len(price) > 0 {
		filter["price_per_night"] = price
	}
	return filter
}
