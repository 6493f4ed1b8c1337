package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huts-app/huts-backend/internal/listing"
	"github.com/huts-app/huts-backend/internal/store"
	"github.com/huts-app/huts-backend/pkg/logger"
	"github.com/huts-app/huts-backend/pkg/metrics"
)

// RegisterListingRoutes registers the property and booking endpoints. st may
// be nil when no database is configured: reads then degrade to empty results
// and writes are rejected with 503.
func RegisterListingRoutes(r *gin.Engine, st store.Store) {
	r.GET("/api/properties", func(c *gin.Context) {
		q := c.Query("q")
		location := c.Query("location")
		minPrice, ferr := priceParam(c, "min_price")
		if ferr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []listing.FieldError{*ferr}})
			return
		}
		maxPrice, ferr := priceParam(c, "max_price")
		if ferr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []listing.FieldError{*ferr}})
			return
		}

		views := []listing.PropertyView{}
		if st == nil {
			c.JSON(http.StatusOK, views)
			return
		}
		filter := listing.BuildFilter(q, location, minPrice, maxPrice)
		metrics.StoreQueries.WithLabelValues(listing.PropertyCollection).Inc()
		docs, err := st.Find(c.Request.Context(), listing.PropertyCollection, filter)
		if err != nil {
			logger.Warnf("property query failed: %v", err)
			c.JSON(http.StatusOK, views)
			return
		}
		for _, doc := range docs {
			views = append(views, listing.ViewFromDoc(doc))
		}
		c.JSON(http.StatusOK, views)
	})

	r.POST("/api/properties", func(c *gin.Context) {
		var prop listing.Property
		if err := c.ShouldBindJSON(&prop); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		if errs := prop.Validate(); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
			return
		}
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "storage unavailable"})
			return
		}
		id, err := st.Insert(c.Request.Context(), listing.PropertyCollection, prop.Document())
		if err != nil {
			logger.Errorf("property insert failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "storage unavailable"})
			return
		}
		metrics.StoreInserts.WithLabelValues(listing.PropertyCollection).Inc()
		c.JSON(http.StatusCreated, gin.H{"id": id})
	})

	r.GET("/api/properties/:id", func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
			return
		}
		doc, err := st.FindByID(c.Request.Context(), listing.PropertyCollection, c.Param("id"))
		if err != nil {
			if err != store.ErrNotFound {
				logger.Warnf("property lookup failed: %v", err)
			}
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
			return
		}
		c.JSON(http.StatusOK, listing.ViewFromDoc(doc))
	})

	r.POST("/api/bookings", func(c *gin.Context) {
		var booking listing.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		if errs := booking.Validate(); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
			return
		}
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "storage unavailable"})
			return
		}
		id, err := st.Insert(c.Request.Context(), listing.BookingCollection, booking.Document())
		if err != nil {
			logger.Errorf("booking insert failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "storage unavailable"})
			return
		}
		metrics.StoreInserts.WithLabelValues(listing.BookingCollection).Inc()
		c.JSON(http.StatusCreated, gin.H{"id": id, "status": "received"})
	})
}

func priceParam(c *gin.Context, name string) (*float64, *listing.FieldError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &listing.FieldError{Field: name, Message: "value is not a valid float"}
	}
	return &v, nil
}
