package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/huts-app/huts-backend/handlers"
	"github.com/huts-app/huts-backend/internal/config"
	"github.com/huts-app/huts-backend/internal/database"
	"github.com/huts-app/huts-backend/internal/listing"
	listinghandler "github.com/huts-app/huts-backend/internal/listing/handler"
	"github.com/huts-app/huts-backend/internal/store"
	"github.com/huts-app/huts-backend/pkg/logger"
	"github.com/huts-app/huts-backend/pkg/metrics"
)

var startTime = time.Now()

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: database=%v name=%s", cfg.Database.URL != "", cfg.Database.Name)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// The API is consumed by arbitrary frontends; allow everything.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Connect to MongoDB when configured. Connection failure is not fatal:
	// the service keeps serving with reads degraded to empty results.
	ctx := context.Background()
	var st store.Store
	if cfg.Database.URL != "" {
		// retry with backoff to tolerate startup races against the database
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.Database.URL, cfg.Database.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts, continuing without storage: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			st = store.NewMongoStore(client.Database(cfg.Database.Name))
		}
	} else {
		logger.Warnf("DATABASE_URL not set, running without storage")
	}

	// seed demo listings before accepting traffic; failure is non-fatal
	if err := listing.Seed(ctx, st); err != nil {
		logger.Warnf("seeding sample properties failed: %v", err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// ready only reports not_ready when a database was configured but could
	// not be reached; running intentionally store-less is still ready
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"storage": st != nil}
		if cfg.Database.URL != "" && st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterDiagnostics(r, st, cfg.Database.URL != "")
	listinghandler.RegisterListingRoutes(r, st)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting huts backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
