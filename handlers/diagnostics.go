package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huts-app/huts-backend/internal/store"
)

// RegisterDiagnostics registers the liveness root and the /test endpoint the
// frontend uses to verify database connectivity. /test never returns an HTTP
// error: store failures are rendered inline in the payload.
func RegisterDiagnostics(r *gin.Engine, st store.Store, databaseURLSet bool) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Huts-style backend running"})
	})

	r.GET("/test", func(c *gin.Context) {
		resp := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}
		if st == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
		cols, err := st.Collections(c.Request.Context())
		if err != nil {
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			resp["database"] = "❌ Error: " + msg
			c.JSON(http.StatusOK, resp)
			return
		}
		if len(cols) > 10 {
			cols = cols[:10]
		}
		resp["database"] = "✅ Connected & Working"
		if databaseURLSet {
			resp["database_url"] = "✅ Set"
		} else {
			resp["database_url"] = "❌ Not Set"
		}
		resp["database_name"] = st.Name()
		resp["connection_status"] = "Connected"
		resp["collections"] = cols
		c.JSON(http.StatusOK, resp)
	})
}
