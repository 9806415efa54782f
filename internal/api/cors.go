package api

import (
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// OriginList is the set of frontend origins allowed to call the API. It can be
// replaced while the server is running.
type OriginList struct {
	origins atomic.Pointer[[]string]
}

func NewOriginList(origins []string) *OriginList {
	l := &OriginList{}
	l.Set(origins)
	return l
}

func (l *OriginList) Set(origins []string) {
	cp := append([]string(nil), origins...)
	l.origins.Store(&cp)
}

// Allowed reports whether origin may call the API. "*" allows every origin.
func (l *OriginList) Allowed(origin string) bool {
	for _, o := range *l.origins.Load() {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// CORS restricts cross-origin callers to the configured frontend origins.
func CORS(origins *OriginList) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  origins.Allowed,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
