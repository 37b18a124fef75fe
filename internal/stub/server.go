package stub

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Handler serves the REST contract the console client targets, backed by
// the in-memory store.
type Handler struct {
	store *Store
	log   zerolog.Logger
}

func NewHandler(store *Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func NewRouter(h *Handler, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(h.log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "resources": h.store.resources()})
	})

	apiGroup := router.Group("/api")
	apiGroup.GET("/:resource", h.list)
	apiGroup.POST("/:resource", h.create)
	apiGroup.GET("/:resource/:id", h.get)
	apiGroup.PUT("/:resource/:id", h.update)
	apiGroup.DELETE("/:resource/:id", h.remove)

	return router
}

// Query keys with a fixed meaning; everything else is a resource filter.
var reservedQueryKeys = map[string]bool{
	"page":        true,
	"pageSize":    true,
	"search_term": true,
}

func (h *Handler) list(c *gin.Context) {
	resource := c.Param("resource")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	search := c.Query("search_term")

	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if reservedQueryKeys[key] || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	result, ok := h.store.List(resource, search, filters, page, pageSize)
	if !ok {
		h.unknownResource(c, resource)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Items,
		"pagination": gin.H{
			"total":      result.Total,
			"totalPages": result.TotalPages,
		},
	})
}

func (h *Handler) get(c *gin.Context) {
	resource := c.Param("resource")
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, found := h.store.Get(resource, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Élément introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (h *Handler) create(c *gin.Context) {
	resource := c.Param("resource")

	var body record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Corps de requête invalide"})
		return
	}

	created, ok := h.store.Create(resource, body)
	if !ok {
		h.unknownResource(c, resource)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *Handler) update(c *gin.Context) {
	resource := c.Param("resource")
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var body record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Corps de requête invalide"})
		return
	}

	updated, found := h.store.Update(resource, id, body)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Élément introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *Handler) remove(c *gin.Context) {
	resource := c.Param("resource")
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if !h.store.Delete(resource, id) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Élément introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Supprimé"})
}

func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Identifiant invalide"})
		return 0, false
	}
	return id, true
}

func (h *Handler) unknownResource(c *gin.Context, resource string) {
	h.log.Warn().Str("resource", resource).Msg("unknown resource requested")
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ressource inconnue"})
}

const requestIDKey = "request_id"

// requestID tags each request for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		rid, _ := c.Get(requestIDKey)
		log.Info().
			Any("request_id", rid).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
