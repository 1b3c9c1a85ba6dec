package diag

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/docstore"
)

// 稼働確認と接続診断。ストア側の障害はレスポンス本文で報告し、
// このエンドポイント自体は常に200を返す。

type Handler struct {
	store *docstore.Store
}

func RegisterRoutes(r gin.IRoutes, store *docstore.Store) {
	h := &Handler{store: store}

	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)
	r.GET("/schema", h.Schema)
}

// TestResponse は GET /test の診断結果
type TestResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root godoc
// @Summary  稼働確認
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Digital Library Backend is running"})
}

// TestDatabase godoc
// @Summary  ストア接続診断
// @Produce  json
// @Success  200 {object} TestResponse
// @Router   /test [get]
func (h *Handler) TestDatabase(c *gin.Context) {
	res := TestResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envStatus("DATABASE_URL"),
		DatabaseName:     envStatus("DATABASE_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store == nil {
		c.JSON(http.StatusOK, res)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		res.Database = "error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, res)
		return
	}

	names, err := h.store.Collections(ctx)
	if err != nil {
		res.Database = "connected but error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, res)
		return
	}
	if len(names) > 10 {
		names = names[:10]
	}

	res.Database = "connected"
	res.ConnectionStatus = "connected"
	res.Collections = names
	c.JSON(http.StatusOK, res)
}

// Schema godoc
// @Summary  コレクションスキーマ（DBビューア用）
// @Produce  json
// @Success  200 {object} map[string]map[string]FieldSchema
// @Router   /schema [get]
func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, CollectionSchemas())
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
