package requestid

import (
	"crypto/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const (
	Header = "X-Request-Id"
	CtxKey = "request_id"
)

// New はリクエストごとに ULID を採番するミドルウェアを返す。
// クライアントが X-Request-Id を付けてきた場合はそれを使う。
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			t := time.Now().UTC()
			entropy := ulid.Monotonic(rand.Reader, 0)
			id = ulid.MustNew(ulid.Timestamp(t), entropy).String()
		}
		c.Set(CtxKey, id)
		c.Header(Header, id)
		c.Next()
	}
}
