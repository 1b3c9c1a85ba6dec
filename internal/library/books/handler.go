package books

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apierror"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /books
	r.POST("/books", h.AddBook)
	// GET /books (一覧・検索)
	r.GET("/books", h.ListBooks)
}

// AddBook godoc
// @Summary  書籍登録
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    book body CreateBookRequest true "book"
// @Success  201 {object} CreatedResponse
// @Failure  422 {object} apierror.ErrorResponse
// @Router   /books [post]
func (h *Handler) AddBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Body(apierror.CodeUnprocessable, err.Error()))
		return
	}

	id, err := h.svc.AddBook(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierror.ToHTTPStatus(err), apierror.FromErr(err))
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ListBooks godoc
// @Summary  書籍一覧・検索
// @Tags     books
// @Produce  json
// @Param    q query string false "title/author/categories の部分一致"
// @Success  200 {array} BookResponse
// @Router   /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	res, err := h.svc.ListBooks(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(apierror.ToHTTPStatus(err), apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
