package loans

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apierror"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /loans
	r.POST("/loans", h.CreateLoan)
	// POST /loans/:loan_id/return
	r.POST("/loans/:loan_id/return", h.ReturnLoan)
	// GET /loans (状態絞り込み対応)
	r.GET("/loans", h.ListLoans)
}

// CreateLoan godoc
// @Summary  貸出登録
// @Tags     loans
// @Accept   json
// @Produce  json
// @Param    loan body CreateLoanRequest true "loan"
// @Success  201 {object} CreatedResponse
// @Failure  400 {object} apierror.ErrorResponse "ID不正・在庫なし"
// @Failure  404 {object} apierror.ErrorResponse "書籍または会員が存在しない"
// @Router   /loans [post]
func (h *Handler) CreateLoan(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Body(apierror.CodeUnprocessable, err.Error()))
		return
	}

	id, err := h.svc.CreateLoan(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierror.ToHTTPStatus(err), apierror.FromErr(err))
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ReturnLoan godoc
// @Summary  返却登録
// @Tags     loans
// @Produce  json
// @Param    loan_id path string true "loan id"
// @Success  200 {object} ReturnResponse
// @Failure  400 {object} apierror.ErrorResponse "ID不正・返却済み"
// @Failure  404 {object} apierror.ErrorResponse "貸出が存在しない"
// @Router   /loans/{loan_id}/return [post]
func (h *Handler) ReturnLoan(c *gin.Context) {
	if err := h.svc.ReturnLoan(c.Request.Context(), c.Param("loan_id")); err != nil {
		c.JSON(apierror.ToHTTPStatus(err), apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, ReturnResponse{Status: "ok"})
}

// ListLoans godoc
// @Summary  貸出一覧
// @Tags     loans
// @Produce  json
// @Param    status query string false "borrowed / returned / overdue"
// @Success  200 {array} LoanResponse
// @Router   /loans [get]
func (h *Handler) ListLoans(c *gin.Context) {
	res, err := h.svc.ListLoans(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(apierror.ToHTTPStatus(err), apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
