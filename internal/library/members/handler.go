package members

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apierror"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /members
	r.POST("/members", h.AddMember)
	// GET /members
	r.GET("/members", h.ListMembers)
}

// AddMember godoc
// @Summary  会員登録
// @Tags     members
// @Accept   json
// @Produce  json
// @Param    member body CreateMemberRequest true "member"
// @Success  201 {object} CreatedResponse
// @Failure  422 {object} apierror.ErrorResponse "メールアドレス不正など"
// @Router   /members [post]
func (h *Handler) AddMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Body(apierror.CodeUnprocessable, err.Error()))
		return
	}

	id, err := h.svc.AddMember(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierror.ToHTTPStatus(err), apierror.FromErr(err))
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ListMembers godoc
// @Summary  会員一覧
// @Tags     members
// @Produce  json
// @Success  200 {array} MemberResponse
// @Router   /members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	res, err := h.svc.ListMembers(c.Request.Context())
	if err != nil {
		c.JSON(apierror.ToHTTPStatus(err), apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
