package api

import (
	"net/http"

	reqdto "residencial-admin/internal/handler/dto/request"
	resdto "residencial-admin/internal/handler/dto/response"
	"residencial-admin/internal/handler/httperr"
	"residencial-admin/internal/usecase/commands"
	"residencial-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Search residents
// @Description Case-insensitive match on name, apartment or email; empty q lists everyone
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search text"
// @Success 200 {array} resdto.UserResponse
// @Router /api/users [get]
func (h *UserHandler) Search(c *gin.Context) {
	list, err := h.q.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsers(list))
}

// @Summary Create resident
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "Resident"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	u, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUser(*u))
}
