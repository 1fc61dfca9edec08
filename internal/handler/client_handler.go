package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-meet/roomadmin/internal/dto/response"
	"github.com/go-meet/roomadmin/internal/service"
)

type ClientHandler struct {
	updater *service.ClientUpdater
}

func NewClientHandler(updater *service.ClientUpdater) *ClientHandler {
	return &ClientHandler{
		updater: updater,
	}
}

// Update godoc
// @Summary Update the meeting client
// @Description Download the client bundle and replace the current install
// @Tags client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/client/update [post]
func (h *ClientHandler) Update(c *gin.Context) {
	if err := h.updater.Update(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "Client was updated successfully", nil)
}
