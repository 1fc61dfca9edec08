package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-meet/roomadmin/internal/dto/request"
	"github.com/go-meet/roomadmin/internal/dto/response"
	"github.com/go-meet/roomadmin/internal/service"
)

type RecordingHandler struct {
	recordingService *service.RecordingService
}

func NewRecordingHandler(recordingService *service.RecordingService) *RecordingHandler {
	return &RecordingHandler{
		recordingService: recordingService,
	}
}

// List godoc
// @Summary List recordings
// @Description List recordings for one room, fetched from the meeting server
// @Tags recordings
// @Produce json
// @Security BearerAuth
// @Param room_id query string true "Meeting server room id"
// @Param from query int false "Page start" default(0)
// @Param limit query int false "Page size" default(20)
// @Param order_by query string false "ASC or DESC" default(DESC)
// @Success 200 {object} response.Response{data=response.RecordingListResponse}
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/recordings [get]
func (h *RecordingHandler) List(c *gin.Context) {
	var req request.ListRecordingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	page, err := h.recordingService.List(c.Request.Context(), &service.ListInput{
		RoomID:  req.RoomID,
		From:    req.From,
		Limit:   req.Limit,
		OrderBy: req.OrderBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRecordingListResponse(page))
}

// GetDownloadLink godoc
// @Summary Mint a download link
// @Description Exchange a recording id for a short-lived download URL
// @Tags recordings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recording id"
// @Success 200 {object} response.Response{data=response.DownloadLinkResponse}
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/recordings/{id}/download-link [post]
func (h *RecordingHandler) GetDownloadLink(c *gin.Context) {
	recordID := c.Param("id")

	url, err := h.recordingService.GetDownloadLink(c.Request.Context(), recordID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &response.DownloadLinkResponse{
		RecordID:    recordID,
		DownloadURL: url,
	})
}

// Delete godoc
// @Summary Delete a recording
// @Description Delete a recording on the meeting server
// @Tags recordings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recording id"
// @Success 200 {object} response.Response{data=response.DeleteRecordingResponse}
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/recordings/{id} [delete]
func (h *RecordingHandler) Delete(c *gin.Context) {
	recordID := c.Param("id")

	msg, err := h.recordingService.Delete(c.Request.Context(), recordID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &response.DeleteRecordingResponse{
		RecordID: recordID,
		Msg:      msg,
	})
}
