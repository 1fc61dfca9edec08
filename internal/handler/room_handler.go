package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-meet/roomadmin/internal/dto/request"
	"github.com/go-meet/roomadmin/internal/dto/response"
	"github.com/go-meet/roomadmin/internal/middleware"
	"github.com/go-meet/roomadmin/internal/service"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// Create godoc
// @Summary Create a room
// @Description Allocate a room identifier from the meeting server and persist the room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.SaveRoomRequest true "Room form"
// @Success 201 {object} response.Response{data=response.RoomResponse}
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req request.SaveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request format")
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), &service.SaveRoomInput{
		RoomTitle:       req.RoomTitle,
		Description:     req.Description,
		ModeratorPass:   req.ModeratorPass,
		AttendeePass:    req.AttendeePass,
		WelcomeMessage:  req.WelcomeMessage,
		MaxParticipants: req.MaxParticipants,
		Metadata:        req.Metadata,
		Published:       req.Published,
		Actor:           middleware.GetAdminUser(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, response.NewRoomResponse(room))
}

// GetByID godoc
// @Summary Get a room
// @Description Fetch a room by its local id
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room local id"
// @Success 200 {object} response.Response{data=response.RoomResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomResponse(room))
}

// Update godoc
// @Summary Update a room
// @Description Rewrite the editable fields of a room; the room identifier never changes
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room local id"
// @Param request body request.SaveRoomRequest true "Room form"
// @Success 200 {object} response.Response{data=response.RoomResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	var req request.SaveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request format")
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), id, &service.SaveRoomInput{
		RoomTitle:       req.RoomTitle,
		Description:     req.Description,
		ModeratorPass:   req.ModeratorPass,
		AttendeePass:    req.AttendeePass,
		WelcomeMessage:  req.WelcomeMessage,
		MaxParticipants: req.MaxParticipants,
		Metadata:        req.Metadata,
		Published:       req.Published,
		Actor:           middleware.GetAdminUser(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomResponse(room))
}

// Delete godoc
// @Summary Delete a room
// @Description Remove the local room record; recordings survive on the meeting server
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room local id"
// @Success 204 "No Content"
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List godoc
// @Summary List rooms
// @Description List rooms newest first
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} response.Response{data=response.RoomListResponse}
// @Router /api/v1/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var req request.ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	rooms, total, err := h.roomService.List(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomListResponse(rooms, total, req.Limit, req.Offset))
}
