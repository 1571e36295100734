package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"todoboard/internal/dto"
	"todoboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Messages the API exposes to clients. Internal failures are logged with
// their cause but always collapse to the generic one per operation.
const (
	msgFetchFailed  = "Failed to fetch todos"
	msgCreateFailed = "Failed to create todo"
	msgUpdateFailed = "Failed to update todo"
	msgDeleteFailed = "Failed to delete todo"
	msgTitleMissing = "Title is required"
	msgInvalidID    = "Invalid todo ID"
	msgNotFound     = "Todo not found"
	msgDeleted      = "Todo deleted successfully"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary      List all todos, newest first
// @Tags         todos
// @Produce      json
// @Success      200  {array}   dto.TodoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("list todos failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgFetchFailed})
		return
	}
	c.JSON(http.StatusOK, dto.FromDomainList(list))
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A non-string title gets the canonical message; other decode
		// failures (bad dates included) surface the decoder's own text.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "title" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgTitleMissing})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, req.StartDate.Ptr(), req.Deadline.Ptr())
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgTitleMissing})
			return
		}
		log.Error().Err(err).Msg("create todo failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgCreateFailed})
		return
	}
	c.JSON(http.StatusCreated, dto.FromDomain(t))
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
			return
		}
		log.Error().Err(err).Int64("id", id).Msg("get todo failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgFetchFailed})
		return
	}
	c.JSON(http.StatusOK, dto.FromDomain(t))
}

// Update godoc
// @Summary      Partially update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Fields to change"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	patch := service.TodoPatch{
		Title:          req.Title,
		Description:    req.Description.Value,
		SetDescription: req.Description.Set,
		Completed:      req.Completed,
		StartDate:      req.StartDate.Ptr(),
		SetStartDate:   req.StartDate.Set,
		Deadline:       req.Deadline.Ptr(),
		SetDeadline:    req.Deadline.Set,
	}
	t, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
		case errors.Is(err, service.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgTitleMissing})
		default:
			log.Error().Err(err).Int64("id", id).Msg("update todo failed")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgUpdateFailed})
		}
		return
	}
	c.JSON(http.StatusOK, dto.FromDomain(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
			return
		}
		log.Error().Err(err).Int64("id", id).Msg("delete todo failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgDeleteFailed})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgDeleted})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidID})
		return 0, false
	}
	return id, true
}
