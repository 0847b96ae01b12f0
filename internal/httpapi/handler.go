package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/repository"
	"github.com/tablero-app/bitacora/internal/service"
)

// Handler exposes the services over HTTP.
type Handler struct {
	Bitacoras service.BitacoraService
	Boards    service.BoardService
	Tasks     service.TaskService
	Sessions  service.SessionService
	Avatars   service.AvatarService
}

func writeError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Bitácoras

type createBitacoraRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) CreateBitacora(c *gin.Context) {
	var req createBitacoraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b := &domain.Bitacora{Name: req.Name}
	if err := h.Bitacoras.Create(c.Request.Context(), b); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListBitacoras(c *gin.Context) {
	all, err := h.Bitacoras.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *Handler) GetBitacora(c *gin.Context) {
	b, err := h.Bitacoras.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) GetAvatar(c *gin.Context) {
	avatar, err := h.Avatars.GetByBitacora(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, avatar)
}

// Boards

type createBoardRequest struct {
	Name       string  `json:"name" binding:"required"`
	BitacoraID *string `json:"bitacora_id"`
}

func (h *Handler) CreateBoard(c *gin.Context) {
	var req createBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b := &domain.Board{Name: req.Name, BitacoraID: req.BitacoraID}
	if err := h.Boards.Create(c.Request.Context(), b); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListBoards(c *gin.Context) {
	all, err := h.Boards.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *Handler) GetBoard(c *gin.Context) {
	b, err := h.Boards.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type linkBitacoraRequest struct {
	BitacoraID string `json:"bitacora_id" binding:"required"`
}

func (h *Handler) LinkBoardBitacora(c *gin.Context) {
	var req linkBitacoraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Boards.LinkBitacora(c.Request.Context(), c.Param("id"), req.BitacoraID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "linked"})
}

// Tasks

type createTaskRequest struct {
	BoardID       string   `json:"board_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Difficulty    int      `json:"difficulty" binding:"required"`
	EconomicValue *float64 `json:"economic_value"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &domain.Task{
		BoardID:       req.BoardID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		EconomicValue: req.EconomicValue,
	}
	if err := h.Tasks.Create(c.Request.Context(), t); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListBoardTasks(c *gin.Context) {
	tasks, err := h.Tasks.ListByBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c *gin.Context) {
	t, err := h.Tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type completeTaskRequest struct {
	ResultNote string `json:"result_note"`
}

func (h *Handler) CompleteTask(c *gin.Context) {
	var req completeTaskRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	t, err := h.Tasks.Complete(c.Request.Context(), c.Param("id"), req.ResultNote)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	if err := h.Tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Sessions

type sessionRequest struct {
	BoardID        string `json:"board_id" binding:"required"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	TasksCompleted int    `json:"tasks_completed"`
	Note           string `json:"note"`
	WorkType       string `json:"work_type"`
}

func (req *sessionRequest) toDomain() (*domain.WorkSession, error) {
	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, err
	}
	s := &domain.WorkSession{
		BoardID:        req.BoardID,
		StartTime:      start,
		EndTime:        end,
		TasksCompleted: req.TasksCompleted,
		Note:           req.Note,
		WorkType:       req.WorkType,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		s.Date = date
	}
	return s, nil
}

func (h *Handler) LogSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := req.toDomain()
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.Sessions.Log(c.Request.Context(), session); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *Handler) GetSession(c *gin.Context) {
	s, err := h.Sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) ListBoardSessions(c *gin.Context) {
	sessions, err := h.Sessions.ListByBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) UpdateSession(c *gin.Context) {
	current, err := h.Sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := req.toDomain()
	if err != nil {
		writeError(c, err)
		return
	}
	updated.ID = current.ID
	updated.BitacoraID = current.BitacoraID
	updated.CreatedAt = current.CreatedAt
	if updated.Date.IsZero() {
		updated.Date = current.Date
	}
	if err := h.Sessions.Update(c.Request.Context(), updated); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.Sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
