package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tablero-app/bitacora/internal/domain"
)

// NewRouter builds the gin engine with every API route registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/bitacoras", h.ListBitacoras)
		api.POST("/bitacoras", h.CreateBitacora)
		api.GET("/bitacoras/:id", h.GetBitacora)
		api.GET("/bitacoras/:id/avatar", h.GetAvatar)

		api.GET("/boards", h.ListBoards)
		api.POST("/boards", h.CreateBoard)
		api.GET("/boards/:id", h.GetBoard)
		api.POST("/boards/:id/bitacora", h.LinkBoardBitacora)
		api.GET("/boards/:id/tasks", h.ListBoardTasks)
		api.GET("/boards/:id/sessions", h.ListBoardSessions)

		api.POST("/tasks", h.CreateTask)
		api.GET("/tasks/:id", h.GetTask)
		api.POST("/tasks/:id/complete", h.CompleteTask)
		api.DELETE("/tasks/:id", h.DeleteTask)

		api.POST("/sessions", h.LogSession)
		api.GET("/sessions/:id", h.GetSession)
		api.PUT("/sessions/:id", h.UpdateSession)
		api.DELETE("/sessions/:id", h.DeleteSession)
	}

	return r
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.Validationf("date", "invalid date %q, expected YYYY-MM-DD", s)
	}
	return date, nil
}
