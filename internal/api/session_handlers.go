package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecolife/internal/catalog"
	"ecolife/internal/models"
	"ecolife/internal/session"
)

type startSessionRequest struct {
	Line int `json:"line" binding:"required"`
}

type sessionResponse struct {
	*session.Session
	ConveyorGroup  string `json:"conveyorGroup"`
	EquipmentCount int    `json:"equipmentCount"`
	HasActiveOrder bool   `json:"hasActiveWorkOrder"`
	LookaheadHours int    `json:"lookaheadHours"`
	ScheduledTasks int    `json:"scheduledTasks"`
}

func describe(s *session.Session) sessionResponse {
	due, lookahead := s.LastSchedule()
	_, err := s.ActiveWorkOrder()
	return sessionResponse{
		Session:        s,
		ConveyorGroup:  catalog.ConveyorGroupLabel(s.Line),
		EquipmentCount: len(s.Registry().List()),
		HasActiveOrder: err == nil,
		LookaheadHours: lookahead,
		ScheduledTasks: len(due),
	}
}

// current resolves the active session or answers 404
func (p *PlantAPI) current(c *gin.Context) (*session.Session, bool) {
	s, err := p.Sessions.Current()
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return s, true
}

func (p *PlantAPI) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidLine(req.Line) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line must be 1 or 2"})
		return
	}

	s, err := p.Sessions.Start(req.Line)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, describe(s))
}

func (p *PlantAPI) GetSession(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, describe(s))
}

func (p *PlantAPI) EndSession(c *gin.Context) {
	p.Sessions.End()
	c.Status(http.StatusNoContent)
}
