package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (p *PlantAPI) GetReport(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Report(time.Now()))
}

func (p *PlantAPI) UpdateReport(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	details := s.ReportDetails()
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.SetReportDetails(details); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Report(time.Now()))
}
