package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecolife/internal/catalog"
	"ecolife/internal/models"
	"ecolife/internal/plant"
)

type hoursRequest struct {
	Hours *int `json:"hours" binding:"required"`
}

type checklistRequest struct {
	Tasks []string `json:"tasks"`
}

type recommendationRequest struct {
	EquipmentName     string `json:"equipmentName" binding:"required"`
	NonConformityType string `json:"nonConformityType" binding:"required"`
	// When both are set the recommendation is stored on that finding
	EquipmentID string `json:"equipmentId"`
	FindingID   string `json:"findingId"`
}

func (p *PlantAPI) ListEquipment(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Registry().List())
}

func (p *PlantAPI) GetEquipment(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	eq, err := s.Registry().Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

func (p *PlantAPI) SetOperatingHours(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	var req hoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changed, err := s.Registry().SetOperatingHours(c.Param("id"), *req.Hours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": changed})
}

func (p *PlantAPI) SetConveyorHours(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	var req hoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changed, err := s.Registry().SetGroupOperatingHours(s.Line, *req.Hours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": catalog.ConveyorGroupLabel(s.Line), "updated": changed})
}

func (p *PlantAPI) AddFinding(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	var in plant.FindingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nc, err := s.Registry().AddFinding(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, nc)
}

func (p *PlantAPI) UpdateFinding(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	var in plant.FindingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nc, err := s.Registry().UpdateFinding(c.Param("id"), c.Param("fid"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nc)
}

func (p *PlantAPI) RemoveFinding(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	if err := s.Registry().RemoveFinding(c.Param("id"), c.Param("fid")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (p *PlantAPI) SetChecklist(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	var req checklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eq, err := s.Registry().SetCompletedTasks(c.Param("id"), req.Tasks)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

func (p *PlantAPI) GetChecklistCatalog(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	eq, err := s.Registry().Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":     p.Sessions.Catalog().ChecklistItems(eq),
		"completed": eq.CompletedMaintenanceTasks,
	})
}

func (p *PlantAPI) GetNonConformityCatalog(c *gin.Context) {
	s, ok := p.current(c)
	if !ok {
		return
	}
	eq, err := s.Registry().Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"equipmentType": eq.EquipmentType,
		"label":         eq.EquipmentType.Label(),
		"types":         p.Sessions.Catalog().NonConformityTypes(eq.EquipmentType),
	})
}

// Recommend always answers 200: provider failures come back as a fallback recommendation
func (p *PlantAPI) Recommend(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := p.Recommender.Generate(c.Request.Context(), req.EquipmentName, req.NonConformityType)
	rec := res.OrFallback()
	body := gin.H{"recommendation": rec, "generated": res.IsOk()}

	if req.EquipmentID != "" && req.FindingID != "" {
		stored, err := p.storeRecommendation(req.EquipmentID, req.FindingID, rec)
		if err != nil {
			respondError(c, err)
			return
		}
		body["finding"] = stored
	}
	c.JSON(http.StatusOK, body)
}

func (p *PlantAPI) storeRecommendation(equipmentID, findingID string, rec models.Recommendation) (models.NonConformity, error) {
	s, err := p.Sessions.Current()
	if err != nil {
		return models.NonConformity{}, err
	}
	return s.Registry().SetRecommendation(equipmentID, findingID, rec)
}
