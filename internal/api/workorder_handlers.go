package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecolife/internal/models"
	"ecolife/internal/scheduler"
	"ecolife/internal/workorder"
)

type technicianRequest struct {
	TechnicianName string `json:"technicianName"`
}

type statusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

type materialsRequest struct {
	Materials string `json:"materials"`
}

type workOrderResponse struct {
	models.WorkOrder
	Groups []workorder.TaskGroup `json:"groups"`
}

func (p *PlantAPI) ComputeSchedule(c *gin.Context) {
	lookahead := p.Sessions.DefaultLookahead()
	if q := c.Query("lookahead"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lookahead must be a positive number of hours"})
			return
		}
		lookahead = n
	}

	due, err := p.Sessions.ComputeSchedule(lookahead)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lookaheadHours": lookahead,
		"tasks":          due,
		"groups":         scheduler.GroupByEquipment(due),
	})
}

// tracker resolves the active work order or answers 404
func (p *PlantAPI) tracker(c *gin.Context) (*workorder.Tracker, bool) {
	s, ok := p.current(c)
	if !ok {
		return nil, false
	}
	t, err := s.ActiveWorkOrder()
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return t, true
}

func (p *PlantAPI) CreateWorkOrder(c *gin.Context) {
	wo, err := p.Sessions.CreateWorkOrder()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workOrderResponse{WorkOrder: wo, Groups: workorder.GroupTasks(wo.Tasks)})
}

func (p *PlantAPI) GetActiveWorkOrder(c *gin.Context) {
	t, ok := p.tracker(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, workOrderResponse{WorkOrder: t.Snapshot(), Groups: t.Groups()})
}

func (p *PlantAPI) DiscardWorkOrder(c *gin.Context) {
	if err := p.Sessions.DiscardActive(); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (p *PlantAPI) SetTechnician(c *gin.Context) {
	t, ok := p.tracker(c)
	if !ok {
		return
	}
	var req technicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t.SetTechnician(req.TechnicianName))
}

// taskUpdate runs fn against the active work order and writes the updated task
func (p *PlantAPI) taskUpdate(c *gin.Context, fn func(t *workorder.Tracker, taskID string) (models.InteractiveTask, error)) {
	t, ok := p.tracker(c)
	if !ok {
		return
	}
	task, err := fn(t, c.Param("tid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (p *PlantAPI) StartTask(c *gin.Context) {
	p.taskUpdate(c, (*workorder.Tracker).Start)
}

func (p *PlantAPI) StopTask(c *gin.Context) {
	p.taskUpdate(c, (*workorder.Tracker).Stop)
}

func (p *PlantAPI) SetTaskStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.taskUpdate(c, func(t *workorder.Tracker, id string) (models.InteractiveTask, error) {
		return t.SetStatus(id, req.Status)
	})
}

func (p *PlantAPI) SetTaskNotes(c *gin.Context) {
	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.taskUpdate(c, func(t *workorder.Tracker, id string) (models.InteractiveTask, error) {
		return t.SetNotes(id, req.Notes)
	})
}

func (p *PlantAPI) SetTaskMaterials(c *gin.Context) {
	var req materialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.taskUpdate(c, func(t *workorder.Tracker, id string) (models.InteractiveTask, error) {
		return t.SetMaterials(id, req.Materials)
	})
}

func (p *PlantAPI) UploadTaskPhotos(c *gin.Context) {
	t, ok := p.tracker(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no photos uploaded"})
		return
	}

	photos, err := workorder.EncodeUploads(c.Request.Context(), files)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := t.AddPhotos(c.Param("tid"), photos...)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (p *PlantAPI) RemoveTaskPhoto(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo index must be a number"})
		return
	}
	p.taskUpdate(c, func(t *workorder.Tracker, id string) (models.InteractiveTask, error) {
		return t.RemovePhoto(id, index)
	})
}

func (p *PlantAPI) ArchiveWorkOrder(c *gin.Context) {
	wo, warning, err := p.Sessions.ArchiveActive()
	if err != nil {
		respondError(c, err)
		return
	}
	body := gin.H{"workOrder": wo, "archived": p.Sessions.Archive().Len()}
	if warning != nil {
		log.Printf("Archived work order %s kept in memory only: %v", wo.ID, warning)
		body["warning"] = "Ordinul de lucru a fost arhivat, dar nu a putut fi salvat persistent."
	}
	c.JSON(http.StatusOK, body)
}

func (p *PlantAPI) ListArchive(c *gin.Context) {
	c.JSON(http.StatusOK, p.Sessions.Archive().List())
}
