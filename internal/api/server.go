package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecolife/internal/events"
	"ecolife/internal/monitoring"
	"ecolife/internal/recommend"
	"ecolife/internal/session"
)

// PlantAPI serves the maintenance workflow of the sorting plant over HTTP
type PlantAPI struct {
	Router      *gin.Engine
	Sessions    *session.Manager
	Recommender *recommend.Service
	Monitor     *monitoring.Monitor
	Hub         *events.Hub
	AuthSecret  string
}

// NewPlantAPI creates the API and registers its routes.
// Monitor and Hub are optional; an empty secret disables authentication.
func NewPlantAPI(sessions *session.Manager, recommender *recommend.Service, monitor *monitoring.Monitor, hub *events.Hub, secret string) *PlantAPI {
	if recommender == nil {
		recommender = recommend.NewService(nil)
	}
	if monitor == nil {
		monitor = monitoring.NewMonitor()
	}

	p := &PlantAPI{
		Router:      gin.Default(),
		Sessions:    sessions,
		Recommender: recommender,
		Monitor:     monitor,
		Hub:         hub,
		AuthSecret:  secret,
	}
	p.setupRoutes()
	return p
}

// setupRoutes configures all API endpoints
func (p *PlantAPI) setupRoutes() {
	p.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "EcoLife maintenance API is running"})
	})

	v1 := p.Router.Group("/api/v1")
	v1.Use(AuthMiddleware(p.AuthSecret))
	{
		v1.GET("/status", p.GetStatus)
		if p.Hub != nil {
			v1.GET("/ws", gin.WrapH(p.Hub))
		}

		// Session
		v1.POST("/session", p.StartSession)
		v1.GET("/session", p.GetSession)
		v1.DELETE("/session", p.EndSession)

		// Equipment and inspection
		v1.GET("/equipment", p.ListEquipment)
		v1.GET("/equipment/:id", p.GetEquipment)
		v1.PUT("/equipment/:id/hours", p.SetOperatingHours)
		v1.PUT("/groups/conveyors/hours", p.SetConveyorHours)
		v1.POST("/equipment/:id/findings", p.AddFinding)
		v1.PUT("/equipment/:id/findings/:fid", p.UpdateFinding)
		v1.DELETE("/equipment/:id/findings/:fid", p.RemoveFinding)
		v1.PUT("/equipment/:id/checklist", p.SetChecklist)
		v1.GET("/equipment/:id/checklist/catalog", p.GetChecklistCatalog)
		v1.GET("/equipment/:id/nonconformities/catalog", p.GetNonConformityCatalog)
		v1.POST("/recommendations", p.Recommend)

		// Schedule and work orders
		v1.POST("/schedule", p.ComputeSchedule)
		v1.POST("/workorders", p.CreateWorkOrder)
		v1.GET("/workorders/active", p.GetActiveWorkOrder)
		v1.DELETE("/workorders/active", p.DiscardWorkOrder)
		v1.PUT("/workorders/active/technician", p.SetTechnician)
		v1.POST("/workorders/active/tasks/:tid/start", p.StartTask)
		v1.POST("/workorders/active/tasks/:tid/stop", p.StopTask)
		v1.PUT("/workorders/active/tasks/:tid/status", p.SetTaskStatus)
		v1.PUT("/workorders/active/tasks/:tid/notes", p.SetTaskNotes)
		v1.PUT("/workorders/active/tasks/:tid/materials", p.SetTaskMaterials)
		v1.POST("/workorders/active/tasks/:tid/photos", p.UploadTaskPhotos)
		v1.DELETE("/workorders/active/tasks/:tid/photos/:index", p.RemoveTaskPhoto)
		v1.POST("/workorders/active/archive", p.ArchiveWorkOrder)
		v1.GET("/archive", p.ListArchive)

		// Report
		v1.GET("/report", p.GetReport)
		v1.PUT("/report", p.UpdateReport)
	}
}

// GetStatus returns the live activity snapshot
func (p *PlantAPI) GetStatus(c *gin.Context) {
	status := p.Monitor.GetMetrics()
	status["archived_work_orders"] = p.Sessions.Archive().Len()
	status["recommendations_configured"] = p.Recommender.Configured()
	if s, err := p.Sessions.Current(); err == nil {
		status["session_line"] = s.Line
		status["session_started_at"] = s.StartedAt
	}
	if p.Hub != nil {
		status["live_clients"] = p.Hub.Clients()
	}
	c.JSON(http.StatusOK, status)
}
