package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"spyglass/internal/pipeline"
	"spyglass/pkg/logging"
)

// ErrorResponse is the JSON error body returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	artifactDir string
	logger      logging.Logger
)

// Init initializes the handlers package with the artifact directory the
// pipeline writes into.
func Init(dir string, log logging.Logger) {
	artifactDir = dir
	logger = log
}

// GetPosts returns the normalized post list artifact
func GetPosts(c *gin.Context) {
	serveArtifact(c, pipeline.PostsArtifact)
}

// GetAnalytics returns the aggregate analytics artifact
func GetAnalytics(c *gin.Context) {
	serveArtifact(c, pipeline.AnalyticsArtifact)
}

// GetDashboard returns the presentation document artifact
func GetDashboard(c *gin.Context) {
	serveArtifact(c, pipeline.DashboardArtifact)
}

// serveArtifact streams a pipeline artifact as-is. Artifacts are written
// atomically, so a read never observes a partial document.
func serveArtifact(c *gin.Context, name string) {
	data, err := os.ReadFile(filepath.Join(artifactDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Artifacts not generated yet"})
			return
		}
		logger.WithError(err).WithFields(logging.Fields{
			"artifact": name,
		}).Error("Failed to read artifact")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read artifact"})
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}
