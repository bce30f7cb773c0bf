package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paylane/paylane/internal/application"
	"github.com/paylane/paylane/internal/domain"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "paylane"})
}

func (s *Server) handleSamples(c *gin.Context) {
	samples, err := application.Samples()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, samples)
}

// handleProcessPayment runs the pipeline for one posted receipt. The receipt
// skips channel scanning and enters the pipeline directly, so a browser can
// exercise the full verify-ticket-ledger-confirm chain.
func (s *Server) handleProcessPayment(c *gin.Context) {
	var receipt domain.Receipt
	if err := c.ShouldBindJSON(&receipt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid receipt payload: " + err.Error()})
		return
	}

	validated, err := receipt.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	res := s.svc.Run(c.Request.Context(), application.RunOptions{Fixture: &validated})
	c.JSON(http.StatusOK, res)
}
