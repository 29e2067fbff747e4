package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelftrack/shelftrack/internal/facing/domain"
)

type batchCreateRequest struct {
	Facings []domain.Entry `json:"facings"`
}

type batchUpdateRequest struct {
	BatchID string               `json:"batchId"`
	Facings []domain.UpdateEntry `json:"facings"`
}

func (s *Server) ListFacings(c *gin.Context) {
	records, err := s.facingSvc.ListAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) ListUserBatches(c *gin.Context) {
	ident, ok := identityFromGin(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	summaries, err := s.facingSvc.ListUserBatches(c.Request.Context(), ident)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) BatchCreateFacings(c *gin.Context) {
	ident, ok := identityFromGin(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req batchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.facingSvc.BatchCreate(c.Request.Context(), ident, req.Facings)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) BatchUpdateFacings(c *gin.Context) {
	ident, ok := identityFromGin(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req batchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.facingSvc.BatchUpdate(c.Request.Context(), ident, req.BatchID, req.Facings); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "facings batch updated successfully"})
}

func (s *Server) BatchDeleteFacings(c *gin.Context) {
	ident, ok := identityFromGin(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.facingSvc.BatchDelete(c.Request.Context(), ident, c.Param("batchId")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "facings batch deleted successfully"})
}

func (s *Server) GetFacingsBatch(c *gin.Context) {
	rows, err := s.facingSvc.GetBatch(c.Request.Context(), c.Param("batchId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
