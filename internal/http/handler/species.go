package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/mapper"
	"github.com/roguepikachu/petshop/pkg/logger"
)

// SpeciesService defines the species handler's dependency contract.
type SpeciesService interface {
	List(ctx context.Context) ([]domain.SpeciesDTO, error)
	ListPaginated(ctx context.Context, page, size int) (domain.Page[domain.SpeciesDTO], error)
	GetByID(ctx context.Context, id int) (domain.SpeciesDTO, error)
	Create(ctx context.Context, req domain.CreateSpeciesRequest) (domain.SpeciesDTO, error)
	Update(ctx context.Context, id int, req domain.UpdateSpeciesRequest) (domain.SpeciesDTO, error)
	Delete(ctx context.Context, id int) error
}

// SpeciesHandler handles HTTP requests for species.
type SpeciesHandler struct {
	svc SpeciesService
}

// NewSpeciesHandler constructs a SpeciesHandler.
func NewSpeciesHandler(svc SpeciesService) *SpeciesHandler {
	return &SpeciesHandler{svc: svc}
}

// List returns every species, or one page of them when page or size is given.
func (h *SpeciesHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	q, isPaged, err := paged(c)
	if err != nil {
		writeError(c, "list species", err)
		return
	}
	if isPaged {
		p, err := h.svc.ListPaginated(ctx, q.Page, q.Size)
		if err != nil {
			writeError(c, "list species", err)
			return
		}
		logger.With(ctx, map[string]any{"page": p.PageNumber, "size": p.PageSize, "total": p.TotalElements}).Debug("species page listed")
		c.JSON(http.StatusOK, mapper.ToPageEnvelope(mapper.MapPage(p, mapper.ToSpeciesResponse)))
		return
	}
	items, err := h.svc.List(ctx)
	if err != nil {
		writeError(c, "list species", err)
		return
	}
	logger.With(ctx, map[string]any{"count": len(items)}).Debug("species listed")
	resp := make([]domain.SpeciesResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, mapper.ToSpeciesResponse(it))
	}
	c.JSON(http.StatusOK, resp)
}

// ListResumed returns the name and icon of every species.
func (h *SpeciesHandler) ListResumed(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, "list species", err)
		return
	}
	resp := make([]domain.SpeciesResumeResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, mapper.ToSpeciesResume(it))
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one species.
func (h *SpeciesHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c)
	if err != nil {
		writeError(c, "get species", err)
		return
	}
	dto, err := h.svc.GetByID(ctx, id)
	if err != nil {
		writeError(c, "get species", err)
		return
	}
	logger.With(ctx, map[string]any{"species_id": id}).Debug("species retrieved")
	c.JSON(http.StatusOK, mapper.ToSpeciesResponse(dto))
}

// Create registers a new species.
func (h *SpeciesHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.CreateSpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, "create species", bindError(err))
		return
	}
	dto, err := h.svc.Create(ctx, req)
	if err != nil {
		writeError(c, "create species", err)
		return
	}
	logger.With(ctx, map[string]any{"species_id": dto.ID, "name": dto.Name}).Info("species created")
	c.JSON(http.StatusCreated, mapper.ToSpeciesResponse(dto))
}

// Update patches a species. The body id must match the path id.
func (h *SpeciesHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c)
	if err != nil {
		writeError(c, "update species", err)
		return
	}
	var req domain.UpdateSpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, "update species", bindError(err))
		return
	}
	dto, err := h.svc.Update(ctx, id, req)
	if err != nil {
		writeError(c, "update species", err)
		return
	}
	logger.With(ctx, map[string]any{"species_id": dto.ID, "name": dto.Name}).Info("species updated")
	c.JSON(http.StatusOK, mapper.ToSpeciesResponse(dto))
}

// Delete removes a species and its breeds.
func (h *SpeciesHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c)
	if err != nil {
		writeError(c, "delete species", err)
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeError(c, "delete species", err)
		return
	}
	logger.With(ctx, map[string]any{"species_id": id}).Info("species deleted")
	c.JSON(http.StatusOK, deleted("Species deletion", "species"))
}
