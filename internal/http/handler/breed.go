package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/mapper"
	"github.com/roguepikachu/petshop/pkg/logger"
)

// BreedService defines the breed handler's dependency contract.
type BreedService interface {
	List(ctx context.Context) ([]domain.BreedDTO, error)
	ListPaginated(ctx context.Context, page, size int) (domain.Page[domain.BreedDTO], error)
	GetByID(ctx context.Context, id int) (domain.BreedDTO, error)
	Create(ctx context.Context, req domain.CreateBreedRequest) (domain.BreedDTO, error)
	Update(ctx context.Context, id int, req domain.UpdateBreedRequest) (domain.BreedDTO, error)
	Delete(ctx context.Context, id int) error
}

// BreedHandler handles HTTP requests for breeds.
type BreedHandler struct {
	svc BreedService
}

// NewBreedHandler constructs a BreedHandler.
func NewBreedHandler(svc BreedService) *BreedHandler {
	return &BreedHandler{svc: svc}
}

// List returns every breed, or one page of them when page or size is given.
func (h *BreedHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	q, isPaged, err := paged(c)
	if err != nil {
		writeError(c, "list breeds", err)
		return
	}
	if isPaged {
		p, err := h.svc.ListPaginated(ctx, q.Page, q.Size)
		if err != nil {
			writeError(c, "list breeds", err)
			return
		}
		logger.With(ctx, map[string]any{"page": p.PageNumber, "size": p.PageSize, "total": p.TotalElements}).Debug("breed page listed")
		c.JSON(http.StatusOK, mapper.ToPageEnvelope(mapper.MapPage(p, mapper.ToBreedResponse)))
		return
	}
	items, err := h.svc.List(ctx)
	if err != nil {
		writeError(c, "list breeds", err)
		return
	}
	logger.With(ctx, map[string]any{"count": len(items)}).Debug("breed listed")
	resp := make([]domain.BreedResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, mapper.ToBreedResponse(it))
	}
	c.JSON(http.StatusOK, resp)
}

// ListResumed returns the name and species name of every breed.
func (h *BreedHandler) ListResumed(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, "list breeds", err)
		return
	}
	resp := make([]domain.BreedResumeResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, mapper.ToBreedResume(it))
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one breed.
func (h *BreedHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c)
	if err != nil {
		writeError(c, "get breed", err)
		return
	}
	dto, err := h.svc.GetByID(ctx, id)
	if err != nil {
		writeError(c, "get breed", err)
		return
	}
	logger.With(ctx, map[string]any{"breed_id": id}).Debug("breed retrieved")
	c.JSON(http.StatusOK, mapper.ToBreedResponse(dto))
}

// Create registers a new breed.
func (h *BreedHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.CreateBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, "create breed", bindError(err))
		return
	}
	dto, err := h.svc.Create(ctx, req)
	if err != nil {
		writeError(c, "create breed", err)
		return
	}
	logger.With(ctx, map[string]any{"breed_id": dto.ID, "name": dto.Name}).Info("breed created")
	c.JSON(http.StatusCreated, mapper.ToBreedResponse(dto))
}

// Update patches a breed. The body id must match the path id.
func (h *BreedHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c)
	if err != nil {
		writeError(c, "update breed", err)
		return
	}
	var req domain.UpdateBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, "update breed", bindError(err))
		return
	}
	dto, err := h.svc.Update(ctx, id, req)
	if err != nil {
		writeError(c, "update breed", err)
		return
	}
	logger.With(ctx, map[string]any{"breed_id": dto.ID, "name": dto.Name}).Info("breed updated")
	c.JSON(http.StatusOK, mapper.ToBreedResponse(dto))
}

// Delete removes a breed.
func (h *BreedHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c)
	if err != nil {
		writeError(c, "delete breed", err)
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeError(c, "delete breed", err)
		return
	}
	logger.With(ctx, map[string]any{"breed_id": id}).Info("breed deleted")
	c.JSON(http.StatusOK, deleted("Breed deletion", "breed"))
}
