package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/pkg"
	"github.com/roguepikachu/petshop/pkg/logger"
)

// statusOf maps an error kind to its HTTP status and notice title.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, pkg.TitleNotFound
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusBadRequest, pkg.TitleAlreadyRegistered
	case errors.Is(err, domain.ErrInvalidField):
		return http.StatusBadRequest, pkg.TitleInvalidField
	case errors.Is(err, domain.ErrFieldMismatch):
		return http.StatusBadRequest, pkg.TitleFieldMismatch
	}
	return http.StatusInternalServerError, pkg.TitleInternal
}

// writeError renders err as a notice. Internal failures hide their message.
func writeError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	_ = c.Error(err)
	status, title := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	logger.With(ctx, map[string]any{"op": op, "status": status}).Errorf("%s failed: %v", op, err)
	c.JSON(status, pkg.NewNotice(status, title, msg, time.Now()))
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidFieldf("id %q is not a number", raw)
	}
	return id, nil
}

// bindError wraps a binding failure as an invalid field.
func bindError(err error) error {
	return domain.InvalidFieldf("invalid request: %v", err)
}

type pageQuery struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

// paged reports whether the caller asked for a page. Missing values take the defaults.
func paged(c *gin.Context) (pageQuery, bool, error) {
	q := pageQuery{Page: domain.DefaultPage, Size: domain.DefaultPageSize}
	_, hasPage := c.GetQuery("page")
	_, hasSize := c.GetQuery("size")
	if !hasPage && !hasSize {
		return q, false, nil
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, true, domain.InvalidFieldf("invalid query parameters: %v", err)
	}
	if !hasSize {
		q.Size = domain.DefaultPageSize
	}
	return q, true, nil
}

func deleted(title, entity string) pkg.Notice {
	return pkg.NewNotice(http.StatusOK, title, "The "+entity+" was deleted successfully", time.Now())
}
