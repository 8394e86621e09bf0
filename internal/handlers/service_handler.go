package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/MediBookLabs/clinic-scheduler/internal/cache"
	domain "github.com/MediBookLabs/clinic-scheduler/internal/domain/scheduling"
	"github.com/MediBookLabs/clinic-scheduler/internal/httperr"
	"github.com/MediBookLabs/clinic-scheduler/internal/httpresp"
	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

type ServiceHandler struct {
	repo    domain.Repository
	catalog *cache.ServiceCatalog
}

func NewServiceHandler(repo domain.Repository, catalog *cache.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{repo: repo, catalog: catalog}
}

// List returns the full treatment catalog, slot lists included.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.Get(c.Request.Context(), func(ctx context.Context) ([]models.Service, error) {
		return h.repo.ListServices(ctx)
	})
	if err != nil {
		httperr.Internal(c, "failed to list services")
		return
	}

	httpresp.OK(c, services)
}
