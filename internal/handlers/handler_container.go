package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

// containerHandler handles HTTP requests related to containers and their integrity.
type containerHandler struct {
	containerService portssvc.ContainerSvcFacade
	integrityService portssvc.IntegritySvc
}

func newContainerHandler(cs portssvc.ContainerSvcFacade, is portssvc.IntegritySvc) *containerHandler {
	return &containerHandler{containerService: cs, integrityService: is}
}

// registerContainerRoutes registers the container routes and returns the group that
// container-scoped resources hang off.
func registerContainerRoutes(rg *gin.RouterGroup, cs portssvc.ContainerSvcFacade, is portssvc.IntegritySvc) *gin.RouterGroup {
	h := newContainerHandler(cs, is)

	containers := rg.Group("/containers")
	{
		containers.GET("", h.listContainers)
		containers.POST("", h.createContainer)
	}

	scoped := containers.Group("/:container_id")
	{
		scoped.GET("", h.getContainer)
		scoped.PUT("", h.renameContainer)
		scoped.DELETE("", h.deleteContainer)
		scoped.POST("/verify", h.verifyContainer)
		scoped.POST("/reconcile", h.reconcileContainer)
	}
	return scoped
}

// listContainers godoc
// @Summary List containers
// @Description Lists every container in creation order
// @Tags containers
// @Produce json
// @Success 200 {object} dto.ListContainersResponse
// @Failure 500 {object} map[string]string "Failed to list containers"
// @Security BearerAuth
// @Router /containers [get]
func (h *containerHandler) listContainers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	containers, err := h.containerService.ListContainers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list containers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContainersResponse(containers))
}

// createContainer godoc
// @Summary Create a container
// @Description Creates a new, empty container
// @Tags containers
// @Accept json
// @Produce json
// @Param container body dto.CreateContainerRequest true "Container name"
// @Success 201 {object} dto.ContainerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already taken"
// @Security BearerAuth
// @Router /containers [post]
func (h *containerHandler) createContainer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateContainer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	container, err := h.containerService.CreateContainer(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create container")
		return
	}
	logger.Info("Container created", slog.Int64("container_id", container.ContainerID))
	c.JSON(http.StatusCreated, dto.ToContainerResponse(container))
}

// getContainer godoc
// @Summary Get a container
// @Tags containers
// @Produce json
// @Param container_id path int true "Container ID"
// @Success 200 {object} dto.ContainerResponse
// @Failure 404 {object} map[string]string "Container not found"
// @Security BearerAuth
// @Router /containers/{container_id} [get]
func (h *containerHandler) getContainer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	container, err := h.containerService.GetContainer(c.Request.Context(), containerID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve container")
		return
	}
	c.JSON(http.StatusOK, dto.ToContainerResponse(container))
}

// renameContainer godoc
// @Summary Rename a container
// @Tags containers
// @Accept json
// @Produce json
// @Param container_id path int true "Container ID"
// @Param container body dto.UpdateContainerRequest true "New name"
// @Success 200 {object} dto.ContainerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Container not found"
// @Failure 409 {object} map[string]string "Name already taken"
// @Security BearerAuth
// @Router /containers/{container_id} [put]
func (h *containerHandler) renameContainer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var req dto.UpdateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenameContainer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	container, err := h.containerService.RenameContainer(c.Request.Context(), containerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to rename container")
		return
	}
	c.JSON(http.StatusOK, dto.ToContainerResponse(container))
}

// deleteContainer godoc
// @Summary Delete a container
// @Description Deletes a container with all of its accounts and transactions. The default container cannot be deleted.
// @Tags containers
// @Param container_id path int true "Container ID"
// @Success 204
// @Failure 404 {object} map[string]string "Container not found"
// @Failure 409 {object} map[string]string "Default container"
// @Security BearerAuth
// @Router /containers/{container_id} [delete]
func (h *containerHandler) deleteContainer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	if err := h.containerService.DeleteContainer(c.Request.Context(), containerID); err != nil {
		respondError(c, logger, err, "Failed to delete container")
		return
	}
	logger.Info("Container deleted", slog.Int64("container_id", containerID))
	c.Status(http.StatusNoContent)
}

// verifyContainer godoc
// @Summary Verify transfer integrity
// @Description Checks every transfer group of the container. A broken container is fenced against writes and answered with 423.
// @Tags containers
// @Produce json
// @Param container_id path int true "Container ID"
// @Success 200 {object} dto.VerifyContainerResponse
// @Failure 423 {object} dto.VerifyContainerResponse "Broken transfer groups found"
// @Security BearerAuth
// @Router /containers/{container_id}/verify [post]
func (h *containerHandler) verifyContainer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	issues, err := h.integrityService.VerifyContainer(c.Request.Context(), containerID)
	if err != nil && len(issues) == 0 {
		respondError(c, logger, err, "Failed to verify container")
		return
	}

	status := http.StatusOK
	if err != nil {
		logger.Warn("Container is inconsistent", slog.Int64("container_id", containerID), slog.Int("issues", len(issues)))
		status = statusFor(err)
	}
	c.JSON(status, dto.VerifyContainerResponse{
		ContainerID: containerID,
		Consistent:  len(issues) == 0,
		Issues:      issues,
	})
}

// reconcileContainer godoc
// @Summary Reconcile a container
// @Description Deletes the legs of every broken transfer group and lifts the write fence.
// @Tags containers
// @Produce json
// @Param container_id path int true "Container ID"
// @Success 200 {object} dto.ReconcileContainerResponse
// @Failure 404 {object} map[string]string "Container not found"
// @Security BearerAuth
// @Router /containers/{container_id}/reconcile [post]
func (h *containerHandler) reconcileContainer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	removed, err := h.integrityService.ReconcileContainer(c.Request.Context(), containerID)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile container")
		return
	}
	c.JSON(http.StatusOK, dto.ReconcileContainerResponse{ContainerID: containerID, RemovedTransactionIDs: removed})
}
