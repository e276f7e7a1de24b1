package blob

import (
	"errors"

	"blob-integration/core/container"
	"blob-integration/core/logger"
	"blob-integration/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultUploadsLimit = 20
	maxUploadsLimit     = 100
)

// Handler handles HTTP requests for blobs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the blob routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/containers/:containerName")
	group.Post("/blobs/:blobName", h.HandleSaveBlob)
	group.Get("/blobs/:blobName", h.HandleReadBlob)
	if h.service.HasLedger() {
		group.Get("/uploads", h.HandleListUploads)
	}
}

// HandleSaveBlob stores the request body as a blob.
// @Summary Save Blob
// @Description Saves the text body as the full content of the blob, creating the container if needed.
// @Tags blob
// @Accept plain
// @Produce plain
// @Security ApiKeyAuth
// @Param containerName path string true "The name of the blob storage to save in."
// @Param blobName path string true "The name of the blob to store."
// @Param content body string true "The content of the file."
// @Success 200 {string} string "If the file was saved successfully."
// @Failure 400 {object} map[string]string "Empty content"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /containers/{containerName}/blobs/{blobName} [post]
func (h *Handler) HandleSaveBlob(c *fiber.Ctx) error {
	containerName := c.Params("containerName")
	blobName := c.Params("blobName")
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Save blob", zap.String("blob", blobName), zap.String("container", containerName))

	err := h.service.Save(c.Context(), containerName, blobName, string(c.Body()), rayid.FromContext(c))
	if err != nil {
		return h.fail(c, l, "Save blob failed", err)
	}

	c.Status(fiber.StatusOK)
	return nil
}

// HandleReadBlob returns the content of a blob.
// @Summary Read Blob
// @Description Returns the full text content of the blob.
// @Tags blob
// @Produce plain
// @Security ApiKeyAuth
// @Param containerName path string true "The name of the blob storage to read from."
// @Param blobName path string true "The name of the blob to read."
// @Success 200 {string} string "Blob content"
// @Failure 404 {object} map[string]string "Blob not found"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /containers/{containerName}/blobs/{blobName} [get]
func (h *Handler) HandleReadBlob(c *fiber.Ctx) error {
	containerName := c.Params("containerName")
	blobName := c.Params("blobName")
	l := logger.WithRayID(h.service.logger, c)

	content, err := h.service.Read(c.Context(), containerName, blobName)
	if err != nil {
		return h.fail(c, l, "Read blob failed", err)
	}

	c.Type("txt", "utf-8")
	return c.SendString(content)
}

// HandleListUploads lists recent uploads recorded for a container.
// @Summary List Uploads
// @Description Lists the most recent uploads recorded in the ledger for the container.
// @Tags blob
// @Produce json
// @Security ApiKeyAuth
// @Param containerName path string true "The container name."
// @Param limit query int false "Maximum number of records (default 20, max 100)"
// @Success 200 {array} UploadRecord "Upload records"
// @Failure 500 {object} map[string]string "Ledger failure"
// @Router /containers/{containerName}/uploads [get]
func (h *Handler) HandleListUploads(c *fiber.Ctx) error {
	containerName := c.Params("containerName")
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", defaultUploadsLimit)
	if limit <= 0 || limit > maxUploadsLimit {
		limit = defaultUploadsLimit
	}

	records, err := h.service.Uploads(c.Context(), containerName, limit)
	if err != nil {
		l.Error("List uploads failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if records == nil {
		records = []UploadRecord{}
	}

	return c.JSON(records)
}

// fail maps service errors onto HTTP responses.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	switch {
	case errors.Is(err, ErrEmptyContent):
		l.Warn(msg, zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, container.ErrNotFound):
		l.Info(msg, zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "blob not found"})
	default:
		l.Error(msg, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
