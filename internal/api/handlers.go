package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"k8s-profile-api/internal/builder"
	"k8s-profile-api/internal/config"
	"k8s-profile-api/internal/logger"
	"k8s-profile-api/internal/models"
	"k8s-profile-api/internal/rspec"
	"k8s-profile-api/internal/store"
)

const mimeYAML = "application/yaml"

// Handlers serves request generation and the request history
type Handlers struct {
	Store *store.Store
}

// HealthHandler handles the health check request
func HealthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "k8s-profile-api",
	})
}

// ParametersHandler lists the parameter definitions with their defaults and legal values
func ParametersHandler(c *fiber.Ctx) error {
	return c.JSON(config.Definitions())
}

// GenerateHandler builds a request document from the JSON parameters in the body
func (h *Handlers) GenerateHandler(c *fiber.Ctx) error {
	params := config.DefaultParams()
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&params); err != nil {
			logger.Warn("Invalid request format: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Success: false,
				Error:   "Invalid request format: " + err.Error(),
			})
		}
	}

	logger.Info("Received generate request: %+v", params)

	if err := params.CheckLegalValues(); err != nil {
		return parameterError(c, err)
	}

	req, err := builder.Build(params)
	if err != nil {
		return parameterError(c, err)
	}

	doc, err := rspec.Marshal(req)
	if err != nil {
		logger.Error("%v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	rec, err := h.Store.Save(params, doc)
	if err != nil {
		logger.Error("Failed to store request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Success: false,
			Error:   "Failed to store request: " + err.Error(),
		})
	}

	logger.Info("Request %s generated with %d nodes", rec.ID, len(req.Nodes))
	c.Set("X-Request-ID", rec.ID)
	c.Location("/requests/" + rec.ID)

	if c.Query("format") == "yaml" {
		summary, err := rspec.MarshalYAML(req)
		if err != nil {
			logger.Error("%v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
				Success: false,
				Error:   err.Error(),
			})
		}
		c.Set(fiber.HeaderContentType, mimeYAML)
		return c.Status(fiber.StatusCreated).Send(summary)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Status(fiber.StatusCreated).Send(doc)
}

// ListHandler returns the history of generated requests
func (h *Handlers) ListHandler(c *fiber.Ctx) error {
	records, err := h.Store.List()
	if err != nil {
		logger.Error("Failed to list requests: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}
	if records == nil {
		records = []models.RequestRecord{}
	}
	return c.JSON(models.ListResponse{
		Success:  true,
		Requests: records,
	})
}

// GetHandler returns a previously generated request document
func (h *Handlers) GetHandler(c *fiber.Ctx) error {
	id := c.Params("id")
	_, doc, err := h.Store.Get(id)
	if err != nil {
		return storeError(c, id, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(doc)
}

// DeleteHandler removes a previously generated request document
func (h *Handlers) DeleteHandler(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Store.Delete(id); err != nil {
		return storeError(c, id, err)
	}

	logger.Info("Request %s deleted", id)
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Request '%s' successfully deleted", id),
	})
}

func parameterError(c *fiber.Ctx, err error) error {
	logger.Warn("%v", err)

	var perr *config.ParameterError
	if errors.As(err, &perr) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Success: false,
			Error:   perr.Message,
			Fields:  perr.Fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

func storeError(c *fiber.Ctx, id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Success: false,
			Error:   fmt.Sprintf("Request '%s' not found", id),
		})
	}
	logger.Error("Store failure for request %s: %v", id, err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
