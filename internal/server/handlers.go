package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"agratem/internal/pricing"
)

const dateLayout = "2006-01-02"

// QuoteRequest is the POST /api/quotes body. Assets are supplied inline;
// the engine does not own the billboard catalog.
type QuoteRequest struct {
	Customer            pricing.CustomerInfo     `json:"customer"`
	Assets              []pricing.BillboardAsset `json:"assets"`
	Mode                string                   `json:"mode"`
	StartDate           string                   `json:"startDate"`
	EndDate             string                   `json:"endDate,omitempty"`
	PackageKey          string                   `json:"packageKey,omitempty"`
	IncludeInstallation bool                     `json:"includeInstallation"`
}

type QuoteResponse struct {
	Quote pricing.Quote         `json:"quote"`
	Stats pricing.CampaignStats `json:"stats"`
}

func (s *Server) handleCreateQuote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Assets) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one billboard is required")
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
	}

	var end time.Time
	if req.EndDate != "" {
		end, err = time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
		}
	}

	var pkg *pricing.PackageOption
	if req.PackageKey != "" {
		p, err := pricing.PackageByKey(req.PackageKey)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		pkg = &p
	}

	calcs, err := s.pricing.CalculateMany(c.Context(),
		req.Assets, req.Customer.CustomerType, req.Mode,
		start, end, pkg, req.IncludeInstallation)
	if err != nil {
		if errors.Is(err, pricing.ErrMissingEndDate) ||
			errors.Is(err, pricing.ErrMissingPackage) ||
			errors.Is(err, pricing.ErrUnknownMode) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fmt.Errorf("calculate quote: %w", err)
	}

	quote := pricing.BuildQuote(req.Customer, req.Mode, start, end, pkg, calcs)

	return c.JSON(QuoteResponse{
		Quote: quote,
		Stats: pricing.Stats(calcs),
	})
}

func (s *Server) handleListPackages(c *fiber.Ctx) error {
	return c.JSON(pricing.Packages)
}

func (s *Server) handleListPrices(c *fiber.Ctx) error {
	return c.JSON(s.pricing.Rows(c.Context()))
}

func (s *Server) handleExportCSV(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="price_rows.csv"`)
	return c.SendString(s.exch.Export(c.Context()))
}

func (s *Server) handleExportExcel(c *fiber.Ctx) error {
	data, err := s.exch.ExportExcel(c.Context())
	if err != nil {
		return fmt.Errorf("export excel: %w", err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="price_rows.xlsx"`)
	return c.Send(data)
}

func (s *Server) handleImport(c *fiber.Ctx) error {
	result := s.exch.Import(c.Context(), string(c.Body()))
	return c.JSON(result)
}
