package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

type createHotelRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Location    string  `json:"location"    validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Image       string  `json:"image"       validate:"required"`
}

// List returns the hotel catalog, optionally filtered.
//
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Param        search    query     string  false  "Substring match on name or description"
// @Param        location  query     string  false  "Exact location match (case-insensitive)"
// @Success      200       {array}   domain.Hotel
// @Failure      500       {object}  map[string]string
// @Router       /api/hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	hotels, err := h.service.List(c.Request().Context(), ports.CatalogFilter{
		Search:   c.QueryParam("search"),
		Location: c.QueryParam("location"),
	})
	if err != nil {
		return err
	}

	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return c.JSON(http.StatusOK, hotels)
}

// Create adds a hotel to the catalog.
//
// The endpoint takes no credentials; the public site seeds catalog data
// through it.
//
// @Summary      Add a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Param        body  body      createHotelRequest  true  "Hotel details"
// @Success      201   {object}  domain.Hotel
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	var req createHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hotel, err := h.service.Create(c.Request().Context(), ports.CreateHotelInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, hotel)
}
