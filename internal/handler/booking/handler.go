package booking

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthlab/portal-api/internal/handler"
	"github.com/healthlab/portal-api/internal/model"
	"github.com/healthlab/portal-api/internal/service/booking"
	"github.com/healthlab/portal-api/internal/service/patient"
)

type Handler struct {
	service    booking.BookingService
	patientSvc patient.PatientService
}

func NewHandler(service booking.BookingService, patientSvc patient.PatientService) *Handler {
	return &Handler{
		service:    service,
		patientSvc: patientSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id/status", h.UpdateStatus)
		bookings.GET("/:id/report", h.DownloadReport)
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindingError(c, err)
		return
	}

	b, err := h.service.BookTest(c.Request.Context(), req.TestID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(b))
}

// ListBookings returns the booking history of the current patient.
func (h *Handler) ListBookings(c *gin.Context) {
	p, err := h.patientSvc.Current(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), p.ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bookings))
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindingError(c, err)
		return
	}

	b, err := h.service.AdvanceStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

// DownloadReport streams the synthesized report as a text attachment.
func (h *Handler) DownloadReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	rep, err := h.service.Report(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(rep.Content))
}
