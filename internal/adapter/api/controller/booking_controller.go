package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/dto"
	"github.com/hugohenrick/turismo-backend/internal/adapter/repository"
	"github.com/hugohenrick/turismo-backend/internal/domain/booking"
)

// BookingController gerencia as requisições relacionadas a reservas
type BookingController struct {
	bookingRepository booking.Repository
}

// NewBookingController cria uma nova instância de BookingController
func NewBookingController(bookingRepository booking.Repository) *BookingController {
	return &BookingController{
		bookingRepository: bookingRepository,
	}
}

// Create cria uma nova reserva para o usuário autenticado
// @Summary Cria uma nova reserva
// @Description Cria uma reserva do usuário autenticado em um estabelecimento
// @Tags bookings
// @Accept json
// @Produce json
// @Security Bearer
// @Param booking body dto.BookingRequest true "Dados da reserva"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings [post]
func (c *BookingController) Create(ctx *gin.Context) {
	var request dto.BookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if !request.EndDate.After(request.StartDate) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "A data final deve ser posterior à data inicial", ""))
		return
	}

	ticketCount := request.TicketCount
	if ticketCount == 0 {
		ticketCount = 1
	}

	b := &booking.Booking{
		ID:            uuid.New().String(),
		HospitalityID: request.HospitalityID,
		StartDate:     request.StartDate,
		EndDate:       request.EndDate,
		UserID:        ctx.GetString("user_id"),
		TicketCount:   ticketCount,
		CreatedOn:     time.Now(),
	}

	if err := c.bookingRepository.Create(ctx, b); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar reserva", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBookingResponse(b))
}

// List lista as reservas do usuário autenticado
// @Summary Lista as reservas do usuário
// @Description Retorna as reservas do usuário autenticado, da mais recente para a mais antiga
// @Tags bookings
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BookingResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings [get]
func (c *BookingController) List(ctx *gin.Context) {
	bookings, err := c.bookingRepository.FindByUser(ctx, ctx.GetString("user_id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar reservas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookingResponseList(bookings))
}

// GetByID busca uma reserva do usuário autenticado pelo ID
// @Summary Busca uma reserva pelo ID
// @Description Busca uma reserva do usuário autenticado pelo seu ID
// @Tags bookings
// @Produce json
// @Security Bearer
// @Param id path string true "ID da reserva"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings/{id} [get]
func (c *BookingController) GetByID(ctx *gin.Context) {
	b, err := c.bookingRepository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Reserva não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar reserva", err.Error()))
		return
	}

	// Reservas de outros usuários são tratadas como inexistentes
	if !b.BelongsTo(ctx.GetString("user_id")) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Reserva não encontrada", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

// Delete remove uma reserva do usuário autenticado
// @Summary Remove uma reserva
// @Description Remove uma reserva do usuário autenticado pelo seu ID
// @Tags bookings
// @Produce json
// @Security Bearer
// @Param id path string true "ID da reserva"
// @Success 204 "Sem conteúdo"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings/{id} [delete]
func (c *BookingController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	b, err := c.bookingRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Reserva não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar reserva", err.Error()))
		return
	}

	if !b.BelongsTo(ctx.GetString("user_id")) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Reserva não encontrada", ""))
		return
	}

	if err := c.bookingRepository.Delete(ctx, id); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover reserva", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
