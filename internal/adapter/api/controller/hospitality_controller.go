package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/turismo-backend/internal/adapter/api/dto"
	"github.com/hugohenrick/turismo-backend/internal/adapter/repository"
	"github.com/hugohenrick/turismo-backend/internal/domain/hospitality"
)

// HospitalityController gerencia as requisições relacionadas a estabelecimentos
type HospitalityController struct {
	hospitalityRepository hospitality.Repository
}

// NewHospitalityController cria uma nova instância de HospitalityController
func NewHospitalityController(hospitalityRepository hospitality.Repository) *HospitalityController {
	return &HospitalityController{
		hospitalityRepository: hospitalityRepository,
	}
}

// Create cria um novo estabelecimento
// @Summary Cria um novo estabelecimento
// @Description Cria um novo estabelecimento turístico (somente administradores)
// @Tags hospitality
// @Accept json
// @Produce json
// @Security Bearer
// @Param hospitality body dto.HospitalityRequest true "Dados do estabelecimento"
// @Success 201 {object} dto.HospitalityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /hospitality [post]
func (c *HospitalityController) Create(ctx *gin.Context) {
	var request dto.HospitalityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	h := &hospitality.Hospitality{
		ID:          uuid.New().String(),
		Type:        hospitality.Type(request.Type),
		Name:        request.Name,
		Description: request.Description,
		CreatedOn:   time.Now(),
	}

	if err := c.hospitalityRepository.Create(ctx, h); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar estabelecimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHospitalityResponse(h))
}

// List lista todos os estabelecimentos
// @Summary Lista os estabelecimentos
// @Description Retorna todos os estabelecimentos cadastrados
// @Tags hospitality
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.HospitalityResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /hospitality [get]
func (c *HospitalityController) List(ctx *gin.Context) {
	items, err := c.hospitalityRepository.FindAll(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar estabelecimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHospitalityResponseList(items))
}

// GetByID busca um estabelecimento pelo ID
// @Summary Busca um estabelecimento pelo ID
// @Description Busca um estabelecimento pelo seu ID
// @Tags hospitality
// @Produce json
// @Security Bearer
// @Param id path string true "ID do estabelecimento"
// @Success 200 {object} dto.HospitalityResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /hospitality/{id} [get]
func (c *HospitalityController) GetByID(ctx *gin.Context) {
	h, err := c.hospitalityRepository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHospitalityNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Estabelecimento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar estabelecimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHospitalityResponse(h))
}

// Update atualiza parcialmente um estabelecimento
// @Summary Atualiza um estabelecimento
// @Description Atualiza os campos informados de um estabelecimento (somente administradores)
// @Tags hospitality
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do estabelecimento"
// @Param hospitality body dto.HospitalityUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.HospitalityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /hospitality/{id} [patch]
func (c *HospitalityController) Update(ctx *gin.Context) {
	var request dto.HospitalityUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	h, err := c.hospitalityRepository.Update(ctx, ctx.Param("id"), request.ToHospitalityUpdate())
	if err != nil {
		if errors.Is(err, repository.ErrHospitalityNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Estabelecimento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar estabelecimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHospitalityResponse(h))
}

// Delete remove um estabelecimento
// @Summary Remove um estabelecimento
// @Description Remove um estabelecimento pelo seu ID (somente administradores)
// @Tags hospitality
// @Produce json
// @Security Bearer
// @Param id path string true "ID do estabelecimento"
// @Success 204 "Sem conteúdo"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /hospitality/{id} [delete]
func (c *HospitalityController) Delete(ctx *gin.Context) {
	if err := c.hospitalityRepository.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrHospitalityNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Estabelecimento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover estabelecimento", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
