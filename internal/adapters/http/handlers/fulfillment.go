package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-fulfillment/internal/app"
)

// FulfillmentHandler serves the Dialogflow webhook.
type FulfillmentHandler struct {
	service *app.FulfillmentService
}

// NewFulfillmentHandler creates a new fulfillment handler.
func NewFulfillmentHandler(service *app.FulfillmentService) *FulfillmentHandler {
	return &FulfillmentHandler{
		service: service,
	}
}

// Fulfill handles POST /api/v1/fulfillment.
//
// A request the webhook can interpret always gets 200 with a
// WebhookResponse, including the apology when no quote could be produced.
// Undecodable bodies get 400 and unknown intents 404, both with the
// standard error envelope.
//
// @Summary Fulfill a Dialogflow intent
// @Tags fulfillment
// @Accept json
// @Produce json
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/fulfillment [post]
func (h *FulfillmentHandler) Fulfill(c *gin.Context) {
	var req dto.WebhookRequest

	err := dto.BindAndValidate(c, &req)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrBinding):
			dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "request body is not a valid webhook request")
		case dto.IsValidationError(err):
			dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		default:
			dto.HandleError(c, err)
		}

		return
	}

	reply, err := h.service.Fulfill(c.Request.Context(), req.ToFulfillmentRequest())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWebhookResponse(reply))
}

// RegisterRoutes registers the webhook on rg, normally the /api/v1 group.
func (h *FulfillmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/fulfillment", h.Fulfill)
}
