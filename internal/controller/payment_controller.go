package controller

import (
	"net/http"
	"strconv"

	"github.com/adiwardana/marketplace/internal/dto"
	"github.com/adiwardana/marketplace/internal/service"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/adiwardana/marketplace/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type PaymentController struct {
	service service.PaymentService
}

func CreatePaymentController(e *echo.Group, service service.PaymentService) {
	c := PaymentController{
		service: service,
	}

	e.POST("/initiate", c.InitiatePayment)
	e.POST("/callback", c.PaymentCallback)
	e.GET("/transactions/:orderId", c.GetTransactions)
}

func (c *PaymentController) InitiatePayment(e echo.Context) error {
	payload := dto.InitiatePaymentRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "InitiatePayment").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.IPAddress = e.RealIP()
	payload.UserAgent = e.Request().UserAgent()

	resp, err := c.service.InitiatePayment(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, resp)
}

func (c *PaymentController) PaymentCallback(e echo.Context) error {
	payload := dto.PaymentCallbackRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "PaymentCallback").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := c.service.HandlePaymentCallback(e.Request().Context(), payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment verified successfully"})
}

func (c *PaymentController) GetTransactions(e echo.Context) error {
	orderID, err := strconv.ParseInt(e.Param("orderId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetTransactionsByOrderID(e.Request().Context(), orderID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, resp)
}
