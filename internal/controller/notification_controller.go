package controller

import (
	"strconv"

	"github.com/adiwardana/marketplace/internal/dto"
	"github.com/adiwardana/marketplace/internal/service"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/adiwardana/marketplace/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type NotificationController struct {
	service service.NotificationService
}

func CreateNotificationController(e *echo.Group, service service.NotificationService) {
	c := NotificationController{
		service: service,
	}

	e.POST("/notifications", c.AddNotification)
	e.GET("/notifications", c.GetNotifications)
	e.PATCH("/notifications/:id/read", c.MarkNotificationRead)
}

func (c *NotificationController) AddNotification(e echo.Context) error {
	payload := dto.NotificationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddNotification").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.AddNotification(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "notification created", resp)
}

func (c *NotificationController) GetNotifications(e echo.Context) error {
	userID, err := strconv.ParseInt(e.QueryParam("userId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	unreadOnly, _ := strconv.ParseBool(e.QueryParam("unreadOnly"))

	resp, err := c.service.GetNotifications(e.Request().Context(), userID, unreadOnly)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved notifications", resp)
}

func (c *NotificationController) MarkNotificationRead(e echo.Context) error {
	if err := c.service.MarkNotificationRead(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "notification marked as read", nil)
}
