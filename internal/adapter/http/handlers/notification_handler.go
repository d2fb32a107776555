package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/response"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
	"github.com/giordanomadjo-lab/sisgped/pkg"
)

// NotificationHandler serves the per-user in-app feed.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// List returns the caller's feed plus the unread count.
//
// @Summary      Lista notificações
// @Tags         notificacoes
// @Produce      json
// @Param        lida   query  bool  false  "Filtra por lidas/não lidas"
// @Param        limit  query  int   false  "Máximo de itens"
// @Success      200  {object}  response.Envelope
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	var lida *bool
	if raw := c.Query("lida"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			lida = &v
		}
	}

	items, unread, err := h.usecase.List(c.Request.Context(), actor, lida, queryInt(c, "limit"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.NotificationListResponse{
		Notificacoes: items,
		UnreadCount:  unread,
	}))
}

// MarkRead acknowledges one notification.
//
// @Summary      Marca notificação como lida
// @Tags         notificacoes
// @Produce      json
// @Param        id  path  string  true  "ID da notificação"
// @Success      200  {object}  response.Envelope
// @Router       /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	if err := h.usecase.MarkRead(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Notificação marcada como lida"))
}

// MarkAllRead acknowledges the whole feed.
//
// @Summary      Marca todas as notificações como lidas
// @Tags         notificacoes
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	if err := h.usecase.MarkAllRead(c.Request.Context(), actor); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Notificações marcadas como lidas"))
}

// UnreadCount returns just the badge number. Anonymous callers get zero so
// the frontend can poll it before login without tripping 401 handling.
//
// @Summary      Contador de não lidas
// @Tags         notificacoes
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor, ok := SessionUserFrom(c)
	if !ok {
		c.JSON(http.StatusOK, response.OK(response.UnreadCountResponse{UnreadCount: 0}))
		return
	}

	count, err := h.usecase.UnreadCount(c.Request.Context(), actor)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.UnreadCountResponse{UnreadCount: count}))
}

func mapNotificationError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
}
