package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	"github.com/MikeMC777/vendas-whatsapp/internal/notification"
)

// sseHeartbeat keeps proxies from closing idle streams.
const sseHeartbeat = 25 * time.Second

// CountResponse carries the unread badge counter.
// swagger:model UnreadCount
type CountResponse struct {
	NaoLidas int `json:"nao_lidas"`
}

// MarkedResponse reports how many notifications changed.
// swagger:model MarkedCount
type MarkedResponse struct {
	Marcadas int64 `json:"marcadas"`
}

// listNotificationsHandler godoc
//
//	@Summary		Poll notifications
//	@Description	Newest first. poll_interval_seconds tells the client when to call again.
//	@Tags			notificacoes
//	@Produce		json
//	@Param			nao_lidas	query		bool	false	"only unread"
//	@Param			limit		query		int		false	"max items"	default(20)
//	@Success		200			{object}	notification.ListResponse
//	@Security		BearerAuth
//	@Router			/portal/notificacoes [get]
func listNotificationsHandler(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		unread := c.Query("nao_lidas") == "true"
		res, err := svc.List(c.Request.Context(), empresaOf(c), unread, limit)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// countNotificationsHandler godoc
//
//	@Summary	Unread notifications
//	@Tags		notificacoes
//	@Produce	json
//	@Success	200	{object}	CountResponse
//	@Security	BearerAuth
//	@Router		/portal/notificacoes/contagem [get]
func countNotificationsHandler(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.CountUnread(c.Request.Context(), empresaOf(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{NaoLidas: n})
	}
}

// markReadHandler godoc
//
//	@Summary	Mark a notification as read
//	@Tags		notificacoes
//	@Param		id	path	string	true	"notification id"
//	@Success	204
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/notificacoes/{id}/lida [put]
func markReadHandler(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkRead(c.Request.Context(), empresaOf(c), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// markAllReadHandler godoc
//
//	@Summary	Mark every notification as read
//	@Tags		notificacoes
//	@Produce	json
//	@Success	200	{object}	MarkedResponse
//	@Security	BearerAuth
//	@Router		/portal/notificacoes/lidas [put]
func markAllReadHandler(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.MarkAllRead(c.Request.Context(), empresaOf(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, MarkedResponse{Marcadas: n})
	}
}

// streamNotificationsHandler godoc
//
//	@Summary		Realtime notifications
//	@Description	Server-sent events: one "notificacao" event per new notification, "heartbeat" every 25s.
//	@Tags			notificacoes
//	@Produce		text/event-stream
//	@Success		200	{object}	notification.Notification
//	@Security		BearerAuth
//	@Router			/portal/notificacoes/stream [get]
func streamNotificationsHandler(svc *notification.Service, log *zap.Logger, heartbeat time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		empresaID := empresaOf(c)
		ch, cancel, err := svc.Subscribe(ctx, empresaID)
		if err != nil {
			_ = c.Error(err)
			httpx.Fail(c, http.StatusServiceUnavailable, "realtime unavailable")
			return
		}
		defer cancel()

		h := c.Writer.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")
		c.Status(http.StatusOK)
		c.SSEvent("conectado", gin.H{"empresa_id": empresaID})
		c.Writer.Flush()

		log.Debug("sse client connected", zap.String("empresa_id", empresaID))
		defer log.Debug("sse client gone", zap.String("empresa_id", empresaID))

		tick := time.NewTicker(heartbeat)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-ch:
				if !ok {
					return
				}
				c.SSEvent("notificacao", n)
				c.Writer.Flush()
			case t := <-tick.C:
				c.SSEvent("heartbeat", t.Unix())
				c.Writer.Flush()
			}
		}
	}
}
