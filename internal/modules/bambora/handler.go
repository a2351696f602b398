package bambora

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	log     *zap.Logger

	storeURL string
}

func NewHandler(service *Service, log *zap.Logger, storeURL string) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: service, log: log, storeURL: storeURL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/bambora/checkout/:orderID", h.Checkout)
	rg.GET("/payments/bambora/fee", h.AdditionalFee)

	// the gateway may call the browser-return handler with either verb
	rg.GET("/payments/bambora/result", h.ResultHandler)
	rg.POST("/payments/bambora/result", h.ResultHandler)
	rg.POST("/payments/bambora/notify", h.ResponseNotificationHandler)
}

// Checkout godoc
// @Summary      Redirect to the Bambora hosted payment page
// @Description  Builds the signed payment URL for an order and redirects the customer to it
// @Tags         Payments
// @Param        orderID path integer true "Order ID"
// @Success      302
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /payments/bambora/checkout/{orderID} [post]
//
// Fire and forget: there is no retry, the browser surfaces any failure to
// reach the gateway.
func (h *Handler) Checkout(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	redirect, err := h.service.BuildCheckoutRedirect(c.Request.Context(), orderID)
	if err != nil {
		h.log.Error("bambora checkout redirect failed",
			zap.Int64("order_id", orderID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment redirect failed"})
		return
	}

	c.Redirect(http.StatusFound, redirect.URL())
}

// AdditionalFee godoc
// @Summary      Additional handling fee
// @Description  Reports the configured handling fee for a cart total
// @Tags         Payments
// @Produce      json
// @Param        total query string true "Cart total"
// @Success      200 {object} FeeResponse
// @Failure      400 {object} ErrorResponse
// @Router       /payments/bambora/fee [get]
func (h *Handler) AdditionalFee(c *gin.Context) {
	total, err := decimal.NewFromString(c.Query("total"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid total"})
		return
	}

	fee, err := h.service.AdditionalHandlingFee(c.Request.Context(), total)
	if err != nil {
		h.log.Error("bambora additional fee failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fee calculation failed"})
		return
	}

	c.JSON(http.StatusOK, FeeResponse{AdditionalFee: fee.StringFixed(2)})
}

// ResultHandler godoc
// @Summary      Bambora browser-return callback
// @Description  Records the gateway response on the order and sends the customer to the completion page
// @Tags         Payments
// @Success      302
// @Router       /payments/bambora/result [post]
//
// This path runs in the customer's browser and is not authoritative: it
// never changes order state, and unknown or malformed callbacks fall back
// to the store home page.
func (h *Handler) ResultHandler(c *gin.Context) {
	n := h.parseNotification(c)

	orderID, ok := h.service.ProcessReturn(c.Request.Context(), n)
	if !ok {
		c.Redirect(http.StatusFound, h.storeURL)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("%s/checkout/completed/%d", h.storeURL, orderID))
}

// ResponseNotificationHandler godoc
// @Summary      Bambora server-to-server notification
// @Description  Validates the notification and marks the order as paid (idempotent)
// @Tags         Payments
// @Produce      plain
// @Success      200 {string} string ""
// @Router       /payments/bambora/notify [post]
//
// The gateway ignores the body and only needs a clean response, so every
// outcome answers 200 with an empty body.
func (h *Handler) ResponseNotificationHandler(c *gin.Context) {
	n := h.parseNotification(c)
	h.service.ProcessNotification(c.Request.Context(), n)
	c.String(http.StatusOK, "")
}

func (h *Handler) parseNotification(c *gin.Context) Notification {
	if err := c.Request.ParseForm(); err != nil {
		h.log.Warn("bambora callback form parse failed", zap.Error(err))
	}
	return ParseNotification(c.Request.PostForm, c.Request.URL.Query())
}
