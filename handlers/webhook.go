package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"superlife/config"
	"superlife/utils"
)

// Stripe caps webhook payloads at 64KB; anything larger is not ours.
const maxWebhookBody = 65536

// StripeWebhook handles asynchronous payment events from Stripe.
// POST /api/webhooks/stripe
func StripeWebhook(c *gin.Context) {
	logger := utils.GetLogger()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	// Stripe retries deliveries; the first processing of an event id wins.
	cache := utils.GetCacheClient()
	key := "stripe:event:" + event.ID
	fresh, err := cache.SetNX(c.Request.Context(), key, "1", 24*time.Hour).Result()
	if err != nil {
		logger.Error("webhook idempotency check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "idempotency check failed"})
		return
	}
	if !fresh {
		c.JSON(http.StatusOK, gin.H{"received": true, "duplicate": true})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			logger.Error("failed to parse payment intent event", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
			return
		}
		if err := BookingService.ConfirmPayment(c.Request.Context(), intent.ID); err != nil {
			logger.Error("failed to confirm payment from webhook",
				zap.String("intent", intent.ID), zap.Error(err))
			// Release the idempotency key so Stripe's retry can succeed.
			cache.Del(c.Request.Context(), key)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to confirm payment"})
			return
		}
	default:
		logger.Debug("ignoring stripe event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
