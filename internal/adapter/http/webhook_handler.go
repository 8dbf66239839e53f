package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"brickvest-backend/internal/usecase/payment"
	"brickvest-backend/pkg/webhook"
)

const (
	signatureHeader    = "X-Webhook-Signature"
	signatureTolerance = 5 * time.Minute
	// redis fast-path marker for already-processed sessions; the ledger
	// reference lookup inside the usecase stays authoritative.
	seenKeyPrefix = "payment:session:"
	seenTTL       = 24 * time.Hour
)

type WebhookHandler struct {
	uc     *payment.Usecase
	rdb    *redis.Client
	secret string
}

func NewWebhookHandler(uc *payment.Usecase, rdb *redis.Client, secret string) *WebhookHandler {
	return &WebhookHandler{uc: uc, rdb: rdb, secret: secret}
}

// paymentEvent is the gateway's webhook envelope.
type paymentEvent struct {
	Type string `json:"type"`
	Data struct {
		SessionID string `json:"session_id"`
		Metadata  struct {
			UserID string `json:"user_id"`
			Amount string `json:"amount"`
			Type   string `json:"type"`
		} `json:"metadata"`
	} `json:"data"`
}

// HandlePaymentWebhook verifies the gateway signature and credits the wallet
// exactly once per checkout session. Replays are acknowledged with 200 so the
// gateway stops retrying.
func (h *WebhookHandler) HandlePaymentWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable body"})
	}

	sig := c.Request().Header.Get(signatureHeader)
	if sig == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no signature"})
	}
	if err := webhook.Verify(body, sig, h.secret, signatureTolerance); err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid signature"})
	}

	var evt paymentEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
	}

	if evt.Type != "checkout.session.completed" {
		// not ours to handle; acknowledge so the gateway moves on
		return c.JSON(http.StatusOK, map[string]bool{"received": true})
	}

	amount, err := decimal.NewFromString(evt.Data.Metadata.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid metadata"})
	}

	ctx := c.Request().Context()
	seenKey := seenKeyPrefix + evt.Data.SessionID
	if h.rdb != nil && evt.Data.SessionID != "" {
		if n, err := h.rdb.Exists(ctx, seenKey).Result(); err == nil && n > 0 {
			return c.JSON(http.StatusOK, map[string]bool{"received": true})
		}
	}

	if err := h.uc.OnPaymentConfirmed(ctx, evt.Data.SessionID, evt.Data.Metadata.UserID, amount); err != nil {
		if errors.Is(err, payment.ErrInvalidMetadata) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid metadata"})
		}
		log.Printf("webhook: deposit for session %s failed: %v", evt.Data.SessionID, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to process deposit"})
	}

	if h.rdb != nil {
		_ = h.rdb.Set(ctx, seenKey, 1, seenTTL).Err()
	}
	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
