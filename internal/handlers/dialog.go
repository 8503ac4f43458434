package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/PratikDhanave/dining-concierge/internal/auth"
	"github.com/PratikDhanave/dining-concierge/internal/dialog"
	"github.com/PratikDhanave/dining-concierge/internal/models"
)

// RegisterDialogRoutes registers the fulfillment hook.
//
// POST /v1/dialog
// - Requires X-API-Key (calling bot context)
// - Body: intent event; response: dialog response per the code-hook contract
// - Missing intent name / invocation source and unknown intents are the
//   caller's error (400), never a silent empty response
func RegisterDialogRoutes(r gin.IRoutes, d *dialog.Dispatcher, logger zerolog.Logger) {
	r.POST("/v1/dialog", func(c *gin.Context) {
		botID := auth.BotID(c)
		if botID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var event models.IntentEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		// Structurally required fields; slot values may be absent but the
		// envelope itself may not be.
		if event.SessionState.Intent.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionState.intent.name required"})
			return
		}
		if event.InvocationSource == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invocationSource required"})
			return
		}

		resp, err := d.Dispatch(c.Request.Context(), &event)
		if err != nil {
			if errors.Is(err, dialog.ErrUnknownIntent) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error().Err(err).Str("bot_id", botID).Msg("dispatch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "dispatch failed"})
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}
