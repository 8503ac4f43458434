package dialog

import "github.com/PratikDhanave/dining-concierge/internal/models"

// Response builders for the three dialog actions the service can answer with.
// Each returns a fully-formed envelope; session attributes always serialize,
// defaulting to an empty map so the caller's state survives every code path.

// Close ends the current turn with a final message. The intent is reported as
// fulfilled regardless of what happened upstream; only the message differs.
func Close(attrs map[string]string, intentName, message string) *models.DialogResponse {
	return &models.DialogResponse{
		SessionState: models.SessionState{
			SessionAttributes: ensureAttrs(attrs),
			DialogAction:      &models.DialogAction{Type: models.ActionClose},
			Intent: models.Intent{
				Name:  intentName,
				State: models.StateFulfilled,
			},
		},
		Messages: []models.Message{{
			ContentType: models.ContentTypePlainText,
			Content:     message,
		}},
	}
}

// ElicitSlot asks the user for a specific slot, or for anything at all when
// slotToElicit is empty (the open-ended greeting prompt). The full current
// slot map is carried so the dialog manager keeps what was already collected.
func ElicitSlot(attrs map[string]string, intentName string, slots map[string]*models.SlotValue, slotToElicit, message string) *models.DialogResponse {
	return &models.DialogResponse{
		SessionState: models.SessionState{
			SessionAttributes: ensureAttrs(attrs),
			DialogAction: &models.DialogAction{
				Type:         models.ActionElicitSlot,
				SlotToElicit: slotToElicit,
			},
			Intent: models.Intent{
				Name:  intentName,
				Slots: slots,
			},
		},
		Messages: []models.Message{{
			ContentType: models.ContentTypePlainText,
			Content:     message,
		}},
	}
}

// Delegate hands control back to the dialog manager with the slots marked
// ready for fulfillment. No message: the dialog manager prompts from here.
func Delegate(attrs map[string]string, intentName string, slots map[string]*models.SlotValue) *models.DialogResponse {
	return &models.DialogResponse{
		SessionState: models.SessionState{
			SessionAttributes: ensureAttrs(attrs),
			DialogAction:      &models.DialogAction{Type: models.ActionDelegate},
			Intent: models.Intent{
				Name:  intentName,
				Slots: slots,
				State: models.StateReadyForFulfillment,
			},
		},
	}
}

// ensureAttrs keeps the session-attribute invariant: echoed unchanged,
// never null on the wire.
func ensureAttrs(attrs map[string]string) map[string]string {
	if attrs == nil {
		return map[string]string{}
	}
	return attrs
}
