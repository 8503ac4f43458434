package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/PratikDhanave/dining-concierge/internal/models"
	"github.com/PratikDhanave/dining-concierge/internal/queue"
	"github.com/PratikDhanave/dining-concierge/internal/validate"
)

// Intent names as configured in the bot console.
const (
	IntentDiningSuggestions = "DiningSuggestionsIntent"
	IntentGreeting          = "GreetingIntent"
	IntentThankYou          = "ThankYouIntent"
)

// User-visible texts for the canned flows.
const (
	greetingPrompt = "Hi there, I am your Dining Concierge Bot. How can I help you today? You can ask for restaurant suggestions or specify any cuisine you like!"
	thankYouText   = "Thank you for using Dining Concierge Bot. How can I help you next time?"
	fulfilledText  = "You're all set. Expect my suggestions shortly! Have a good day."
	apologyText    = "Sorry, we are facing some issues. Please try again later."
)

// ErrUnknownIntent is returned when the event names an intent this service
// has no handler for. The caller should report it as a routing error rather
// than answer with an empty response.
var ErrUnknownIntent = errors.New("unknown intent")

// Dispatcher routes intent events to their handlers. Stateless across
// invocations; the only outbound dependency is the suggestions queue.
type Dispatcher struct {
	queue  queue.Publisher
	loc    *time.Location
	logger zerolog.Logger
	now    func() time.Time
}

// NewDispatcher returns a dispatcher validating reservation dates against
// "today" in loc.
func NewDispatcher(q queue.Publisher, loc *time.Location, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		queue:  q,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// Dispatch routes the event by intent name.
func (d *Dispatcher) Dispatch(ctx context.Context, event *models.IntentEvent) (*models.DialogResponse, error) {
	name := event.SessionState.Intent.Name
	d.logger.Debug().
		Str("intent", name).
		Str("invocation_source", event.InvocationSource).
		Str("bot", event.Bot.Name).
		Msg("dispatching intent")

	switch name {
	case IntentDiningSuggestions:
		return d.diningSuggestion(ctx, event)
	case IntentGreeting:
		return d.greeting(event), nil
	case IntentThankYou:
		return d.thankYou(event), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, name)
	}
}

// diningSuggestion drives the slot-filling flow. During the dialog phase the
// first invalid slot is cleared and re-elicited; once everything present
// checks out, control is delegated back to the dialog manager. At fulfillment
// the collected reservation is queued and the dialog closes either way; a
// queue outage only changes the message the user sees.
func (d *Dispatcher) diningSuggestion(ctx context.Context, event *models.IntentEvent) (*models.DialogResponse, error) {
	intent := event.SessionState.Intent
	attrs := event.SessionState.SessionAttributes

	switch event.InvocationSource {
	case models.SourceDialog:
		result := validate.Slots(intent.Slots, d.now().In(d.loc))
		if !result.Valid {
			slots := intent.Slots
			if slots == nil {
				slots = map[string]*models.SlotValue{}
			}
			slots[result.ViolatedSlot] = nil
			return ElicitSlot(attrs, intent.Name, slots, result.ViolatedSlot, result.Message), nil
		}
		return Delegate(attrs, intent.Name, intent.Slots), nil

	case models.SourceFulfillment:
		req := d.buildReservation(intent.Slots)
		message := fulfilledText
		if err := d.submit(ctx, req); err != nil {
			d.logger.Error().Err(err).
				Str("request_id", req.RequestID).
				Msg("reservation submit failed")
			message = apologyText
		} else {
			d.logger.Info().
				Str("request_id", req.RequestID).
				Str("cuisine", req.Cuisine).
				Msg("reservation queued")
		}
		return Close(attrs, intent.Name, message), nil

	default:
		return nil, fmt.Errorf("unknown invocation source %q", event.InvocationSource)
	}
}

// greeting answers with an open-ended prompt; no slot is named.
func (d *Dispatcher) greeting(event *models.IntentEvent) *models.DialogResponse {
	intent := event.SessionState.Intent
	return ElicitSlot(event.SessionState.SessionAttributes, intent.Name, intent.Slots, "", greetingPrompt)
}

func (d *Dispatcher) thankYou(event *models.IntentEvent) *models.DialogResponse {
	return Close(event.SessionState.SessionAttributes, event.SessionState.Intent.Name, thankYouText)
}

// buildReservation copies the current slot values into the queue record.
// Absent slots become empty strings; the downstream worker treats them as
// unspecified preferences.
func (d *Dispatcher) buildReservation(slots map[string]*models.SlotValue) models.ReservationRequest {
	get := func(name string) string {
		v, _ := slots[name].Interpreted()
		return v
	}
	return models.ReservationRequest{
		RequestID:       uuid.NewString(),
		ReservationType: models.ReservationTypeDining,
		Location:        get(models.SlotLocation),
		Cuisine:         get(models.SlotCuisine),
		DiningDate:      get(models.SlotReservationDate),
		DiningTime:      get(models.SlotReservationTime),
		PartySize:       get(models.SlotNumberOfPeople),
		Email:           get(models.SlotEmail),
		Phone:           get(models.SlotPhoneNumber),
		SubmittedAt:     d.now().UTC(),
	}
}

func (d *Dispatcher) submit(ctx context.Context, req models.ReservationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal reservation: %w", err)
	}
	return d.queue.Submit(ctx, body)
}
