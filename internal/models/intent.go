package models

// Intent event and dialog response envelopes exchanged with the dialog
// manager. Field names follow the Lex V2 code-hook contract; everything the
// service does not interpret (session attributes) is round-tripped unchanged.

// Invocation sources set by the dialog manager on each code-hook call.
const (
	SourceDialog      = "DialogCodeHook"
	SourceFulfillment = "FulfillmentCodeHook"
)

// Dialog action types this service can answer with.
const (
	ActionClose      = "Close"
	ActionElicitSlot = "ElicitSlot"
	ActionDelegate   = "Delegate"
)

// Intent states carried on terminal and delegating responses.
const (
	StateFulfilled           = "Fulfilled"
	StateReadyForFulfillment = "ReadyForFulfillment"
)

// Slot names as configured in the bot console.
const (
	SlotLocation        = "location"
	SlotCuisine         = "cuisine"
	SlotReservationDate = "reservationDate"
	SlotReservationTime = "reservationTime"
	SlotNumberOfPeople  = "numberOfPeople"
	SlotEmail           = "email"
	SlotPhoneNumber     = "phone_number"
)

// ContentTypePlainText is the only message content type the service emits.
const ContentTypePlainText = "PlainText"

// IntentEvent is the inbound code-hook payload.
type IntentEvent struct {
	Bot              Bot          `json:"bot"`
	InvocationSource string       `json:"invocationSource"`
	SessionState     SessionState `json:"sessionState"`
}

// Bot identifies the calling bot.
type Bot struct {
	Name string `json:"name"`
}

// SessionState carries the conversation state owned by the dialog manager.
// SessionAttributes are opaque to this service and must be echoed back
// unchanged on every response.
type SessionState struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      *DialogAction     `json:"dialogAction,omitempty"`
	Intent            Intent            `json:"intent"`
}

// Intent is the recognized user goal plus its collected slots.
type Intent struct {
	Name  string                `json:"name"`
	Slots map[string]*SlotValue `json:"slots,omitempty"`
	State string                `json:"state,omitempty"`
}

// SlotValue is a filled slot. A nil *SlotValue in the slot map means the
// dialog manager has not collected (or this service has cleared) the slot.
type SlotValue struct {
	Value SlotValueSpec `json:"value"`
}

// SlotValueSpec holds the value the dialog manager resolved from user input.
type SlotValueSpec struct {
	InterpretedValue string `json:"interpretedValue"`
}

// Interpreted returns the interpreted value and whether the slot is set.
// Safe to call on a nil receiver, which reports the slot as absent.
func (s *SlotValue) Interpreted() (string, bool) {
	if s == nil {
		return "", false
	}
	return s.Value.InterpretedValue, true
}

// DialogAction tells the dialog manager what to do next.
// SlotToElicit is only meaningful for ElicitSlot and stays empty for an
// open-ended prompt.
type DialogAction struct {
	Type         string `json:"type"`
	SlotToElicit string `json:"slotToElicit,omitempty"`
}

// Message is a user-visible message attached to a response.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// DialogResponse is the outbound code-hook payload.
type DialogResponse struct {
	SessionState SessionState `json:"sessionState"`
	Messages     []Message    `json:"messages,omitempty"`
}
