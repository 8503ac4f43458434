package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PratikDhanave/dining-concierge/internal/models"
)

// Result is the outcome of a slot validation pass. When Valid is false,
// ViolatedSlot names the first slot that failed and Message is the re-prompt
// to show the user.
type Result struct {
	Valid        bool
	ViolatedSlot string
	Message      string
}

// Regions and cuisines the service currently takes reservations for.
var (
	validLocations = []string{"new york", "manhattan", "brooklyn", "nyc"}
	validCuisines = []string{
		"indian", "desi", "american", "vegetarian", "seafood",
		"chinese", "korean", "mexican", "mediterranean", "vegan",
	}
)

// Permissive local@domain.tld shape; stricter RFC parsing is the mail
// provider's problem.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dateLayout is the format the dialog manager resolves date slots to.
const dateLayout = "2006-01-02"

// Slots checks the filled slots in a fixed priority order:
// location, cuisine, reservation date, party size, email. Absent slots are
// skipped; requiring them is the dialog manager's job. Reservation time and
// phone number are accepted without validation, matching the bot's original
// behavior. now supplies "today" and the timezone for the future-date check.
func Slots(slots map[string]*models.SlotValue, now time.Time) Result {
	if city, ok := slots[models.SlotLocation].Interpreted(); ok && !contains(validLocations, city) {
		return invalid(models.SlotLocation, fmt.Sprintf(
			"We currently do not support %s. We only support New York (New York, Manhattan, Brooklyn) region. Which location do you want to book for?",
			city))
	}

	if cuisine, ok := slots[models.SlotCuisine].Interpreted(); ok && !contains(validCuisines, cuisine) {
		return invalid(models.SlotCuisine, fmt.Sprintf(
			"We currently do not offer %s cuisine. Can you try a different one?", cuisine))
	}

	if date, ok := slots[models.SlotReservationDate].Interpreted(); ok {
		parsed, err := time.ParseInLocation(dateLayout, date, now.Location())
		if err != nil {
			return invalid(models.SlotReservationDate,
				"Please enter a valid reservation date. When would you like to make your reservation?")
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if !parsed.After(today) {
			return invalid(models.SlotReservationDate,
				"The reservation date must be in the future. Can you please provide a future date for your reservation?")
		}
	}

	if people, ok := slots[models.SlotNumberOfPeople].Interpreted(); ok {
		n, err := strconv.Atoi(people)
		if err != nil || n < 1 || n > 10 {
			return invalid(models.SlotNumberOfPeople,
				"We accept reservations for up to 10 guests only. How many guests will be attending?")
		}
	}

	if email, ok := slots[models.SlotEmail].Interpreted(); ok && !emailPattern.MatchString(email) {
		return invalid(models.SlotEmail, "Please provide a valid email address.")
	}

	return Result{Valid: true}
}

func invalid(slot, message string) Result {
	return Result{Valid: false, ViolatedSlot: slot, Message: message}
}

func contains(list []string, v string) bool {
	v = strings.ToLower(v)
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
