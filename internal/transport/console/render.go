package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
	"github.com/heartmarshall/myhealth-backend/internal/service/tracker"
)

// ---------------------------------------------------------------------------
// Result rendering
// ---------------------------------------------------------------------------

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) renderNorms(n tracker.DailyNorms) {
	c.printf("Daily water target: %s ml.", whole(n.WaterTargetML))
	c.printf("Daily calorie target: %s kcal.", whole(n.CalorieTargetKcal))
	if n.TemperatureC != nil {
		c.printf("Current temperature: %.1f C.", *n.TemperatureC)
	}
}

func (c *Console) renderWater(s tracker.WaterStatus) {
	if s.RemainingML > 0 {
		c.printf("Logged. Today: %s of %s ml, %s ml to go.",
			whole(s.ConsumedML), whole(s.TargetML), whole(s.RemainingML))
		return
	}
	c.printf("Logged. Today: %s of %s ml. Target reached.",
		whole(s.ConsumedML), whole(s.TargetML))
}

func (c *Console) renderFood(s tracker.FoodStatus) {
	c.printf("%s, %s g: %s kcal.", s.Entry.Description, compact(s.Entry.Grams), tenth(s.Entry.Calories))
	c.printf("Eaten today: %s kcal.", tenth(s.ConsumedKcal))
}

func (c *Console) renderWorkout(s tracker.WorkoutStatus) {
	c.printf("%s for %s min: %s kcal burned.",
		s.Entry.Activity, compact(s.Entry.Minutes), tenth(s.Entry.CaloriesBurned))
	if s.RecommendedWaterML > 0 {
		c.printf("Drink an extra %s ml of water.", whole(s.RecommendedWaterML))
	}
	c.printf("Burned today: %s kcal.", tenth(s.BurnedKcal))
}

func (c *Console) renderReport(r tracker.Report) {
	c.printf("Progress for %s:", r.Date)
	c.printf("Water: %s of %s ml.", whole(r.WaterConsumedML), whole(r.WaterTargetML))
	if r.WaterRemainingML > 0 {
		c.printf("  %s ml to go.", whole(r.WaterRemainingML))
	} else {
		c.printf("  Water target reached.")
	}
	c.printf("Calories: %s kcal eaten, %s kcal burned, target %s kcal.",
		tenth(r.CaloriesConsumedKcal), tenth(r.CaloriesBurnedKcal), whole(r.CalorieTargetKcal))
	if r.NetRemainingKcal > 0 {
		c.printf("  %s kcal left for today.", tenth(r.NetRemainingKcal))
	} else {
		c.printf("  Calorie target reached.")
	}
	if r.TemperatureC != nil {
		c.printf("Temperature: %.1f C.", *r.TemperatureC)
	}
}

// whole formats a value with no decimal places. Targets and water volumes
// are always whole numbers.
func whole(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// tenth keeps one decimal so fractional energy values stay visible.
func tenth(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// compact drops trailing zeros so whole portions print without decimals.
func compact(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ---------------------------------------------------------------------------
// Error rendering
// ---------------------------------------------------------------------------

// renderError maps service errors to user-facing messages. Unexpected
// errors are logged and replaced with a generic message.
func (c *Console) renderError(ctx context.Context, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		for _, fe := range ve.Errors {
			c.printf("%s: %s", fe.Field, fe.Message)
		}
	case errors.Is(err, domain.ErrNoProfile):
		c.printf("No profile yet. Type 'start' to set one up.")
	case errors.Is(err, domain.ErrNoActiveSession):
		c.printf("No setup in progress. Type 'start' to begin.")
	case errors.Is(err, domain.ErrLookupUnavailable):
		c.printf("Could not find that food right now. Try another name.")
	case errors.Is(err, domain.ErrInvalidAmount):
		c.printf("That amount does not look right. Use a number greater than zero.")
	default:
		c.log.ErrorContext(ctx, "command failed",
			slog.Int64("user_id", int64(c.userID)),
			slog.String("error", err.Error()),
		)
		c.printf("Something went wrong. Please try again.")
	}
}
