// Package console implements the interactive terminal surface of the
// tracker. It parses one command per line, calls the tracker service, and
// renders the results as plain text.
//
// While a profile setup dialog is in progress every line that is not a
// control command ("status", "cancel", "user", "help", "quit") is treated
// as the answer to the current setup question, so users can type bare
// values the way they would in a chat.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
	"github.com/heartmarshall/myhealth-backend/internal/service/tracker"
)

// defaultUserID is the user the console starts with; "user <id>" switches.
const defaultUserID = domain.UserID(1)

// ---------------------------------------------------------------------------
// Dependencies
// ---------------------------------------------------------------------------

type trackerService interface {
	StartSetup(ctx context.Context, userID domain.UserID) (*domain.SetupSession, error)
	SubmitSetupValue(ctx context.Context, userID domain.UserID, raw string) (*tracker.SetupProgress, error)
	CancelSetup(ctx context.Context, userID domain.UserID) error
	SetupStatus(ctx context.Context, userID domain.UserID) (*domain.SetupSession, error)
	LogWater(ctx context.Context, userID domain.UserID, input tracker.LogWaterInput) (*tracker.WaterStatus, error)
	LogFood(ctx context.Context, userID domain.UserID, input tracker.LogFoodInput) (*tracker.FoodStatus, error)
	LogWorkout(ctx context.Context, userID domain.UserID, input tracker.LogWorkoutInput) (*tracker.WorkoutStatus, error)
	Progress(ctx context.Context, userID domain.UserID) (*tracker.Report, error)
}

// ---------------------------------------------------------------------------
// Console
// ---------------------------------------------------------------------------

// Console reads commands from in and writes replies to out. It is not safe
// for concurrent use; run exactly one loop per Console.
type Console struct {
	svc trackerService
	in  io.Reader
	out io.Writer
	log *slog.Logger

	userID  domain.UserID
	inSetup bool
}

func New(log *slog.Logger, svc trackerService, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc:    svc,
		in:     in,
		out:    out,
		log:    log.With("transport", "console"),
		userID: defaultUserID,
	}
}

// Run processes commands until "quit", end of input, or context
// cancellation.
func (c *Console) Run(ctx context.Context) error {
	c.printf("Health tracker console. Type 'help' for commands.")

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := c.dispatch(ctx, line); quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// dispatch executes one input line and reports whether the loop should end.
func (c *Console) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])

	// Mid-dialog, bare values are answers, not commands.
	if c.inSetup && !isControlCommand(cmd) {
		c.submitAnswer(ctx, line)
		return false
	}

	switch cmd {
	case "help":
		c.printHelp()
	case "quit", "exit":
		return true
	case "user":
		c.switchUser(ctx, fields[1:])
	case "start":
		c.startSetup(ctx)
	case "cancel":
		c.cancelSetup(ctx)
	case "status":
		c.setupStatus(ctx)
	case "water":
		c.logWater(ctx, fields[1:])
	case "food":
		c.logFood(ctx, fields[1:])
	case "workout":
		c.logWorkout(ctx, fields[1:])
	case "progress":
		c.progress(ctx)
	default:
		c.printf("Unknown command %q. Type 'help' for commands.", cmd)
	}
	return false
}

// isControlCommand lists the commands that stay available during a setup
// dialog.
func isControlCommand(cmd string) bool {
	switch cmd {
	case "status", "cancel", "user", "help", "quit", "exit":
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (c *Console) switchUser(ctx context.Context, args []string) {
	if len(args) != 1 {
		c.printf("Usage: user <id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		c.printf("User id must be a positive number.")
		return
	}

	c.userID = domain.UserID(id)
	c.printf("Now tracking user %d.", id)

	// Pick up the new user's dialog if one is already open.
	session, err := c.svc.SetupStatus(ctx, c.userID)
	c.inSetup = err == nil
	if c.inSetup {
		c.printf("%s", session.CurrentField().Prompt)
	}
}

func (c *Console) startSetup(ctx context.Context) {
	session, err := c.svc.StartSetup(ctx, c.userID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	c.inSetup = true
	c.printf("Let's set up your profile. Type 'cancel' to stop.")
	c.printf("%s", session.CurrentField().Prompt)
}

func (c *Console) submitAnswer(ctx context.Context, raw string) {
	progress, err := c.svc.SubmitSetupValue(ctx, c.userID, raw)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			c.inSetup = false
		}
		c.renderError(ctx, err)
		return
	}

	if progress.Completed {
		c.inSetup = false
		c.printf("Profile saved.")
		c.renderNorms(*progress.Norms)
		return
	}
	c.printf("%s", progress.Session.CurrentField().Prompt)
}

func (c *Console) cancelSetup(ctx context.Context) {
	if err := c.svc.CancelSetup(ctx, c.userID); err != nil {
		c.renderError(ctx, err)
		return
	}
	c.inSetup = false
	c.printf("Setup cancelled.")
}

func (c *Console) setupStatus(ctx context.Context) {
	session, err := c.svc.SetupStatus(ctx, c.userID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	c.inSetup = true
	c.printf("%s", session.CurrentField().Prompt)
}

func (c *Console) logWater(ctx context.Context, args []string) {
	if len(args) != 1 {
		c.printf("Usage: water <ml>")
		return
	}
	amount, err := parseAmount(args[0])
	if err != nil {
		c.printf("Amount must be a number of millilitres.")
		return
	}

	status, err := c.svc.LogWater(ctx, c.userID, tracker.LogWaterInput{AmountML: amount})
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	c.renderWater(*status)
}

func (c *Console) logFood(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.printf("Usage: food <name> [grams]")
		return
	}

	// A trailing number is the portion weight; everything before it is the
	// food name.
	desc := strings.Join(args, " ")
	var grams float64
	if len(args) > 1 {
		if g, err := parseAmount(args[len(args)-1]); err == nil {
			grams = g
			desc = strings.Join(args[:len(args)-1], " ")
		}
	}

	status, err := c.svc.LogFood(ctx, c.userID, tracker.LogFoodInput{Description: desc, Grams: grams})
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	c.renderFood(*status)
}

func (c *Console) logWorkout(ctx context.Context, args []string) {
	if len(args) < 2 {
		c.printf("Usage: workout <activity> <minutes>")
		return
	}
	minutes, err := parseAmount(args[len(args)-1])
	if err != nil {
		c.printf("Usage: workout <activity> <minutes>")
		return
	}
	activity := strings.Join(args[:len(args)-1], " ")

	status, err := c.svc.LogWorkout(ctx, c.userID, tracker.LogWorkoutInput{Activity: activity, Minutes: minutes})
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	c.renderWorkout(*status)
}

func (c *Console) progress(ctx context.Context) {
	report, err := c.svc.Progress(ctx, c.userID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	c.renderReport(*report)
}

func (c *Console) printHelp() {
	c.printf("Commands:")
	c.printf("  start                        begin profile setup")
	c.printf("  status                       repeat the current setup question")
	c.printf("  cancel                       abandon profile setup")
	c.printf("  water <ml>                   log a drink")
	c.printf("  food <name> [grams]          log a meal (default portion 100 g)")
	c.printf("  workout <activity> <minutes> log a workout")
	c.printf("  progress                     show today's report")
	c.printf("  user <id>                    switch the active user")
	c.printf("  quit                         leave the console")
}

// parseAmount parses a decimal number, accepting a comma as the decimal
// separator the same way the setup dialog does.
func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
