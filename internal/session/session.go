// Package session runs the interactive house-building menu.
//
// A Session connects a Prompter (line input) and an io.Writer (output) to
// the builders, the director, and the input validator. It owns no domain
// state beyond a tally of finished houses; each flow creates its own
// builder, so an aborted manual build leaves nothing behind.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/housebuilder/internal/builder"
	"github.com/mesh-intelligence/housebuilder/internal/director"
	"github.com/mesh-intelligence/housebuilder/internal/validate"
	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

// Main menu choices.
const (
	choiceManual   = "1"
	choiceDirector = "2"
	choiceDemo     = "3"
	choiceExit     = "4"
)

// builderBlurbs describes each builder kind in the selection menu.
var builderBlurbs = map[string]string{
	types.BuilderSimple: "normal houses",
	types.BuilderFancy:  "luxury houses",
}

// Session is one run of the interactive menu loop.
type Session struct {
	prompter Prompter
	printer  *Printer
	cfg      types.Config
	logger   *zap.Logger
	director director.Director

	// built counts houses finished during this session.
	built int
}

// New returns a Session. A nil logger is replaced with a no-op logger.
func New(prompter Prompter, out io.Writer, cfg types.Config, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		prompter: prompter,
		printer:  NewPrinter(out, cfg.Color),
		cfg:      cfg,
		logger:   logger,
		director: director.New(),
	}
}

// Built returns the number of houses finished so far.
func (s *Session) Built() int {
	return s.built
}

// Run executes the menu loop until the user exits, declines to build
// another house, or input ends. End of input is a normal exit and returns
// nil. A cancelled ctx stops the loop at the next prompt and returns
// ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	s.printer.Banner("House Builder Pattern Demo")

	for {
		s.printer.Separator()
		s.printer.Line("What would you like to do?")
		s.printer.Option(1, "Build a house manually")
		s.printer.Option(2, "Use pre-made house plans (Director)")
		s.printer.Option(3, "See demo comparison")
		s.printer.Option(4, "Exit")

		choice, err := s.ask(ctx, "Enter choice (1-4): ")
		if err != nil {
			return s.finish(err)
		}
		s.logger.Debug("menu choice", zap.String("choice", choice))

		switch choice {
		case choiceManual:
			err = s.buildManually(ctx)
		case choiceDirector:
			err = s.useDirector(ctx)
		case choiceDemo:
			s.showDemo()
		case choiceExit:
			return s.finish(nil)
		default:
			s.printer.Warn("Invalid choice, please try again.")
		}
		if err != nil {
			return s.finish(err)
		}

		again, err := s.ask(ctx, "\nWould you like to build another house? (y/n): ")
		if err != nil {
			return s.finish(err)
		}
		// Anything but an explicit yes ends the session.
		if yes, verr := validate.YesNo(again); verr != nil || !yes {
			return s.finish(nil)
		}
	}
}

// ask checks ctx and then asks the prompter.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.prompter.Ask(prompt)
}

// finish prints the farewell and maps end of input to a clean exit.
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		err = nil
	}
	s.printer.Line("\nThanks for using the House Builder Pattern Demo!")
	s.printer.Line(fmt.Sprintf("Houses built this session: %d", s.built))
	s.logger.Info("session finished", zap.Int("built", s.built), zap.Error(err))
	return err
}

// chooseBuilder shows the builder menu and returns the selected kind.
// Any answer other than 2 selects the simple builder.
func (s *Session) chooseBuilder(ctx context.Context) (string, error) {
	s.printer.Heading("Choose your construction team:")
	for i, kind := range builder.Kinds() {
		s.printer.Option(i+1, fmt.Sprintf("%s (%s)", builder.Title(kind), builderBlurbs[kind]))
	}

	choice, err := s.ask(ctx, "Enter choice (1 or 2): ")
	if err != nil {
		return "", err
	}

	kind := types.BuilderSimple
	if choice == "2" {
		kind = types.BuilderFancy
	}
	s.printer.OK("You chose %s!", builder.Title(kind))
	return kind, nil
}

// buildManually asks for each attribute in turn. A validation error aborts
// the whole sequence; it is reported and the menu loop carries on.
func (s *Session) buildManually(ctx context.Context) error {
	kind, err := s.chooseBuilder(ctx)
	if err != nil {
		return err
	}
	b, err := builder.New(kind)
	if err != nil {
		return err
	}

	s.printer.Heading("Let's build your house step by step!")

	house, err := s.collect(ctx, b)
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		s.printer.Fail(verr.Message)
		s.logger.Info("manual build aborted",
			zap.String("builder", kind),
			zap.String("input", verr.Input),
			zap.Error(err))
		return nil
	}
	if err != nil {
		return err
	}

	s.finished(kind, "manual", house, "Your custom house")
	return nil
}

// collect feeds validated answers into b and builds the house.
func (s *Session) collect(ctx context.Context, b types.HouseBuilder) (types.House, error) {
	limits := s.cfg.Limits

	walls, err := s.askCount(ctx, "walls", limits.Walls)
	if err != nil {
		return types.House{}, err
	}
	b.SetWalls(walls)
	s.printer.OK("Added %d walls", walls)

	doors, err := s.askCount(ctx, "doors", limits.Doors)
	if err != nil {
		return types.House{}, err
	}
	b.SetDoors(doors)
	s.printer.OK("Added %d doors", doors)

	windows, err := s.askCount(ctx, "windows", limits.Windows)
	if err != nil {
		return types.House{}, err
	}
	b.SetWindows(windows)
	s.printer.OK("Added %d windows", windows)

	garage, err := s.askYesNo(ctx, "Do you want a garage? (y/n): ")
	if err != nil {
		return types.House{}, err
	}
	if garage {
		b.AddGarage()
		s.printer.OK("Added garage")
	}

	garden, err := s.askYesNo(ctx, "Do you want a garden? (y/n): ")
	if err != nil {
		return types.House{}, err
	}
	if garden {
		b.AddGarden()
		s.printer.OK("Added garden")
	}

	return b.Build(), nil
}

func (s *Session) askCount(ctx context.Context, what string, r types.Range) (int, error) {
	raw, err := s.ask(ctx, fmt.Sprintf("How many %s? (%d-%d): ", what, r.Min, r.Max))
	if err != nil {
		return 0, err
	}
	return validate.InRange(raw, r)
}

func (s *Session) askYesNo(ctx context.Context, prompt string) (bool, error) {
	raw, err := s.ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	return validate.YesNo(raw)
}

// useDirector builds a house from a pre-made plan. Any answer other than
// 2 selects the first plan.
func (s *Session) useDirector(ctx context.Context) error {
	kind, err := s.chooseBuilder(ctx)
	if err != nil {
		return err
	}
	b, err := builder.New(kind)
	if err != nil {
		return err
	}

	plans := director.Plans()
	s.printer.Heading("Choose a pre-made house plan:")
	for i, p := range plans {
		s.printer.Option(i+1, fmt.Sprintf("%s (%s)", p.Title, p.Summary))
	}

	choice, err := s.ask(ctx, "Enter choice (1 or 2): ")
	if err != nil {
		return err
	}
	plan := plans[0]
	if choice == "2" {
		plan = plans[1]
	}

	house := s.director.Apply(plan, b)
	s.printer.OK("Built %s!", plan.Title)
	s.finished(kind, plan.Name, house, "Your house")
	return nil
}

// showDemo applies the family plan to every builder kind.
func (s *Session) showDemo() {
	s.printer.Heading("Demo of different builders:")

	plan, err := director.Lookup(types.PlanFamily)
	if err != nil {
		s.printer.Fail(err.Error())
		return
	}
	for _, c := range s.director.Compare(plan) {
		s.printer.Line(fmt.Sprintf("%s Result: %s", builder.Title(c.Builder), c.House.Describe()))
	}
	s.printer.Line("Notice how the same plan gives different results!")
}

// finished records and prints a completed house.
func (s *Session) finished(kind, plan string, house types.House, label string) {
	s.built++

	id, err := uuid.NewV7()
	if err != nil {
		s.logger.Warn("generate build id", zap.Error(err))
	}
	s.logger.Info("house built",
		zap.String("build_id", id.String()),
		zap.String("builder", kind),
		zap.String("plan", plan),
		zap.String("house", house.Describe()))

	s.printer.Card(label, house.Describe())
}
