// Package session drives the interactive menu over an inventory.
package session

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/matthieukhl/stockroom/internal/inventory"
	"github.com/matthieukhl/stockroom/internal/models"
	"github.com/matthieukhl/stockroom/internal/report"
)

var (
	ErrInputCancelled = errors.New("input cancelled")
	ErrNotRunning     = errors.New("session is not running")
)

// Console is the text interaction boundary. PromptLine returns ok=false
// when the user declines to answer.
type Console interface {
	PromptLine(message string) (string, bool)
	Notify(message string)
}

type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Menu choices
const (
	ChoiceSearch = "1"
	ChoiceAdd    = "2"
	ChoiceStats  = "3"
	ChoiceExit   = "4"
)

// Controller owns the running flag and dispatches menu choices to the
// inventory. It is single threaded: each iteration completes its
// prompt/response cycle before the next one starts.
type Controller struct {
	inv     *inventory.Inventory
	console Console
	format  *report.Formatter
	log     *logrus.Entry
	state   State
}

func NewController(inv *inventory.Inventory, console Console, format *report.Formatter, logger *logrus.Logger) *Controller {
	return &Controller{
		inv:     inv,
		console: console,
		format:  format,
		log:     logger.WithField("session", uuid.NewString()),
		state:   StateIdle,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Begin moves the session to running and prints the intro. It returns
// false, after reporting it, when the session is already running.
func (c *Controller) Begin() bool {
	if c.state == StateRunning {
		c.console.Notify("⚠️  The system is already running.")
		return false
	}

	c.state = StateRunning
	c.log.Debug("session_started")
	c.console.Notify(c.format.Intro())
	return true
}

// Start begins the session and runs the menu loop until the user exits
// or cancels the menu prompt.
func (c *Controller) Start() {
	if !c.Begin() {
		return
	}

	for c.state == StateRunning {
		c.console.Notify(c.format.Menu())
		choice, ok := c.console.PromptLine("Select an option (1, 2, 3 or 4):")
		if !ok || choice == "" {
			c.console.Notify("Operation cancelled.")
			c.Stop()
			break
		}
		if err := c.Dispatch(choice); err != nil {
			c.log.WithError(err).Warn("dispatch_failed")
			break
		}
	}
}

// Stop ends a running session and prints the session summary. It does
// nothing unless the session is running.
func (c *Controller) Stop() {
	if c.state != StateRunning {
		return
	}
	c.console.Notify(c.format.Summary(c.inv.Statistics()))
	c.state = StateStopped
	c.log.WithField("products", c.inv.Len()).Debug("session_stopped")
}

// Halt ends a running session without a summary.
func (c *Controller) Halt() {
	if c.state != StateRunning {
		return
	}
	c.state = StateStopped
	c.console.Notify("System stopped manually.")
	c.log.Debug("session_halted")
}

// Dispatch handles one menu choice.
func (c *Controller) Dispatch(choice string) error {
	if c.state != StateRunning {
		return ErrNotRunning
	}

	choice = strings.TrimSpace(choice)
	c.log.WithField("choice", choice).Debug("menu_choice")

	switch choice {
	case ChoiceSearch:
		c.searchByCategory()
	case ChoiceAdd:
		c.addProduct()
	case ChoiceStats:
		c.console.Notify(c.format.Statistics(c.inv.Statistics()))
	case ChoiceExit:
		c.Stop()
	default:
		c.console.Notify("\n⚠️  Invalid option. Choose 1, 2, 3 or 4.")
	}
	return nil
}

func (c *Controller) searchByCategory() {
	c.console.Notify("\n🔍 SEARCH BY CATEGORY")
	c.console.Notify("Available categories: " + strings.Join(c.inv.Categories(), ", "))

	category, ok := c.console.PromptLine("Enter the category to search:")
	if !ok || category == "" {
		c.console.Notify("❌ Search cancelled.")
		return
	}

	match, err := c.inv.FindByCategory(category)
	if err != nil {
		c.log.WithError(err).Debug("search_rejected")
		c.console.Notify(c.format.InvalidCategory(category, c.inv.Categories()))
		return
	}

	c.log.WithFields(logrus.Fields{
		"category": category,
		"matches":  len(match.Products),
	}).Debug("search_completed")
	c.console.Notify(c.format.SearchResult(match))
}

func (c *Controller) addProduct() {
	c.console.Notify("\n➕ ADD A NEW PRODUCT TO THE INVENTORY")
	c.console.Notify(strings.Repeat("-", 45))
	c.console.Notify("📋 Fill in the following details:")

	raw, err := c.collectCandidate()
	if err != nil {
		c.console.Notify("❌ Operation cancelled.")
		return
	}

	candidate, err := c.inv.ParseCandidate(raw)
	if err != nil {
		c.log.WithError(err).Warn("candidate_rejected")
		c.console.Notify("❌ " + err.Error())
		return
	}

	res, err := c.inv.Insert(candidate)
	var dup *inventory.DuplicateBrandError
	switch {
	case errors.As(err, &dup):
		c.log.WithField("name", dup.Name).Debug("duplicate_brand")
		c.console.Notify(c.format.DuplicateBrand(dup.Name, c.inv))
	case err != nil:
		c.log.WithError(err).Warn("insert_failed")
		c.console.Notify("❌ " + err.Error())
	default:
		c.log.WithFields(logrus.Fields{
			"product_id":   res.Product.ID,
			"brand_mapped": res.BrandMapped,
		}).Debug("product_inserted")
		c.console.Notify(c.format.Inserted(res, c.inv.Products()))
	}
}

// collectCandidate asks for every field in order, repeating a question
// until its answer is valid. An empty answer cancels the whole operation.
func (c *Controller) collectCandidate() (inventory.RawCandidate, error) {
	raw := make(inventory.RawCandidate, len(models.CandidateFields))
	for _, kind := range models.CandidateFields {
		q := c.question(kind)
		for {
			answer, ok := c.console.PromptLine(q.prompt)
			if !ok || answer == "" {
				return nil, ErrInputCancelled
			}
			if c.inv.Validate(kind, answer) {
				raw[kind] = answer
				break
			}
			c.log.WithField("field", kind.String()).Debug("field_rejected")
			c.console.Notify(q.rejection)
		}
	}
	return raw, nil
}
