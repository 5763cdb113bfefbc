package flow

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/tacostay/internal/catalog"
)

var (
	// ErrSitterRequired is returned when the target screen needs a selected sitter.
	ErrSitterRequired = errors.New("flow: screen requires a selected sitter")
	// ErrNoEdge is returned when the graph has no edge from the current screen.
	ErrNoEdge = errors.New("flow: transition not allowed")
)

// Controller owns the current screen and the sitter in context. It is the only
// state shared across screens.
type Controller struct {
	graph  Graph
	screen Screen
	sitter *catalog.Sitter
	log    *zap.Logger
}

// NewController starts at the splash screen with no sitter.
func NewController(graph Graph, log *zap.Logger) *Controller {
	if graph == nil {
		graph = DefaultGraph()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{graph: graph, screen: ScreenSplash, log: log}
}

func (c *Controller) Screen() Screen { return c.screen }

// Sitter returns the selected sitter, or nil.
func (c *Controller) Sitter() *catalog.Sitter { return c.sitter }

func (c *Controller) Graph() Graph { return c.graph }

func (c *Controller) check(to Screen, sitter *catalog.Sitter) error {
	if !c.graph.Allows(c.screen, to) {
		return fmt.Errorf("%w: %s -> %s", ErrNoEdge, c.screen, to)
	}
	if to.RequiresSitter() && sitter == nil {
		return fmt.Errorf("%w: %s", ErrSitterRequired, to)
	}
	return nil
}

// GoTo moves to screen along a graph edge. On error nothing changes.
func (c *Controller) GoTo(screen Screen) error {
	if err := c.check(screen, c.sitter); err != nil {
		c.log.Debug("transition refused", zap.String("from", string(c.screen)), zap.String("to", string(screen)), zap.Error(err))
		return err
	}
	c.log.Debug("transition", zap.String("from", string(c.screen)), zap.String("to", string(screen)))
	c.screen = screen
	return nil
}

// SelectSitterAndAdvance sets the sitter and moves to target in one step.
// Both fields change together or not at all.
func (c *Controller) SelectSitterAndAdvance(s *catalog.Sitter, target Screen) error {
	if err := c.check(target, s); err != nil {
		c.log.Debug("selection refused", zap.String("to", string(target)), zap.Error(err))
		return err
	}
	if s == nil {
		return ErrSitterRequired
	}
	c.log.Debug("sitter selected", zap.Int("sitter_id", s.ID), zap.String("to", string(target)))
	c.sitter = s
	c.screen = target
	return nil
}

// Next follows the current screen's forward edge.
func (c *Controller) Next() error {
	return c.GoTo(c.graph[c.screen].Next)
}

// Back follows the current screen's back edge.
func (c *Controller) Back() error {
	return c.GoTo(c.graph[c.screen].Back)
}
