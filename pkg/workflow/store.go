// Package workflow drives the assistant's action pipeline: per-action stage
// transitions with simulated asynchronous progress, the recommendation and
// issue lifecycles, and the derived per-phase progress the UI renders.
//
// The store is owned by the UI event loop. Every mutation happens on a
// user-triggered or timer-triggered callback; nothing here is safe for
// concurrent use and nothing needs to be.
package workflow

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/quillforge/sidekick/pkg/models"
)

// Store holds all assistant-side state: actions grouped into categories,
// recommendations, validation issues and the aggregate validation score.
type Store struct {
	actions         []*models.Action
	categories      []*models.Category
	recommendations []*models.Recommendation
	issues          []*models.Issue

	score      int
	scoreDelta int

	bus  *EventBus
	rand *rand.Rand

	// ops maps an action ID to its live operation ID. A simulated async
	// completion carrying any other operation ID is stale and dropped.
	ops map[string]string
}

// NewStore creates an empty store with the given validation scoring policy.
func NewStore(initialScore, fixScoreDelta int) *Store {
	s := &Store{
		score:      initialScore,
		scoreDelta: fixScoreDelta,
		bus:        NewEventBus(),
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		ops:        make(map[string]string),
	}
	s.bus.Subscribe(EventEvidenceAdded, s.onEvidenceAdded)
	return s
}

// Bus exposes the store's event bus so views can subscribe to broadcasts.
func (s *Store) Bus() *EventBus {
	return s.bus
}

// Score returns the aggregate validation score.
func (s *Store) Score() int {
	return s.score
}

// Actions returns all actions, in creation order. Actions are never deleted;
// dismissed ones stay in the list as completed terminal states.
func (s *Store) Actions() []*models.Action {
	return s.actions
}

// Action returns the action with the given ID.
func (s *Store) Action(id string) (*models.Action, error) {
	for _, a := range s.actions {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrActionNotFound
}

// ActionsInCategory returns the actions belonging to one phase.
func (s *Store) ActionsInCategory(categoryID string) []*models.Action {
	var out []*models.Action
	for _, a := range s.actions {
		if a.Category == categoryID {
			out = append(out, a)
		}
	}
	return out
}

// Categories returns all phases in creation order.
func (s *Store) Categories() []*models.Category {
	return s.categories
}

// Category returns the phase with the given ID.
func (s *Store) Category(id string) (*models.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// CategoryProgress derives a phase's completion ratio from the live action
// list. Recomputed on every call, never cached.
func (s *Store) CategoryProgress(categoryID string) float64 {
	return models.CategoryProgress(s.actions, categoryID)
}

// AddCategory appends a user-created phase. Categories are never deleted or
// merged. The color comes from the shared palette when not supplied.
func (s *Store) AddCategory(name, description, color string) *models.Category {
	c := &models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Color:       models.CategoryColor(name, color),
		Dynamic:     true,
	}
	s.categories = append(s.categories, c)
	return c
}

// SeedCategory installs a fixed phase at load time.
func (s *Store) SeedCategory(c *models.Category) {
	s.categories = append(s.categories, c)
}

// AddAction creates an action in the given phase from a user command-bar
// submission: sources stage shown, everything pending.
func (s *Store) AddAction(title, description, categoryID string, priority models.Priority) *models.Action {
	a := models.NewAction(uuid.NewString(), title, description, categoryID, priority)
	s.actions = append(s.actions, a)
	return a
}

// SeedAction installs a pre-built action at load time.
func (s *Store) SeedAction(a *models.Action) {
	s.actions = append(s.actions, a)
}

// Recommendations returns all recommendations, including closed ones.
func (s *Store) Recommendations() []*models.Recommendation {
	return s.recommendations
}

// SeedRecommendation installs a recommendation at load time.
func (s *Store) SeedRecommendation(r *models.Recommendation) {
	s.recommendations = append(s.recommendations, r)
}

// Issues returns the open validation issues. Fixed issues are removed, not
// flagged.
func (s *Store) Issues() []*models.Issue {
	return s.issues
}

// SeedIssue installs a validation issue at load time.
func (s *Store) SeedIssue(i *models.Issue) {
	s.issues = append(s.issues, i)
}

// beginOp stamps a new operation ID on the action, superseding any in-flight
// simulated work for it.
func (s *Store) beginOp(actionID string) string {
	op := uuid.NewString()
	s.ops[actionID] = op
	return op
}

// opCurrent reports whether the given operation is still the action's live
// one. Completions for superseded operations must be dropped.
func (s *Store) opCurrent(actionID, opID string) bool {
	return s.ops[actionID] == opID
}
