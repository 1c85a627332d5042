package cursorfx

import "github.com/pkg/errors"

// Scheme selects one of the two cursor event vocabularies.
type Scheme uint8

const (
	SchemeLegacy  Scheme = iota // holocursordown, holocursorup, ...
	SchemeCurrent               // cursordown, cursorup, ...
)

func (s Scheme) String() string {
	switch s {
	case SchemeLegacy:
		return "legacy"
	case SchemeCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// Action is a scheme-independent cursor action.
type Action uint8

const (
	ActionDown  Action = iota // pointer pressed
	ActionUp                  // pointer released
	ActionEnter               // pointer entered an object
	ActionLeave               // pointer left an object
	ActionMove                // pointer moved

	actionCount
)

// Interaction names the callbacks a pointer controller invokes.
type Interaction string

const (
	InteractionHoverOver Interaction = "hoverOver"
	InteractionHoverOut  Interaction = "hoverOut"
	InteractionSelect    Interaction = "select"
	InteractionDeselect  Interaction = "deselect"
	InteractionMove      Interaction = "move"
)

// Event kinds in both schemes.
const (
	KindCursorDown  = "cursordown"
	KindCursorUp    = "cursorup"
	KindCursorEnter = "cursorenter"
	KindCursorLeave = "cursorleave"
	KindCursorMove  = "cursormove"

	legacyPrefix = "holo"

	KindHoloCursorDown  = legacyPrefix + KindCursorDown
	KindHoloCursorUp    = legacyPrefix + KindCursorUp
	KindHoloCursorEnter = legacyPrefix + KindCursorEnter
	KindHoloCursorLeave = legacyPrefix + KindCursorLeave
	KindHoloCursorMove  = legacyPrefix + KindCursorMove
)

var kindTable = [2][actionCount]string{
	SchemeLegacy: {
		ActionDown:  KindHoloCursorDown,
		ActionUp:    KindHoloCursorUp,
		ActionEnter: KindHoloCursorEnter,
		ActionLeave: KindHoloCursorLeave,
		ActionMove:  KindHoloCursorMove,
	},
	SchemeCurrent: {
		ActionDown:  KindCursorDown,
		ActionUp:    KindCursorUp,
		ActionEnter: KindCursorEnter,
		ActionLeave: KindCursorLeave,
		ActionMove:  KindCursorMove,
	},
}

var interactionActions = map[Interaction]Action{
	InteractionHoverOver: ActionEnter,
	InteractionHoverOut:  ActionLeave,
	InteractionSelect:    ActionDown,
	InteractionDeselect:  ActionUp,
	InteractionMove:      ActionMove,
}

// kindActions maps a kind of either scheme back to its action.
var kindActions = func() map[string]Action {
	m := make(map[string]Action, 2*int(actionCount))
	for _, kinds := range kindTable {
		for a, k := range kinds {
			m[k] = Action(a)
		}
	}
	return m
}()

// discreteActions are the actions a registered object listens for natively.
var discreteActions = [...]Action{ActionDown, ActionUp, ActionEnter, ActionLeave}

// EventNames is the interaction/kind table of one scheme.
type EventNames struct {
	scheme Scheme
}

// NewEventNames returns the table for scheme.
func NewEventNames(scheme Scheme) EventNames {
	return EventNames{scheme: scheme}
}

// Scheme returns the scheme this table renders.
func (n EventNames) Scheme() Scheme {
	return n.scheme
}

// Kind returns the event kind for a.
func (n EventNames) Kind(a Action) string {
	return kindTable[n.scheme][a]
}

// ForInteraction returns the event kind a controller interaction maps to.
func (n EventNames) ForInteraction(i Interaction) (string, error) {
	a, ok := interactionActions[i]
	if !ok {
		return "", errors.Errorf("no event kind for interaction %q", i)
	}
	return n.Kind(a), nil
}

// Normalize maps a kind written in either scheme onto this scheme.
// Unknown kinds are returned unchanged with ok == false.
func (n EventNames) Normalize(kind string) (string, bool) {
	a, ok := kindActions[kind]
	if !ok {
		return kind, false
	}
	return n.Kind(a), true
}

// ActionOf reports the action of a kind in either scheme.
func ActionOf(kind string) (Action, bool) {
	a, ok := kindActions[kind]
	return a, ok
}
