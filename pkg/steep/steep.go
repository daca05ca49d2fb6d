// Package steep implements unidirectional component composition on top of
// [tea]. It has two prominent features:
//
//   - Components are plain values. A component is any type implementing
//     [Comp] on itself: Update consumes a message and returns an [Effect]
//     describing everything that should happen as a consequence, including
//     the replacement state. There are no callbacks and no shared mutable
//     state; a parent holds its children as ordinary struct fields.
//
//   - Parents embed children without knowing their message protocol. A
//     parent delegates a message to a child, gets back an Effect of the
//     child's type, and turns it into an Effect of its own type with [Fold].
//     The fold rewrites child state into parent state, re-envelops command
//     messages so they find their way back to the child, and interprets the
//     child's emitted notifications. The same mechanism drives [List], which
//     manages a keyed collection of children.
//
// An Effect is a closed union: None, Put, Do, Emit, Quit, Unhandled, or a
// Batch of those. Interpreting one is a single recursive walk that
// terminates because emitted notifications are interpreted at most once per
// level; whatever the interpretation emits in turn is passed up verbatim to
// the next level.
//
// [Runner] adapts a Comp to [tea.Model], so a component tree runs under a
// stock [tea.Program]. The host runtime remains in charge of terminal IO,
// rendering and event delivery; this package only decides how state and
// effects flow through the tree.
//
// The [github.com/steeptui/steep/pkg/steep/steeptest] package supports
// testing components without a terminal.
package steep

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/logutil"
)

var logger = logutil.GetLogger("[steep] ")

// Comp is the interface implemented by components. The type parameter is the
// implementing type itself, so that Update can return the replacement state
// inside the effect with full type safety:
//
//	type Model struct{ ... }
//
//	func (m Model) Init() tea.Cmd                { ... }
//	func (m Model) Update(msg tea.Msg) Effect[Model] { ... }
//	func (m Model) View() string                 { ... }
//
// Models are values; Update never mutates the receiver, it returns new state
// via [Put].
type Comp[M any] interface {
	// Init returns a command to run when the component starts, or nil.
	Init() tea.Cmd
	// Update reacts to a message.
	Update(msg tea.Msg) Effect[M]
	// View renders the component.
	View() string
}

// Effect describes the consequences of an update: new state, commands to
// run, notifications to the parent, or a request to terminate. The zero
// value is None. Effects are created with the constructor functions and are
// otherwise opaque; they are interpreted by [Fold], [Apply] and [Runner].
type Effect[M any] struct {
	kind  kind
	model M
	cmd   tea.Cmd
	out   tea.Msg
	subs  []Effect[M]
}

type kind uint8

const (
	kindNone kind = iota
	kindPut
	kindDo
	kindEmit
	kindBatch
	kindQuit
	kindUnhandled
)

// None returns an effect that does nothing. It is what an Update returns
// when it recognizes a message but has nothing to do about it.
func None[M any]() Effect[M] {
	return Effect[M]{}
}

// Put returns an effect that replaces the component's state with m.
func Put[M any](m M) Effect[M] {
	return Effect[M]{kind: kindPut, model: m}
}

// Do returns an effect that runs a command. The message the command produces
// is delivered back to the same component, even when the component is nested
// inside parents. Do(nil) is equivalent to [None].
func Do[M any](cmd tea.Cmd) Effect[M] {
	if cmd == nil {
		return None[M]()
	}
	return Effect[M]{kind: kindDo, cmd: cmd}
}

// Emit returns an effect that notifies the component's parent with an
// out-message. The parent decides what to do with it in [FoldSpec.OnEmit];
// the component itself neither knows nor cares. Emit(nil) is equivalent to
// [None].
func Emit[M any](out tea.Msg) Effect[M] {
	if out == nil {
		return None[M]()
	}
	return Effect[M]{kind: kindEmit, out: out}
}

// Quit returns an effect that requests terminating the program.
func Quit[M any]() Effect[M] {
	return Effect[M]{kind: kindQuit}
}

// Unhandled returns an effect reporting that the component did not recognize
// the message at all. Parents use it to layer their own handling over a
// child's: delegate first, and only act on the message if the child reports
// it unhandled. It is only meaningful as the entire effect; see [Batch] for
// how it combines.
func Unhandled[M any]() Effect[M] {
	return Effect[M]{kind: kindUnhandled}
}

// IsUnhandled reports whether eff reports its message unhandled. Parents
// use it after delegating a message to decide whether to handle the message
// themselves:
//
//	eff := parent.foldChild(parent.child.Update(msg))
//	if !steep.IsUnhandled(eff) {
//		return eff
//	}
//	// handle msg in the parent
func IsUnhandled[M any](eff Effect[M]) bool {
	return eff.kind == kindUnhandled
}

// Batch combines effects into one. Nested batches are spliced and None
// effects are dropped, so Batch never needs special-casing at use sites.
// Since Unhandled reports on the whole update, it only survives if every
// combined effect is Unhandled; mixed with anything else it is dropped.
func Batch[M any](effs ...Effect[M]) Effect[M] {
	flat := flatten(nil, effs)
	if len(flat) == 0 {
		return None[M]()
	}
	unhandled := 0
	for _, eff := range flat {
		if eff.kind == kindUnhandled {
			unhandled++
		}
	}
	if unhandled == len(flat) {
		return Unhandled[M]()
	}
	if unhandled > 0 {
		kept := make([]Effect[M], 0, len(flat)-unhandled)
		for _, eff := range flat {
			if eff.kind != kindUnhandled {
				kept = append(kept, eff)
			}
		}
		flat = kept
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Effect[M]{kind: kindBatch, subs: flat}
}

func flatten[M any](dst []Effect[M], effs []Effect[M]) []Effect[M] {
	for _, eff := range effs {
		switch eff.kind {
		case kindNone:
		case kindBatch:
			dst = flatten(dst, eff.subs)
		default:
			dst = append(dst, eff)
		}
	}
	return dst
}
