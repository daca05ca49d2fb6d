package steep

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FoldSpec tells [Fold] how to interpret a child's effect from the parent's
// point of view. All three fields are optional, although a parent that
// leaves Put nil loses the child's state changes.
type FoldSpec[C, P any] struct {
	// Put merges new child state into the parent. If nil, child state
	// changes are discarded.
	Put func(parent P, child C) P
	// Wrap envelops messages produced by the child's commands, so that the
	// parent's Update can recognize them and route them back down. If nil,
	// command messages are delivered unwrapped.
	Wrap func(msg tea.Msg) tea.Msg
	// OnEmit interprets an out-message from the child. It sees the parent
	// state as already merged by earlier effects of the same fold. The
	// effect it returns is folded into the result, except that any Emit
	// inside it is kept verbatim for the grandparent; it is never fed back
	// into OnEmit. If nil, out-messages are dropped.
	OnEmit func(parent P, out tea.Msg) Effect[P]
}

// Fold turns an effect of the child type into an effect of the parent type.
// It interprets the child effect left to right: Put effects thread through
// the parent state, so a later OnEmit call sees the state merged by an
// earlier Put; Do commands are wrapped with spec.Wrap; Emit out-messages are
// interpreted with spec.OnEmit; Quit carries over. A child effect that is
// entirely Unhandled folds to Unhandled of the parent type, so the parent
// can handle the message itself afterwards.
func Fold[C, P any](parent P, eff Effect[C], spec FoldSpec[C, P]) Effect[P] {
	if eff.kind == kindUnhandled {
		return Unhandled[P]()
	}
	f := folder[C, P]{spec: spec, p: parent}
	f.walkChild(eff)
	return f.result()
}

// folder accumulates the outcome of interpreting one effect: the threaded
// parent state and the commands, residual out-messages and quit request
// collected along the way.
type folder[C, P any] struct {
	spec  FoldSpec[C, P]
	p     P
	dirty bool
	cmds  []tea.Cmd
	emits []tea.Msg
	quit  bool
}

func (f *folder[C, P]) walkChild(eff Effect[C]) {
	switch eff.kind {
	case kindPut:
		if f.spec.Put != nil {
			f.p = f.spec.Put(f.p, eff.model)
			f.dirty = true
		}
	case kindDo:
		f.cmds = append(f.cmds, WrapCmd(eff.cmd, f.spec.Wrap))
	case kindEmit:
		if f.spec.OnEmit == nil {
			logger.Printf("dropped %T emitted to a parent with no OnEmit", eff.out)
			return
		}
		f.walkParent(f.spec.OnEmit(f.p, eff.out))
	case kindQuit:
		f.quit = true
	case kindBatch:
		for _, sub := range eff.subs {
			f.walkChild(sub)
		}
	}
}

// walkParent interprets an effect that is already of the parent type. Emits
// are collected verbatim rather than interpreted again, which is what bounds
// the recursion: each level of the tree runs OnEmit at most once per
// out-message.
func (f *folder[C, P]) walkParent(eff Effect[P]) {
	switch eff.kind {
	case kindPut:
		f.p = eff.model
		f.dirty = true
	case kindDo:
		f.cmds = append(f.cmds, eff.cmd)
	case kindEmit:
		f.emits = append(f.emits, eff.out)
	case kindQuit:
		f.quit = true
	case kindBatch:
		for _, sub := range eff.subs {
			f.walkParent(sub)
		}
	}
}

func (f *folder[C, P]) result() Effect[P] {
	var parts []Effect[P]
	if f.dirty {
		parts = append(parts, Put(f.p))
	}
	for _, cmd := range f.cmds {
		parts = append(parts, Do[P](cmd))
	}
	for _, out := range f.emits {
		parts = append(parts, Emit[P](out))
	}
	if f.quit {
		parts = append(parts, Quit[P]())
	}
	return Batch(parts...)
}

// Result summarizes applying an effect to a model with [Apply].
type Result struct {
	// Cmds are the commands the effect requested, in order.
	Cmds []tea.Cmd
	// Emitted are out-messages still addressed to a parent. At the top of
	// the tree there is no parent; [Runner] logs and drops them.
	Emitted []tea.Msg
	// Quit reports whether the effect requested terminating the program.
	Quit bool
	// Unhandled reports whether the effect was Unhandled. When it is true,
	// every other field is zero.
	Unhandled bool
	// Changed reports whether the effect replaced the model.
	Changed bool
}

// Apply interprets an effect against a model of the same type, returning the
// new model and a summary of everything else the effect asked for. It is the
// terminal step of effect handling, used by [Runner] at the top of the
// component tree; tests use it to observe effects without a runtime.
func Apply[M any](m M, eff Effect[M]) (M, Result) {
	if eff.kind == kindUnhandled {
		return m, Result{Unhandled: true}
	}
	f := folder[M, M]{p: m}
	f.walkParent(eff)
	return f.p, Result{
		Cmds: f.cmds, Emitted: f.emits, Quit: f.quit, Changed: f.dirty,
	}
}

// WrapCmd returns a command like cmd whose message is passed through wrap. A
// nil cmd or nil wrap returns cmd unchanged. Batch messages are wrapped
// element-wise, and [tea.QuitMsg] passes through unwrapped so that quitting
// still reaches the runtime.
func WrapCmd(cmd tea.Cmd, wrap func(tea.Msg) tea.Msg) tea.Cmd {
	if cmd == nil || wrap == nil {
		return cmd
	}
	return func() tea.Msg {
		switch msg := cmd().(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			wrapped := make(tea.BatchMsg, len(msg))
			for i, c := range msg {
				wrapped[i] = WrapCmd(c, wrap)
			}
			return wrapped
		case tea.QuitMsg:
			return msg
		default:
			return wrap(msg)
		}
	}
}
