package steep

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyedMsg addresses a message to the child of a [List] with the given key.
// List.Update unwraps it and delegates the inner message to that child.
// Messages produced by a child's commands, as well as out-messages emitted
// by a child, are re-enveloped in a KeyedMsg on their way up, so the key
// also tells a List's parent which child emitted what.
type KeyedMsg struct {
	Key string
	Msg tea.Msg
}

// List manages a keyed, ordered collection of child components, and is
// itself a component. Children are iterated in insertion order. At most one
// child has focus; messages that are not [KeyedMsg] go to the focused child.
//
// A List is a value like any other model: methods return an updated copy and
// never mutate the receiver. The zero value is an empty list.
type List[C Comp[C]] struct {
	keys  []string
	comps map[string]C
	focus string
}

// Init starts every child.
func (l List[C]) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(l.keys))
	for _, key := range l.keys {
		cmds = append(cmds, WrapCmd(l.comps[key].Init(), keyedWrap(key)))
	}
	return tea.Batch(cmds...)
}

// Update delegates the message to one child. A [KeyedMsg] goes to the child
// it names; the message is considered consumed even if that child reports it
// unhandled, and a KeyedMsg whose key is no longer in the list is dropped,
// since commands may outlive the child that issued them. Any other message
// goes to the focused child, and the child's Unhandled passes through so
// that the parent can overlay its own handling.
func (l List[C]) Update(msg tea.Msg) Effect[List[C]] {
	if keyed, ok := msg.(KeyedMsg); ok {
		c, ok := l.comps[keyed.Key]
		if !ok {
			logger.Printf("dropped %T for removed key %q", keyed.Msg, keyed.Key)
			return None[List[C]]()
		}
		folded := l.foldChild(keyed.Key, c.Update(keyed.Msg))
		if folded.kind == kindUnhandled {
			return None[List[C]]()
		}
		return folded
	}
	if l.focus == "" {
		return Unhandled[List[C]]()
	}
	return l.foldChild(l.focus, l.comps[l.focus].Update(msg))
}

// View renders the children in insertion order, one per line. Parents that
// want a different layout render the children themselves with [List.Each].
func (l List[C]) View() string {
	views := make([]string, len(l.keys))
	for i, key := range l.keys {
		views[i] = l.comps[key].View()
	}
	return strings.Join(views, "\n")
}

// Broadcast delegates a message to every child in insertion order, folding
// all their effects together. It is for messages that concern the whole
// collection, such as [tea.WindowSizeMsg]. The result is Unhandled only if
// every child reported the message unhandled.
func (l List[C]) Broadcast(msg tea.Msg) Effect[List[C]] {
	cur := l
	handled := false
	changed := false
	quit := false
	var cmds []tea.Cmd
	var emits []tea.Msg
	for _, key := range l.keys {
		var res Result
		cur, res = Apply(cur, cur.foldChild(key, cur.comps[key].Update(msg)))
		if res.Unhandled {
			continue
		}
		handled = true
		changed = changed || res.Changed
		quit = quit || res.Quit
		cmds = append(cmds, res.Cmds...)
		emits = append(emits, res.Emitted...)
	}
	if !handled {
		return Unhandled[List[C]]()
	}
	var parts []Effect[List[C]]
	if changed {
		parts = append(parts, Put(cur))
	}
	for _, cmd := range cmds {
		parts = append(parts, Do[List[C]](cmd))
	}
	for _, out := range emits {
		parts = append(parts, Emit[List[C]](out))
	}
	if quit {
		parts = append(parts, Quit[List[C]]())
	}
	return Batch(parts...)
}

// Insert adds a child under the given key, appending it to the iteration
// order, and returns the command that starts the child, already enveloped
// for this list. Inserting an existing key replaces that child in place and
// starts the replacement. The first key inserted into an unfocused list
// receives focus.
func (l List[C]) Insert(key string, c C) (List[C], tea.Cmd) {
	comps := make(map[string]C, len(l.comps)+1)
	for k, v := range l.comps {
		comps[k] = v
	}
	comps[key] = c
	l.comps = comps
	if !slices.Contains(l.keys, key) {
		l.keys = append(slices.Clone(l.keys), key)
	}
	if l.focus == "" {
		l.focus = key
	}
	return l, WrapCmd(c.Init(), keyedWrap(key))
}

// Remove removes the child with the given key, if any. If that child had
// focus, focus moves to its successor in insertion order, or failing that
// its predecessor.
func (l List[C]) Remove(key string) List[C] {
	i := slices.Index(l.keys, key)
	if i < 0 {
		return l
	}
	keys := slices.Delete(slices.Clone(l.keys), i, i+1)
	comps := make(map[string]C, len(l.comps)-1)
	for k, v := range l.comps {
		if k != key {
			comps[k] = v
		}
	}
	l.keys, l.comps = keys, comps
	if l.focus == key {
		switch {
		case len(keys) == 0:
			l.focus = ""
		case i < len(keys):
			l.focus = keys[i]
		default:
			l.focus = keys[len(keys)-1]
		}
	}
	return l
}

// Get returns the child with the given key.
func (l List[C]) Get(key string) (C, bool) {
	c, ok := l.comps[key]
	return c, ok
}

// Len returns the number of children.
func (l List[C]) Len() int { return len(l.keys) }

// Keys returns the keys in insertion order.
func (l List[C]) Keys() []string { return slices.Clone(l.keys) }

// Each calls f for every child in insertion order.
func (l List[C]) Each(f func(key string, c C)) {
	for _, key := range l.keys {
		f(key, l.comps[key])
	}
}

// Focus returns the key of the focused child, or "" if there is none.
func (l List[C]) Focus() string { return l.focus }

// SetFocus focuses the child with the given key. Focusing a key that is not
// in the list is a no-op; focusing "" removes focus.
func (l List[C]) SetFocus(key string) List[C] {
	if key == "" || slices.Contains(l.keys, key) {
		l.focus = key
	}
	return l
}

// FocusNext moves focus to the next child in insertion order, wrapping
// around at the end.
func (l List[C]) FocusNext() List[C] { return l.moveFocus(1) }

// FocusPrev moves focus to the previous child in insertion order, wrapping
// around at the start.
func (l List[C]) FocusPrev() List[C] { return l.moveFocus(-1) }

func (l List[C]) moveFocus(delta int) List[C] {
	if len(l.keys) == 0 {
		return l
	}
	i := slices.Index(l.keys, l.focus)
	if i < 0 {
		l.focus = l.keys[0]
		return l
	}
	n := len(l.keys)
	l.focus = l.keys[((i+delta)%n+n)%n]
	return l
}

func (l List[C]) foldChild(key string, eff Effect[C]) Effect[List[C]] {
	return Fold(l, eff, FoldSpec[C, List[C]]{
		Put:  func(l List[C], c C) List[C] { return l.with(key, c) },
		Wrap: keyedWrap(key),
		OnEmit: func(_ List[C], out tea.Msg) Effect[List[C]] {
			return Emit[List[C]](KeyedMsg{Key: key, Msg: out})
		},
	})
}

// with returns a copy of l with the child under key replaced. The component
// map is copied, so earlier copies of the list remain valid.
func (l List[C]) with(key string, c C) List[C] {
	comps := make(map[string]C, len(l.comps))
	for k, v := range l.comps {
		comps[k] = v
	}
	comps[key] = c
	l.comps = comps
	return l
}

func keyedWrap(key string) func(tea.Msg) tea.Msg {
	return func(msg tea.Msg) tea.Msg { return KeyedMsg{Key: key, Msg: msg} }
}
