package steep

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/steeptui/steep/pkg/tt"
)

// item is a small component for exercising List.
type item struct {
	id string
	n  int
}

type (
	itemStarted  struct{ id string }
	itemInc      struct{}
	itemSet      struct{ n int }
	itemPing     struct{}
	itemPong     struct{ id string }
	itemReport   struct{}
	itemReported struct {
		id string
		n  int
	}
)

func (it item) Init() tea.Cmd {
	return func() tea.Msg { return itemStarted{it.id} }
}

func (it item) Update(msg tea.Msg) Effect[item] {
	switch msg := msg.(type) {
	case itemInc:
		it.n++
		return Put(it)
	case itemSet:
		it.n = msg.n
		return Put(it)
	case itemPing:
		return Do[item](func() tea.Msg { return itemPong{it.id} })
	case itemReport:
		return Emit[item](itemReported{it.id, it.n})
	}
	return Unhandled[item]()
}

func (it item) View() string { return fmt.Sprintf("%s=%d", it.id, it.n) }

func listOf(ids ...string) List[item] {
	var l List[item]
	for _, id := range ids {
		l, _ = l.Insert(id, item{id: id})
	}
	return l
}

func TestList_InsertKeepsInsertionOrder(t *testing.T) {
	l := listOf("a", "b", "c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, l.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got, want := l.View(), "a=0\nb=0\nc=0"; got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestList_InsertReturnsEnvelopedInit(t *testing.T) {
	_, cmd := List[item]{}.Insert("a", item{id: "a"})
	if got := cmd(); got != (KeyedMsg{"a", itemStarted{"a"}}) {
		t.Errorf("init message = %v, want KeyedMsg{a, itemStarted{a}}", got)
	}
}

func TestList_InsertExistingKeyReplacesInPlace(t *testing.T) {
	l := listOf("a", "b")
	l, _ = l.Insert("a", item{id: "a", n: 9})
	if diff := cmp.Diff([]string{"a", "b"}, l.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if a, _ := l.Get("a"); a.n != 9 {
		t.Errorf("replaced child has n = %d, want 9", a.n)
	}
}

func TestList_InitStartsAllChildren(t *testing.T) {
	l := listOf("a", "b")
	msg := l.Init()()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("Init message is %T, want tea.BatchMsg", msg)
	}
	var msgs []tea.Msg
	for _, cmd := range batch {
		msgs = append(msgs, cmd())
	}
	want := []tea.Msg{
		KeyedMsg{"a", itemStarted{"a"}},
		KeyedMsg{"b", itemStarted{"b"}},
	}
	if diff := cmp.Diff(want, msgs, cmp.AllowUnexported(itemStarted{})); diff != "" {
		t.Errorf("init messages (-want +got):\n%s", diff)
	}
}

func TestList_KeyedMsgGoesToNamedChild(t *testing.T) {
	l := listOf("a", "b")
	l, res := Apply(l, l.Update(KeyedMsg{Key: "b", Msg: itemSet{9}}))
	if !res.Changed {
		t.Errorf("keyed update did not change the list")
	}
	if b, _ := l.Get("b"); b.n != 9 {
		t.Errorf("b.n = %d, want 9", b.n)
	}
	if a, _ := l.Get("a"); a.n != 0 {
		t.Errorf("a.n = %d, want 0", a.n)
	}
}

func TestList_StaleKeyIsDropped(t *testing.T) {
	l := listOf("a")
	l = l.Remove("a")
	_, res := Apply(l, l.Update(KeyedMsg{Key: "a", Msg: itemInc{}}))
	if res.Unhandled || res.Changed || len(res.Cmds) != 0 {
		t.Errorf("stale keyed message was not dropped: %+v", res)
	}
}

func TestList_KeyedMsgIsConsumedEvenIfUnrecognized(t *testing.T) {
	l := listOf("a")
	_, res := Apply(l, l.Update(KeyedMsg{Key: "a", Msg: "garbage"}))
	if res.Unhandled {
		t.Errorf("keyed message fell through as unhandled")
	}
}

func TestList_UnkeyedMsgGoesToFocusedChild(t *testing.T) {
	l := listOf("a", "b").SetFocus("b")
	l, res := Apply(l, l.Update(itemInc{}))
	if res.Unhandled {
		t.Fatalf("focused child did not handle the message")
	}
	if b, _ := l.Get("b"); b.n != 1 {
		t.Errorf("b.n = %d, want 1", b.n)
	}
	if a, _ := l.Get("a"); a.n != 0 {
		t.Errorf("a.n = %d, want 0", a.n)
	}
}

func TestList_UnkeyedUnhandledPassesThrough(t *testing.T) {
	l := listOf("a")
	_, res := Apply(l, l.Update("garbage"))
	if !res.Unhandled {
		t.Errorf("unrecognized message did not pass through as unhandled")
	}
}

func TestList_EmptyListIsUnhandled(t *testing.T) {
	var l List[item]
	_, res := Apply(l, l.Update(itemInc{}))
	if !res.Unhandled {
		t.Errorf("empty list handled a message")
	}
}

func TestList_ChildCmdMsgsAreKeyed(t *testing.T) {
	l := listOf("a")
	_, res := Apply(l, l.Update(KeyedMsg{Key: "a", Msg: itemPing{}}))
	if len(res.Cmds) != 1 {
		t.Fatalf("got %d cmds, want 1", len(res.Cmds))
	}
	if got := res.Cmds[0](); got != (KeyedMsg{"a", itemPong{"a"}}) {
		t.Errorf("cmd message = %v, want KeyedMsg{a, itemPong{a}}", got)
	}
}

func TestList_ChildEmitsAreKeyed(t *testing.T) {
	l := listOf("a", "b").SetFocus("b")
	_, res := Apply(l, l.Update(itemReport{}))
	want := []tea.Msg{KeyedMsg{"b", itemReported{"b", 0}}}
	if diff := cmp.Diff(want, res.Emitted, cmp.AllowUnexported(itemReported{})); diff != "" {
		t.Errorf("emits (-want +got):\n%s", diff)
	}
}

func TestList_RemoveMovesFocus(t *testing.T) {
	focusAfterRemove := func(ids []string, focus, remove string) string {
		return listOf(ids...).SetFocus(focus).Remove(remove).Focus()
	}
	tt.Test(t, tt.Fn("focusAfterRemove", focusAfterRemove), tt.Table{
		// Focus moves to the successor, or the predecessor at the end.
		tt.Args([]string{"a", "b", "c"}, "b", "b").Rets("c"),
		tt.Args([]string{"a", "b", "c"}, "c", "c").Rets("b"),
		tt.Args([]string{"a"}, "a", "a").Rets(""),
		// Removing an unfocused child keeps focus.
		tt.Args([]string{"a", "b", "c"}, "a", "b").Rets("a"),
		// Removing a missing key is a no-op.
		tt.Args([]string{"a", "b"}, "a", "zz").Rets("a"),
	})
}

func TestList_FocusCycling(t *testing.T) {
	l := listOf("a", "b", "c")
	if l.Focus() != "a" {
		t.Fatalf("initial focus = %q, want a", l.Focus())
	}
	l = l.FocusNext()
	l = l.FocusNext()
	if l.Focus() != "c" {
		t.Errorf("focus = %q, want c", l.Focus())
	}
	if l = l.FocusNext(); l.Focus() != "a" {
		t.Errorf("focus after wrap = %q, want a", l.Focus())
	}
	if l = l.FocusPrev(); l.Focus() != "c" {
		t.Errorf("focus after wrapping back = %q, want c", l.Focus())
	}
}

func TestList_SetFocus(t *testing.T) {
	l := listOf("a", "b")
	if l = l.SetFocus("zz"); l.Focus() != "a" {
		t.Errorf("focusing a missing key changed focus to %q", l.Focus())
	}
	if l = l.SetFocus(""); l.Focus() != "" {
		t.Errorf("clearing focus kept %q", l.Focus())
	}
	if l = l.FocusNext(); l.Focus() != "a" {
		t.Errorf("FocusNext on an unfocused list moved to %q, want a", l.Focus())
	}
}

func TestList_Broadcast(t *testing.T) {
	l := listOf("a", "b")
	l, res := Apply(l, l.Broadcast(itemInc{}))
	if res.Unhandled || !res.Changed {
		t.Fatalf("broadcast result: %+v", res)
	}
	a, _ := l.Get("a")
	b, _ := l.Get("b")
	if a.n != 1 || b.n != 1 {
		t.Errorf("children have n = %d, %d, want 1, 1", a.n, b.n)
	}
}

func TestList_BroadcastCollectsKeyedEmits(t *testing.T) {
	l := listOf("a", "b")
	_, res := Apply(l, l.Broadcast(itemReport{}))
	want := []tea.Msg{
		KeyedMsg{"a", itemReported{"a", 0}},
		KeyedMsg{"b", itemReported{"b", 0}},
	}
	if diff := cmp.Diff(want, res.Emitted, cmp.AllowUnexported(itemReported{})); diff != "" {
		t.Errorf("emits (-want +got):\n%s", diff)
	}
}

func TestList_BroadcastUnhandledOnlyIfAllUnhandled(t *testing.T) {
	l := listOf("a", "b")
	_, res := Apply(l, l.Broadcast("garbage"))
	if !res.Unhandled {
		t.Errorf("broadcast of an unrecognized message was not unhandled")
	}
}

func TestList_UpdatesDoNotAliasOldCopies(t *testing.T) {
	l1 := listOf("a")
	l2, _ := Apply(l1, l1.Update(KeyedMsg{Key: "a", Msg: itemInc{}}))
	if a, _ := l2.Get("a"); a.n != 1 {
		t.Errorf("new copy has a.n = %d, want 1", a.n)
	}
	if a, _ := l1.Get("a"); a.n != 0 {
		t.Errorf("old copy has a.n = %d, want 0", a.n)
	}
}

func TestList_Each(t *testing.T) {
	var seen []string
	listOf("a", "b", "c").Each(func(key string, it item) {
		seen = append(seen, key+it.id)
	})
	if diff := cmp.Diff([]string{"aa", "bb", "cc"}, seen); diff != "" {
		t.Errorf("iteration (-want +got):\n%s", diff)
	}
}

func TestList_NestsAsAComponent(t *testing.T) {
	inner := listOf("a", "b")
	var outer List[List[item]]
	outer, _ = outer.Insert("row", inner)

	// Two envelope layers are unwrapped on the way down and rebuilt on the
	// way up.
	msg := KeyedMsg{Key: "row", Msg: KeyedMsg{Key: "b", Msg: itemReport{}}}
	outer, res := Apply(outer, outer.Update(msg))

	want := []tea.Msg{KeyedMsg{"row", KeyedMsg{"b", itemReported{"b", 0}}}}
	if diff := cmp.Diff(want, res.Emitted, cmp.AllowUnexported(itemReported{})); diff != "" {
		t.Errorf("emits (-want +got):\n%s", diff)
	}

	outer, res = Apply(outer, outer.Update(
		KeyedMsg{Key: "row", Msg: KeyedMsg{Key: "b", Msg: itemSet{5}}}))
	if !res.Changed {
		t.Fatalf("nested update did not change the outer list")
	}
	row, _ := outer.Get("row")
	if b, _ := row.Get("b"); b.n != 5 {
		t.Errorf("nested child has n = %d, want 5", b.n)
	}
}
