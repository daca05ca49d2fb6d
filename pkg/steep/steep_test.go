package steep

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/tt"
)

func noop() tea.Msg { return nil }

func TestBatch_Normalization(t *testing.T) {
	batchKind := func(effs ...Effect[kid]) kind { return Batch(effs...).kind }
	tt.Test(t, tt.Fn("batchKind", batchKind), tt.Table{
		tt.Args().Rets(kindNone),
		tt.Args(None[kid](), None[kid]()).Rets(kindNone),
		tt.Args(Put(kid{1})).Rets(kindPut),
		tt.Args(Put(kid{1}), Do[kid](noop)).Rets(kindBatch),
		// Unhandled reports on the whole update: it survives only if
		// everything in the batch is Unhandled.
		tt.Args(Unhandled[kid](), Unhandled[kid]()).Rets(kindUnhandled),
		tt.Args(Unhandled[kid](), Put(kid{1})).Rets(kindPut),
		tt.Args(Unhandled[kid](), Put(kid{1}), Do[kid](noop)).Rets(kindBatch),
	})
}

func TestBatch_SplicesNestedBatches(t *testing.T) {
	eff := Batch(
		Batch(Put(kid{1}), Do[kid](noop)),
		None[kid](),
		Emit[kid]("x"),
	)
	if eff.kind != kindBatch {
		t.Fatalf("got kind %v, want kindBatch", eff.kind)
	}
	if len(eff.subs) != 3 {
		t.Errorf("got %d subs, want 3", len(eff.subs))
	}
	for _, sub := range eff.subs {
		if sub.kind == kindBatch {
			t.Errorf("nested batch was not spliced")
		}
	}
}

func TestDo_NilCmdIsNone(t *testing.T) {
	if got := Do[kid](nil); got.kind != kindNone {
		t.Errorf("Do(nil) has kind %v, want kindNone", got.kind)
	}
}

func TestEmit_NilMsgIsNone(t *testing.T) {
	if got := Emit[kid](nil); got.kind != kindNone {
		t.Errorf("Emit(nil) has kind %v, want kindNone", got.kind)
	}
}

func TestZeroValueIsNone(t *testing.T) {
	var eff Effect[kid]
	m, res := Apply(kid{7}, eff)
	if m != (kid{7}) || res.Changed || res.Quit || res.Unhandled {
		t.Errorf("zero effect changed something: model %v, result %+v", m, res)
	}
}
