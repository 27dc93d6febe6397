package human

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpsio/octatools/internal/arrangement"
)

func TestArrangementViewRoundTrip(t *testing.T) {
	f := &arrangement.File{
		Current: arrangement.Block{
			RowCount: 2,
			Rows: [arrangement.RowsPerBlock]arrangement.Row{
				0: {Kind: arrangement.RowPattern, Pattern: arrangement.PatternRow{PatternID: 3, Reps: 10}},
				1: {Kind: arrangement.RowReminder, Reminder: arrangement.ReminderRow{Text: "hello"}},
			},
		},
		Previous: arrangement.Block{
			RowCount: 1,
			Rows: [arrangement.RowsPerBlock]arrangement.Row{
				0: {Kind: arrangement.RowLoopOrJumpOrHalt, Loop: arrangement.LoopRow{LoopCount: 5, RowTarget: 1}},
			},
		},
	}
	copy(f.ActiveFlags[:], []byte{1, 2, 3})

	view := ToArrangementView(f)
	assert.Len(t, view.Current.Rows, 2)
	assert.Equal(t, "PATTERN", view.Current.Rows[0].Kind)
	assert.Equal(t, "REMINDER", view.Current.Rows[1].Kind)

	got := FromArrangementView(view)
	assert.Equal(t, f, got)
}

func TestArrangementViewEmptyRowDefaultKind(t *testing.T) {
	v := RowView{Kind: "EMPTY"}
	row := fromRowView(v)
	assert.Equal(t, arrangement.RowEmpty, row.Kind)
}
