package game

import "testing"

func TestInstruction(t *testing.T) {
	tests := []struct {
		state   State
		ticks   int
		spawned int
		want    string
		pulsing bool
	}{
		{StateGrid, 0, 0, "CLICK TO SHRINK", true},
		{StateFloat, 10, 0, "PRESS 'C' FOR CAT", false},
		{StateCatFormation, 119, 0, "FORMING...", false},
		{StateCatFormation, 120, 0, "PRESS 'R' FOR RATS", false},
		{StateRatsWalk, 400, 59, "WATCH...", false},
		{StateRatsWalk, 400, 60, "PRESS 'S' TO SCATTER", false},
		{StateDisperse, 0, 150, "PRESS 'G' TO RESET", false},
	}
	for _, tt := range tests {
		got, pulsing := Instruction(tt.state, tt.ticks, tt.spawned, 120, 60)
		if got != tt.want || pulsing != tt.pulsing {
			t.Errorf("Instruction(%s, %d, %d) = %q, %v; want %q, %v",
				tt.state, tt.ticks, tt.spawned, got, pulsing, tt.want, tt.pulsing)
		}
	}
}
