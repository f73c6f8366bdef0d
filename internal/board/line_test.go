package board

import (
	"math/rand"
	"testing"
)

func TestReduceLine(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
		changed  bool
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
			changed:  true,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "merge across gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "already packed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
			changed:  true,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{4, 4, 8, 0},
			expected: [4]int{8, 8, 0, 0},
			score:    8,
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ReduceLine(tt.input)
			if res.Line != tt.expected {
				t.Errorf("ReduceLine(%v) = %v, want %v", tt.input, res.Line, tt.expected)
			}
			if res.ScoreGain != tt.score {
				t.Errorf("ReduceLine(%v) score = %d, want %d", tt.input, res.ScoreGain, tt.score)
			}
			if res.Changed != tt.changed {
				t.Errorf("ReduceLine(%v) changed = %v, want %v", tt.input, res.Changed, tt.changed)
			}
		})
	}
}

func TestReduceLineMergeActions(t *testing.T) {
	res := ReduceLine([4]int{2, 2, 0, 0})

	if len(res.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d: %+v", len(res.Actions), res.Actions)
	}

	first, second := res.Actions[0], res.Actions[1]
	if first.From != 0 || first.To != 0 || !first.Merged || first.Absorbed {
		t.Errorf("surviving tile action = %+v", first)
	}
	if second.From != 1 || second.To != 0 || !second.Merged || !second.Absorbed {
		t.Errorf("absorbed tile action = %+v", second)
	}
}

func TestReduceLineNoActionForEmptyCells(t *testing.T) {
	res := ReduceLine([4]int{0, 8, 0, 2})

	want := []LineAction{
		{From: 1, To: 0},
		{From: 3, To: 1},
	}
	if len(res.Actions) != len(want) {
		t.Fatalf("actions = %+v, want %+v", res.Actions, want)
	}
	for i := range want {
		if res.Actions[i] != want[i] {
			t.Errorf("action %d = %+v, want %+v", i, res.Actions[i], want[i])
		}
	}
}

func TestReduceLineConservesSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := []int{0, 0, 2, 4, 8, 16}

	for range 1000 {
		var line [4]int
		in := 0
		for i := range line {
			line[i] = values[rng.Intn(len(values))]
			in += line[i]
		}

		res := ReduceLine(line)
		out := 0
		for _, v := range res.Line {
			out += v
		}
		if in != out {
			t.Fatalf("ReduceLine(%v) = %v: sum %d != %d", line, res.Line, out, in)
		}

		merges := 0
		for _, a := range res.Actions {
			if a.Absorbed {
				merges++
				if line[a.From]*2 != res.Line[a.To] {
					t.Fatalf("ReduceLine(%v): absorbed %d into %d", line, line[a.From], res.Line[a.To])
				}
			}
		}
		if merges == 0 && res.ScoreGain != 0 {
			t.Fatalf("ReduceLine(%v): score %d without merges", line, res.ScoreGain)
		}
	}
}
