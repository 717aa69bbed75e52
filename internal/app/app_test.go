package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfram-ca/internal/core"
	"wolfram-ca/internal/sims/elementary"
)

func lines(t *testing.T, out string) []string {
	t.Helper()
	if out == "" {
		return nil
	}
	require.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestSimulateLineShape(t *testing.T) {
	for _, rule := range []uint8{0, 30, 90, 110, 255} {
		var buf bytes.Buffer
		require.NoError(t, Simulate(Config{Size: 33, Generations: 12, Rule: rule}, 5, &buf, nil))

		got := lines(t, buf.String())
		require.Len(t, got, 12, "rule %d", rule)
		for i, line := range got {
			assert.Len(t, line, 33, "rule %d line %d", rule, i)
			assert.Empty(t, strings.Trim(line, "* "), "rule %d line %d has foreign glyphs", rule, i)
		}
	}
}

func TestSimulateRuleZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Simulate(Config{Size: 10, Generations: 2, Rule: 0}, core.ClockSeed(), &buf, nil))

	got := lines(t, buf.String())
	require.Len(t, got, 2)
	assert.Equal(t, strings.Repeat(" ", 10), got[1])
}

func TestSimulateRule255(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Simulate(Config{Size: 8, Generations: 2, Rule: 255}, core.ClockSeed(), &buf, nil))

	got := lines(t, buf.String())
	require.Len(t, got, 2)
	assert.Equal(t, "********", got[1])
}

func TestSimulateZeroSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Simulate(Config{Size: 0, Generations: 3, Rule: 170}, 1, &buf, nil))
	assert.Equal(t, "\n\n\n", buf.String())
}

func TestSimulateZeroGenerations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Simulate(Config{Size: 10, Generations: 0, Rule: 30}, 1, &buf, nil))
	assert.Empty(t, buf.String())
}

func TestSimulateFirstLineIsSeededState(t *testing.T) {
	sim, err := elementary.New(24, 30)
	require.NoError(t, err)
	sim.Reset(11)
	var want bytes.Buffer
	for _, c := range sim.Cells() {
		if c == 1 {
			want.WriteByte('*')
		} else {
			want.WriteByte(' ')
		}
	}

	var buf bytes.Buffer
	require.NoError(t, Simulate(Config{Size: 24, Generations: 1, Rule: 30}, 11, &buf, nil))
	assert.Equal(t, want.String()+"\n", buf.String())
}

func TestSimulateRejectsOversizedLattice(t *testing.T) {
	var buf bytes.Buffer
	err := Simulate(Config{Size: core.MaxLatticeSize + 1, Generations: 1}, 1, &buf, nil)
	assert.ErrorIs(t, err, core.ErrLatticeTooLarge)
	assert.Empty(t, buf.String())
}

// stepCounter wraps a Sim and records the interleaving of reads and steps.
type stepCounter struct {
	core.Sim
	events []string
}

func (s *stepCounter) Cells() []uint8 {
	s.events = append(s.events, "print")
	return s.Sim.Cells()
}

func (s *stepCounter) Step() {
	s.events = append(s.events, "step")
	s.Sim.Step()
}

func TestRunPrintsBeforeStepping(t *testing.T) {
	sim, err := elementary.New(4, 90)
	require.NoError(t, err)
	sc := &stepCounter{Sim: sim}

	var buf bytes.Buffer
	require.NoError(t, New(sc, &buf, nil).Run(2))
	assert.Equal(t, []string{"print", "step", "print", "step"}, sc.events)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunReturnsWriteErrors(t *testing.T) {
	sim, err := elementary.New(4, 90)
	require.NoError(t, err)

	err = New(sim, failingWriter{}, nil).Run(3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write generation 0")
	assert.Contains(t, err.Error(), "broken pipe")
}
