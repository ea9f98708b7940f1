package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/sorteio/api/internal/draw"
)

// Reveal tracks how much of a finished draw is on screen. The draw itself
// is complete; only its presentation is staged.
type Reveal struct {
	order []int
	shown int
}

// NewReveal stages n results, last one first when reverse is set.
func NewReveal(n int, reverse bool) Reveal {
	order := make([]int, n)
	for i := range order {
		if reverse {
			order[i] = n - 1 - i
		} else {
			order[i] = i
		}
	}
	return Reveal{order: order}
}

// Advance shows one more result and reports whether any remain hidden.
func (r *Reveal) Advance() bool {
	if r.shown < len(r.order) {
		r.shown++
	}
	return !r.Done()
}

// Skip shows everything at once.
func (r *Reveal) Skip() {
	r.shown = len(r.order)
}

func (r Reveal) Done() bool {
	return r.shown >= len(r.order)
}

// Visible returns the indices of shown results in reveal order.
func (r Reveal) Visible() []int {
	return r.order[:r.shown]
}

func (r Reveal) Progress() (shown, total int) {
	return r.shown, len(r.order)
}

// revealTickMsg advances the reveal of one draw view. Ticks from an older
// draw carry a stale generation and are dropped.
type revealTickMsg struct {
	kind       draw.Kind
	generation int
}

func revealTick(kind draw.Kind, generation int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return revealTickMsg{kind: kind, generation: generation}
	})
}
