package testhelpers

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCmdTimeout bounds how long Drive waits on a single command.
// Timers longer than this (feedback timers, cursor blinks) are dropped.
const DefaultCmdTimeout = 100 * time.Millisecond

// maxSteps stops runaway command chains.
const maxSteps = 200

// Driver runs commands the way the bubbletea runtime would, feeding every
// message they produce back into the model.
type Driver struct {
	Model   tea.Model
	Timeout time.Duration

	// Seen records every message delivered, in order, including tea.QuitMsg.
	Seen []tea.Msg
}

// NewDriver wraps m.
func NewDriver(m tea.Model) *Driver {
	return &Driver{Model: m, Timeout: DefaultCmdTimeout}
}

// Send delivers msg and drives the resulting commands to completion.
func (d *Driver) Send(msg tea.Msg) {
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.Run(cmd)
}

// Press sends each key in turn.
func (d *Driver) Press(keys ...tea.KeyMsg) {
	for _, k := range keys {
		d.Send(k)
	}
}

// Type sends the key presses that type s.
func (d *Driver) Type(s string) {
	d.Press(Typing(s)...)
}

// Run executes cmd and every command that follows from it. Batches are
// flattened; quit messages are recorded but not delivered.
func (d *Driver) Run(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < maxSteps; steps++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := d.exec(next)
		if !ok || msg == nil {
			continue
		}

		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case tea.QuitMsg:
			d.Seen = append(d.Seen, msg)
			continue
		}

		d.Seen = append(d.Seen, msg)
		var follow tea.Cmd
		d.Model, follow = d.Model.Update(msg)
		queue = append(queue, follow)
	}
}

// Quit reports whether a tea.QuitMsg was produced.
func (d *Driver) Quit() bool {
	for _, msg := range d.Seen {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func (d *Driver) exec(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d.Timeout):
		return nil, false
	}
}
