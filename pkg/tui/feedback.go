package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultPulseDuration  = 650 * time.Millisecond
	defaultNoticeDuration = 1400 * time.Millisecond
)

// pulseExpiredMsg and noticeExpiredMsg carry the sequence number of the
// save that armed them so a restarted timer ignores older ticks.
type pulseExpiredMsg struct{ seq int }

type noticeExpiredMsg struct{ seq int }

// SaveFeedback drives the two transient save indicators: a short pulse on
// the file label for overwrite saves, and a "Saved" notice for every save.
type SaveFeedback struct {
	PulseDuration  time.Duration
	NoticeDuration time.Duration

	pulse     bool
	notice    bool
	pulseSeq  int
	noticeSeq int
}

// NewSaveFeedback creates feedback with the given delays. Non-positive
// delays use the defaults.
func NewSaveFeedback(pulse, notice time.Duration) *SaveFeedback {
	if pulse <= 0 {
		pulse = defaultPulseDuration
	}
	if notice <= 0 {
		notice = defaultNoticeDuration
	}
	return &SaveFeedback{PulseDuration: pulse, NoticeDuration: notice}
}

// Show turns the notice on, and the pulse as well for overwrite saves. It
// returns the timers that turn them off again.
func (f *SaveFeedback) Show(overwrite bool) tea.Cmd {
	var cmds []tea.Cmd

	if overwrite {
		f.pulse = true
		f.pulseSeq++
		seq := f.pulseSeq
		cmds = append(cmds, tea.Tick(f.PulseDuration, func(time.Time) tea.Msg {
			return pulseExpiredMsg{seq: seq}
		}))
	}

	f.notice = true
	f.noticeSeq++
	seq := f.noticeSeq
	cmds = append(cmds, tea.Tick(f.NoticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	}))

	return tea.Batch(cmds...)
}

// Update clears an indicator when its latest timer fires. It reports whether
// msg belonged to the feedback.
func (f *SaveFeedback) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case pulseExpiredMsg:
		if msg.seq == f.pulseSeq {
			f.pulse = false
		}
		return true
	case noticeExpiredMsg:
		if msg.seq == f.noticeSeq {
			f.notice = false
		}
		return true
	}
	return false
}

// PulseVisible reports whether the overwrite pulse is showing.
func (f *SaveFeedback) PulseVisible() bool { return f.pulse }

// NoticeVisible reports whether the "Saved" notice is showing.
func (f *SaveFeedback) NoticeVisible() bool { return f.notice }
