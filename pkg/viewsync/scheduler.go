package viewsync

// Surface identifies one of the two scrollable panes.
type Surface int

const (
	SurfaceText Surface = iota
	SurfacePreview
)

func (s Surface) String() string {
	if s == SurfacePreview {
		return "preview"
	}
	return "text"
}

// SurfaceFor returns the pane shown in mode m.
func SurfaceFor(m Mode) Surface {
	if m == ModePreview {
		return SurfacePreview
	}
	return SurfaceText
}

// Correction is deferred work for one surface, run after the next render.
type Correction struct {
	RestoreAnchor bool
	SnapBottom    bool
}

func (c Correction) merge(o Correction) Correction {
	return Correction{
		RestoreAnchor: c.RestoreAnchor || o.RestoreAnchor,
		SnapBottom:    c.SnapBottom || o.SnapBottom,
	}
}

func (c Correction) empty() bool {
	return !c.RestoreAnchor && !c.SnapBottom
}

// Scheduler holds at most one outstanding correction per surface.
type Scheduler struct {
	pending map[Surface]Correction
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[Surface]Correction)}
}

// Schedule merges c into the surface's outstanding correction. It returns true
// when nothing was outstanding, i.e. the caller must arm a deferred pass.
func (s *Scheduler) Schedule(surface Surface, c Correction) bool {
	if c.empty() {
		return false
	}
	cur, ok := s.pending[surface]
	s.pending[surface] = cur.merge(c)
	return !ok
}

// Take removes and returns the outstanding correction for surface.
func (s *Scheduler) Take(surface Surface) (Correction, bool) {
	c, ok := s.pending[surface]
	if ok {
		delete(s.pending, surface)
	}
	return c, ok
}

// Pending reports whether surface has an outstanding correction.
func (s *Scheduler) Pending(surface Surface) bool {
	_, ok := s.pending[surface]
	return ok
}
