package reel

// PlaybackState reports whether a driver is advancing its playhead.
type PlaybackState uint8

const (
	StatePlay  PlaybackState = iota // advance the playhead each update
	StatePause                      // hold the playhead in place
)

// PlaybackMode selects what happens when the sequence completes.
type PlaybackMode uint8

const (
	ModeOnce           PlaybackMode = iota // pause at the end
	ModeRepeatRestart                      // jump the playhead back to zero
	ModeRepeatPingPong                     // reverse the playback direction
)

// TimeDriver advances a playhead by wall-clock time. Speed scales the
// supplied delta; a negative speed plays backward.
type TimeDriver struct {
	Speed float64
	State PlaybackState
	Mode  PlaybackMode
}

// Play resumes playback.
func (d *TimeDriver) Play() {
	d.State = StatePlay
}

// Pause holds the playhead in place. The playhead position is preserved.
func (d *TimeDriver) Pause() {
	d.State = StatePause
}

// advance moves the playhead by dt seconds scaled by Speed.
func (d *TimeDriver) advance(p *Playhead, dt float64) {
	if d.State != StatePlay {
		return
	}
	p.Set(p.Position() + dt*d.Speed)
}

// onSequenceCompleted applies the driver's repeat policy. PingPong flips the
// direction at both ends, since a completed backward pass signals completion
// at zero.
func (d *TimeDriver) onSequenceCompleted(p *Playhead) {
	switch d.Mode {
	case ModeOnce:
		d.Pause()
	case ModeRepeatRestart:
		// TODO: wrap the fractional overshoot into the new cycle instead of
		// truncating it.
		p.JumpTo(0)
	case ModeRepeatPingPong:
		d.Speed = -d.Speed
	}
}
