package cursorfx

// syntheticPointerEvent represents a single injected pointer sample in
// screen coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates.
// Each injected sample is consumed by one Update.
func (c *PointerController) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer sample with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (c *PointerController) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectHover queues a pointer sample with no button held.
func (c *PointerController) InjectHover(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (c *PointerController) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (c *PointerController) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (c *PointerController) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// Pending returns the number of injected samples not yet consumed.
func (c *PointerController) Pending() int {
	return len(c.injectQueue)
}

// nextInjected pops one injected sample.
func (c *PointerController) nextInjected() (x, y float64, pressed, ok bool) {
	if len(c.injectQueue) == 0 {
		return 0, 0, false, false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
	return evt.screenX, evt.screenY, evt.pressed, true
}
