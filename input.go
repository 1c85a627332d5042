package cursorfx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource reports the pointer state for one frame, in screen coordinates.
type PointerSource interface {
	Pointer() (x, y float64, pressed bool)
}

// ebitenPointer reads the mouse through Ebitengine.
type ebitenPointer struct{}

func (ebitenPointer) Pointer() (float64, float64, bool) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// pointerState is the controller's per-pointer state machine.
type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	moved     bool  // lastX/lastY hold a real sample
	pressNode *Node // object under the pointer when it was pressed
	hoverNode *Node // object the pointer was last over (for hoverOver/hoverOut)
}

// PointerController turns screen-space pointer input into interactions on
// registered objects by casting camera rays. It is the object-interaction
// collaborator the Remapper drives once per frame.
type PointerController struct {
	camera   *Camera
	delegate InteractionDelegate
	source   PointerSource

	objects []*Node
	known   map[string]bool

	state       pointerState
	injectQueue []syntheticPointerEvent
}

// NewPointerController creates a controller reading the mouse through
// Ebitengine. Use SetSource to read from elsewhere.
func NewPointerController(cam *Camera, delegate InteractionDelegate) *PointerController {
	return &PointerController{
		camera:   cam,
		delegate: delegate,
		source:   ebitenPointer{},
		known:    make(map[string]bool),
	}
}

// SetSource replaces the pointer source.
func (c *PointerController) SetSource(src PointerSource) {
	c.source = src
}

// Camera returns the camera used for picking.
func (c *PointerController) Camera() *Camera {
	return c.camera
}

// Register makes obj pickable. Registering twice is a no-op.
func (c *PointerController) Register(obj *Node) {
	if obj == nil || c.known[obj.ID] {
		return
	}
	c.known[obj.ID] = true
	c.objects = append(c.objects, obj)
}

// Unregister stops picking obj. If the pointer is over it, no hoverOut fires.
func (c *PointerController) Unregister(obj *Node) {
	if obj == nil || !c.known[obj.ID] {
		return
	}
	delete(c.known, obj.ID)
	for i, o := range c.objects {
		if o == obj {
			copy(c.objects[i:], c.objects[i+1:])
			c.objects[len(c.objects)-1] = nil
			c.objects = c.objects[:len(c.objects)-1]
			break
		}
	}
	if c.state.hoverNode == obj {
		c.state.hoverNode = nil
	}
	if c.state.pressNode == obj {
		c.state.pressNode = nil
	}
}

// Hovered returns the object currently under the pointer, or nil.
func (c *PointerController) Hovered() *Node {
	return c.state.hoverNode
}

// --- Picking ---

// pick returns the registered object owning the nearest hit along ray.
func (c *PointerController) pick(ray Ray) (*Node, float64) {
	var best *Node
	bestT := math.Inf(1)
	for _, obj := range c.objects {
		if t, ok := nearestHit(obj, ray); ok && t < bestT {
			best, bestT = obj, t
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestT
}

// nearestHit tests every visible node with a HitShape in n's subtree.
// Invisible subtrees are skipped.
func nearestHit(n *Node, ray Ray) (float64, bool) {
	if !n.Visible {
		return 0, false
	}
	best := math.Inf(1)
	found := false
	if n.HitShape != nil {
		if lt, ok := n.HitShape.IntersectRay(n.worldRayToLocal(ray)); ok {
			if t := lt * n.WorldScale(); t < best {
				best, found = t, true
			}
		}
	}
	for _, child := range n.children {
		if t, ok := nearestHit(child, ray); ok && t < best {
			best, found = t, true
		}
	}
	return best, found
}

// --- Input processing ---

// Update reads one pointer sample and fires interactions. Injected samples
// take precedence over the pointer source.
func (c *PointerController) Update() {
	x, y, pressed, ok := c.nextInjected()
	if !ok {
		if c.source == nil {
			return
		}
		x, y, pressed = c.source.Pointer()
	}
	c.processPointer(x, y, pressed)
}

// processPointer runs the pointer state machine for one sample.
func (c *PointerController) processPointer(sx, sy float64, pressed bool) {
	ps := &c.state
	ray := c.camera.ScreenRay(sx, sy)
	target, t := c.pick(ray)
	detail := InteractionDetail{Ray: ray}
	if target != nil {
		detail.Point = ray.At(t)
		detail.Distance = t
	}

	// Hover changes first so a press lands on an already hovered object.
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			c.delegate.HoverOut(ps.hoverNode, detail)
		}
		if target != nil {
			c.delegate.HoverOver(target, detail)
		}
		ps.hoverNode = target
	}

	if pressed && !ps.down {
		ps.down = true
		ps.pressNode = target
		if target != nil {
			c.delegate.Select(target, detail)
		}
	} else if !pressed && ps.down {
		ps.down = false
		if ps.pressNode != nil {
			c.delegate.Deselect(ps.pressNode, detail)
		}
		ps.pressNode = nil
	}

	if !ps.moved || sx != ps.lastX || sy != ps.lastY {
		if ps.moved {
			c.delegate.Move(target, detail)
		}
		ps.lastX = sx
		ps.lastY = sy
		ps.moved = true
	}
}
