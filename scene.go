package cursorfx

// Scene is the top-level object that owns the node tree and cameras. Its
// identity is the root's ID; the host reports scene-wide events against it.
type Scene struct {
	root  *Node
	debug bool

	cameras []*Camera
}

// NewScene creates a new scene with a pre-created root group.
func NewScene() *Scene {
	return &Scene{root: NewGroup("root")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// ID returns the scene's identity.
func (s *Scene) ID() string {
	return s.root.ID
}

// Update advances camera animations by dt seconds.
func (s *Scene) Update(dt float32) {
	for _, cam := range s.cameras {
		cam.update(dt)
	}
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := NewCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

func (s *Scene) hasCamera(cam *Camera) bool {
	for _, c := range s.cameras {
		if c == cam {
			return true
		}
	}
	return false
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// use panics and deep trees are reported.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool
