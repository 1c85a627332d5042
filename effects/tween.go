package effects

import (
	"github.com/phanxgames/cursorfx"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenGroup animates up to 4 float64 fields on a node simultaneously. If the
// target node is disposed, the group stops immediately.
type tweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *cursorfx.Node
	done   bool
}

// update advances all tweens by dt seconds and writes values to the target
// fields. It reports whether the group has finished.
func (g *tweenGroup) update(dt float32) bool {
	if g.done {
		return true
	}
	if g.target != nil && g.target.IsDisposed() {
		g.done = true
		return true
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.done = allDone
	return allDone
}

// tweenScale animates node.Scale to the given value.
func tweenScale(node *cursorfx.Node, to float64, duration float32, fn ease.TweenFunc) *tweenGroup {
	g := &tweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Scale), float32(to), duration, fn)
	g.fields[0] = &node.Scale
	return g
}

// tweenColor animates all four components of node.Color.
func tweenColor(node *cursorfx.Node, to cursorfx.Color, duration float32, fn ease.TweenFunc) *tweenGroup {
	g := &tweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &node.Color.R
	g.fields[1] = &node.Color.G
	g.fields[2] = &node.Color.B
	g.fields[3] = &node.Color.A
	return g
}

// tweenSet keeps at most one running tween per node.
type tweenSet map[*cursorfx.Node]*tweenGroup

func (s tweenSet) update(dt float32) {
	for n, g := range s {
		if g.update(dt) {
			delete(s, n)
		}
	}
}
