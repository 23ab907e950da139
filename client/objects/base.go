package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// children keeps child objects in insertion order with an index by ID.
type children struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildren() *children {
	return &children{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (c *children) Add(id string, obj GameObject) {
	c.idxIDObjects[id] = obj
	c.ordered = append(c.ordered, obj)
}

func (c *children) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *children) Remove(id string) {
	obj, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, o := range c.ordered {
		if o == obj {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}

// BaseObject implements the tree bookkeeping shared by every GameObject.
// Concrete objects embed it and override the lifecycle methods they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *children
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings under a SortedZIndexObject.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildren(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error { return nil }

func (o *BaseObject) Destroy() error { return nil }

func (o *BaseObject) Update() error { return nil }

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string { return o.id }

func (o *BaseObject) GetZIndex() int { return o.zIndex }

func (o *BaseObject) GetParent() GameObject { return o.parent }

func (o *BaseObject) SetParent(parent GameObject) { o.parent = parent }

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.ordered
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.idxIDObjects[id]; ok {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}
