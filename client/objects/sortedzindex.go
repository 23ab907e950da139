package objects

import (
	"fmt"
	"slices"
)

// SortedZIndexObject draws and updates its children in ascending z-index.
// Children sharing a z-index keep their insertion order.
type SortedZIndexObject struct {
	*BaseObject

	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)

	at := slices.IndexFunc(o.sorted, func(obj GameObject) bool {
		return obj.GetZIndex() > child.GetZIndex()
	})
	if at < 0 {
		o.sorted = append(o.sorted, child)
	} else {
		o.sorted = slices.Insert(o.sorted, at, child)
	}
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	o.sorted = slices.DeleteFunc(o.sorted, func(obj GameObject) bool {
		return obj == child
	})
	return nil
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}
