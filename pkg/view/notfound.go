package view

import (
	"sync"

	"github.com/a-h/templ"
)

// NotFound static 404 view. While mounted it holds the ClassNotFound
// presentation class on its document.
type NotFound struct {
	doc     *Document
	mu      sync.Mutex
	release func()
}

func NewNotFound(doc *Document) *NotFound {
	return &NotFound{doc: doc}
}

// Mount acquires the presentation class, mounting twice is a no-op
func (v *NotFound) Mount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.release != nil {
		return
	}
	v.release = v.doc.Acquire(ClassNotFound)
}

// Unmount releases the presentation class, unmounting twice is a no-op
func (v *NotFound) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.release == nil {
		return
	}
	v.release()
	v.release = nil
}

// Mounted is the view currently mounted
func (v *NotFound) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.release != nil
}

func (v *NotFound) Component() templ.Component {
	return component("notfound", nil)
}
