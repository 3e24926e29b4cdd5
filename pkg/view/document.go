package view

import (
	"sort"
	"strings"
	"sync"
)

// ClassNotFound presentation class set on the document body while a not found view is mounted
const ClassNotFound = "not-found-bg"

// Document document level presentation state shared by the mounted views of
// one page. Classes are reference counted so overlapping mounts never leave
// a class behind.
type Document struct {
	mu      sync.Mutex
	classes map[string]int
}

func NewDocument() *Document {
	return &Document{
		classes: map[string]int{},
	}
}

// Acquire adds class to the document until the returned release is called.
// Calling release more than once has no further effect.
func (d *Document) Acquire(class string) (release func()) {
	d.mu.Lock()
	d.classes[class]++
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			if d.classes[class] <= 1 {
				delete(d.classes, class)
				return
			}
			d.classes[class]--
		})
	}
}

// Has is class currently set
func (d *Document) Has(class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classes[class] > 0
}

// Classes currently set, sorted
func (d *Document) Classes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	classes := make([]string, 0, len(d.classes))
	for class := range d.classes {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// ClassAttr classes joined for a class attribute
func (d *Document) ClassAttr() string {
	return strings.Join(d.Classes(), " ")
}
