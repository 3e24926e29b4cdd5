package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundMountUnmount(t *testing.T) {
	var (
		doc = NewDocument()
		v   = NewNotFound(doc)
	)

	for i := 0; i < 2; i++ {
		v.Mount()
		v.Mount()
		assert.True(t, v.Mounted())
		assert.True(t, doc.Has(ClassNotFound))

		v.Unmount()
		v.Unmount()
		assert.False(t, v.Mounted())
		assert.False(t, doc.Has(ClassNotFound))
	}
}

func TestNotFoundOverlappingMounts(t *testing.T) {
	var (
		doc    = NewDocument()
		first  = NewNotFound(doc)
		second = NewNotFound(doc)
	)
	first.Mount()
	second.Mount()
	first.Unmount()
	assert.True(t, doc.Has(ClassNotFound))
	second.Unmount()
	assert.False(t, doc.Has(ClassNotFound))
}

func TestNotFoundComponent(t *testing.T) {
	page := render(t, NewNotFound(NewDocument()).Component())

	root := page.Find("#not-found")
	require.Equal(t, 1, root.Length())
	assert.Equal(t, "404", root.Find("h1").Text())

	src, _ := root.Find("img").Attr("src")
	assert.Equal(t, "/images/killroy.svg", src)
	alt, _ := root.Find("img").Attr("alt")
	assert.Equal(t, "Killroy", alt)

	link := root.Find("a")
	assert.Equal(t, "Killroy", link.Text())
	href, _ := link.Attr("href")
	assert.Equal(t, "https://en.wikipedia.org/wiki/Kilroy_was_here", href)
	assert.Contains(t, root.Text(), "didn't find a page either")
}
