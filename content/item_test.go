package content_test

import (
	"testing"

	"github.com/fitzmx6/portfolio/content"
	"github.com/stretchr/testify/assert"
)

func TestItemVideoSources(t *testing.T) {
	item := &content.Item{VideoURL: "clip"}
	sources := item.VideoSources()
	if assert.Len(t, sources, 2) {
		assert.Equal(t, "/video/clip.webm", sources[0].Src)
		assert.Equal(t, "/video/clip.mp4", sources[1].Src)
		assert.Contains(t, sources[0].Type, "video/webm")
		assert.Contains(t, sources[1].Type, "video/mp4")
	}
}

func TestItemWithoutVideo(t *testing.T) {
	item := &content.Item{}
	assert.False(t, item.HasVideo())
	assert.Nil(t, item.VideoSources())
}

func TestItemHasGallery(t *testing.T) {
	assert.False(t, (&content.Item{}).HasGallery())
	assert.False(t, (&content.Item{Images: []string{}}).HasGallery())
	assert.True(t, (&content.Item{Images: []string{"/images/a.jpg"}}).HasGallery())
}

func TestIsCategory(t *testing.T) {
	for _, c := range content.Categories {
		assert.True(t, content.IsCategory(string(c)), c)
	}
	assert.False(t, content.IsCategory("about"))
	assert.False(t, content.IsCategory(""))
}
