package content

// Item one catalog entry as served by the content api
type Item struct {
	ID             int      `json:"id"`
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`    // html fragment, sanitized before rendering
	URL            string   `json:"url"`                      // canonical path, lookup key for the detail view
	ThumbnailImage string   `json:"thumbnailImage,omitempty"` // list view image
	VideoURL       string   `json:"videoUrl,omitempty"`       // base name of the video variants
	Images         []string `json:"images,omitempty"`         // ordered gallery
}

// VideoSource one container/codec variant of an item video
type VideoSource struct {
	Src  string
	Type string
}

// HasVideo does the item offer a video
func (i *Item) HasVideo() bool {
	return i.VideoURL != ""
}

// HasGallery does the item carry gallery images
func (i *Item) HasGallery() bool {
	return len(i.Images) > 0
}

// VideoSources the webm and mp4 variants for the item video, nil without video
func (i *Item) VideoSources() []VideoSource {
	if !i.HasVideo() {
		return nil
	}
	return []VideoSource{
		{Src: VideoPath + i.VideoURL + ".webm", Type: `video/webm; codecs="vp8, vorbis"`},
		{Src: VideoPath + i.VideoURL + ".mp4", Type: `video/mp4; codecs="avc1.42E01E, mp4a.40.2"`},
	}
}
