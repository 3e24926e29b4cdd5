// contains data structures that describe portfolio content
package content

const (
	// PathSeparator separator for paths in URLs
	PathSeparator = "/"
	// VideoPath directory the video variants are served from
	VideoPath = "/video/"
)

// Category a top level content grouping, used as route segment and filter key
type Category string

const (
	CategoryDev    Category = "dev"
	CategoryDesign Category = "design"
	CategoryPhoto  Category = "photo"
)

// Categories in navigation order
var Categories = []Category{
	CategoryDev,
	CategoryDesign,
	CategoryPhoto,
}

// IsCategory is the given name one of the navigable categories
func IsCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}
