package view

import (
	"time"

	"github.com/a-h/templ"
)

const (
	FooterEmail = "coryartfitz@gmail.com"
	FooterName  = "Cory Fitzpatrick"
)

// Footer static site footer
type Footer struct {
	Email string
	Name  string
	Year  int
}

// NewFooter footer with the copyright year taken from now
func NewFooter(now time.Time) *Footer {
	return &Footer{
		Email: FooterEmail,
		Name:  FooterName,
		Year:  now.Year(),
	}
}

func (f *Footer) Component() templ.Component {
	return component("footer", f)
}
