package logcolor

import (
	"github.com/gookit/color"
)

type Color struct {
	Hash    func(a ...any) string
	Product func(a ...any) string
	URL     func(a ...any) string
	Failed  func(a ...any) string
}

var LogColor *Color

func init() {
	if LogColor == nil {
		LogColor = NewColor()
	}
}

func NewColor() *Color {
	return &Color{
		Hash:    color.Magenta.Render,
		Product: color.Green.Render,
		URL:     color.Cyan.Render,
		Failed:  color.Gray.Render,
	}
}
