// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color color.RGBA
	Flash float64 // оставшееся время вспышки после урона
}
