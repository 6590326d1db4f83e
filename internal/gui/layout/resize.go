package layout

import (
	"fyne.io/fyne/v2"
)

// ResizeLayout stacks its objects over the full container area and reports
// every change of container size to onResize.
type ResizeLayout struct {
	onResize func(fyne.Size)
	last     fyne.Size
}

func NewResizeLayout(onResize func(fyne.Size)) *ResizeLayout {
	return &ResizeLayout{onResize: onResize}
}

func (rl *ResizeLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		obj.Resize(containerSize)
		obj.Move(fyne.NewPos(0, 0))
	}

	if containerSize == rl.last {
		return
	}
	rl.last = containerSize
	if rl.onResize != nil {
		rl.onResize(containerSize)
	}
}

func (rl *ResizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize
}
