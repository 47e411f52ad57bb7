package view

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/soocke/screentext-go/ui/presenter"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

var errNoGeometry = errors.New("window geometry unavailable")

// settleStep bounds each idle sleep between event pumps in Settle.
const settleStep = 5 * time.Millisecond

// MainWindow controls the main application window. Methods must be called on
// the Tk thread.
type MainWindow struct{}

// Position returns the top-left corner of the main window.
func (MainWindow) Position() (image.Point, error) {
	r, ok := presenter.ParseGeometry(WmGeometry(App))
	if !ok {
		return image.Point{}, errNoGeometry
	}
	return r.Min, nil
}

// Move places the main window with its top-left corner at p.
func (MainWindow) Move(p image.Point) {
	WmGeometry(App, fmt.Sprintf("+%d+%d", p.X, p.Y))
}

// Settle processes pending UI events for at least d so a move or repaint
// reaches the screen before it is captured.
func (MainWindow) Settle(d time.Duration) {
	deadline := time.Now().Add(d)
	for {
		Update()
		if !time.Now().Before(deadline) {
			return
		}
		time.Sleep(min(settleStep, time.Until(deadline)))
	}
}

// Geometry returns the current "WxH+X+Y" window geometry.
func (MainWindow) Geometry() string { return WmGeometry(App) }

// SetGeometry applies a geometry string previously returned by Geometry.
func (MainWindow) SetGeometry(g string) { WmGeometry(App, g) }

var _ presenter.WindowControl = MainWindow{}
