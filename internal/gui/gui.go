//go:build !nogui

package gui

import (
	"fmt"
	"image/color"

	"tabpager/internal/config"
	"tabpager/internal/log"
	"tabpager/internal/pager"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const appID = "io.github.tabpager"

// App is the GUI application
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config
	tabs    *TabPager
}

// NewApp creates the application window for cfg.
func NewApp(cfg *config.Config) (*App, error) {
	return newApp(app.NewWithID(appID), cfg)
}

func newApp(fyneApp fyne.App, cfg *config.Config) (*App, error) {
	attrs, err := cfg.Attributes()
	if err != nil {
		return nil, err
	}
	titles := cfg.Pages.Titles

	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		window:  fyneApp.NewWindow("tabpager"),
	}
	panes := make([]fyne.CanvasObject, len(titles))
	for i, title := range titles {
		panes[i] = pageContent(title, i, len(titles))
	}
	a.tabs, err = NewTabPager(titles, panes, attrs, TabOptions{
		InitialIndex: cfg.Pages.InitialIndex,
		FPS:          cfg.Terminal.FPS,
		Observer:     titleObserver{app: a},
	})
	if err != nil {
		return nil, err
	}

	a.window.SetContent(a.tabs)
	a.window.Resize(fyne.NewSize(420, 720))
	a.window.Canvas().SetOnTypedKey(a.typedKey)
	a.setTitle(cfg.Pages.InitialIndex)
	return a, nil
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.tabs.Start()
	defer a.tabs.Stop()
	a.window.ShowAndRun()
}

// ShowError shows err in a dialog.
func (a *App) ShowError(err error) {
	log.LogWithError(err).Error("gui")
	dialog.ShowError(err, a.window)
}

// ShowInfo shows a message in a dialog.
func (a *App) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, a.window)
}

func (a *App) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		a.tabs.Swipe(-1)
	case fyne.KeyRight:
		a.tabs.Swipe(1)
	case fyne.KeyHome:
		a.selectPage(0)
	case fyne.KeyEnd:
		a.selectPage(len(a.cfg.Pages.Titles) - 1)
	case fyne.KeyEscape:
		a.fyneApp.Quit()
	}
}

func (a *App) selectPage(index int) {
	if err := a.tabs.Select(index); err != nil {
		log.LogWithError(err).Debug("gui: select ignored")
	}
}

func (a *App) setTitle(index int) {
	titles := a.cfg.Pages.Titles
	if index < 0 || index >= len(titles) {
		return
	}
	a.window.SetTitle(fmt.Sprintf("tabpager - %s", titles[index]))
}

// titleObserver keeps the window title on the settled page.
type titleObserver struct {
	app *App
}

func (titleObserver) OnProgress(int, int, float64) {}

func (o titleObserver) OnSettle(index int, origin pager.Origin) {
	log.Debugf("gui: settled on %d (%s)", index, origin)
	o.app.setTitle(index)
}

func (titleObserver) OnTitleTapped(index int) {
	log.Debugf("gui: title %d tapped", index)
}

func pageContent(title string, index, count int) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	detail := widget.NewLabelWithStyle(fmt.Sprintf("page %d of %d", index+1, count), fyne.TextAlignCenter, fyne.TextStyle{})
	tint := canvas.NewRectangle(pageTint(index))
	return container.NewStack(tint, container.NewCenter(container.NewVBox(heading, detail)))
}

func pageTint(index int) color.Color {
	if index%2 == 0 {
		return color.NRGBA{R: 0xf4, G: 0xf6, B: 0xfb, A: 0xff}
	}
	return color.NRGBA{R: 0xfb, G: 0xf8, B: 0xf0, A: 0xff}
}

func logError(err error, msg string) {
	log.LogWithError(err).Warn(msg)
}

// StartGUI opens the fyne window for cfg.
func StartGUI(cfg *config.Config) error {
	a, err := NewApp(cfg)
	if err != nil {
		return err
	}
	a.Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
