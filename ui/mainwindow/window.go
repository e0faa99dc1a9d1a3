// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"tfeditor/internal/app"
	"tfeditor/internal/editor"
	"tfeditor/internal/preset"
	"tfeditor/internal/version"
	"tfeditor/pkg/colorutil"
	"tfeditor/pkg/geometry"
	"tfeditor/ui/canvas"
	"tfeditor/ui/prefs"
)

const appTitle = "TF Editor"

// customColormap is the picker entry shown for presets with an explicit
// color list.
const customColormap = "custom"

var presetExtensions = []string{".tf", ".json", ".yaml", ".yml"}

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs
	theme *app.EditorTheme

	editor    *editor.Editor
	canvas    *canvas.CurveCanvas
	colormap  *widget.Select
	locked    *widget.Check
	rangeMin  *widget.Entry
	rangeMax  *widget.Entry
	statusBar *widget.Label
	readout   *widget.Label

	watcher *app.PresetWatcher

	// Menu items that need state tracking
	darkItem  *fyne.MenuItem
	watchItem *fyne.MenuItem
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
		theme:  &app.EditorTheme{Dark: p.DarkMode()},
	}
	fyneApp.Settings().SetTheme(mw.theme)

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.syncControls()
	mw.updateTitle()

	size := p.Window()
	win.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
	win.SetCloseIntercept(mw.onClose)

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.editor = editor.New(mw.editorProps(), editor.WithTheme(mw.theme.Canvas()))
	mw.canvas = canvas.NewCurveCanvas(mw.editor)

	mw.statusBar = widget.NewLabel("Ready")
	mw.readout = widget.NewLabel("")
	mw.canvas.OnHover(func(r canvas.Readout) {
		mw.readout.SetText(r.String())
	})

	toolbar := mw.createToolbar()

	content := container.NewBorder(
		toolbar, // top
		container.NewPadded(container.NewBorder(nil, nil, nil, mw.readout, mw.statusBar)), // bottom
		nil,       // left
		nil,       // right
		mw.canvas, // center
	)

	mw.SetContent(content)
}

// createToolbar creates the colormap, range and lock controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.colormap = widget.NewSelect(colorutil.ColormapNames(), func(name string) {
		if name == "" || name == customColormap {
			return
		}
		mw.state.SetColormap(preset.Colormap{Name: name})
		mw.prefs.SetColormap(name)
	})

	mw.rangeMin = widget.NewEntry()
	mw.rangeMax = widget.NewEntry()
	mw.rangeMin.OnSubmitted = func(string) { mw.onApplyRange() }
	mw.rangeMax.OnSubmitted = func(string) { mw.onApplyRange() }
	applyBtn := widget.NewButton("Apply", mw.onApplyRange)

	mw.locked = widget.NewCheck("Lock", func(bool) {
		mw.syncEditor()
	})

	return container.NewHBox(
		widget.NewLabel("Colormap:"),
		mw.colormap,
		widget.NewSeparator(),
		widget.NewLabel("Range:"),
		container.NewGridWrap(fyne.NewSize(90, mw.rangeMin.MinSize().Height), mw.rangeMin, mw.rangeMax),
		applyBtn,
		widget.NewSeparator(),
		mw.locked,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	// File menu
	mw.watchItem = fyne.NewMenuItem("Reload on Change", mw.onToggleWatch)
	mw.watchItem.Checked = mw.prefs.WatchPreset()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Preset", mw.onNewPreset),
		fyne.NewMenuItem("Open Preset...", mw.onOpenPreset),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Preset", mw.onSavePreset),
		fyne.NewMenuItem("Save Preset As...", mw.onSavePresetAs),
		fyne.NewMenuItemSeparator(),
		mw.watchItem,
	)

	// View menu
	mw.darkItem = fyne.NewMenuItem("Dark Theme", mw.onToggleDark)
	mw.darkItem.Checked = mw.theme.Dark

	viewMenu := fyne.NewMenu("View", mw.darkItem)

	// Help menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventPresetLoaded, func(data interface{}) {
		mw.syncEditor()
		mw.syncControls()
		mw.updateTitle()
		mw.restartWatcher()
		if p, ok := data.(preset.File); ok {
			mw.updateStatus(fmt.Sprintf("Loaded %s (%d points)", p.Name, len(p.Points)))
		}
	})

	mw.state.On(app.EventPresetSaved, func(data interface{}) {
		mw.updateTitle()
		mw.restartWatcher()
		if path, ok := data.(string); ok {
			mw.prefs.SetLastPreset(path)
			mw.updateStatus("Saved " + path)
		}
	})

	mw.state.On(app.EventColormapChanged, func(interface{}) {
		mw.syncEditor()
		mw.syncControls()
	})

	mw.state.On(app.EventRangeChanged, func(interface{}) {
		mw.syncEditor()
		mw.syncControls()
	})

	mw.state.On(app.EventCurveCommitted, func(data interface{}) {
		if points, ok := data.([]geometry.Point2D); ok {
			mw.updateStatus(fmt.Sprintf("%d points", len(points)))
		}
	})

	mw.state.On(app.EventModified, func(interface{}) {
		mw.updateTitle()
	})
}

// editorProps derives editor props from the current state and controls.
func (mw *MainWindow) editorProps() editor.Props {
	props := mw.state.EditorProps(mw.state.SetPoints)
	props.Disabled = mw.locked != nil && mw.locked.Checked
	return props
}

// syncEditor pushes the current preset into the editor. Echoes of the
// editor's own commits leave an in-progress drag alone.
func (mw *MainWindow) syncEditor() {
	mw.editor.SetProps(mw.editorProps())
	mw.canvas.Refresh()
}

// syncControls updates the toolbar to match the preset.
func (mw *MainWindow) syncControls() {
	p := mw.state.Preset()

	options := colorutil.ColormapNames()
	selected := p.Colormap.Name
	if selected == "" {
		options = append(options, customColormap)
		selected = customColormap
	}
	if !slices.Equal(mw.colormap.Options, options) {
		mw.colormap.Options = options
		mw.colormap.Refresh()
	}
	if mw.colormap.Selected != selected {
		mw.colormap.SetSelected(selected)
	}

	mw.rangeMin.SetText(strconv.FormatFloat(p.Range[0], 'g', -1, 64))
	mw.rangeMax.SetText(strconv.FormatFloat(p.Range[1], 'g', -1, 64))
}

func (mw *MainWindow) updateTitle() {
	p := mw.state.Preset()
	title := appTitle + " - " + p.Name
	if path := mw.state.Path(); path != "" {
		title = appTitle + " - " + filepath.Base(path)
	}
	if mw.state.IsModified() {
		title += " *"
	}
	mw.SetTitle(title)
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.LastDir()
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetLastDir(filepath.Dir(filePath))
}

// restartWatcher watches the current preset file if reloading is enabled.
func (mw *MainWindow) restartWatcher() {
	if mw.watcher != nil {
		path := mw.watcher.Path()
		if abs, err := filepath.Abs(mw.state.Path()); err == nil && abs == path && mw.watchItem.Checked {
			return
		}
		mw.watcher.Stop()
		mw.watcher = nil
	}
	path := mw.state.Path()
	if !mw.watchItem.Checked || path == "" {
		return
	}
	w, err := app.WatchPreset(mw.state, path, app.DefaultReloadDelay)
	if err != nil {
		mw.updateStatus("Cannot watch preset: " + err.Error())
		return
	}
	mw.watcher = w
}

// OpenPreset loads a preset file, reporting failures in a dialog.
func (mw *MainWindow) OpenPreset(path string) {
	mw.saveLastDir(path)
	if err := mw.state.LoadPreset(path); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

// Menu action handlers

func (mw *MainWindow) onNewPreset() {
	mw.editor.Flush()
	mw.state.NewPreset()
}

func (mw *MainWindow) onOpenPreset() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		mw.OpenPreset(reader.URI().Path())
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(presetExtensions))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSavePreset() {
	path := mw.state.Path()
	if path == "" {
		mw.onSavePresetAs()
		return
	}
	mw.save(path)
}

func (mw *MainWindow) onSavePresetAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if !slices.Contains(presetExtensions, filepath.Ext(path)) {
			path += ".tf"
		}
		mw.saveLastDir(path)
		mw.save(path)
	}, mw.Window)
	fd.SetFileName(mw.state.Preset().Name + ".tf")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// save flushes any pending edit so the file holds what is on screen.
func (mw *MainWindow) save(path string) {
	mw.editor.Flush()
	if err := mw.state.SavePreset(path); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onApplyRange() {
	lo, err := strconv.ParseFloat(mw.rangeMin.Text, 64)
	if err != nil {
		dialog.ShowError(fmt.Errorf("range minimum: %w", err), mw.Window)
		return
	}
	hi, err := strconv.ParseFloat(mw.rangeMax.Text, 64)
	if err != nil {
		dialog.ShowError(fmt.Errorf("range maximum: %w", err), mw.Window)
		return
	}
	mw.state.SetRange([2]float64{lo, hi})
}

func (mw *MainWindow) onToggleWatch() {
	mw.watchItem.Checked = !mw.watchItem.Checked
	mw.prefs.SetWatchPreset(mw.watchItem.Checked)
	mw.restartWatcher()
	mw.MainMenu().Refresh()
}

func (mw *MainWindow) onToggleDark() {
	mw.theme = &app.EditorTheme{Dark: !mw.theme.Dark}
	mw.darkItem.Checked = mw.theme.Dark
	mw.prefs.SetDarkMode(mw.theme.Dark)

	mw.app.Settings().SetTheme(mw.theme)
	mw.editor.SetTheme(mw.theme.Canvas())
	mw.canvas.Refresh()
	mw.MainMenu().Refresh()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s\n\n"+
			"Transfer function editor for volume rendering.\n\n"+
			"Click to add a point, drag to move it,\n"+
			"shift-click to remove it.",
			version.String()),
		mw.Window)
}

// SavePreferences stores the window geometry and last preset.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetWindow(prefs.Window{Width: float64(size.Width), Height: float64(size.Height)})
	if path := mw.state.Path(); path != "" {
		mw.prefs.SetLastPreset(path)
	}
	if err := mw.prefs.Save(); err != nil {
		fyne.LogError("saving preferences", err)
	}
}

func (mw *MainWindow) onClose() {
	mw.editor.Flush()
	mw.editor.Close()
	if mw.watcher != nil {
		mw.watcher.Stop()
	}
	mw.SavePreferences()
	mw.Close()
}
