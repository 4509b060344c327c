// Package desktop builds the fyne window for the generator form.
package desktop

import (
	"log/slog"
	"math/rand/v2"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/pgen/pgen-go/internal/charset"
	"github.com/pgen/pgen-go/internal/form"
)

const WindowTitle = "Password Generator"

// Generator holds the window and every control of the form. All callbacks
// run on the fyne event loop and share one form.Form.
type Generator struct {
	form      *form.Form
	rnd       *rand.Rand
	window    fyne.Window
	clipboard fyne.Clipboard

	checks    map[charset.Class]*widget.Check
	repeat    *widget.Check
	length    *widget.Entry
	increment *widget.Button
	decrement *widget.Button
	generate  *widget.Button
	copy      *widget.Button
	result    *widget.Label
	status    *widget.Label
}

// New builds the generator window on a.
func New(a fyne.App, rnd *rand.Rand) *Generator {
	g := &Generator{
		form:   form.New(),
		rnd:    rnd,
		window: a.NewWindow(WindowTitle),
		checks: make(map[charset.Class]*widget.Check, len(charset.All)),
	}
	g.clipboard = g.window.Clipboard()

	include := container.NewVBox()
	for _, c := range charset.All {
		check := widget.NewCheck(c.Label(), func(on bool) {
			g.form.SetSelected(c, on)
		})
		check.SetChecked(g.form.Selected(c))
		g.checks[c] = check
		include.Add(check)
	}

	g.repeat = widget.NewCheck("Allow repeated characters", func(on bool) {
		g.form.AllowRepeats = on
	})
	g.repeat.SetChecked(g.form.AllowRepeats)

	g.length = widget.NewEntry()
	g.length.SetText(g.form.LengthText)
	g.length.OnChanged = g.onLengthChanged

	g.increment = widget.NewButton("+", func() { g.adjust(g.form.Increment) })
	g.decrement = widget.NewButton("-", func() { g.adjust(g.form.Decrement) })
	g.generate = widget.NewButton("Generate", g.onGenerate)
	g.copy = widget.NewButton("Copy", g.onCopy)

	g.result = widget.NewLabel("")
	g.result.TextStyle = fyne.TextStyle{Monospace: true}
	g.status = widget.NewLabel("")

	lengthRow := container.NewHBox(
		widget.NewLabel("Length:"),
		container.NewGridWrap(fyne.NewSize(70, g.length.MinSize().Height), g.length),
		g.increment,
		g.decrement,
	)

	g.window.SetContent(container.NewPadded(container.NewVBox(
		widget.NewCard("Include", "", include),
		g.repeat,
		lengthRow,
		g.generate,
		g.status,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, g.copy, nil, g.result),
	)))
	g.window.SetFixedSize(true)

	return g
}

// Window returns the generator window.
func (g *Generator) Window() fyne.Window {
	return g.window
}

// ShowAndRun shows the window and runs the application event loop.
func (g *Generator) ShowAndRun() {
	g.window.ShowAndRun()
}

// onLengthChanged restores the last accepted text when an edit leaves
// anything other than digits in the entry.
func (g *Generator) onLengthChanged(text string) {
	if g.form.SetLengthText(text) {
		return
	}
	g.length.SetText(g.form.LengthText)
}

func (g *Generator) adjust(step func()) {
	step()
	g.length.SetText(g.form.LengthText)
}

func (g *Generator) onGenerate() {
	ok, err := g.form.Generate(g.rnd)
	if err != nil {
		if !form.IsUserError(err) {
			slog.Error("generating password", "error", err)
		}
		g.status.SetText(err.Error())
		return
	}
	g.status.SetText("")
	if ok {
		g.result.SetText(g.form.Result)
	}
}

func (g *Generator) onCopy() {
	g.clipboard.SetContent(g.form.Result)
}
