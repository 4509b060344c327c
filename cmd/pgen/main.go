package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/pgen/pgen-go/internal/desktop"
	"github.com/pgen/pgen-go/internal/generator"
)

func main() {
	a := app.New()
	desktop.New(a, generator.NewSource()).ShowAndRun()
}
