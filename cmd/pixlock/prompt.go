package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// promptPassword reads a password from an interactive masked input field.
// Pressing Escape cancels and returns an empty password.
func promptPassword() (string, error) {
	var password string
	app := tview.NewApplication()
	input := tview.NewInputField().
		SetLabel("Password: ").
		SetMaskCharacter('*').
		SetFieldWidth(40)
	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			password = input.GetText()
		}
		app.Stop()
	})
	if err := app.SetRoot(input, true).Run(); err != nil {
		return "", err
	}
	return password, nil
}
