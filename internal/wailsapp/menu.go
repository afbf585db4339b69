package wailsapp

import (
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/scribe-app/scribe-shell/internal/constants"
)

// appMenu builds the macOS menu bar. The stock application menu terminates
// through the window close hook, which only hides the window; the Quit item
// here asks the controller to quit instead.
func appMenu(quit func()) *menu.Menu {
	m := menu.NewMenu()

	app := m.AddSubmenu(constants.AppName)
	app.Append(menu.About())
	app.AddSeparator()
	app.Append(menu.Hide())
	app.Append(menu.HideOthers())
	app.Append(menu.UnHide())
	app.AddSeparator()
	app.AddText("Quit "+constants.AppName, keys.CmdOrCtrl("q"), func(_ *menu.CallbackData) {
		quit()
	})

	m.Append(menu.EditMenu())
	m.Append(menu.WindowMenu())
	return m
}
