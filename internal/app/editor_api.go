// internal/app/editor_api.go
package app

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/modehandler"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/types"
)

// Ensure editorAPI implements plugin.EditorAPI
var _ plugin.EditorAPI = (*editorAPI)(nil)

// editorAPI exposes app components to plugins.
type editorAPI struct {
	app *App
}

func newEditorAPI(a *App) *editorAPI {
	return &editorAPI{app: a}
}

func (api *editorAPI) DocumentText() string {
	return api.app.editor.GetBuffer().Text()
}

func (api *editorAPI) LineCount() int {
	return api.app.editor.GetBuffer().LineCount()
}

func (api *editorAPI) FilePath() string {
	return api.app.editor.GetBuffer().FilePath()
}

func (api *editorAPI) IsModified() bool {
	return api.app.editor.GetBuffer().IsModified()
}

func (api *editorAPI) GetCursor() types.Position {
	return api.app.editor.GetCursor()
}

func (api *editorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// RegisterCommand makes a plugin command available as :name.
func (api *editorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, modehandler.CommandFunc(cmdFunc))
}

func (api *editorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}
