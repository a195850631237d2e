package tui

// startBuildMsg asks the model to start the configured build.
// Init cannot change the model, so the first build is started from Update.
type startBuildMsg struct{}
