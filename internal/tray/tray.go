package tray

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/avijitbhuin21/Babbl/internal/app"
	"github.com/avijitbhuin21/Babbl/internal/config"
	"github.com/avijitbhuin21/Babbl/internal/logging"
	"github.com/getlantern/systray"
	"github.com/rs/zerolog"
)

type UI struct {
	app     *app.App
	cfg     *config.Config
	version string
	commit  string
	log     zerolog.Logger

	// Menu items
	mMode    *systray.MenuItem
	mPause   *systray.MenuItem
	mCopy    *systray.MenuItem
	mDevices *systray.MenuItem

	paused bool
}

// Status update methods for the app to call
func (u *UI) SetIdle() {
	u.updateStatus("idle")
}

func (u *UI) SetRecording() {
	u.updateStatus("recording")
}

func (u *UI) SetError() {
	u.updateStatus("error")
}

func New(application *app.App, cfg *config.Config, version, commit string, log zerolog.Logger) *UI {
	return &UI{
		app:     application,
		cfg:     cfg,
		version: version,
		commit:  commit,
		log:     log,
	}
}

// SetApp sets the app reference (for circular dependency resolution)
func (u *UI) SetApp(application *app.App) {
	u.app = application
}

func (u *UI) Run(ctx context.Context) error {
	systray.Run(u.onReady, u.onExit)
	return nil
}

func (u *UI) onReady() {
	u.updateStatus("idle")
	systray.SetTooltip("Push-to-talk voice recorder")

	u.mMode = systray.AddMenuItem(modeTitle(u.cfg.Mode), "Toggle between modes")
	systray.AddSeparator()

	u.mPause = systray.AddMenuItemCheckbox("Pause Shortcuts", "Temporarily disable mouse shortcuts", false)
	u.mCopy = systray.AddMenuItem("Copy Last Recording Path", "Put the last take's path on the clipboard")

	systray.AddSeparator()
	u.mDevices = systray.AddMenuItem("Microphone", "Select audio device")
	u.buildDeviceMenu()

	systray.AddSeparator()
	mLogs := systray.AddMenuItem("Open Logs", "View application logs")
	mAbout := systray.AddMenuItem("About", "About Babbl")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	// Event loop
	go u.handleEvents(mLogs, mAbout, mQuit)
}

func (u *UI) buildDeviceMenu() {
	devices, err := u.app.ListDevices()
	if err != nil {
		u.log.Error().Err(err).Msg("Failed to list audio devices")
		return
	}

	deviceItems := make(map[string]*systray.MenuItem)

	for _, dev := range devices {
		item := u.mDevices.AddSubMenuItem(dev.Name, "")
		if dev.ID == u.cfg.Audio.DeviceID || (u.cfg.Audio.DeviceID == "" && dev.Default) {
			item.Check()
		}
		deviceItems[dev.ID] = item

		go func(deviceID, deviceName string, menuItem *systray.MenuItem) {
			for {
				<-menuItem.ClickedCh
				if err := u.app.SetDevice(deviceID); err != nil {
					u.log.Error().Err(err).Str("device", deviceName).Msg("Failed to change audio device")
					continue
				}
				// Uncheck all other items
				for id, itm := range deviceItems {
					if id != deviceID {
						itm.Uncheck()
					}
				}
				menuItem.Check()
				u.log.Info().Str("device", deviceName).Msg("Changed audio device")
			}
		}(dev.ID, dev.Name, item)
	}
}

func (u *UI) handleEvents(mLogs, mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-u.mMode.ClickedCh:
			u.toggleMode()
		case <-u.mPause.ClickedCh:
			u.togglePause()
		case <-u.mCopy.ClickedCh:
			u.copyLastRecording()
		case <-mLogs.ClickedCh:
			u.openLogs()
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func (u *UI) toggleMode() {
	oldMode := u.app.Mode()
	newMode := config.ModeToggle
	if oldMode == config.ModeToggle {
		newMode = config.ModePushToTalk
	}
	u.app.SetMode(newMode)
	u.mMode.SetTitle(modeTitle(newMode))
	u.log.Info().Str("from", oldMode).Str("to", newMode).Msg("Changed mode")
}

func (u *UI) togglePause() {
	if u.paused {
		u.app.ResumeShortcuts()
		u.mPause.Uncheck()
		u.log.Info().Msg("Resumed mouse shortcuts")
	} else {
		u.app.PauseShortcuts()
		u.mPause.Check()
		u.log.Info().Msg("Paused mouse shortcuts")
	}
	u.paused = !u.paused
}

func (u *UI) copyLastRecording() {
	if err := u.app.CopyLastRecording(); err != nil {
		u.log.Error().Err(err).Msg("Failed to copy last recording path")
		return
	}
	u.log.Info().Str("path", u.app.LastRecording()).Msg("Copied last recording path")
}

func (u *UI) openLogs() {
	path := logging.Path()
	if err := openPath(path); err != nil {
		u.log.Error().Err(err).Str("path", path).Msg("Failed to open log file")
		return
	}
	u.log.Info().Str("path", path).Msg("Opened log file")
}

// openPath hands a file to the platform's default opener.
func openPath(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}

func (u *UI) showAbout() {
	fmt.Printf("Babbl %s (%s)\nPush-to-talk voice recorder\n", u.version, u.commit)
}

func (u *UI) onExit() {
	// Cleanup
}

// updateStatus sets the tray title with microphone emoji and status indicator
func (u *UI) updateStatus(status string) {
	emoji := emojiForStatus(status)
	systray.SetTitle(fmt.Sprintf("🎤 %s", emoji))
}

func modeTitle(mode string) string {
	if mode == config.ModeToggle {
		return "Mode: Toggle"
	}
	return "Mode: Push-to-Talk"
}

// emojiForStatus returns the appropriate status emoji
func emojiForStatus(status string) string {
	switch status {
	case "recording":
		return "🔴" // Red - recording
	case "idle":
		return "🟢" // Green - ready/idle
	case "error":
		return "⚪️" // White - error
	default:
		return "🟢" // Green - default to ready
	}
}
