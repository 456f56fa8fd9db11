package cli

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pcaisse/vic/internal/config"
	"github.com/pcaisse/vic/internal/control"
	"github.com/pcaisse/vic/internal/input"
	"github.com/pcaisse/vic/internal/potatolog"
	"github.com/pcaisse/vic/internal/state"
	"github.com/pcaisse/vic/internal/styling"
	"github.com/pcaisse/vic/internal/tui"
)

// Flags for the `edit` command line command, for `go-flags` to parse command
// line args into.
type EditCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Executes the edit command.
// (This gets called by `go-flags` when `edit` is provided on the command line)
func (command *EditCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	stderrLogger := log.Output(stderrWriter)

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	theme := themeFromString(command.Theme)

	configData, err := config.ParseConfigAugmentDefaults(theme, readConfigFile(vicHome()))
	if err != nil {
		return fmt.Errorf("can't parse config data (%w)", err)
	}
	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		return fmt.Errorf("can't use configured styles (%w)", err)
	}

	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller := control.NewController(screenHandler, *stylesheet, state.New())
	controller.Run()

	if keyspec, err := input.ToConfigIdentifierString(controller.Keys()); err != nil {
		log.Debug().Err(err).Msg("session keys not describable as keyspec")
	} else {
		log.Info().Str("keys", string(keyspec)).Msg("session ended (keys can be fed to 'vic replay')")
	}

	// the screen is finalized, so whatever went wrong can be shown on stderr
	log.Logger = stderrLogger
	return potatolog.GlobalMemoryLogReaderWriter.Replay(stderrWriter, zerolog.WarnLevel)
}

func themeFromString(s string) config.ColorschemeType {
	switch s {
	case "light":
		return config.Light
	case "dark":
		return config.Dark
	default:
		return config.Dark
	}
}

// vicHome returns the directory the configuration is read from, which is
// $VIC_HOME if set and $HOME/.config/vic otherwise.
func vicHome() string {
	home := os.Getenv("VIC_HOME")
	if home == "" {
		return path.Join(os.Getenv("HOME"), ".config", "vic")
	}
	return strings.TrimRight(home, "/")
}

// readConfigFile reads the config file in the given directory. If it can't be
// read, the defaults are to be used, so empty data is returned.
func readConfigFile(dir string) []byte {
	configPath := path.Join(dir, "config.yaml")
	yamlData, err := os.ReadFile(configPath)
	if err != nil {
		log.Info().Err(err).Str("file", configPath).Msg("can't read config file, using defaults")
		return []byte{}
	}
	return yamlData
}
