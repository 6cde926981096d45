// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/vidstrip/vidstrip/color"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Vidstrip + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.FeaturesCaptions, true, "Show the captions button and enable the \"c\" key")
	register(key.FeaturesPlaybackSpeed, true, "Show the playback speed button")
	register(key.FeaturesMiniPlayer, true, "Show the mini-player button and enable the \"i\" key\nmpv renders the mini-player as a small always-on-top window")
	register(key.FeaturesTheater, true, "Show the theater button and enable the \"t\" key")
	register(key.FeaturesFullScreen, true, "Show the full-screen button and enable the \"f\" key")
	register(key.PlayerCaptionsFile, "", "Captions file loaded as the first text track.\nLeave empty to use the subtitles embedded in the media")
	register(key.PlayerMiniScale, 40, "Window scale of the mini-player, in percent of the video size (10-100)")
	register(key.PlayerSkipSeconds, 5, "Seconds skipped by the j/l and arrow keys")
	register(key.PlayerExtraArgs, []string{}, "Additional arguments passed to mpv")
	register(key.PreviewsDir, "", "Directory holding timeline preview frames (preview1.jpg, preview2.jpg, ...).\nDefaults to the \"previews\" directory next to the config")
	register(key.PreviewsBucketSeconds, 10, "Seconds of video covered by one preview frame")
	register(key.HistoryResume, true, "Remember where playback stopped and resume from there next time")
	register(key.TUIVolumeWidth, 10, "Width of the volume slider in cells")
	register(key.TUISurfaceHeight, 8, "Height of the video surface panel in normal mode")
	register(key.TUIShowHelp, true, "Show key bindings under the control strip")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
