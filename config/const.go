package config

import "strings"

// AppVersion is the version of the tool, set at build time.
var AppVersion string

// AppName is the name of the tool.
const AppName = "passepartout"

// LogSubDir is the sub directory of the user's home for log and config files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// ConfigFileName is the name of the user's config file inside LogSubDir.
const ConfigFileName = "config.json"

// EnvPrefix prefixes environment variables that override config keys,
// e.g. PASSEPARTOUT_MODE.
const EnvPrefix = "PASSEPARTOUT"

// Defaults.
const (
	DefaultMode         = "aspectFill"
	DefaultOutputPrefix = "out_"
	DefaultJPEGQuality  = 95
	DefaultMaxCanvas    = 30000 // px per side
)
