package config

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
}

// set config level variables from the configuration once it has been
// read, falling back to whatever was already set (cmd line or default).
func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
			LogLevel = lvl
		}
	}
	if Settings.Log.SearchLogLvl != "" {
		if lvl, found := LogLevels[Settings.Log.SearchLogLvl]; found {
			SearchLogLevel = lvl
		}
	}
}

// LogLevels maps string representations of log levels to numerical values
// understood by github.com/op/go-logging.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
