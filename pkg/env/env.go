// Package env keeps names of environment variables with special significance
// to steep.
package env

// Environment variables with special significance to steep.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	HOME                  = "HOME"
	LocalAppData          = "LocalAppData"
	STEEP_TEST_TIME_SCALE = "STEEP_TEST_TIME_SCALE"
	XDG_CONFIG_HOME       = "XDG_CONFIG_HOME"
	XDG_DATA_HOME         = "XDG_DATA_HOME"
)
