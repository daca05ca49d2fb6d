package testutil

import (
	"os"
	"strconv"
	"time"

	"github.com/steeptui/steep/pkg/env"
)

// Scaled returns d scaled by $STEEP_TEST_TIME_SCALE. If the environment
// variable does not exist or contains an invalid value, the scale defaults
// to 1. Tests that wait on real time should use this so that slow machines
// can loosen the deadlines.
func Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * getTestTimeScale())
}

func getTestTimeScale() float64 {
	scale, err := strconv.ParseFloat(os.Getenv(env.STEEP_TEST_TIME_SCALE), 64)
	if err != nil || scale <= 0 {
		return 1
	}
	return scale
}
