package core

import (
	"github.com/devblok/prism/gfx"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer gfx.Configuration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the pause between event loop polls,
	// in milliseconds. Zero falls back to DefaultEventPollDelay.
	EventPollDelay int
}
