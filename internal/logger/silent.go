package logger

// Prebuilt Logger instances offered to hosts as ready-made configuration
// values. These are values satisfying the Logger capability, kept separate
// from the capability type itself.

// Silent is a prebuilt [Logger] whose handlers are present but discard
// everything. Configuring it opts out of both handler dispatch and the
// default sink uniformly, suppressing all diagnostic output.
var Silent = Logger{
	Warn:  func(string, WarnOptions) {},
	Debug: func(string, DebugOptions) {},
}
