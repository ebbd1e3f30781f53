package types

// Version is the application version, replaced at build time via ldflags
var Version = "0.0.1"
