// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Resultant history sparkline, JSON snapshot export, watch mode
// 0.2.0 - meeus-backed Sun/Moon ephemeris, galactic skybox alignment
// 0.1.0 - Initial release: motion catalog, vector summation, compass TUI
