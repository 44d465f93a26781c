// Package darwin provides the macOS platform backends: input synthesis and
// screen capture via robotgo and kbinani/screenshot, process enumeration via
// gopsutil, and application focus via AppleScript.
// Input and capture require CGo; without it no provider is registered.
package darwin
