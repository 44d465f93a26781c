package darwin

import "strings"

const frontmostAppScript = `tell application "System Events" to get name of first application process whose frontmost is true`

// quoteAppleScript renders s as an AppleScript string literal.
func quoteAppleScript(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func activateAppScript(name string) string {
	return "tell application " + quoteAppleScript(name) + " to activate"
}
