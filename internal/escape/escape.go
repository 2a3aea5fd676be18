// Package escape holds the string transforms applied wherever a widget value
// crosses into generated source text or a URL.
package escape

import (
	"strings"
)

// The replacers scan the input once, so a backslash introduced by one rule is
// never escaped again by another.
var (
	scriptLiteral = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)

	// PHP double-quoted strings interpolate variables, so "$" is escaped too.
	serverLiteral = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		`$`, `\$`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)

	// WordPress runs stripcslashes over attribute values, so backslashes are doubled.
	shortcodeAttr = strings.NewReplacer(
		`\`, `\\`,
		`&`, `&amp;`,
		`"`, `&quot;`,
		`'`, `&#039;`,
		`<`, `&lt;`,
		`>`, `&gt;`,
		`[`, `&#91;`,
		`]`, `&#93;`,
	)
)

// ForScriptLiteral escapes s for a single- or double-quoted JavaScript string literal.
func ForScriptLiteral(s string) string {
	return scriptLiteral.Replace(s)
}

// ForServerLiteral escapes s for a PHP double-quoted string literal.
func ForServerLiteral(s string) string {
	return serverLiteral.Replace(s)
}

// ForShortcodeAttr escapes s for a double-quoted shortcode attribute value.
func ForShortcodeAttr(s string) string {
	return shortcodeAttr.Replace(s)
}

// QueryParam encodes s as an application/x-www-form-urlencoded value, byte for
// byte what URLSearchParams produces: alphanumerics and "*-._" stay, space
// becomes "+", everything else is percent-encoded. A "#" in a color becomes %23.
func QueryParam(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '*', c == '-', c == '.', c == '_':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}
	return b.String()
}
