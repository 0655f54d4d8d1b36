package launcher

import "strings"

// Query is a single user query delivered by the host.
type Query struct {
	// String is the text after the trigger, with surrounding whitespace removed.
	String string
	// Valid is false once the host has superseded the query.
	Valid bool
	// Triggered is true when the input started with the plugin's trigger.
	Triggered bool
}

// ParseQuery builds a Query from raw launcher input.
func ParseQuery(trigger, input string) Query {
	q := Query{Valid: true}
	if trigger != "" && strings.HasPrefix(input, trigger) {
		q.Triggered = true
		q.String = strings.TrimSpace(input[len(trigger):])
	}
	return q
}

// TriggeredQuery returns a valid, triggered query for hosts that are
// dedicated to the plugin and have no trigger to strip.
func TriggeredQuery(text string) Query {
	return Query{
		String:    strings.TrimSpace(text),
		Valid:     true,
		Triggered: true,
	}
}
