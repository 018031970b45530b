package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Cue fires a trigger before the given tick runs.
type Cue struct {
	Tick    int
	Trigger Trigger
}

// Script is a sorted list of cues driving a headless run.
type Script []Cue

// ParseScript parses a comma or whitespace separated list of tick:trigger
// pairs, for example "60:advance,300:cat,900:rats".
func ParseScript(s string) (Script, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})

	script := make(Script, 0, len(fields))
	for _, f := range fields {
		tickStr, name, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("cue %q: want tick:trigger", f)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("cue %q: invalid tick", f)
		}
		t, ok := ParseTrigger(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("cue %q: unknown trigger %q", f, name)
		}
		script = append(script, Cue{Tick: tick, Trigger: t})
	}
	sort.SliceStable(script, func(i, j int) bool { return script[i].Tick < script[j].Tick })
	return script, nil
}

// Due returns the cues for tick, assuming cues before it were consumed, and
// the remaining script.
func (s Script) Due(tick int) (due []Cue, rest Script) {
	n := 0
	for n < len(s) && s[n].Tick <= tick {
		n++
	}
	return s[:n], s[n:]
}
