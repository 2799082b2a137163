package voice

import (
	"strings"

	"github.com/arktech/arktech-brain/internal/domain"
)

const (
	openPrefix  = "open "
	alarmPrefix = "alarm "
	alarmPhrase = "set alarm"
)

// ParseIntent applies the routing rules in order; the first match wins.
// Matching is done on the trimmed, lower-cased text while slot values keep
// the caller's original casing.
func ParseIntent(text string) *domain.Intent {
	trimmed := strings.TrimSpace(text)
	t := strings.ToLower(trimmed)

	if strings.HasPrefix(t, openPrefix) {
		return &domain.Intent{
			Name:  domain.ActionOpenApp,
			Slots: map[string]string{domain.FieldApp: dropRunes(trimmed, len(openPrefix))},
		}
	}

	if strings.Contains(t, alarmPhrase) || strings.HasPrefix(t, alarmPrefix) {
		return &domain.Intent{
			Name:  domain.ActionSetAlarm,
			Slots: map[string]string{domain.FieldTime: text},
		}
	}

	return &domain.Intent{Name: domain.IntentChat}
}

// dropRunes removes the first n characters of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
