package voice

import (
	"testing"

	"github.com/arktech/arktech-brain/internal/domain"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		intent    string
		slotKey   string
		slotValue string
	}{
		{"open app", "Open Spotify", domain.ActionOpenApp, domain.FieldApp, "Spotify"},
		{"open app keeps casing", "OPEN YouTube Music", domain.ActionOpenApp, domain.FieldApp, "YouTube Music"},
		{"open app trims outer whitespace", "  open Calculator  ", domain.ActionOpenApp, domain.FieldApp, "Calculator"},
		{"open app keeps inner spacing", "open  Notes", domain.ActionOpenApp, domain.FieldApp, " Notes"},
		{"open app with unicode", "Open Página", domain.ActionOpenApp, domain.FieldApp, "Página"},
		{"set alarm phrase", "Set Alarm for 7am", domain.ActionSetAlarm, domain.FieldTime, "Set Alarm for 7am"},
		{"set alarm anywhere", "please set alarm at noon", domain.ActionSetAlarm, domain.FieldTime, "please set alarm at noon"},
		{"alarm prefix", "alarm 6:30", domain.ActionSetAlarm, domain.FieldTime, "alarm 6:30"},
		{"alarm keeps untrimmed text", "  Alarm 6:30 ", domain.ActionSetAlarm, domain.FieldTime, "  Alarm 6:30 "},
		{"open wins over alarm", "open alarm clock", domain.ActionOpenApp, domain.FieldApp, "alarm clock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := ParseIntent(tt.text)
			if intent.Name != tt.intent {
				t.Fatalf("expected intent %q, got %q", tt.intent, intent.Name)
			}
			if got := intent.Slots[tt.slotKey]; got != tt.slotValue {
				t.Errorf("expected %s=%q, got %q", tt.slotKey, tt.slotValue, got)
			}
		})
	}
}

func TestParseIntent_Chat(t *testing.T) {
	inputs := []string{
		"What is the capital of France?",
		"open",
		"opener of the year",
		"alarmed by the news",
		"set an alarm",
		"",
	}

	for _, text := range inputs {
		intent := ParseIntent(text)
		if intent.Name != domain.IntentChat {
			t.Errorf("expected %q to route to chat, got %q", text, intent.Name)
		}
		if len(intent.Slots) != 0 {
			t.Errorf("expected no slots for chat intent, got %v", intent.Slots)
		}
	}
}
