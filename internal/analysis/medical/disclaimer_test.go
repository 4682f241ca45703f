package medical

import (
	"strings"
	"testing"
)

func TestAttachOnUserSymptom(t *testing.T) {
	got := Attach("У меня болит ГОЛОВА", "Попробуйте отдохнуть.")
	if !strings.HasSuffix(got, Disclaimer) {
		t.Fatalf("expected disclaimer, got %q", got)
	}
}

func TestAttachOnReplyTerm(t *testing.T) {
	got := Attach("Что делать вечером?", "Обратитесь к врачу, если что-то беспокоит.")
	if !strings.HasSuffix(got, Disclaimer) {
		t.Fatalf("expected disclaimer, got %q", got)
	}
}

func TestAttachIsIdempotent(t *testing.T) {
	once := Attach("кашель", "Пейте чай.")
	twice := Attach("кашель", once)
	if strings.Count(twice, Disclaimer) != 1 {
		t.Fatalf("disclaimer duplicated: %q", twice)
	}
}

func TestAttachSkipsNeutralExchange(t *testing.T) {
	reply := "Хорошего дня!"
	if got := Attach("Привет", reply); got != reply {
		t.Fatalf("unexpected disclaimer: %q", got)
	}
}

func TestKeywordsAreLowerCase(t *testing.T) {
	for _, keyword := range Keywords() {
		if keyword != strings.ToLower(keyword) {
			t.Fatalf("keyword %q must be lower-case", keyword)
		}
	}
}
