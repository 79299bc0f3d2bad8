package fireworks

import "testing"

func TestMultiSink(t *testing.T) {
	var a, b []PhaseEvent
	sink := MultiSink{
		EventSinkFunc(func(e PhaseEvent) { a = append(a, e) }),
		nil,
		EventSinkFunc(func(e PhaseEvent) { b = append(b, e) }),
	}
	sink.EmitEvent(PhaseEvent{Type: EventFizzle, At: 42})

	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("deliveries = %d, %d; want 1, 1", len(a), len(b))
	}
	if a[0].Type != EventFizzle || b[0].At != 42 {
		t.Errorf("unexpected events %+v %+v", a[0], b[0])
	}
}

func TestPhaseEventTypeString(t *testing.T) {
	tests := map[PhaseEventType]string{
		EventBurst:         "burst",
		EventFizzle:        "fizzle",
		EventExpire:        "expire",
		PhaseEventType(99): "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
