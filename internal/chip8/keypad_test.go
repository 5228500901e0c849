package chip8

import "testing"

// fakeEventSource is the headless test double spec.md §9 calls for: a
// queue of canned events with no window behind it.
type fakeEventSource struct {
	events []Event
}

func (f *fakeEventSource) Drain() []Event {
	out := f.events
	f.events = nil
	return out
}

func (f *fakeEventSource) push(ev ...Event) {
	f.events = append(f.events, ev...)
}

func TestKeypadPollTracksPressState(t *testing.T) {
	src := &fakeEventSource{}
	kp := NewKeypad(src)
	profile := DefaultProfile()

	src.push(Event{Kind: EventKeyDown, Key: Key5})
	if keepRunning := kp.Poll(profile); !keepRunning {
		t.Fatal("expected Poll to keep running on a key-down event")
	}
	if !kp.IsPressed(0x5) {
		t.Fatal("expected key 5 to be pressed after the down event")
	}

	src.push(Event{Kind: EventKeyUp, Key: Key5})
	kp.Poll(profile)
	if kp.IsPressed(0x5) {
		t.Fatal("expected key 5 to be released after the up event")
	}
}

func TestKeypadPollQuit(t *testing.T) {
	src := &fakeEventSource{}
	kp := NewKeypad(src)
	src.push(Event{Kind: EventQuit})

	if keepRunning := kp.Poll(DefaultProfile()); keepRunning {
		t.Fatal("expected Poll to report quit")
	}
}

func TestKeypadPollTuningKeysBounded(t *testing.T) {
	src := &fakeEventSource{}
	kp := NewKeypad(src)
	profile := &Profile{Rate: 1, IPF: 1}

	src.push(Event{Kind: EventKeyDown, Key: KeyTuneRateDown}, Event{Kind: EventKeyDown, Key: KeyTuneIPFDown})
	kp.Poll(profile)
	if profile.Rate != 1 || profile.IPF != 1 {
		t.Fatalf("expected rate/ipf to stay bounded at 1, got rate=%d ipf=%d", profile.Rate, profile.IPF)
	}

	src.push(Event{Kind: EventKeyDown, Key: KeyTuneRateUp}, Event{Kind: EventKeyDown, Key: KeyTuneIPFUp})
	kp.Poll(profile)
	if profile.Rate != 2 || profile.IPF != 2 {
		t.Fatalf("expected rate/ipf to increment, got rate=%d ipf=%d", profile.Rate, profile.IPF)
	}
}

func TestKeypadBlockReadOnlyResolvesOnRelease(t *testing.T) {
	src := &fakeEventSource{}
	kp := NewKeypad(src)
	profile := DefaultProfile()

	src.push(Event{Kind: EventKeyDown, Key: KeyA})
	key, ok, keepRunning := kp.BlockRead(profile)
	if ok {
		t.Fatal("a key-down alone must not resolve Fx0A")
	}
	if !keepRunning {
		t.Fatal("expected keepRunning true while merely pressed")
	}
	if !kp.IsPressed(0xA) {
		t.Fatal("expected the press to still be tracked")
	}

	src.push(Event{Kind: EventKeyUp, Key: KeyA})
	key, ok, keepRunning = kp.BlockRead(profile)
	if !ok || !keepRunning {
		t.Fatalf("expected the release to resolve the read, got ok=%v keepRunning=%v", ok, keepRunning)
	}
	if key != 0xA {
		t.Fatalf("expected resolved key 0xA, got %#x", key)
	}
}

func TestKeypadBlockReadQuit(t *testing.T) {
	src := &fakeEventSource{}
	kp := NewKeypad(src)
	src.push(Event{Kind: EventQuit})

	_, ok, keepRunning := kp.BlockRead(DefaultProfile())
	if ok || keepRunning {
		t.Fatalf("expected quit to abort the wait immediately, got ok=%v keepRunning=%v", ok, keepRunning)
	}
}
