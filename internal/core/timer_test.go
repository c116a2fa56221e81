package core

import "testing"

func TestFrameCounterFiresEveryN(t *testing.T) {
	fc := NewFrameCounter(3)
	var fired []int
	for frame := 1; frame <= 9; frame++ {
		if fc.Advance() {
			fired = append(fired, frame)
		}
	}
	if len(fired) != 3 || fired[0] != 3 || fired[1] != 6 || fired[2] != 9 {
		t.Fatalf("fired on frames %v, expected [3 6 9]", fired)
	}
}

func TestFrameCounterRearmsOnSetEvery(t *testing.T) {
	fc := NewFrameCounter(30)
	fc.Advance()
	fc.SetEvery(2)
	if fc.Remaining() != 2 {
		t.Fatalf("remaining = %d after SetEvery(2)", fc.Remaining())
	}
	if fc.Advance() {
		t.Fatal("should not fire on first frame")
	}
	if !fc.Advance() {
		t.Fatal("should fire on second frame")
	}

	fc.SetEvery(0)
	if fc.Every() != 1 || !fc.Advance() {
		t.Fatal("non-positive intervals clamp to every frame")
	}
}
