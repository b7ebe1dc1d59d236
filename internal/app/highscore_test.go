// internal/app/highscore_test.go
package app

import "testing"

func TestHighScoreInMemoryFallback(t *testing.T) {
	m := NewHighScoreManager(nil)

	improved, err := m.Record(100, 5)
	if err != nil || !improved {
		t.Fatalf("first score must improve: improved=%v err=%v", improved, err)
	}

	improved, err = m.Record(50, 9)
	if err != nil || improved {
		t.Fatalf("a lower score is not an improvement")
	}
	if best := m.Best(); best.Score != 100 || best.Wave != 5 {
		t.Fatalf("best = %+v, want the 100-point run", best)
	}

	improved, _ = m.Record(150, 12)
	if !improved || m.Best().Score != 150 {
		t.Fatalf("higher scores must replace the best")
	}
}

func TestHighScoreEqualScoreDoesNotImprove(t *testing.T) {
	m := NewHighScoreManager(nil)
	m.Record(100, 5)

	if improved, _ := m.Record(100, 7); improved {
		t.Fatalf("a tie is not a new high score")
	}
}
