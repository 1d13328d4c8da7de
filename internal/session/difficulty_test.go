package session

import "testing"

func TestDecideNext_FollowsOracle(t *testing.T) {
	v := DecideNext(LevelMedium, Evaluation{NextDifficulty: "hard", ShouldContinue: true})
	if v.Next != LevelHard {
		t.Errorf("Next = %q, want hard", v.Next)
	}
	if !v.Continue || v.Clamped {
		t.Errorf("Continue = %v, Clamped = %v, want true/false", v.Continue, v.Clamped)
	}
}

func TestDecideNext_ClampsUnrecognizedLevel(t *testing.T) {
	v := DecideNext(LevelMedium, Evaluation{NextDifficulty: "impossible", ShouldContinue: true})
	if v.Next != LevelMedium {
		t.Errorf("Next = %q, want current level medium", v.Next)
	}
	if !v.Clamped {
		t.Error("expected Clamped for unrecognized difficulty")
	}
}

func TestDecideNext_EmptyDifficultyKeepsCurrent(t *testing.T) {
	// Practice evaluations carry no next_difficulty at all.
	v := DecideNext(LevelEasy, Evaluation{ShouldContinue: true})
	if v.Next != LevelEasy {
		t.Errorf("Next = %q, want easy", v.Next)
	}
	if v.Clamped {
		t.Error("an absent difficulty is not a clamp")
	}
}

func TestDecideNext_TerminationCarriesReason(t *testing.T) {
	v := DecideNext(LevelMedium, Evaluation{
		NextDifficulty:    "easy",
		ShouldContinue:    false,
		TerminationReason: "insufficient depth",
	})
	if v.Continue {
		t.Error("expected Continue=false")
	}
	if v.Reason != "insufficient depth" {
		t.Errorf("Reason = %q", v.Reason)
	}
}

func TestDecideNext_TerminationWithoutReasonGetsDefault(t *testing.T) {
	v := DecideNext(LevelMedium, Evaluation{ShouldContinue: false})
	if v.Reason == "" {
		t.Error("expected a default termination reason")
	}
}

func TestLevelRank_TotalOrder(t *testing.T) {
	if !(LevelEasy.Rank() < LevelMedium.Rank() && LevelMedium.Rank() < LevelHard.Rank()) {
		t.Error("expected easy < medium < hard")
	}
	if Level("impossible").Rank() >= LevelEasy.Rank() {
		t.Error("unrecognized levels must rank below easy")
	}
}
