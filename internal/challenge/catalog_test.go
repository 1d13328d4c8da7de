package challenge

import "testing"

func TestCatalog_EveryChallengeHasValidCategory(t *testing.T) {
	known := make(map[string]bool)
	for _, cat := range Categories() {
		known[cat.ID] = true
	}
	for _, cat := range Categories() {
		for _, ch := range ByCategory(cat.ID) {
			if !known[ch.CategoryID] {
				t.Errorf("challenge %s references unknown category %s", ch.ID, ch.CategoryID)
			}
		}
	}
}

func TestCatalog_EveryChallengeHasAllLanguages(t *testing.T) {
	for _, cat := range Categories() {
		for _, ch := range ByCategory(cat.ID) {
			for _, lang := range Languages() {
				if ch.StarterCode[lang] == "" {
					t.Errorf("challenge %s missing starter code for %s", ch.ID, lang)
				}
			}
		}
	}
}

func TestCatalog_EveryChallengeIsComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range Categories() {
		for _, ch := range ByCategory(cat.ID) {
			if seen[ch.ID] {
				t.Errorf("duplicate challenge ID %s", ch.ID)
			}
			seen[ch.ID] = true

			if ch.Title == "" || ch.Description == "" {
				t.Errorf("challenge %s missing title or description", ch.ID)
			}
			if len(ch.TestCases) == 0 {
				t.Errorf("challenge %s has no test cases", ch.ID)
			}
			if ch.ExpectedMinutes <= 0 {
				t.Errorf("challenge %s has no time budget", ch.ID)
			}
			caseIDs := make(map[string]bool)
			for _, tc := range ch.TestCases {
				if caseIDs[tc.ID] {
					t.Errorf("challenge %s has duplicate test case ID %s", ch.ID, tc.ID)
				}
				caseIDs[tc.ID] = true
			}
		}
	}
	if len(seen) != Count() {
		t.Errorf("category walk found %d challenges, catalog has %d", len(seen), Count())
	}
}

func TestByID(t *testing.T) {
	ch, ok := ByID("two-sum")
	if !ok {
		t.Fatal("expected two-sum to exist")
	}
	if ch.CategoryID != "hashing" {
		t.Errorf("unexpected category: %s", ch.CategoryID)
	}

	if _, ok := ByID("no-such-challenge"); ok {
		t.Error("expected lookup miss")
	}
}

func TestLanguages_DefaultFirst(t *testing.T) {
	langs := Languages()
	if len(langs) == 0 || langs[0] != LangJavaScript {
		t.Fatalf("expected javascript as default language, got %v", langs)
	}
}
