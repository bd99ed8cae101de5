package catalog

import "testing"

func TestLoadEmbeddedCatalog(t *testing.T) {
	qs, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(qs) < 10 {
		t.Fatalf("catalog has %d questions, expected at least 10", len(qs))
	}

	types := make(map[QuestionType]int)
	topics := make(map[Topic]int)
	for _, q := range qs {
		types[q.Type]++
		topics[q.Topic]++
	}
	for _, qt := range AllQuestionTypes() {
		if types[qt] == 0 {
			t.Errorf("catalog has no %s questions", qt)
		}
	}
	if topics[TopicDataStructure] == 0 || topics[TopicAlgorithm] == 0 {
		t.Errorf("catalog does not span both topics: %v", topics)
	}
}

func TestBySubtopic(t *testing.T) {
	qs := MustLoad()
	arrays := BySubtopic(qs, "Array")
	if len(arrays) == 0 {
		t.Fatal("no Array questions")
	}
	for _, q := range arrays {
		if q.Subtopic != "Array" {
			t.Errorf("question %s has subtopic %q", q.ID, q.Subtopic)
		}
	}
}

func TestByDifficulty(t *testing.T) {
	qs := MustLoad()
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		sub := ByDifficulty(qs, d)
		if len(sub) == 0 {
			t.Errorf("no %s questions", d)
		}
		for _, q := range sub {
			if q.Difficulty != d {
				t.Errorf("question %s has difficulty %q, want %q", q.ID, q.Difficulty, d)
			}
		}
	}
}

func TestRandomDrawsWithoutMutating(t *testing.T) {
	qs := MustLoad()
	firstID := qs[0].ID

	drawn := Random(qs, 10)
	if len(drawn) != 10 {
		t.Fatalf("drew %d questions, want 10", len(drawn))
	}
	if qs[0].ID != firstID {
		t.Error("Random mutated the source slice")
	}

	// No duplicates within a draw.
	seen := make(map[string]bool)
	for _, q := range drawn {
		if seen[q.ID] {
			t.Errorf("question %s drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestRandomClampsToCatalogSize(t *testing.T) {
	qs := MustLoad()
	drawn := Random(qs, len(qs)+5)
	if len(drawn) != len(qs) {
		t.Errorf("drew %d questions, want %d", len(drawn), len(qs))
	}
}

func TestDifficultyPoints(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyEasy, 10},
		{DifficultyMedium, 15},
		{DifficultyHard, 20},
		{Difficulty("unknown"), 10},
	}
	for _, tt := range tests {
		if got := DifficultyPoints(tt.d); got != tt.want {
			t.Errorf("DifficultyPoints(%q) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestPointValueFallsBackToDifficulty(t *testing.T) {
	q := Question{Difficulty: DifficultyMedium}
	if got := q.PointValue(); got != 15 {
		t.Errorf("PointValue() = %d, want 15", got)
	}
	q.Points = 25
	if got := q.PointValue(); got != 25 {
		t.Errorf("PointValue() = %d, want 25", got)
	}
}
