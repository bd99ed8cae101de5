package pseudocode

import (
	"strings"
	"testing"
)

func TestListCoversAllTopics(t *testing.T) {
	all := List()
	if len(all) != 13 {
		t.Fatalf("got %d topics, want 13", len(all))
	}

	var structures, algorithms int
	for _, topic := range all {
		switch topic.Kind {
		case KindDataStructure:
			structures++
		case KindAlgorithm:
			algorithms++
		default:
			t.Errorf("%s has unknown kind %q", topic.Title, topic.Kind)
		}
		if topic.Code == "" {
			t.Errorf("%s has no pseudocode", topic.Title)
		}
	}
	if structures != 6 || algorithms != 7 {
		t.Errorf("got %d structures and %d algorithms, want 6 and 7", structures, algorithms)
	}
}

func TestListReturnsCopy(t *testing.T) {
	a := List()
	a[0].Title = "mutated"
	if List()[0].Title == "mutated" {
		t.Error("List exposes internal slice")
	}
}

func TestGet(t *testing.T) {
	topic, ok := Get("Binary Search")
	if !ok {
		t.Fatal("Binary Search not found")
	}
	if topic.Kind != KindAlgorithm {
		t.Errorf("kind = %q, want algorithm", topic.Kind)
	}
	if !strings.Contains(topic.Code, "FUNCTION binarySearch") {
		t.Error("pseudocode missing binarySearch function")
	}

	if _, ok := Get("Bloom Filter"); ok {
		t.Error("unknown title should not resolve")
	}
}
