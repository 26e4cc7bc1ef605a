package heuristic

import (
	"math"
	"reflect"
	"testing"
)

const kerfuffleDefinition = "a commotion or fuss, especially one caused by conflicting opinions."

func TestEmbedKerfuffleDefinition(t *testing.T) {
	e := NewEmbedder()
	vec, err := e.Embed(kerfuffleDefinition)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != FeatureDimension {
		t.Fatalf("Embed returned %d dims, want %d", len(vec), FeatureDimension)
	}
	if vec[0] != 10 {
		t.Errorf("word_count = %v, want 10", vec[0])
	}
	// a commotion or fuss especially one caused by conflicting opinions
	// = 56 characters over 10 tokens
	if math.Abs(vec[1]-5.6) > 1e-9 {
		t.Errorf("avg_word_length = %v, want 5.6", vec[1])
	}
	if vec[2] != 0 || vec[3] != 0 {
		t.Errorf("sensory/abstract ratios = %v/%v, want 0/0", vec[2], vec[3])
	}
	// 10 distinct tokens plus 4 of length >= 7
	if math.Abs(vec[4]-1.4) > 1e-9 {
		t.Errorf("lexical_density = %v, want 1.4", vec[4])
	}
}

func TestEmbedKeywordRatios(t *testing.T) {
	e := NewEmbedder()
	vec, err := e.Embed("bright light and sound mark a change of state")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	// bright, light, sound sensory; change, state abstract; 9 tokens
	if math.Abs(vec[2]-3.0/9.0) > 1e-9 {
		t.Errorf("sensory_ratio = %v, want 3/9", vec[2])
	}
	if math.Abs(vec[3]-2.0/9.0) > 1e-9 {
		t.Errorf("abstract_ratio = %v, want 2/9", vec[3])
	}
}

func TestEmbedEmptyText(t *testing.T) {
	e := NewEmbedder()
	for _, text := range []string{"", "  ", "1234 --- !!"} {
		vec, err := e.Embed(text)
		if err != nil {
			t.Fatalf("Embed(%q): %v", text, err)
		}
		want := make([]float64, FeatureDimension)
		if !reflect.DeepEqual(vec, want) {
			t.Errorf("Embed(%q) = %v, want zero vector", text, vec)
		}
	}
}

func TestEmbedIsPure(t *testing.T) {
	e := NewEmbedder()
	first, _ := e.Embed(kerfuffleDefinition)
	for i := 0; i < 5; i++ {
		again, _ := e.Embed(kerfuffleDefinition)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Embed not deterministic: %v vs %v", first, again)
		}
	}
}

func TestEmbedRatioBounds(t *testing.T) {
	e := NewEmbedder()
	texts := []string{
		"light light light",
		"state of the art process with remarkable toughness",
		"one",
		"a b c d e f g",
	}
	for _, text := range texts {
		vec, _ := e.Embed(text)
		if vec[1] < 0 {
			t.Errorf("Embed(%q): avg_word_length %v < 0", text, vec[1])
		}
		for _, i := range []int{2, 3} {
			if vec[i] < 0 || vec[i] > 1 {
				t.Errorf("Embed(%q): dim %d = %v outside [0,1]", text, i, vec[i])
			}
		}
	}
}

func TestEmbedCustomKeywords(t *testing.T) {
	e := NewEmbedderWithKeywords([]string{"zap"}, []string{"idea"})
	vec, _ := e.Embed("zap idea zap")
	if math.Abs(vec[2]-2.0/3.0) > 1e-9 {
		t.Errorf("custom sensory_ratio = %v, want 2/3", vec[2])
	}
	if math.Abs(vec[3]-1.0/3.0) > 1e-9 {
		t.Errorf("custom abstract_ratio = %v, want 1/3", vec[3])
	}
}
