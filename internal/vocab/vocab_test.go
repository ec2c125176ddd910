package vocab

import "testing"

func TestCategories(t *testing.T) {
	v := Builtin()

	want := []string{"Saludos", "Frutas", "Animales", "Familia", "Colores", "Números"}
	got := v.Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordCountMatchesCategorySum(t *testing.T) {
	v := Builtin()

	sum := 0
	for _, c := range v.Categories() {
		sum += len(v.Words(c))
	}
	if v.WordCount() != sum {
		t.Errorf("WordCount() = %d, sum of categories = %d", v.WordCount(), sum)
	}
}

func TestWordsUnknownCategory(t *testing.T) {
	v := Builtin()

	words := v.Words("Verbos")
	if len(words) != 0 {
		t.Errorf("unknown category returned %d words, want 0", len(words))
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	v := Builtin()

	words := v.Words("Frutas")
	words["manzana"] = "mutated"

	if v.Words("Frutas")["manzana"] != "apple" {
		t.Error("mutating the returned map changed the vocabulary")
	}
}

func TestRandomWordIsMember(t *testing.T) {
	v := Builtin()

	for i := 0; i < 50; i++ {
		s, target, ok := v.RandomWord("Animales")
		if !ok {
			t.Fatal("RandomWord returned ok=false for a non-empty category")
		}
		want, exists := v.Words("Animales")[s]
		if !exists {
			t.Fatalf("RandomWord source %q not in category", s)
		}
		if target != want {
			t.Fatalf("RandomWord target %q, want %q", target, want)
		}
	}
}

func TestRandomWordEmptyPool(t *testing.T) {
	v := Builtin()

	if _, _, ok := v.RandomWord("Verbos"); ok {
		t.Error("RandomWord(unknown) returned ok=true")
	}
}

func TestRandomWordWholeVocabulary(t *testing.T) {
	v := Builtin()

	s, _, ok := v.RandomWord("")
	if !ok {
		t.Fatal("RandomWord(\"\") returned ok=false")
	}
	found := false
	for _, c := range v.Categories() {
		if _, exists := v.Words(c)[s]; exists {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("RandomWord source %q not found in any category", s)
	}
}

func TestNaranjaStaysPerCategory(t *testing.T) {
	v := Builtin()

	if got := v.Words("Frutas")["naranja"]; got != "orange" {
		t.Errorf("Frutas naranja = %q, want %q", got, "orange")
	}
	if got := v.Words("Colores")["naranja"]; got != "orange" {
		t.Errorf("Colores naranja = %q, want %q", got, "orange")
	}
}

func TestPairsSorted(t *testing.T) {
	v := Builtin()

	pairs := v.Pairs("Colores")
	if len(pairs) != 14 {
		t.Fatalf("Colores has %d pairs, want 14", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i-1].Source >= pairs[i].Source {
			t.Fatalf("pairs not sorted: %q before %q", pairs[i-1].Source, pairs[i].Source)
		}
	}

	all := v.Pairs("")
	if len(all) != v.WordCount() {
		t.Errorf("Pairs(\"\") returned %d pairs, want %d", len(all), v.WordCount())
	}
}
