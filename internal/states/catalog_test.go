package states

import "testing"

func TestCatalogHasAllFiftyStates(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 50 {
		t.Fatalf("Catalog() returned %d states, want 50", len(catalog))
	}

	seen := make(map[string]bool)
	for _, s := range catalog {
		if seen[s.Name] {
			t.Errorf("duplicate state name: %s", s.Name)
		}
		seen[s.Name] = true

		if s.Nickname == "" {
			t.Errorf("%s has no nickname", s.Name)
		}
		if s.Capital == "" {
			t.Errorf("%s has no capital", s.Name)
		}
		if s.Syllables < 1 {
			t.Errorf("%s has invalid syllable count %d", s.Name, s.Syllables)
		}
		if s.Latitude == 0 || s.Longitude == 0 {
			t.Errorf("%s has missing coordinates", s.Name)
		}
	}
}

func TestCatalogOrderIsStable(t *testing.T) {
	first := Catalog()
	second := Catalog()
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("catalog order changed between calls at index %d: %s vs %s",
				i, first[i].Name, second[i].Name)
		}
	}
}

func TestCatalogRegions(t *testing.T) {
	valid := make(map[string]bool)
	for _, r := range Regions() {
		valid[r] = true
	}

	for _, s := range Catalog() {
		if !valid[s.Region] {
			t.Errorf("%s has unknown region %q", s.Name, s.Region)
		}
	}
}

func TestNeighborsExistInCatalog(t *testing.T) {
	names := make(map[string]bool)
	for _, s := range Catalog() {
		names[s.Name] = true
	}

	for _, s := range Catalog() {
		for _, n := range s.Neighbors {
			if !names[n] {
				t.Errorf("%s lists unknown neighbor %q", s.Name, n)
			}
		}
	}
}

func TestLookupTablesCoverAllStates(t *testing.T) {
	for _, s := range Catalog() {
		if _, ok := Latitude(s.Name); !ok {
			t.Errorf("no latitude entry for %s", s.Name)
		}
		if _, ok := Longitude(s.Name); !ok {
			t.Errorf("no longitude entry for %s", s.Name)
		}
	}
}

func TestFind(t *testing.T) {
	s, ok := Find("Texas")
	if !ok {
		t.Fatal("Find(Texas) not found")
	}
	if s.Capital != "Austin" {
		t.Errorf("Find(Texas).Capital = %q, want Austin", s.Capital)
	}

	if _, ok := Find("Puerto Rico"); ok {
		t.Error("Find(Puerto Rico) should not be found")
	}
}
