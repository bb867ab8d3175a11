package emotion

import "testing"

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 12 {
		t.Fatalf("len(All()) = %d, want 12", len(all))
	}
	if all[0] != CatharticSadness || all[11] != AweWonder {
		t.Errorf("All() endpoints = %q..%q, want cathartic_sadness..awe_wonder", all[0], all[11])
	}
	for i, c := range all {
		if c.Index() != i {
			t.Errorf("%q.Index() = %d, want %d", c, c.Index(), i)
		}
	}
}

func TestCategoryHelpers(t *testing.T) {
	if Category("bogus").Valid() {
		t.Error("bogus category reported valid")
	}
	if got := Category("bogus").Index(); got != -1 {
		t.Errorf("Index() = %d, want -1", got)
	}
	if got := IntellectualStimulation.Phrase(); got != "intellectual stimulation" {
		t.Errorf("Phrase() = %q", got)
	}
	if got := TriumphantInspired.DisplayName(); got != "Triumphant & Inspired" {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"pure_joy", PureJoy, false},
		{"  Awe_Wonder ", AweWonder, false},
		{"happiness", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].ExampleMovies[0] = "changed"
	if again := Categories(); again[0].ExampleMovies[0] == "changed" {
		t.Error("Categories() exposed internal slice")
	}
}
