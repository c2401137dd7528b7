package flavor

import "testing"

func TestClassifyMultipleMembership(t *testing.T) {
	tokens := ToSet([]string{"rose", "roasted almond"})

	vec := Classify(tokens)
	if vec[DimFloralFruity] != 1 {
		t.Errorf("DimFloralFruity = %d, want 1", vec[DimFloralFruity])
	}
	// roasted almond 命中 roasted 與 almond，但同維度只計一次
	if vec[DimRoastedNutty] != 1 {
		t.Errorf("DimRoastedNutty = %d, want 1", vec[DimRoastedNutty])
	}
}

func TestClassifyTokenCountsForEveryMatchingDimension(t *testing.T) {
	// buttery smoke 同時命中烘焙堅果（smoke）與動物油脂（butter）
	vec := Classify(ToSet([]string{"buttery smoke"}))
	if vec[DimRoastedNutty] != 1 {
		t.Errorf("DimRoastedNutty = %d, want 1", vec[DimRoastedNutty])
	}
	if vec[DimAnimalicFatty] != 1 {
		t.Errorf("DimAnimalicFatty = %d, want 1", vec[DimAnimalicFatty])
	}
}

func TestClassifySequenceCountsDuplicates(t *testing.T) {
	vec := ClassifySequence([]string{"rose", "rose", "violet"})
	if vec[DimFloralFruity] != 3 {
		t.Errorf("DimFloralFruity = %d, want 3", vec[DimFloralFruity])
	}
}

func TestDominant(t *testing.T) {
	tests := []struct {
		name   string
		vec    Vector
		want   Dimension
		wantOK bool
	}{
		{
			name:   "單一最大值",
			vec:    Vector{DimGreenHerbal: 1, DimEarthyWoody: 3},
			want:   DimEarthyWoody,
			wantOK: true,
		},
		{
			name:   "並列時依宣告順序決勝",
			vec:    Vector{DimSpicyPungent: 2, DimFloralFruity: 2},
			want:   DimFloralFruity,
			wantOK: true,
		},
		{
			name:   "空向量",
			vec:    Vector{},
			wantOK: false,
		},
		{
			name:   "全零向量",
			vec:    Vector{DimGreenHerbal: 0},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.vec.Dominant()
			if ok != tt.wantOK {
				t.Fatalf("Dominant() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Dominant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDominantDeterministic(t *testing.T) {
	vec := Classify(ToSet([]string{"rose", "green", "pepper", "woody"}))
	first, _ := vec.Dominant()
	for i := 0; i < 50; i++ {
		got, _ := vec.Dominant()
		if got != first {
			t.Fatalf("Dominant() not deterministic: %v vs %v", got, first)
		}
	}
}

func TestDimensionLabels(t *testing.T) {
	for _, dim := range AllDimensions() {
		if dim.String() == "unknown" {
			t.Errorf("dimension %d has no key name", dim)
		}
		if dim.Label() == "未知" {
			t.Errorf("dimension %d has no label", dim)
		}
	}
}
