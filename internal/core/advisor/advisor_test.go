package advisor

import (
	"strings"
	"testing"

	"flavor-lab/internal/core/catalog"
)

func ingredient(t *testing.T, id int, name, category, flavors string, molecules int) *catalog.Ingredient {
	t.Helper()
	c, _ := catalog.Load([]catalog.Row{
		{ID: id, Name: name, Category: category, Flavors: flavors, MoleculeCount: molecules},
	}, false, nil)
	item, ok := c.GetByID(id)
	if !ok {
		t.Fatalf("failed to build ingredient %s", name)
	}
	return item
}

func TestDetectRisks(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   int
	}{
		{"無風險", []string{"sweet", "green"}, 0},
		{"單一命中", []string{"sulfurous"}, 1},
		{"多 token 命中", []string{"sulfurous", "fishy"}, 2},
		{"單一 token 多重命中", []string{"burnt sulfurous"}, 2},
		{"空輸入", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := DetectRisks(tt.tokens)
			if len(findings) != tt.want {
				t.Errorf("DetectRisks(%v) = %d findings, want %d", tt.tokens, len(findings), tt.want)
			}
		})
	}
}

func TestDetectRisksScanOrder(t *testing.T) {
	findings := DetectRisks([]string{"fishy", "sulfurous"})
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	// 依 token 掃描順序回報
	if findings[0].Token != "fishy" || findings[1].Token != "sulfurous" {
		t.Errorf("findings out of scan order: %v", findings)
	}
	if findings[0].Level != RiskWarning {
		t.Errorf("fishy level = %v, want warning", findings[0].Level)
	}
	if findings[1].Level != RiskDanger {
		t.Errorf("sulfur level = %v, want danger", findings[1].Level)
	}
}

func TestClassifyPairResonance(t *testing.T) {
	a := ingredient(t, 1, "Rose Water", "Flavoring", "rose,floral", 10)
	b := ingredient(t, 2, "Jasmine Tea", "Beverage", "jasmine,floral,tea", 12)

	// 兩者主維度不同：茶含 tea（草本青綠），但 floral 計數持平時
	// 花果香維度仍可能勝出，直接驗證兩種可能的一致性
	result := ClassifyPair(a, b)
	dimA, _ := a.DominantDimension()
	dimB, _ := b.DominantDimension()
	if dimA == dimB && result.Type != TypeResonance {
		t.Errorf("equal dominant dimensions should classify as resonance, got %s", result.Type)
	}
	if dimA != dimB && result.Type != TypeContrast {
		t.Errorf("different dominant dimensions should classify as contrast, got %s", result.Type)
	}
	if result.Explanation == "" || result.Suggestion == "" {
		t.Error("expected templated explanation and suggestion")
	}
}

func TestClassifyPairContrast(t *testing.T) {
	floral := ingredient(t, 1, "Rose", "Flower", "rose,floral,violet", 10)
	smoky := ingredient(t, 2, "Smoked Malt", "Grain", "smoky,roasted,malt", 20)

	result := ClassifyPair(floral, smoky)
	if result.Type != TypeContrast {
		t.Errorf("type = %s, want contrast", result.Type)
	}
}

func TestAnalyzeDirectionBands(t *testing.T) {
	tests := []struct {
		name     string
		flavorsA string
		flavorsB string
		want     Direction
	}{
		{
			name:     "維度完全重疊為共鳴",
			flavorsA: "rose,floral",
			flavorsB: "jasmine,fruity",
			want:     DirectionHarmony,
		},
		{
			name:     "維度完全不同為對比",
			flavorsA: "rose,floral",
			flavorsB: "smoky,roasted",
			want:     DirectionContrast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ingredient(t, 1, "A", "X", tt.flavorsA, 10)
			b := ingredient(t, 2, "B", "Y", tt.flavorsB, 10)
			got := AnalyzeDirection(a, b)
			if got.Direction != tt.want {
				t.Errorf("Direction = %s, want %s (similarity %v)", got.Direction, tt.want, got.Similarity)
			}
		})
	}
}

func TestDetermineRolesEqual(t *testing.T) {
	a := ingredient(t, 1, "A", "X", "rose,floral", 10)
	b := ingredient(t, 2, "B", "Y", "jasmine,fruity", 12)

	roles := DetermineRoles(a, b)
	if !roles.Equal {
		t.Errorf("expected equal roles, got %+v", roles)
	}
	if roles.Ratio != "1:1" {
		t.Errorf("Ratio = %q, want 1:1", roles.Ratio)
	}
}

func TestDetermineRolesPrimarySecondary(t *testing.T) {
	// 複雜度與分子數都高出許多的一方是主基調
	rich := ingredient(t, 1, "Truffle", "Fungus", "earthy,musk,roasted,woody", 200)
	plain := ingredient(t, 2, "Rice", "Grain", "bread", 10)

	roles := DetermineRoles(rich, plain)
	if roles.Equal {
		t.Fatal("expected primary/secondary roles")
	}
	if roles.Primary == nil || roles.Primary.ID != 1 {
		t.Errorf("Primary = %v, want Truffle", roles.Primary)
	}
	if roles.Ratio != "3:1" {
		t.Errorf("Ratio = %q, want 3:1", roles.Ratio)
	}
}

func TestFindSynergies(t *testing.T) {
	a := ingredient(t, 1, "Chocolate", "Confection", "sweet,cocoa,roasted", 30)
	b := ingredient(t, 2, "Coffee", "Beverage", "bitter,roasted,nutty", 40)

	synergies := FindSynergies(a, b)
	if len(synergies) == 0 {
		t.Fatal("expected synergies for sweet/bitter and roasted/nutty")
	}
	// 依強度遞減排序
	for i := 1; i < len(synergies); i++ {
		if synergies[i].Strength > synergies[i-1].Strength {
			t.Errorf("synergies not sorted at %d", i)
		}
	}
}

func TestFindSynergiesBidirectional(t *testing.T) {
	sweet := ingredient(t, 1, "Honey", "Sweetener", "sweet", 5)
	bitter := ingredient(t, 2, "Endive", "Vegetable", "bitter", 5)

	forward := FindSynergies(sweet, bitter)
	backward := FindSynergies(bitter, sweet)
	if len(forward) != 1 || len(backward) != 1 {
		t.Fatalf("sweet/bitter synergy should hold in both directions: %d, %d", len(forward), len(backward))
	}
}

func TestChefInsightsScoreTiers(t *testing.T) {
	a := ingredient(t, 1, "A", "X", "sweet", 5)
	b := ingredient(t, 2, "B", "Y", "sour", 5)

	tests := []struct {
		score float64
		want  string
	}{
		{85, "優秀"},
		{60, "可行"},
		{40, "挑戰"},
		{10, "實驗"},
	}
	for _, tt := range tests {
		tips := ChefInsights(a, b, tt.score)
		if len(tips) == 0 {
			t.Fatalf("score %v: expected tips", tt.score)
		}
		if !strings.Contains(tips[0], tt.want) {
			t.Errorf("score %v: first tip %q should mention %q", tt.score, tips[0], tt.want)
		}
	}
}

func TestChefInsightsTemperatureTip(t *testing.T) {
	volatile := ingredient(t, 1, "Mint", "Herb", "mint,fresh,citrus", 10)
	heavy := ingredient(t, 2, "Mushroom", "Fungus", "mushroom,earthy,roasted", 20)

	tips := ChefInsights(volatile, heavy, 50)
	found := false
	for _, tip := range tips {
		if strings.Contains(tip, "起鍋前") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected temperature handling tip, got %v", tips)
	}
}

func TestChefInsightsRatioTip(t *testing.T) {
	strong := ingredient(t, 1, "Strong", "X", "a,b,c,d,e,f,g,h,i", 10)
	weak := ingredient(t, 2, "Weak", "Y", "a,b,c", 10)

	tips := ChefInsights(strong, weak, 50)
	found := false
	for _, tip := range tips {
		if strings.Contains(tip, "用量") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected usage-ratio tip for 3x strength gap, got %v", tips)
	}
}

func TestChefInsightsNoRatioTipBelowThreshold(t *testing.T) {
	a := ingredient(t, 1, "A", "X", "a,b,c,d", 10)
	b := ingredient(t, 2, "B", "Y", "a,b,c", 10)

	tips := ChefInsights(a, b, 50)
	for _, tip := range tips {
		if strings.Contains(tip, "用量") {
			t.Errorf("unexpected ratio tip for mild gap: %q", tip)
		}
	}
}
