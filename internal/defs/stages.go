// internal/defs/stages.go
package defs

// Library — все определения мишеней, боссов и ножей.
// Индекс мишени в Targets соответствует стадии (стадия 1 — индекс 0).
type Library struct {
	Targets []TargetDefinition `yaml:"targets"`
	Bosses  []BossDefinition   `yaml:"bosses"`
	Skins   []KnifeSkin        `yaml:"skins"`
}

// Skin ищет нож по ID; при неизвестном ID возвращает первый.
func (l *Library) Skin(id string) KnifeSkin {
	for _, s := range l.Skins {
		if s.ID == id {
			return s
		}
	}
	if len(l.Skins) == 0 {
		return KnifeSkin{ID: "default", Name: "Knife", Blade: "#d8dde6", Handle: "#6b4226"}
	}
	return l.Skins[0]
}

// Default возвращает встроенный набор стадий, который используется,
// если файл определений не задан.
func Default() *Library {
	return &Library{
		Targets: []TargetDefinition{
			{ID: "WOOD_1", TotalKnife: 6, Rotation: Rotation{Speed: 90}, Apples: []float64{45}, Color: "#a0703c"},
			{ID: "WOOD_2", TotalKnife: 7, Rotation: Rotation{Speed: -110}, Obstacles: []float64{0}, Color: "#a0703c"},
			{ID: "WOOD_3", TotalKnife: 7, Rotation: Rotation{Speed: 120}, Obstacles: []float64{0, 180}, Apples: []float64{90}, Color: "#9a6a36"},
			{ID: "WOOD_4", TotalKnife: 8, Rotation: Rotation{Speed: 140, ReverseEvery: 2.5}, Color: "#9a6a36"},
			{ID: "WOOD_5", TotalKnife: 8, Rotation: Rotation{Speed: 100}, Color: "#8e5f2e"}, // стадия 5 — босс
			{ID: "LEMON_1", TotalKnife: 8, Rotation: Rotation{Speed: -150}, Obstacles: []float64{60, 240}, Color: "#e8c547"},
			{ID: "LEMON_2", TotalKnife: 9, Rotation: Rotation{Speed: 160, ReverseEvery: 2}, Apples: []float64{150}, Color: "#e8c547"},
			{ID: "LEMON_3", TotalKnife: 9, Rotation: Rotation{Speed: -170}, Obstacles: []float64{0, 120, 240}, Color: "#dcb93c"},
			{ID: "LEMON_4", TotalKnife: 10, Rotation: Rotation{Speed: 190, ReverseEvery: 1.6}, Color: "#dcb93c"},
			{ID: "LEMON_5", TotalKnife: 10, Rotation: Rotation{Speed: 120}, Color: "#d0ae33"}, // стадия 10 — босс
			{ID: "ORANGE_1", TotalKnife: 10, Rotation: Rotation{Speed: -200}, Obstacles: []float64{30, 210}, Apples: []float64{120}, Color: "#f08a24"},
			{ID: "ORANGE_2", TotalKnife: 11, Rotation: Rotation{Speed: 210, ReverseEvery: 1.4}, Obstacles: []float64{90}, Color: "#f08a24"},
			{ID: "ORANGE_3", TotalKnife: 11, Rotation: Rotation{Speed: -220, ReverseEvery: 1.8}, Obstacles: []float64{0, 90, 180}, Color: "#e27d1a"},
			{ID: "ORANGE_4", TotalKnife: 12, Rotation: Rotation{Speed: 240, ReverseEvery: 1.2}, Apples: []float64{45, 225}, Color: "#e27d1a"},
			{ID: "ORANGE_5", TotalKnife: 12, Rotation: Rotation{Speed: -260, ReverseEvery: 1.0}, Obstacles: []float64{0, 72, 144, 216}, Color: "#d47012"},
		},
		Bosses: []BossDefinition{
			{Name: "Cheese", Target: TargetDefinition{ID: "BOSS_CHEESE", TotalKnife: 9, Rotation: Rotation{Speed: 180, ReverseEvery: 1.5}, Color: "#f5d547"}},
			{Name: "Tomato", Target: TargetDefinition{ID: "BOSS_TOMATO", TotalKnife: 10, Rotation: Rotation{Speed: -200, ReverseEvery: 1.2}, Apples: []float64{0}, Color: "#e03c31"}},
			{Name: "Sushi", Target: TargetDefinition{ID: "BOSS_SUSHI", TotalKnife: 11, Rotation: Rotation{Speed: 220, ReverseEvery: 1.0}, Obstacles: []float64{90, 270}, Color: "#f2f2f2"}},
			{Name: "Donut", Target: TargetDefinition{ID: "BOSS_DONUT", TotalKnife: 12, Rotation: Rotation{Speed: -240, ReverseEvery: 0.8}, Color: "#d46a9f"}},
		},
		Skins: []KnifeSkin{
			{ID: "default", Name: "Knife", Blade: "#d8dde6", Handle: "#6b4226"},
			{ID: "dagger", Name: "Dagger", Blade: "#b8c4d6", Handle: "#2f2f3a"},
			{ID: "cleaver", Name: "Cleaver", Blade: "#e6e6e6", Handle: "#8b0000"},
			{ID: "golden", Name: "Golden", Blade: "#ffd700", Handle: "#5a3e1b"},
		},
	}
}
