package progression

// RankBand is one experience interval in a RankTable. Max is
// exclusive; a nil Max marks the unbounded top band.
type RankBand struct {
	Name     string
	Min      int
	Max      *int
	StyleKey string
	ImageRef string
}

// RankTable maps total experience onto a named rank plus a tier inside
// that rank. Bands must be sorted by Min, start at 0, and be
// contiguous; the last band is unbounded.
type RankTable struct {
	Bands []RankBand
	// Tiers is the number of sub-steps inside each bounded band. The
	// unbounded top band always resolves to the highest tier.
	Tiers int
}

func intPtr(v int) *int { return &v }

// DefaultRankTable is the shipped progression ladder.
func DefaultRankTable() RankTable {
	return RankTable{
		Tiers: 3,
		Bands: []RankBand{
			{Name: "Novato", Min: 0, Max: intPtr(100), StyleKey: "novato", ImageRef: "avatars/novato.png"},
			{Name: "Aprendiz", Min: 100, Max: intPtr(500), StyleKey: "aprendiz", ImageRef: "avatars/aprendiz.png"},
			{Name: "Profesional", Min: 500, Max: intPtr(2000), StyleKey: "profesional", ImageRef: "avatars/profesional.png"},
			{Name: "Experto", Min: 2000, Max: intPtr(5000), StyleKey: "experto", ImageRef: "avatars/experto.png"},
			{Name: "Leyenda", Min: 5000, Max: intPtr(10000), StyleKey: "leyenda", ImageRef: "avatars/leyenda.png"},
			{Name: "Leyenda Máxima", Min: 10000, Max: nil, StyleKey: "leyenda-maxima", ImageRef: "avatars/leyenda_maxima.png"},
		},
	}
}

// Resolve returns the band and tier for a total experience value.
// Negative experience clamps to the first band's floor.
func (t RankTable) Resolve(experience int) (RankBand, int) {
	if experience < 0 {
		experience = 0
	}
	band := t.Bands[len(t.Bands)-1]
	for _, b := range t.Bands {
		if experience >= b.Min && (b.Max == nil || experience < *b.Max) {
			band = b
			break
		}
	}
	if band.Max == nil {
		return band, t.Tiers
	}
	span := *band.Max - band.Min
	if span <= 0 {
		return band, 1
	}
	// Proportional split: each tier covers an equal slice of the band.
	tier := (experience-band.Min)*t.Tiers/span + 1
	if tier > t.Tiers {
		tier = t.Tiers
	}
	return band, tier
}
