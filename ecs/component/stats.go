package component

// PrimaryStat is a bounded resource such as health. Current never exceeds Max.
type PrimaryStat struct {
	Current uint32
	Max     uint32
}

// NewPrimaryStat clamps current into [0, max].
func NewPrimaryStat(current, max uint32) PrimaryStat {
	if current > max {
		current = max
	}
	return PrimaryStat{Current: current, Max: max}
}

// AsPercent returns Current/Max in [0, 1]. A zero Max reads as empty.
func (s PrimaryStat) AsPercent() float64 {
	if s.Max == 0 {
		return 0
	}
	if s.Current >= s.Max {
		return 1
	}
	return float64(s.Current) / float64(s.Max)
}

type PlayerStats struct {
	Health     PrimaryStat
	Mana       PrimaryStat
	Experience PrimaryStat
	Level      uint32
}

func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		Health:     PrimaryStat{Current: 50, Max: 50},
		Mana:       PrimaryStat{Current: 20, Max: 20},
		Experience: PrimaryStat{Current: 0, Max: 20},
		Level:      1,
	}
}

var PlayerStatsComponent = NewComponent[PlayerStats]()
