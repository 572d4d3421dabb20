package rosa

import (
	"gonum.org/v1/gonum/floats"
)

// 風配図の集計順
var RoseSectors = []Sector{
	SectorN, SectorNE, SectorE, SectorSE, SectorS, SectorSW, SectorW, SectorNW,
	SectorCalm, SectorUndetermined,
}

// 8方位クラスごとの出現回数と出現率
// Count, Ratio の並びは RoseSectors に欠測 (NaN) を加えたもの
type RoseFrequency struct {
	Sectors []Sector
	Count   []float64
	Ratio   []float64
	Total   int
}

// 代表風向の8方位クラス dir_final から風配図の頻度を集計します。
func Frequencies(dir_final []Sector) RoseFrequency {
	sectors := append(append([]Sector{}, RoseSectors...), SectorInvalid())
	count := make([]float64, len(sectors))

	invalid := len(sectors) - 1
	for _, s := range dir_final {
		k := invalid
		for i, rs := range RoseSectors {
			if s == rs {
				k = i
				break
			}
		}
		count[k]++
	}

	ratio := make([]float64, len(count))
	if total := floats.Sum(count); total > 0 {
		floats.ScaleTo(ratio, 1/total, count)
	}

	return RoseFrequency{
		Sectors: sectors,
		Count:   count,
		Ratio:   ratio,
		Total:   len(dir_final),
	}
}
