package rosa

import (
	"math"
	"sort"
)

//--------------------------------------
// 風配図の手順による代表風向の決定
//--------------------------------------

// 2つの風向の差がこの値以上の場合は平均を取らない [°]
const MaxAgreement = 90.0

// 3つの風向 angle_1, angle_2, angle_3 (例: 7時, 13時, 18時) から
// 代表風向とその8方位クラスを返す
//
// Returns:
//
//	(NaN, NaN): いずれかが欠測または0~360の範囲外
//	(0, 0):     2つ以上が静穏
//	(9, 9):     風向が不定、またはばらつきが大きい
func DegreeValue(angle_1 float64, angle_2 float64, angle_3 float64) (float64, Sector) {
	readings := [3]Reading{
		ClassifyReading(angle_1),
		ClassifyReading(angle_2),
		ClassifyReading(angle_3),
	}

	calm, undetermined := 0, 0
	valid := make([]float64, 0, 3)
	for _, r := range readings {
		switch r.Kind {
		case ReadingInvalid:
			return math.NaN(), SectorInvalid()
		case ReadingCalm:
			calm++
		case ReadingUndetermined:
			undetermined++
		default:
			valid = append(valid, r.Angle)
		}
	}

	switch {
	case calm > 1:
		return float64(SectorCalm), SectorCalm
	case calm == 1:
		if undetermined > 0 {
			return float64(SectorUndetermined), SectorUndetermined
		}
		return twoAngles(valid[0], valid[1])
	case undetermined > 1:
		return float64(SectorUndetermined), SectorUndetermined
	case undetermined == 1:
		return twoAngles(valid[0], valid[1])
	}

	return threeAngles(valid[0], valid[1], valid[2])
}

func twoAngles(angle_1 float64, angle_2 float64) (float64, Sector) {
	diff, mean := AngleDiffAndMean(angle_1, angle_2)
	if diff >= MaxAgreement {
		return float64(SectorUndetermined), SectorUndetermined
	}
	return mean, Discretize(mean)
}

// 2つの観測値の比較結果
type pairDiff struct {
	diff  float64
	mean  float64
	index [2]int // 比較した観測値の番号
}

func threeAngles(angle_1 float64, angle_2 float64, angle_3 float64) (float64, Sector) {
	angles := [3]float64{angle_1, angle_2, angle_3}

	pairs := make([]pairDiff, 0, 3)
	for _, idx := range [...][2]int{{0, 1}, {0, 2}, {1, 2}} {
		diff, mean := AngleDiffAndMean(angles[idx[0]], angles[idx[1]])
		pairs = append(pairs, pairDiff{diff, mean, idx})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].diff != pairs[j].diff {
			return pairs[i].diff < pairs[j].diff
		}
		return pairs[i].mean < pairs[j].mean
	})

	if pairs[0].diff >= MaxAgreement {
		return float64(SectorUndetermined), SectorUndetermined
	}

	// 差が同じ組が2つある場合は、両方に含まれる観測値をそのまま採用
	if pairs[0].diff == pairs[1].diff {
		angle := angles[sharedIndex(pairs[0].index, pairs[1].index)]
		return angle, Discretize(angle)
	}

	return pairs[0].mean, Discretize(pairs[0].mean)
}

// 2つの組 p, q に共通する観測値の番号
// 観測値は3つなので、異なる2組は必ず1つだけ共有する
func sharedIndex(p [2]int, q [2]int) int {
	if p[0] == q[0] || p[0] == q[1] {
		return p[0]
	}
	return p[1]
}
