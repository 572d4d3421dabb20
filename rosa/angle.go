package rosa

import (
	"math"
)

//--------------------------------------
// 角度の比較と8方位への離散化
//--------------------------------------

// 8方位の風向クラス
// 北は0ではなく360で表す(0は静穏に予約済み)
type Sector float64

const (
	SectorCalm         Sector = 0 // 静穏(無風)
	SectorUndetermined Sector = 9 // 風向のばらつきが大きく決定できない
	SectorNE           Sector = 45
	SectorE            Sector = 90
	SectorSE           Sector = 135
	SectorS            Sector = 180
	SectorSW           Sector = 225
	SectorW            Sector = 270
	SectorNW           Sector = 315
	SectorN            Sector = 360
)

// 欠測・範囲外を表すクラス(NaN)
func SectorInvalid() Sector {
	return Sector(math.NaN())
}

// NaNでないかどうか
func (s Sector) IsValid() bool {
	return !math.IsNaN(float64(s))
}

func (s Sector) String() string {
	switch {
	case math.IsNaN(float64(s)):
		return "NaN"
	case s == SectorCalm:
		return "CALM"
	case s == SectorUndetermined:
		return "UNDET"
	case s == SectorN:
		return "N"
	case s == SectorNE:
		return "NE"
	case s == SectorE:
		return "E"
	case s == SectorSE:
		return "SE"
	case s == SectorS:
		return "S"
	case s == SectorSW:
		return "SW"
	case s == SectorW:
		return "W"
	case s == SectorNW:
		return "NW"
	}
	return "?"
}

// 2つの角度 angle_1, angle_2 (0~360) の最小の差 diff (0~180) と、
// その短い方の弧の中間の角度 mean (0より大きく360以下) を返す
func AngleDiffAndMean(angle_1 float64, angle_2 float64) (diff float64, mean float64) {
	min_angle := math.Min(angle_1, angle_2)
	diff = math.Abs(angle_1 - angle_2)
	mean = min_angle + diff/2

	// 0/360の境界をまたぐ場合は反対側へ
	if diff > 180 {
		mean += 180
		diff = 360 - diff
	}

	mean = math.Mod(mean, 360)
	if mean == 0 {
		mean = 360
	}

	return diff, mean
}

// 8方位の境界(上端を含む)
var sectorBounds = [...]struct {
	upper  float64
	sector Sector
}{
	{22.5, SectorN},
	{67.5, SectorNE},
	{112.5, SectorE},
	{157.5, SectorSE},
	{202.5, SectorS},
	{247.5, SectorSW},
	{292.5, SectorW},
	{337.5, SectorNW},
	{360, SectorN},
}

// 角度 angle (0より大きく360以下) を8方位に離散化する
// 範囲外の角度は SectorInvalid を返す
func Discretize(angle float64) Sector {
	if !(angle > 0 && angle <= 360) {
		return SectorInvalid()
	}
	for _, b := range sectorBounds {
		if angle <= b.upper {
			return b.sector
		}
	}
	return SectorInvalid()
}
