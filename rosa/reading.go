package rosa

import "math"

// 観測値の種別
type ReadingKind int

const (
	ReadingInvalid      ReadingKind = iota // 欠測または0~360の範囲外
	ReadingCalm                            // 静穏 (0)
	ReadingUndetermined                    // 風向不定 (9)
	ReadingValid                           // 通常の風向
)

func (k ReadingKind) String() string {
	switch k {
	case ReadingCalm:
		return "calm"
	case ReadingUndetermined:
		return "undetermined"
	case ReadingValid:
		return "valid"
	}
	return "invalid"
}

// 風向の観測値
// 数値の0と9は観測データ上の符号として扱い、角度としては扱わない
type Reading struct {
	Kind  ReadingKind
	Angle float64 // Kind == ReadingValid のときのみ有効
}

// 観測値 angle を分類する
func ClassifyReading(angle float64) Reading {
	switch {
	case math.IsNaN(angle) || angle < 0 || angle > 360:
		return Reading{Kind: ReadingInvalid, Angle: math.NaN()}
	case angle == float64(SectorCalm):
		return Reading{Kind: ReadingCalm}
	case angle == float64(SectorUndetermined):
		return Reading{Kind: ReadingUndetermined}
	}
	return Reading{Kind: ReadingValid, Angle: angle}
}
