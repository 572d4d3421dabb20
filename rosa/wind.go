package rosa

import (
	"math"
)

//--------------------------------------
// 風速風向計算
//--------------------------------------

// ベクトル風速 UGRD (東西のベクトル成分), VGRD (南北のベクトル成分) から
// 風向 (0より大きく360以下, 北=360) を計算する
// 風速が0の場合は静穏 (0) を返す
func DegreeFromVector(UGRD float64, VGRD float64) float64 {
	if math.IsNaN(UGRD) || math.IsNaN(VGRD) {
		return math.NaN()
	}

	// 風速
	// 三平方の定理により、東西、南北のベクトル成分から風速を計算
	if WindSpeed(UGRD, VGRD) == 0 {
		return float64(SectorCalm)
	}

	// 風向
	// 東西、南北のベクトル成分から風向(吹いてくる方向)を計算
	w_dir := radToDegree(math.Atan2(UGRD, VGRD)) + 180

	// 丸め誤差で0以下または360超になるのは北風のみ
	if w_dir <= 0 || w_dir > 360 {
		w_dir = 360
	}

	return w_dir
}

// ベクトル風速から風速を計算
func WindSpeed(UGRD float64, VGRD float64) float64 {
	return math.Hypot(UGRD, VGRD)
}

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
