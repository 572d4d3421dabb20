package rosa

import (
	"fmt"
	"runtime"
)

// 7時, 13時, 18時の風向の列名
var DefaultColumns = []string{"dir_viento_7:00", "dir_viento_13:00", "dir_viento_18:00"}

// 代表風向の列名
const DirFinalName = "dir_final"

// 入力列の種類
const (
	ModeDegree = "degree" // 風向 [°] 3列
	ModeVector = "vector" // 東西風, 南北風 [m/s] の組 3組(6列)
)

// 表 t の3つの風向の列 colnames から、行ごとの代表風向の8方位クラスを計算します。
// workers が0以下の場合は GOMAXPROCS 個のゴルーチンで処理します。
func DirFinalColumn(t *Table, colnames []string, workers int) ([]Sector, error) {
	if len(colnames) != 3 {
		return nil, fmt.Errorf("need 3 direction columns, got %d", len(colnames))
	}

	var angles [3][]float64
	for i, name := range colnames {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		angles[i] = col
	}

	return DirFinal(angles[0], angles[1], angles[2], workers)
}

// 表 t のベクトル風速の列 colnames (UGRD1, VGRD1, UGRD2, VGRD2, UGRD3, VGRD3) から、
// 行ごとの代表風向の8方位クラスを計算します。
func VectorDirFinalColumn(t *Table, colnames []string, workers int) ([]Sector, error) {
	if len(colnames) != 6 {
		return nil, fmt.Errorf("need 3 pairs of vector columns, got %d columns", len(colnames))
	}

	var angles [3][]float64
	for i := 0; i < 3; i++ {
		UGRD, err := t.Column(colnames[2*i])
		if err != nil {
			return nil, err
		}
		VGRD, err := t.Column(colnames[2*i+1])
		if err != nil {
			return nil, err
		}

		angles[i] = make([]float64, len(UGRD))
		for j := range UGRD {
			angles[i][j] = DegreeFromVector(UGRD[j], VGRD[j])
		}
	}

	return DirFinal(angles[0], angles[1], angles[2], workers)
}

type sectorsAndIndex struct {
	Start   int
	Sectors []Sector
}

// 風向の系列 angles_1, angles_2, angles_3 の各行に DegreeValue を適用し、
// 8方位クラスのみを返します。行ごとの計算は独立しているため分割して並列に処理します。
// 3つの系列の長さが異なる場合はエラーを返します。
func DirFinal(angles_1 []float64, angles_2 []float64, angles_3 []float64, workers int) ([]Sector, error) {
	n := len(angles_1)
	if len(angles_2) != n || len(angles_3) != n {
		return nil, fmt.Errorf("direction series differ in length: %d, %d, %d", n, len(angles_2), len(angles_3))
	}
	if n == 0 {
		return []Sector{}, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	c := make(chan sectorsAndIndex, workers)
	jobs := 0
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		jobs++
		go func(start, end int) {
			sectors := make([]Sector, end-start)
			for i := start; i < end; i++ {
				_, sectors[i-start] = DegreeValue(angles_1[i], angles_2[i], angles_3[i])
			}
			c <- sectorsAndIndex{start, sectors}
		}(start, end)
	}

	dir_final := make([]Sector, n)
	for i := 0; i < jobs; i++ {
		ret := <-c
		copy(dir_final[ret.Start:], ret.Sectors)
	}
	logger.Debugf("代表風向の計算完了 %d 行 (%d 分割)", n, jobs)

	return dir_final, nil
}

// 表 t に代表風向の列 dir_final を追加します。
func AppendDirFinal(t *Table, colnames []string, mode string, workers int) ([]Sector, error) {
	var dir_final []Sector
	var err error
	switch mode {
	case ModeDegree, "":
		dir_final, err = DirFinalColumn(t, colnames, workers)
	case ModeVector:
		dir_final, err = VectorDirFinalColumn(t, colnames, workers)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(dir_final))
	for i, s := range dir_final {
		values[i] = float64(s)
	}
	if err := t.AddColumn(DirFinalName, values); err != nil {
		return nil, err
	}
	return dir_final, nil
}
