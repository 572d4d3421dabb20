package rosa

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hhkbp2/go-logging"
)

var logger = logging.GetLogger("rosa")

// 観測データのダウンロードのタイムアウト
const DownloadTimeout = 60 * time.Second

var httpClient = &http.Client{Timeout: DownloadTimeout}

// CSVから読み取った観測データ
// 1行が1日分の観測値に相当する
type Table struct {
	Header  []string
	Records [][]string

	index map[string]int
}

// 観測データを読み込みます。
// path が http(s):// で始まる場合はダウンロードし、.gz で終わる場合は展開します。
func LoadTable(path string) (*Table, error) {
	var src io.ReadCloser
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		logger.Infof("観測データダウンロード %s", path)

		// Get the data
		resp, err := httpClient.Get(path)
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("download %s: unexpected status %s", path, resp.Status)
		}
		src = resp.Body
	} else {
		logger.Infof("観測データ読み込み: %s", path)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open table: %w", err)
		}
		src = f
	}
	defer src.Close()

	var r io.Reader = src
	if strings.HasSuffix(path, ".gz") {
		gf, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer gf.Close()
		r = gf
	}

	return ReadTable(r)
}

// ヘッダ行付きのCSVを読み込みます。
func ReadTable(r io.Reader) (*Table, error) {
	csvReader := csv.NewReader(r)

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("read table: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read table header: %w", err)
	}

	t := &Table{Header: header}
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read table row %d: %w", len(t.Records)+1, err)
		}
		t.Records = append(t.Records, row)
	}
	t.reindex()

	logger.Debugf("観測データ %d 行, %d 列", len(t.Records), len(t.Header))
	return t, nil
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		t.index[strings.TrimSpace(name)] = i
	}
}

// 行数
func (t *Table) Len() int {
	return len(t.Records)
}

// 列 name の値を数値として返します。
// 空欄や数値として読めない値は NaN になります。
func (t *Table) Column(name string) ([]float64, error) {
	if t.index == nil {
		t.reindex()
	}
	col, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}

	values := make([]float64, len(t.Records))
	for i, row := range t.Records {
		values[i] = parseFloatOrNaN(row[col])
	}
	return values, nil
}

// 列 name を末尾に追加します。同名の列がある場合は上書きします。
func (t *Table) AddColumn(name string, values []float64) error {
	if len(values) != len(t.Records) {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), len(t.Records))
	}
	if t.index == nil {
		t.reindex()
	}

	col, ok := t.index[name]
	if !ok {
		t.Header = append(t.Header, name)
		col = len(t.Header) - 1
		t.index[name] = col
	}
	for i, v := range values {
		cell := formatFloat(v)
		if col < len(t.Records[i]) {
			t.Records[i][col] = cell
		} else {
			t.Records[i] = append(t.Records[i], cell)
		}
	}
	return nil
}

func parseFloatOrNaN(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
