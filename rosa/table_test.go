package rosa

import (
	"compress/gzip"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTableCSV = `fecha,dir_viento_7:00,dir_viento_13:00,dir_viento_18:00
2020-01-01,350,10,15
2020-01-02,0,0,90
2020-01-03,,45,50
2020-01-04,40,50,9
`

func Test_ReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader(testTableCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []string{"fecha", "dir_viento_7:00", "dir_viento_13:00", "dir_viento_18:00"}, table.Header)

	col, err := table.Column("dir_viento_7:00")
	require.NoError(t, err)
	assert.Equal(t, 350.0, col[0])
	assert.Equal(t, 0.0, col[1])
	assert.True(t, math.IsNaN(col[2]))
	assert.Equal(t, 40.0, col[3])

	// 数値でない列は NaN
	col, err = table.Column("fecha")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(col[0]))

	_, err = table.Column("dir_viento_21:00")
	assert.Error(t, err)
}

func Test_ReadTable_Empty(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""))
	assert.Error(t, err)

	// ヘッダのみ
	table, err := ReadTable(strings.NewReader("a,b,c\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func Test_Table_AddColumn(t *testing.T) {
	table, err := ReadTable(strings.NewReader(testTableCSV))
	require.NoError(t, err)

	require.NoError(t, table.AddColumn("x", []float64{1, 2.5, math.NaN(), 360}))
	assert.Equal(t, "x", table.Header[4])
	assert.Equal(t, []string{"2020-01-01", "350", "10", "15", "1"}, table.Records[0])
	assert.Equal(t, "2.5", table.Records[1][4])
	assert.Equal(t, "NaN", table.Records[2][4])

	// 同名の列は上書き
	require.NoError(t, table.AddColumn("x", []float64{4, 3, 2, 1}))
	assert.Len(t, table.Header, 5)
	assert.Equal(t, "4", table.Records[0][4])

	assert.Error(t, table.AddColumn("y", []float64{1}))
}

// gzip圧縮されたファイルの読み込み
func Test_LoadTable_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viento.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(testTableCSV))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())
}

func Test_LoadTable_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/viento.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(testTableCSV))
	}))
	defer srv.Close()

	table, err := LoadTable(srv.URL + "/viento.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	_, err = LoadTable(srv.URL + "/missing.csv")
	assert.Error(t, err)
}

// 応答のないサーバからのダウンロードはタイムアウトする
func Test_LoadTable_HTTPTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(testTableCSV))
	}))
	defer srv.Close()

	assert.Equal(t, DownloadTimeout, httpClient.Timeout)

	saved := httpClient
	httpClient = &http.Client{Timeout: 50 * time.Millisecond}
	defer func() { httpClient = saved }()

	_, err := LoadTable(srv.URL + "/viento.csv")
	assert.Error(t, err)
}

func Test_LoadTable_NotFound(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
