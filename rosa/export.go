package rosa

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSV形式
// 読み込んだ列に dir_final などの追加列を含めて出力します。
func (t *Table) ToCSV(buf *bytes.Buffer) error {
	w := csv.NewWriter(buf)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(t.Records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// 風配図の頻度表 (CSV形式)
//
// Note:
//
//	出現率は欠測を含む全行数に対する割合です。
func (f RoseFrequency) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("sector")
	buf.WriteString(",name")
	buf.WriteString(",count")
	buf.WriteString(",ratio")
	buf.WriteString("\n")

	for i, s := range f.Sectors {
		buf.WriteString(strconv.FormatFloat(float64(s), 'f', -1, 64))
		buf.WriteString(",")
		buf.WriteString(s.String())
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(f.Count[i], 'f', -1, 64))
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(f.Ratio[i], 'f', 4, 64))
		buf.WriteString("\n")
	}
}
