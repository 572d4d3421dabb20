// rosa
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/rosa-go/rosa"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("rosa", "Computes the final wind direction from three daily readings")

	input := parser.StringPositional(&argparse.Options{
		Help: "観測データのCSVファイル (.gz, http(s):// も可)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	columns := parser.StringList("c", "columns", &argparse.Options{
		Help: "風向の列名 (degree: 3列, vector: 東西風, 南北風の順に6列)"})

	mode := parser.Selector("", "mode", []string{rosa.ModeDegree, rosa.ModeVector}, &argparse.Options{
		Help: "入力列の種類 風向=degree(デフォルト), ベクトル風速=vector"})

	format := parser.Selector("f", "file", []string{"CSV", "ROSE"}, &argparse.Options{
		Help: "出力形式 CSV(dir_final列を追加) or ROSE(風配図の頻度表)"})

	workers := parser.Int("", "workers", &argparse.Options{
		Default: 0,
		Help:    "並列数 (0=CPU数)"})

	configPath := parser.String("", "config", &argparse.Options{
		Default: "",
		Help:    "設定ファイル (YAML)"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Help: "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}
	if *input == "" {
		fmt.Print(parser.Usage("input file is required"))
		os.Exit(2)
	}

	// 設定ファイル → コマンドライン引数の順に上書き
	cfg := rosa.DefaultConfig()
	if *configPath != "" {
		cfg, err = rosa.LoadConfig(*configPath)
		if err != nil {
			exitWithError(err)
		}
	}
	cfg = cfg.Override(*columns, *mode, *format, *logLevel, *workers)
	if err := cfg.Validate(); err != nil {
		exitWithError(err)
	}

	// ログレベル設定
	logger := logging.GetLogger("rosa")
	setLogLevel(logger, cfg.LogLevel)

	// 読み込み
	table, err := rosa.LoadTable(*input)
	if err != nil {
		exitWithError(err)
	}

	// 代表風向の計算
	dir_final, err := rosa.AppendDirFinal(table, cfg.Columns, cfg.Mode, cfg.Workers)
	if err != nil {
		exitWithError(err)
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if strings.ToUpper(cfg.Format) == "ROSE" {
		rosa.Frequencies(dir_final).ToCSV(buf)
	} else {
		if err := table.ToCSV(buf); err != nil {
			exitWithError(err)
		}
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("CSV保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), 0o644)
		if err != nil {
			exitWithError(err)
		}
	}

	logger.Infof("計算が終了しました")
}

func setLogLevel(logger logging.Logger, level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
