package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"flavor-lab/internal/pkg/common"

	"go.uber.org/zap"
)

// Row 資料集的一列原始資料
type Row struct {
	ID            int
	Name          string
	Category      string
	Flavors       string // 雙層分隔符的風味欄位
	MoleculeCount int
}

// 欄位名稱。flavors 為主要欄位，缺漏時退回 flavor_profiles。
const (
	columnID             = "id"
	columnName           = "name"
	columnCategory       = "category"
	columnFlavors        = "flavors"
	columnFlavorProfiles = "flavor_profiles"
	columnMolecules      = "molecules_count"
)

// ReadCSVFile 讀取資料集檔案。檔案完全無法開啟視為致命錯誤；
// 個別欄位缺漏的列只會被跳過並計數（部分成功語義）。
func ReadCSVFile(path string) ([]Row, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV 從 reader 解析資料列，回傳有效列與跳過的列數
func ReadCSV(r io.Reader) ([]Row, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 容忍欄位數不一的列

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read dataset header: %w", err)
	}

	// 建立欄位索引
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{columnID, columnName, columnCategory} {
		if _, ok := index[required]; !ok {
			return nil, 0, fmt.Errorf("dataset missing required column %q", required)
		}
	}

	var rows []Row
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// 壞掉的列不讓整體載入失敗
			skipped++
			continue
		}

		row, ok := parseRecord(record, index)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	if skipped > 0 {
		common.LogWarn("資料集存在無效列",
			zap.Int("跳過列數", skipped),
			zap.Int("有效列數", len(rows)),
		)
	}

	return rows, skipped, nil
}

// parseRecord 解析單列。缺少必要欄位或無任何風味欄位時回傳 false。
func parseRecord(record []string, index map[string]int) (Row, bool) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	idText := field(columnID)
	name := field(columnName)
	category := field(columnCategory)
	if idText == "" || name == "" || category == "" {
		return Row{}, false
	}

	id, err := strconv.Atoi(idText)
	if err != nil {
		return Row{}, false
	}

	// 主要風味欄位缺漏時退回備用欄位
	flavors := field(columnFlavors)
	if flavors == "" {
		flavors = field(columnFlavorProfiles)
	}
	if flavors == "" {
		return Row{}, false
	}

	molecules := 0
	if text := field(columnMolecules); text != "" {
		if n, err := strconv.Atoi(text); err == nil {
			molecules = n
		}
	}

	return Row{
		ID:            id,
		Name:          name,
		Category:      category,
		Flavors:       flavors,
		MoleculeCount: molecules,
	}, true
}
