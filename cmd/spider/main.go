// flavor-lab 資料抓取工具。一次性的離線 ETL：逐一抓取
// FlavorDB2 的食材條目，輸出配對引擎可讀的 CSV 資料集。
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"flavor-lab/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://cosylab.iiitd.edu.in/flavordb2/api"

// entity FlavorDB2 條目回應中用得到的欄位
type entity struct {
	Name      string     `json:"entity_alias_readable"`
	Category  string     `json:"category_readable"`
	Molecules []molecule `json:"molecules"`
}

type molecule struct {
	FlavorProfile string `json:"flavor_profile"`
}

func main() {
	var (
		startID = flag.Int("start", 1, "起始條目 ID")
		endID   = flag.Int("end", 10, "結束條目 ID（含）")
		output  = flag.String("out", "flavordb_data.csv", "輸出 CSV 路徑")
		pause   = flag.Duration("pause", time.Second, "每次請求之間的間隔")
	)
	flag.Parse()

	if err := common.InitLogger("info"); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	if *startID < 1 || *endID < *startID {
		common.LogFatal("無效的抓取範圍",
			zap.Int("start", *startID),
			zap.Int("end", *endID),
		)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)

	file, err := os.Create(*output)
	if err != nil {
		common.LogFatal("無法建立輸出檔案", zap.String("path", *output), zap.Error(err))
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"id", "name", "category", "flavors", "molecules_count"}); err != nil {
		common.LogFatal("寫入標頭失敗", zap.Error(err))
	}

	common.LogInfo("抓取任務開始",
		zap.Int("start", *startID),
		zap.Int("end", *endID),
		zap.String("output", *output),
	)

	fetched, skipped := 0, 0
	for id := *startID; id <= *endID; id++ {
		row, ok := fetchEntity(client, id)
		if !ok {
			skipped++
		} else {
			if err := writer.Write(row); err != nil {
				common.LogFatal("寫入資料列失敗", zap.Int("id", id), zap.Error(err))
			}
			fetched++
		}

		// 放慢腳步，避免對資料來源造成壓力
		if id < *endID {
			time.Sleep(*pause)
		}
	}

	common.LogInfo("抓取任務完成",
		zap.Int("成功筆數", fetched),
		zap.Int("跳過筆數", skipped),
		zap.String("output", *output),
	)
}

// fetchEntity 抓取單一條目並整理成 CSV 列
func fetchEntity(client *resty.Client, id int) ([]string, bool) {
	resp, err := client.R().Get(fmt.Sprintf("/entity/%d", id))
	if err != nil {
		common.LogWarn("抓取失敗", zap.Int("id", id), zap.Error(err))
		return nil, false
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogDebug("條目無資料", zap.Int("id", id), zap.Int("status", resp.StatusCode()))
		return nil, false
	}

	var e entity
	if err := json.Unmarshal(resp.Body(), &e); err != nil {
		common.LogWarn("回應解析失敗", zap.Int("id", id), zap.Error(err))
		return nil, false
	}
	if e.Name == "" {
		return nil, false
	}

	flavors := collectFlavors(e.Molecules)
	if flavors == "" {
		common.LogDebug("條目無風味資料", zap.Int("id", id), zap.String("name", e.Name))
		return nil, false
	}

	common.LogInfo("成功抓取", zap.Int("id", id), zap.String("name", e.Name))
	return []string{
		strconv.Itoa(id),
		e.Name,
		e.Category,
		flavors,
		strconv.Itoa(len(e.Molecules)),
	}, true
}

// collectFlavors 合併所有分子的風味描述並去重。
// 單一分子的 flavor_profile 以 @ 分隔多個描述，
// 此處保留原始格式，交由引擎的正規化器拆解。
func collectFlavors(molecules []molecule) string {
	seen := make(map[string]struct{})
	var parts []string
	for _, m := range molecules {
		profile := strings.TrimSpace(m.FlavorProfile)
		if profile == "" {
			continue
		}
		if _, dup := seen[profile]; dup {
			continue
		}
		seen[profile] = struct{}{}
		parts = append(parts, profile)
	}
	return strings.Join(parts, ",")
}
