package synthetic

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"stockpulse/internal/model"
)

// DefaultSeed is the fixed seed used in production; tests supply their
// own to pin down expected output.
const DefaultSeed int64 = 20240817

// bucketSeconds groups wall-clock time into ten-minute windows, so every
// fallback batch generated within one window is identical.
const bucketSeconds = 600

var baseQuotes = []struct {
	name  string
	price string
	rate  float64
}{
	{"삼성전자", "87,500원", 29.95},
	{"SK하이닉스", "142,300원", 25.32},
	{"카카오", "58,900원", 21.24},
	{"네이버", "185,200원", 18.56},
	{"현대차", "245,000원", 15.87},
	{"LG화학", "485,000원", 12.65},
	{"포스코홀딩스", "392,500원", 10.93},
	{"삼성SDI", "425,000원", 9.54},
	{"셀트리온", "178,900원", 8.82},
	{"기아", "115,200원", 7.95},
}

// BucketFor maps a wall-clock instant to its ten-minute bucket.
func BucketFor(t time.Time) int64 {
	return t.Unix() / bucketSeconds
}

// Batch builds a plausible top-gainers list from (bucket, seed) alone.
// Same inputs, same output: the rates are perturbed with a PRNG seeded
// from both values and the list is re-ranked by the perturbed rate.
func Batch(bucket, seed int64) []model.Stock {
	rng := rand.New(rand.NewSource(seed ^ (bucket * 0x9e3779b9)))

	type ranked struct {
		stock model.Stock
		rate  float64
	}

	items := make([]ranked, len(baseQuotes))
	for i, q := range baseQuotes {
		rate := q.rate + (rng.Float64()-0.5)*4.0
		if rate < 0.5 {
			rate = 0.5
		}
		items[i] = ranked{
			stock: model.Stock{
				Name:    q.name,
				Price:   q.price,
				Rate:    fmt.Sprintf("+%.2f%%", rate),
				Sources: []model.Headline{},
			},
			rate: rate,
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].rate > items[j].rate
	})

	stocks := make([]model.Stock, len(items))
	for i, it := range items {
		it.stock.Rank = i + 1
		stocks[i] = it.stock
	}
	return stocks
}
