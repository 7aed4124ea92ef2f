// Package scoring computes rank-adjusted point values for four-player
// game records. The formula must stay byte-compatible with the exported
// rating CSV consumed by downstream spreadsheets.
package scoring

import "sort"

// umaTable holds the per-rank bonus for ranks 1..4, with the table bonus
// (oka) already netted into the first place value.
var umaTable = [4]float64{50, 10, -10, -30}

// returnScore is the nominal starting total subtracted before scaling a
// raw score into points.
const returnScore = 30000

// CalcPoints maps four raw scores (in seat order) to four point values.
// Seats are ranked by score descending; ties go to the lower seat index.
// For each seat: (score - 30000) / 1000.0 + uma for that seat's rank.
func CalcPoints(scores [4]int) [4]float64 {
	order := []int{0, 1, 2, 3}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	var pts [4]float64
	for rank, seat := range order {
		pts[seat] = umaTable[rank]
	}
	for seat := range pts {
		pts[seat] += float64(scores[seat]-returnScore) / 1000.0
	}

	return pts
}
