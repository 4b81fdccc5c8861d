// Package request flattens splice-plan pieces and fixed pieces into a flat
// list of cut requests, partitioned by diameter for independent
// optimization.
package request

import "github.com/rafiqul27/rebaropt/internal/model"

// CutReq is one demanded cut length for one diameter. RunID/BarMark record
// the originating run (both empty for fixed pieces); packing and
// aggregation do not read them.
type CutReq struct {
	Dia      int
	LengthMm int
	RunID    string
	BarMark  string
}

// Flatten expands every splice-plan item (each piece repeated once per
// parallel bar) and every direct piece (repeated qty times) into cut
// requests, grouped by diameter.
func Flatten(splicePlan []model.SplicePlanItem, runsByID map[string]model.BarRun, fixedPieces []model.DirectPiece) map[int][]CutReq {
	byDia := map[int][]CutReq{}

	for _, item := range splicePlan {
		run, ok := runsByID[item.RunID]
		qty := 1
		if ok {
			qty = run.QtyParallel
		}
		for i := 0; i < qty; i++ {
			for _, piece := range item.Pieces {
				byDia[run.Dia] = append(byDia[run.Dia], CutReq{
					Dia:      run.Dia,
					LengthMm: piece.LengthMm,
					RunID:    item.RunID,
					BarMark:  item.BarMark,
				})
			}
		}
	}

	for _, piece := range fixedPieces {
		for i := 0; i < piece.Qty; i++ {
			byDia[piece.Dia] = append(byDia[piece.Dia], CutReq{
				Dia:      piece.Dia,
				LengthMm: piece.LengthMm,
				RunID:    "",
				BarMark:  "",
			})
		}
	}

	return byDia
}
