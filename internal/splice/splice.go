// Package splice implements the length-sweeping splice planner: it walks a
// bar run from one end, choosing cut points that respect the largest
// available stock length and land each required overlap inside a
// structurally-permitted zone when one is reachable, and emits a warning
// otherwise.
package splice

import (
	"errors"
	"fmt"
	"math"

	"github.com/rafiqul27/rebaropt/internal/model"
	"github.com/rafiqul27/rebaropt/internal/rules"
)

// ErrLapGeMaxStock is returned when a run's lap length is not strictly
// smaller than the largest available stock length for its diameter.
var ErrLapGeMaxStock = errors.New("splice: lap length >= max stock length")

// ErrDegenerateCut is returned when a proposed piece would not advance the
// cursor past the overlap, which would loop forever.
var ErrDegenerateCut = errors.New("splice: piece length does not exceed lap length")

// minPieceLengthMm is the safety-minimum piece length step 6 enforces.
const minPieceLengthMm = 1000

// longZoneThresholdMm is the width above which a zone is treated as "long"
// and the splice center is pushed toward its forward edge.
const longZoneThresholdMm = 1000

// forwardSafetyBufferMm is subtracted from a long zone's forward edge so
// the splice center does not sit flush against the zone boundary.
const forwardSafetyBufferMm = 100

// Plan runs the splice planner for a single bar run and returns the splice
// plan item plus any structural-violation warnings it recorded.
func Plan(run model.BarRun, table *rules.Table, settings model.ProjectSettings) (model.SplicePlanItem, []string, error) {
	lap := table.LapLength(run.Dia, run.LapCase)
	maxStock := table.MaxStock(run.Dia)

	if lap >= maxStock {
		return model.SplicePlanItem{}, nil, fmt.Errorf("%w: run %s (dia %d): lap %dmm >= max stock %dmm", ErrLapGeMaxStock, run.BarMark, run.Dia, lap, maxStock)
	}

	step := settings.RoundingStepMm
	if step < 1 {
		step = 1
	}

	var pieces []model.SplicePiece
	var warnings []string

	cursor := 0
	remaining := run.TotalLengthMm
	halfLap := float64(lap) / 2.0

	for {
		if remaining <= maxStock {
			pieces = append(pieces, model.SplicePiece{
				LengthMm: remaining,
				StartMm:  cursor,
				EndMm:    cursor + remaining,
			})
			break
		}

		centerTarget := float64(cursor) + float64(maxStock) - halfLap
		zone, violation := selectZone(run.AllowedZones, centerTarget, cursor+maxStock)

		var center float64
		pieceLen := 0.0

		if violation {
			pieceLen = float64(maxStock)
		} else {
			center = float64(zone.StartMm+zone.EndMm) / 2.0
			if zone.Width() > longZoneThresholdMm {
				center = float64(zone.EndMm) - halfLap - forwardSafetyBufferMm
			}
			if center+halfLap-float64(cursor) > float64(maxStock) {
				center = float64(cursor) + float64(maxStock) - halfLap
			}
			pieceLen = (center + halfLap) - float64(cursor)
		}

		length := floorToStep(pieceLen, step)
		if length < minPieceLengthMm {
			length = minPieceLengthMm
		}

		if violation {
			splicePos := cursor + length - lap/2
			warnings = append(warnings, fmt.Sprintf(
				"STRUCTURAL WARNING [%s]: Forced splice at %d mm. No allowed zone reachable with stock %d mm.",
				run.BarMark, splicePos, maxStock,
			))
		}

		pieces = append(pieces, model.SplicePiece{
			LengthMm: length,
			StartMm:  cursor,
			EndMm:    cursor + length,
		})

		if length <= lap {
			return model.SplicePlanItem{}, nil, fmt.Errorf("%w: run %s (dia %d): piece %dmm <= lap %dmm", ErrDegenerateCut, run.BarMark, run.Dia, length, lap)
		}

		cursor += length - lap
		remaining -= length - lap
	}

	return model.SplicePlanItem{
		RunID:   run.ID,
		BarMark: run.BarMark,
		GroupID: 0,
		Pieces:  pieces,
	}, warnings, nil
}

// selectZone implements step 3 of the planner: prefer a zone containing
// centerTarget; else the reachable zone with the greatest end (tie-broken
// by greatest start); else report a violation.
func selectZone(zones []model.SpliceZone, centerTarget float64, reachLimit int) (model.SpliceZone, bool) {
	targetPos := int(math.Round(centerTarget))

	for _, z := range zones {
		if z.Contains(targetPos) {
			return z, false
		}
	}

	best := model.SpliceZone{}
	found := false
	for _, z := range zones {
		if z.EndMm >= reachLimit {
			continue
		}
		if !found || z.EndMm > best.EndMm || (z.EndMm == best.EndMm && z.StartMm > best.StartMm) {
			best = z
			found = true
		}
	}
	if found {
		return best, false
	}
	return model.SpliceZone{}, true
}

// floorToStep rounds val down to the nearest multiple of step.
func floorToStep(val float64, step int) int {
	if step < 1 {
		step = 1
	}
	return int(math.Floor(val/float64(step))) * step
}
