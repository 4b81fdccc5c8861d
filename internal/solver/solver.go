// Package solver wires the pipeline together: rule lookups, splice
// planning, request flattening, packing, and aggregation, producing the
// single OptimizationResult the rest of the system reports on.
package solver

import (
	"fmt"
	"sort"

	"github.com/rafiqul27/rebaropt/internal/aggregate"
	"github.com/rafiqul27/rebaropt/internal/model"
	"github.com/rafiqul27/rebaropt/internal/pack"
	"github.com/rafiqul27/rebaropt/internal/request"
	"github.com/rafiqul27/rebaropt/internal/rules"
	"github.com/rafiqul27/rebaropt/internal/splice"
	"golang.org/x/sync/errgroup"
)

// maxParallelSolves bounds the worker pool used when a project opts into
// ProjectSettings.Parallel, so a project with many diameters doesn't spawn
// one goroutine per diameter unchecked.
const maxParallelSolves = 4

// Solve runs the full pipeline for one project: build the rule table, plan
// every bar run's splices, flatten the result into per-diameter cut
// requests, pack each diameter's requests against its stock and inventory,
// and aggregate the packed bins into the final report.
func Solve(project model.Project) (model.OptimizationResult, error) {
	table, err := rules.NewTable(project.Rules, project.Stock)
	if err != nil {
		return model.OptimizationResult{}, fmt.Errorf("solver: %w", err)
	}

	runsByID := make(map[string]model.BarRun, len(project.BarRuns))
	for _, r := range project.BarRuns {
		runsByID[r.ID] = r
	}

	var splicePlan []model.SplicePlanItem
	var warnings []string
	for _, run := range project.BarRuns {
		item, warns, err := splice.Plan(run, table, project.Settings)
		if err != nil {
			return model.OptimizationResult{}, fmt.Errorf("solver: run %s: %w", run.BarMark, err)
		}
		splicePlan = append(splicePlan, item)
		warnings = append(warnings, warns...)
	}

	reqsByDia := request.Flatten(splicePlan, runsByID, project.FixedPieces)
	inventoryByDia := groupInventoryByDia(project.Inventory)
	dias := diaKeys(reqsByDia)

	var binsByDia map[int][]pack.Bin
	if project.Settings.Parallel && len(dias) > 1 {
		binsByDia, err = solveParallel(dias, reqsByDia, inventoryByDia, table, project.Settings)
	} else {
		binsByDia, err = solveSequential(dias, reqsByDia, inventoryByDia, table, project.Settings)
	}
	if err != nil {
		return model.OptimizationResult{}, err
	}

	cuttingPlan, procurement, summary := aggregate.Aggregate(binsByDia, project.Settings.MinLeftoverMm)

	return model.OptimizationResult{
		SplicePlan:  splicePlan,
		CuttingPlan: cuttingPlan,
		Procurement: procurement,
		Summary:     summary,
		Warnings:    warnings,
	}, nil
}

func solveSequential(dias []int, reqsByDia map[int][]request.CutReq, inventoryByDia map[int][]model.OffcutInventoryItem, table *rules.Table, settings model.ProjectSettings) (map[int][]pack.Bin, error) {
	out := make(map[int][]pack.Bin, len(dias))
	for _, dia := range dias {
		bins, err := solveDiameter(dia, reqsByDia[dia], inventoryByDia[dia], table, settings)
		if err != nil {
			return nil, err
		}
		out[dia] = bins
	}
	return out, nil
}

// solveParallel farms each diameter's Monte Carlo sub-solve out to a
// bounded goroutine pool. Diameters never share state (each has its own
// request list, inventory slice, and derived seed) so the only
// coordination needed is collecting results and the first error.
func solveParallel(dias []int, reqsByDia map[int][]request.CutReq, inventoryByDia map[int][]model.OffcutInventoryItem, table *rules.Table, settings model.ProjectSettings) (map[int][]pack.Bin, error) {
	results := make([][]pack.Bin, len(dias))

	var g errgroup.Group
	g.SetLimit(maxParallelSolves)
	for i, dia := range dias {
		i, dia := i, dia
		g.Go(func() error {
			bins, err := solveDiameter(dia, reqsByDia[dia], inventoryByDia[dia], table, settings)
			if err != nil {
				return err
			}
			results[i] = bins
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int][]pack.Bin, len(dias))
	for i, dia := range dias {
		out[dia] = results[i]
	}
	return out, nil
}

func solveDiameter(dia int, reqs []request.CutReq, inventory []model.OffcutInventoryItem, table *rules.Table, settings model.ProjectSettings) ([]pack.Bin, error) {
	stockLengths := table.StockLengths(dia)
	seed := deriveSeed(settings.Seed, dia)

	var bins []pack.Bin
	var err error
	if settings.InventoryStrategy == model.StrategyMixed {
		bins, _, err = pack.MixedPack(reqs, stockLengths, inventory, settings.KerfMm, settings.OptimizationLevel, seed)
	} else {
		bins, _, err = pack.SequentialPack(reqs, stockLengths, inventory, settings.KerfMm, settings.OptimizationLevel, seed)
	}
	if err != nil {
		return nil, fmt.Errorf("solver: dia %d: %w", dia, err)
	}
	return bins, nil
}

func groupInventoryByDia(inventory []model.OffcutInventoryItem) map[int][]model.OffcutInventoryItem {
	out := map[int][]model.OffcutInventoryItem{}
	for _, item := range inventory {
		out[item.Dia] = append(out[item.Dia], item)
	}
	return out
}

func diaKeys(m map[int][]request.CutReq) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
