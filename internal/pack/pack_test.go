package pack

import (
	"testing"

	"github.com/rafiqul27/rebaropt/internal/request"
	"github.com/stretchr/testify/require"
)

func TestPackOpensNewBinBestFit(t *testing.T) {
	reqs := []request.CutReq{{Dia: 16, LengthMm: 9000}}
	supply := BuildNewStockSupply([]int{12000, 9500})

	bins, _, err := Pack(reqs, supply, 5, true)
	require.NoError(t, err)
	require.Len(t, bins, 1)
	require.Equal(t, 9500, bins[0].StockLengthMm)
	require.Equal(t, 9500-9005, bins[0].Remaining)
}

func TestPackReusesOpenBinTightestFit(t *testing.T) {
	reqs := []request.CutReq{{Dia: 16, LengthMm: 9000}, {Dia: 16, LengthMm: 2000}}
	supply := BuildNewStockSupply([]int{12000})

	bins, _, err := Pack(reqs, supply, 0, true)
	require.NoError(t, err)
	require.Len(t, bins, 1, "second request should reuse the first bin's headroom")
	require.Equal(t, []int{9000, 2000}, bins[0].Cuts)
	require.Equal(t, 12000-9000-2000, bins[0].Remaining)
}

func TestPackFallsBackToLargestNewStockWhenNoneFits(t *testing.T) {
	reqs := []request.CutReq{{Dia: 16, LengthMm: 11990}}
	supply := BuildNewStockSupply([]int{9000, 6000})

	// No option reaches the needed length; the fallback still opens the
	// largest new-stock option rather than raising ErrUnservedRequest.
	bins, _, err := Pack(reqs, supply, 5, true)
	require.NoError(t, err)
	require.Len(t, bins, 1)
	require.Equal(t, 9000, bins[0].StockLengthMm)
}

func TestPackUnservedRequestWhenNoSupplyFits(t *testing.T) {
	reqs := []request.CutReq{{Dia: 16, LengthMm: 20000}}
	// Inventory only: no new-stock option exists to fall back on.
	supply := []SupplyOption{{LengthMm: 12000, IsInventory: true, InventoryID: "inv#0"}}

	_, _, err := Pack(reqs, supply, 0, true)
	require.ErrorIs(t, err, ErrUnservedRequest)
}

func TestPackPreferInventoryOnTie(t *testing.T) {
	reqs := []request.CutReq{{Dia: 16, LengthMm: 11900}}
	supply := BuildMixedSupply([]int{12000}, nil)
	supply = append(supply, SupplyOption{LengthMm: 12000, IsInventory: true, InventoryID: "inv#0"})

	bins, consumed, err := Pack(reqs, supply, 0, true)
	require.NoError(t, err)
	require.True(t, bins[0].IsInventory)
	require.True(t, consumed["inv#0"])
}

func TestPackPreferNewStockOnTieWhenMixedPolicy(t *testing.T) {
	reqs := []request.CutReq{{Dia: 16, LengthMm: 11900}}
	supply := []SupplyOption{
		{LengthMm: 12000},
		{LengthMm: 12000, IsInventory: true, InventoryID: "inv#0"},
	}

	bins, consumed, err := Pack(reqs, supply, 0, false)
	require.NoError(t, err)
	require.False(t, bins[0].IsInventory)
	require.Empty(t, consumed)
}

// Bin capacity invariant (property 4): sum(cut+kerf) <= stockLength.
func TestBinCapacityInvariant(t *testing.T) {
	reqs := []request.CutReq{
		{Dia: 16, LengthMm: 4000}, {Dia: 16, LengthMm: 3000}, {Dia: 16, LengthMm: 3900},
	}
	supply := BuildNewStockSupply([]int{12000})

	bins, _, err := Pack(reqs, supply, 50, true)
	require.NoError(t, err)
	for _, b := range bins {
		used := 0
		for _, c := range b.Cuts {
			used += c + 50
		}
		require.LessOrEqual(t, used, b.StockLengthMm)
		require.Equal(t, b.StockLengthMm-used, b.Remaining)
	}
}
