package model

// kgPerMeterDivisor is the standard approximation for deformed reinforcing
// bar unit weight: weight (kg/m) = diameter(mm)^2 / 162.
const kgPerMeterDivisor = 162.0

// BarWeightKgPerMeter returns the nominal unit weight, in kg per linear
// meter, for a bar of the given diameter in mm.
func BarWeightKgPerMeter(dia int) float64 {
	d := float64(dia)
	return (d * d) / kgPerMeterDivisor
}

// BarWeightKg returns the weight, in kg, of a single bar of the given
// diameter and length in mm.
func BarWeightKg(dia, lengthMm int) float64 {
	return BarWeightKgPerMeter(dia) * (float64(lengthMm) / 1000.0)
}

// ProcurementCostEstimate holds a priced breakdown of a procurement list.
type ProcurementCostEstimate struct {
	ByDia         []DiaCostLine `json:"by_dia"`
	TotalWeightKg float64       `json:"total_weight_kg"`
	TotalCost     float64       `json:"total_cost"`
}

// DiaCostLine is the weight and cost subtotal for one diameter.
type DiaCostLine struct {
	Dia        int     `json:"dia"`
	TotalBars  int     `json:"total_bars"`
	TotalLenMm int     `json:"total_length_mm"`
	WeightKg   float64 `json:"weight_kg"`
	Cost       float64 `json:"cost"`
}

// EstimateProcurementCost prices a procurement list using a flat price per
// kilogram for each diameter (0 if a diameter has no entry in pricePerKg).
func EstimateProcurementCost(items []ProcurementItem, pricePerKg map[int]float64) ProcurementCostEstimate {
	byDia := map[int]*DiaCostLine{}
	order := []int{}

	for _, item := range items {
		line, ok := byDia[item.Dia]
		if !ok {
			line = &DiaCostLine{Dia: item.Dia}
			byDia[item.Dia] = line
			order = append(order, item.Dia)
		}
		line.TotalBars += item.Quantity
		line.TotalLenMm += item.TotalLength
	}

	est := ProcurementCostEstimate{}
	for _, dia := range order {
		line := byDia[dia]
		line.WeightKg = BarWeightKgPerMeter(dia) * (float64(line.TotalLenMm) / 1000.0)
		line.Cost = line.WeightKg * pricePerKg[dia]
		est.ByDia = append(est.ByDia, *line)
		est.TotalWeightKg += line.WeightKg
		est.TotalCost += line.Cost
	}

	return est
}
