package model

import "fmt"

// PriceRow is one timestamped price of the traded instrument denominated in the base instrument
type PriceRow struct {
	Timestamp Timestamp
	Price     float64
}

// PriceSeries is an ordered, read-only sequence of PriceRows. It is immutable after
// construction so a single series can safely be shared by reference across exchange
// instances simulating in parallel.
type PriceSeries struct {
	rows []PriceRow
}

// MakePriceSeries validates the rows and wraps them in a PriceSeries. Rows must have
// strictly increasing timestamps (which also rules out duplicates) and positive prices.
func MakePriceSeries(rows []PriceRow) (*PriceSeries, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot make a price series out of 0 rows")
	}

	for i, row := range rows {
		if row.Price <= 0 {
			return nil, fmt.Errorf("price series row %d has a non-positive price: %f", i, row.Price)
		}
		if i > 0 && row.Timestamp <= rows[i-1].Timestamp {
			return nil, fmt.Errorf("price series timestamps must be strictly increasing, row %d (ts=%d) does not follow row %d (ts=%d)",
				i, row.Timestamp.AsInt64(), i-1, rows[i-1].Timestamp.AsInt64())
		}
	}

	// defensive copy so the caller's slice cannot mutate the series afterwards
	owned := make([]PriceRow, len(rows))
	copy(owned, rows)
	return &PriceSeries{rows: owned}, nil
}

// Len returns the number of rows in the series
func (s *PriceSeries) Len() int {
	return len(s.rows)
}

// Row returns the row at the given step index, with ok=false beyond the series
func (s *PriceSeries) Row(step int) (PriceRow, bool) {
	if step < 0 || step >= len(s.rows) {
		return PriceRow{}, false
	}
	return s.rows[step], true
}

// Window returns up to windowSize rows ending at (and including) the given step index.
// Steps earlier than windowSize-1 return the shorter available prefix.
func (s *PriceSeries) Window(step int, windowSize int) []PriceRow {
	if step < 0 || step >= len(s.rows) || windowSize < 1 {
		return nil
	}

	start := step - windowSize + 1
	if start < 0 {
		start = 0
	}

	window := make([]PriceRow, step+1-start)
	copy(window, s.rows[start:step+1])
	return window
}

// Observation is the view of the series handed to the caller one step at a time: the raw
// window of rows plus the feature-transformed values when a feature pipeline is configured.
type Observation struct {
	// Step is the index of the most recent row in the window
	Step int
	// Rows is the window of raw price rows, oldest first
	Rows []PriceRow
	// Features is the feature-pipeline output for the window, nil when no pipeline is set
	Features []float64
}
