// Package csvdata loads historical price series from CSV files. Data ingestion is an
// external collaborator of the exchange core: it runs before construction and hands the
// exchange an in-memory series.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/tradegym/marketsim/model"
)

// ReadPriceSeries parses a CSV file of "timestamp,price" rows (timestamp as millis since
// epoch or RFC3339) into a validated model.PriceSeries. A single unparseable leading row is
// tolerated as a header.
func ReadPriceSeries(path string) (*model.PriceSeries, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, errors.Wrap(e, "cannot open price data file")
	}
	defer f.Close()

	return parsePriceSeries(csv.NewReader(f))
}

func parsePriceSeries(r *csv.Reader) (*model.PriceSeries, error) {
	r.FieldsPerRecord = 2

	rows := []model.PriceRow{}
	lineNumber := 0
	for {
		record, e := r.Read()
		if e == io.EOF {
			break
		}
		if e != nil {
			return nil, errors.Wrapf(e, "cannot read price data line %d", lineNumber+1)
		}
		lineNumber++

		ts, e := parseTimestamp(record[0])
		if e != nil {
			if lineNumber == 1 {
				// header row
				continue
			}
			return nil, errors.Wrapf(e, "cannot parse timestamp on line %d", lineNumber)
		}

		price, e := strconv.ParseFloat(record[1], 64)
		if e != nil {
			return nil, errors.Wrapf(e, "cannot parse price on line %d", lineNumber)
		}

		rows = append(rows, model.PriceRow{
			Timestamp: *ts,
			Price:     price,
		})
	}

	series, e := model.MakePriceSeries(rows)
	if e != nil {
		return nil, errors.Wrap(e, "invalid price data")
	}
	return series, nil
}

// parseTimestamp accepts either millis since epoch or an RFC3339 time
func parseTimestamp(s string) (*model.Timestamp, error) {
	if millis, e := strconv.ParseInt(s, 10, 64); e == nil {
		return model.MakeTimestamp(millis), nil
	}

	t, e := time.Parse(time.RFC3339, s)
	if e != nil {
		return nil, fmt.Errorf("'%s' is neither millis since epoch nor RFC3339: %s", s, e)
	}
	return model.MakeTimestampFromTime(t), nil
}
