package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sumry/dataset"
)

// loadSpreadsheet reads the active (first) sheet of a workbook. The other
// sheets are only inventoried by name.
func loadSpreadsheet(path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	active := sheets[0]

	rows, err := f.GetRows(active)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", active, err)
	}

	ds := &dataset.Dataset{
		SheetNames:  sheets,
		ActiveSheet: active,
	}
	if len(rows) == 0 {
		return ds, nil
	}

	names, records := tabulate(rows[0], rows[1:])
	ds.Columns = inferColumns(names, records)
	ds.Records = records
	return ds, nil
}
