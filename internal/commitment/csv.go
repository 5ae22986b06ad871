package commitment

import (
	"encoding/csv"
	"os"
	"strconv"

	"unit-commitment/internal/model"
)

func WriteScheduleCSV(path string, sched *model.DispatchSchedule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"state",
		"event",
		"production_mw",
		"profit",
		"cum_profit",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, d := range sched.Periods {
		row := []string{
			strconv.Itoa(d.Index),
			string(d.State),
			string(d.Event),
			fmtFloat(d.ProductionMW),
			fmtFloat(d.Profit),
			fmtFloat(d.CumProfit),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
