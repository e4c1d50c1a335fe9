package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/formatter"
)

func ExampleNewDefaultFormatter() {
	f := formatter.NewDefaultFormatter()

	record := &core.Record{
		ClassName:  "Checkout",
		MethodName: "Pay",
		LineNumber: "88",
		Message:    "payment declined",
		Params:     []core.Param{core.String("order", "A-17"), core.Int("attempt", 2)},
		Time:       time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:      core.Warning,
	}

	fmt.Print(f.Format(record))
	// Output:
	// [15-01-2026 12:00:00] WARNING - Checkout(88):Pay - payment declined. Parameters: { order = A-17, attempt = 2 }
}
