package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatFillOrg renders a FillRecord as an Org-mode block suitable for
// pasting into a trading diary. Structured facts go in the PROPERTIES
// drawer; the Notes heading is left for the player.
func FormatFillOrg(f FillRecord) string {
	heading := fmt.Sprintf("** %s %dx %s (%s)", f.Side, f.Quantity, f.Symbol, shortID(f.FillID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":FILL_ID: %s\n", f.FillID))
	b.WriteString(fmt.Sprintf(":TIME: %s\n", f.Time.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", f.Side))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", f.Symbol))
	b.WriteString(fmt.Sprintf(":QUANTITY: %d\n", f.Quantity))
	b.WriteString(fmt.Sprintf(":PRICE: %s\n", f.Price.StringFixed(4)))
	b.WriteString(fmt.Sprintf(":GROSS: %s\n", f.Gross.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":FEE: %s\n", f.Fee.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":NET: %s\n", f.Net.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":CASH_AFTER: %s\n", f.CashAfter.StringFixed(2)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n- \n")

	return b.String()
}

// FormatFillsOrg renders multiple fills separated by blank lines.
func FormatFillsOrg(fills []FillRecord) string {
	var b strings.Builder
	for i, f := range fills {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatFillOrg(f))
	}
	return b.String()
}

// shortID keeps the tail of an ID. ULIDs made in the same millisecond share
// their leading characters.
func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[len(full)-8:]
}
