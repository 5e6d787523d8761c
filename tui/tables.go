package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rustyeddy/stockgame/game"
	"github.com/rustyeddy/stockgame/money"
)

type column struct {
	title string
	width int
	right bool
}

var marketColumns = []column{
	{title: "Symbol", width: 7},
	{title: "Name", width: 16},
	{title: "Price", width: 11, right: true},
	{title: "Held", width: 7, right: true},
}

var portfolioColumns = []column{
	{title: "Symbol", width: 7},
	{title: "Name", width: 16},
	{title: "Qty", width: 7, right: true},
	{title: "Avg Cost", width: 11, right: true},
	{title: "Price", width: 11, right: true},
	{title: "Value", width: 12, right: true},
}

func renderRow(cols []column, style lipgloss.Style, cells ...string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		s := style.Width(c.width).MaxWidth(c.width)
		if c.right {
			s = s.Align(lipgloss.Right)
		}
		parts[i] = s.Render(cells[i])
	}
	return strings.Join(parts, " ")
}

func header(cols []column) string {
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	return renderRow(cols, HeaderStyle, titles...)
}

// MarketTable renders every instrument with its price and the quantity
// held. selected highlights one row; pass -1 for none.
func MarketTable(snap game.Snapshot, selected int) string {
	held := make(map[string]int64, len(snap.Holdings))
	for _, h := range snap.Holdings {
		held[h.Symbol] = h.Quantity
	}

	lines := []string{TitleStyle.Render("Market"), header(marketColumns)}
	for i, q := range snap.Quotes {
		style := RowStyle
		if i == selected {
			style = SelectedRowStyle
		}
		qty := ""
		if n, ok := held[q.Symbol]; ok {
			qty = fmt.Sprintf("%d", n)
		}
		lines = append(lines, renderRow(marketColumns, style,
			q.Symbol, q.Name, q.Price.StringFixed(2), qty))
	}
	return strings.Join(lines, "\n")
}

// PortfolioTable renders the open positions valued at current prices.
func PortfolioTable(snap game.Snapshot) string {
	lines := []string{TitleStyle.Render("Portfolio"), header(portfolioColumns)}
	if len(snap.Holdings) == 0 {
		lines = append(lines, LabelStyle.Render("no positions"))
	}
	for _, h := range snap.Holdings {
		name := h.Symbol
		for _, q := range snap.Quotes {
			if q.Symbol == h.Symbol {
				name = q.Name
				break
			}
		}
		style := RowStyle
		switch {
		case h.PL.IsPositive():
			style = PriceUpStyle
		case h.PL.IsNegative():
			style = PriceDownStyle
		}
		lines = append(lines, renderRow(portfolioColumns, style,
			h.Symbol, name, fmt.Sprintf("%d", h.Quantity),
			h.AverageCost.StringFixed(2), h.Price.StringFixed(2), money.Plain(h.Value)))
	}
	return strings.Join(lines, "\n")
}

// InfoLine summarizes cash, portfolio value and their total.
func InfoLine(snap game.Snapshot) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s   %s %d",
		LabelStyle.Render("Cash"), InfoStyle.Render(money.Format(snap.Cash, snap.Currency)),
		LabelStyle.Render("Portfolio"), InfoStyle.Render(money.Format(snap.PortfolioValue, snap.Currency)),
		LabelStyle.Render("Total"), InfoStyle.Render(money.Format(snap.TotalValue, snap.Currency)),
		LabelStyle.Render("Tick"), snap.Tick,
	)
}
