package monitor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gestured/gestured/internal/gesture"
)

const helpLine = "3/4 fingers  s/p/h begin  arrows swipe  [/] pinch  e end  c cancel  f focus  u cursor  q quit"

func (m *Monitor) draw() {
	m.screen.Clear()

	def := tcell.StyleDefault
	bold := def.Bold(true)
	dim := def.Dim(true)

	m.drawText(1, 0, bold, m.statusLine())
	m.drawText(1, 1, dim, helpLine)

	m.drawText(1, 3, bold, "cells")
	for i, line := range m.cellLines() {
		m.drawText(1, 4+i, def, line)
	}

	row := 11
	m.drawText(1, row, bold, "activity")
	row++
	for _, line := range m.activity {
		m.drawText(1, row, def, line)
		row++
	}

	row++
	m.drawText(1, row, bold, "commands")
	row++
	cmds := m.sim.Commands()
	if len(cmds) > activityMax {
		cmds = cmds[len(cmds)-activityMax:]
	}
	for _, line := range cmds {
		m.drawText(1, row, def, line)
		row++
	}

	m.screen.Show()
}

func (m *Monitor) drawText(x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		m.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func (m *Monitor) statusLine() string {
	active := "idle"
	if m.active != idle {
		active = fmt.Sprintf("%s-%d", m.active, m.fingers)
	}
	focus := m.sim.FocusedApp()
	if focus == "" {
		focus = "-"
	}
	cursor := "off"
	if m.sim.HasWindowUnderCursor() {
		cursor = "on"
	}
	return fmt.Sprintf("gestured monitor  fingers:%d  active:%s  focus:%s  cursor:%s",
		m.fingers, active, focus, cursor)
}

func (m *Monitor) cellLines() []string {
	r := m.disp.Cells()
	now := m.now()
	return []string{
		swipeLine("swipe-3", &r.Swipe3),
		swipeLine("swipe-4", &r.Swipe4),
		pinchLine("pinch-3", &r.Pinch3),
		pinchLine("pinch-4", &r.Pinch4),
		holdLine("hold-3", &r.Hold3, now),
		holdLine("hold-4", &r.Hold4, now),
	}
}

func swipeLine(name string, c *gesture.Swipe) string {
	return fmt.Sprintf("%-8s %-9s %-11s cx %+8.1f  cy %+8.1f",
		name, c.Decision, dirLabel(c.Direction), c.Cx, c.Cy)
}

func pinchLine(name string, c *gesture.Pinch) string {
	return fmt.Sprintf("%-8s %-9s %-11s scale %5.2f",
		name, c.Decision, dirLabel(c.Direction), c.Scale)
}

func holdLine(name string, c *gesture.Hold, now uint32) string {
	if c.Decision == gesture.DecisionUnknown {
		return fmt.Sprintf("%-8s %-9s %-11s", name, c.Decision, "-")
	}
	return fmt.Sprintf("%-8s %-9s %-11s held %6d ms",
		name, c.Decision, "-", c.Elapsed(now))
}

func dirLabel(d gesture.Direction) string {
	if d == gesture.DirectionUnknown {
		return "-"
	}
	return d.String()
}
