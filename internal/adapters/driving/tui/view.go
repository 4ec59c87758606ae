package tui

import (
	"fmt"
	"strings"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
)

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("MappingKML"))
	b.WriteString("\n\n")

	switch a.phase {
	case phaseInput:
		a.viewInput(&b)
	case phaseSearching:
		b.WriteString(a.styles.Muted.Render("Searching the cadastre services..."))
		b.WriteString("\n")
	case phasePicking:
		a.viewPicker(&b)
	case phaseExporting:
		b.WriteString(a.styles.Muted.Render("Writing KML..."))
		b.WriteString("\n")
	case phaseDone:
		b.WriteString(a.styles.Success.Render(
			fmt.Sprintf("Exported %d parcels to %s", a.exportCount, a.exportPath)))
		b.WriteString("\n\n")
		b.WriteString(a.styles.Help.Render("enter/q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (a *App) viewInput(b *strings.Builder) {
	b.WriteString(a.styles.Normal.Render("Enter lot and plan references:"))
	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")
	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(a.styles.Help.Render("enter search - esc quit"))
	b.WriteString("\n")
}

func (a *App) viewPicker(b *strings.Builder) {
	if len(a.result.Parcels) == 0 {
		b.WriteString(a.styles.Warning.Render("No parcels found."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(a.styles.Subtitle.Render(
			fmt.Sprintf("Parcels (%d picked of %d)", a.pickedCount(), len(a.result.Parcels))))
		b.WriteString("\n\n")

		for i, p := range a.result.Parcels {
			mark := "[ ]"
			if a.picked[i] {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s (%s)", mark, p.Name, p.Jurisdiction)
			if i == a.cursor {
				line = a.styles.Selected.Render(line)
			} else {
				line = a.styles.Normal.Render(line)
			}
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	for _, skipped := range a.result.Skipped {
		b.WriteString(a.styles.Warning.Render(
			fmt.Sprintf("skipped %s: %v", skipped.Entry, skipped.Err)))
		b.WriteString("\n")
	}
	for _, j := range domain.AllJurisdictions() {
		if err, ok := a.result.ServiceErrors[j]; ok {
			b.WriteString(a.styles.Error.Render(fmt.Sprintf("%s: %v", j, err)))
			b.WriteString("\n")
		}
	}
	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(
		"space pick - a all - p preset: " + domain.PresetNames()[a.preset] +
			" - enter export - esc back - q quit"))
	b.WriteString("\n")
}
