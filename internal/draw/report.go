package draw

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/tomz197/asteroid-board/internal/board/config"
)

// Report layout
const (
	minReportWidth = 48
	maxReportWidth = 80
	valueColumn    = 6 // Right-aligned value width
)

const reportTitle = "Asteroid board configuration"

// WriteReport writes cfg as a text table using the minimum report width.
func WriteReport(w io.Writer, cfg *config.Config) error {
	return WriteReportWidth(w, cfg, minReportWidth)
}

// WriteReportWidth writes cfg as a text table. Rules span width columns.
func WriteReportWidth(w io.Writer, cfg *config.Config, width int) error {
	if width < minReportWidth {
		width = minReportWidth
	}

	names := config.Names()
	nameWidth := 0
	for _, n := range names {
		if len(n) > nameWidth {
			nameWidth = len(n)
		}
	}
	nameWidth += 2

	cw := NewChunkWriter(w)
	cw.WriteString(reportTitle)
	cw.WriteString("\n")
	cw.WriteString(strings.Repeat("=", width))
	cw.WriteString("\n")

	cw.WritePadded("NAME", nameWidth)
	cw.WriteString(strings.Repeat(" ", valueColumn-len("VALUE")))
	cw.WriteString("VALUE  UNIT\n")

	tuning := cfg.Tuning()
	for _, n := range names {
		v := tuning[n]
		cw.WritePadded(string(n), nameWidth)
		if pad := valueColumn - len(strconv.Itoa(v)); pad > 0 {
			cw.WriteString(strings.Repeat(" ", pad))
		}
		cw.WriteInt(v)
		cw.WriteString("  ")
		cw.WriteString(n.Unit().String())
		cw.WriteString("\n")
	}

	cw.WriteString(strings.Repeat("-", width))
	cw.WriteString("\n")
	cw.WriteString("ASTEROID_IMAGES\n")
	for i, ref := range cfg.AsteroidImages() {
		cw.WriteString("[")
		cw.WriteInt(i)
		cw.WriteString("] ")
		cw.WritePadded(ref.Name, nameWidth-4)
		cw.WriteString(ref.Path)
		cw.WriteString("\n")
	}

	return cw.Flush()
}

type reportJSON struct {
	Tuning         map[config.Name]int `json:"tuning"`
	AsteroidImages []imageJSON         `json:"asteroid_images"`
}

type imageJSON struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// WriteJSON writes cfg as a single indented JSON object.
func WriteJSON(w io.Writer, cfg *config.Config) error {
	images := cfg.AsteroidImages()
	out := reportJSON{
		Tuning:         cfg.Tuning(),
		AsteroidImages: make([]imageJSON, len(images)),
	}
	for i, ref := range images {
		out.AsteroidImages[i] = imageJSON{Name: ref.Name, Path: ref.Path}
	}

	cw := NewChunkWriter(w)
	enc := json.NewEncoder(cw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	return cw.Flush()
}
