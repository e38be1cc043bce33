package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"dog-breeds-dashboard/internal/domain/breeds"

	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	case "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (text|json|yaml)", s)
	}
}

// render escribe v en el formato pedido; text delega en writeText.
func render(w io.Writer, format string, v any, writeText func(io.Writer) error) error {
	f, err := parseFormat(format)
	if err != nil {
		return err
	}

	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w)
	}
}

func writeBreedTable(w io.Writer, items []breeds.Breed) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No breeds found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGROUP\tLIFE SPAN")
	for _, b := range items {
		group := b.BreedGroup
		if group == "" {
			group = breeds.GroupUnknown
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, b.Name, group, b.LifeSpan)
	}
	return tw.Flush()
}

func writeStats(w io.Writer, s breeds.Summary) error {
	lifeRange := "N/A"
	if s.LifespanRange != nil {
		lifeRange = fmt.Sprintf("%g - %g years", s.LifespanRange.Min, s.LifespanRange.Max)
	}

	_, err := fmt.Fprintf(w,
		"Total Breeds: %d\nAverage Lifespan: %.1f years\nLifespan Range: %s\nMost Common Group: %s\n",
		s.TotalBreeds, s.AverageLifespan, lifeRange, s.MostCommonGroup,
	)
	return err
}

func writeGroupTable(w io.Writer, counts []breeds.GroupCount) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tBREEDS")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Group, c.Count)
	}
	return tw.Flush()
}

func writeDetail(w io.Writer, d breeds.DetailResponse) error {
	group := d.BreedGroup
	if group == "" {
		group = breeds.GroupUnknown
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	rows := [][2]string{
		{"Name:", d.Name},
		{"Group:", group},
		{"Lifespan:", d.LifeSpan},
		{"Temperament:", d.Temperament},
		{"Height (cm):", d.HeightMetric},
		{"Weight (kg):", d.WeightMetric},
		{"Bred for:", d.BredFor},
		{"Origin:", d.Origin},
		{"Image:", d.ImageURL},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}
