package dogapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dog-breeds-dashboard/internal/domain/breeds"
)

// imageCDN arma la URL de imagen cuando el detalle solo trae reference_image_id.
const imageCDN = "https://cdn2.thedogapi.com/images/"

// breedID acepta ids numéricos o string.
type breedID string

func (id *breedID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = breedID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("breed id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = breedID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = breedID(n.String())
	return nil
}

type measurePayload struct {
	Imperial string `json:"imperial"`
	Metric   string `json:"metric"`
}

type imagePayload struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// breedPayload es el schema de una raza en la API. Todo campo salvo id y
// name es opcional; los objetos anidados pueden faltar.
type breedPayload struct {
	ID               breedID         `json:"id"`
	Name             string          `json:"name"`
	BreedGroup       string          `json:"breed_group"`
	BredFor          string          `json:"bred_for"`
	Origin           string          `json:"origin"`
	LifeSpan         string          `json:"life_span"`
	Temperament      string          `json:"temperament"`
	Weight           *measurePayload `json:"weight"`
	Height           *measurePayload `json:"height"`
	Image            *imagePayload   `json:"image"`
	ReferenceImageID string          `json:"reference_image_id"`
}

// validate devuelve el motivo por el que el registro no es utilizable, o "".
func (p breedPayload) validate() string {
	switch {
	case strings.TrimSpace(string(p.ID)) == "":
		return "missing id"
	case strings.TrimSpace(p.Name) == "":
		return "missing name"
	default:
		return ""
	}
}

func (p breedPayload) toBreed() breeds.Breed {
	b := breeds.Breed{
		ID:               string(p.ID),
		Name:             strings.TrimSpace(p.Name),
		BreedGroup:       strings.TrimSpace(p.BreedGroup),
		BredFor:          strings.TrimSpace(p.BredFor),
		Origin:           strings.TrimSpace(p.Origin),
		LifeSpan:         strings.TrimSpace(p.LifeSpan),
		Temperament:      strings.TrimSpace(p.Temperament),
		ReferenceImageID: strings.TrimSpace(p.ReferenceImageID),
	}
	if p.Weight != nil {
		b.WeightMetric = strings.TrimSpace(p.Weight.Metric)
		b.WeightImperial = strings.TrimSpace(p.Weight.Imperial)
	}
	if p.Height != nil {
		b.HeightMetric = strings.TrimSpace(p.Height.Metric)
		b.HeightImperial = strings.TrimSpace(p.Height.Imperial)
	}

	switch {
	case p.Image != nil && strings.TrimSpace(p.Image.URL) != "":
		b.ImageURL = strings.TrimSpace(p.Image.URL)
	case b.ReferenceImageID != "":
		b.ImageURL = imageCDN + b.ReferenceImageID + ".jpg"
	}
	return b
}
