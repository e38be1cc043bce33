package breeds

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// maxChartGroups limita las barras del gráfico de grupos.
const maxChartGroups = 10

var leadingNumber = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)`)

// ParseRange extrae un rango numérico de textos como "10 - 12 years", "12 years"
// o "46-56". Parte el texto en espacios y guiones, y de cada token toma su
// prefijo numérico; los tokens sin número se ignoran.
// Con un solo número devuelve {n, n}; con dos o más usa los dos primeros.
// ok=false si no hay ningún número.
func ParseRange(text string) (Range, bool) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})

	nums := make([]float64, 0, 2)
	for _, tok := range tokens {
		m := leadingNumber.FindString(tok)
		if m == "" {
			continue
		}
		n, err := strconv.ParseFloat(m, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			continue
		}
		nums = append(nums, n)
		if len(nums) == 2 {
			break
		}
	}

	switch len(nums) {
	case 0:
		return Range{}, false
	case 1:
		return Range{Low: nums[0], High: nums[0]}, true
	default:
		return Range{Low: nums[0], High: nums[1]}, true
	}
}

// Filter aplica búsqueda por nombre (substring, sin mayúsculas) y filtro por
// grupo exacto, en AND. group "All" (o vacío) desactiva el filtro de grupo.
// Conserva el orden de entrada y no modifica records.
func Filter(records []Breed, search, group string) []Breed {
	needle := strings.ToLower(search)
	if strings.TrimSpace(search) == "" {
		needle = ""
	}
	byGroup := group != "" && group != GroupAll

	out := make([]Breed, 0, len(records))
	for _, b := range records {
		if needle != "" && !strings.Contains(strings.ToLower(b.Name), needle) {
			continue
		}
		// registros sin grupo nunca matchean un grupo concreto
		if byGroup && (!b.HasGroup() || b.BreedGroup != group) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// AverageLifespan promedia el punto medio del lifespan de cada registro,
// redondeado a un decimal. Los lifespans no parseables quedan fuera del
// numerador y del denominador. Sin datos válidos devuelve 0.
func AverageLifespan(records []Breed) float64 {
	var total float64
	n := 0
	for _, b := range records {
		r, ok := ParseRange(b.LifeSpan)
		if !ok {
			continue
		}
		total += r.Midpoint()
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(total/float64(n)*10) / 10
}

// LifespanRange devuelve el mínimo de los "low" y el máximo de los "high".
// ok=false con menos de 2 registros (aunque sean parseables) o si ninguno parsea.
func LifespanRange(records []Breed) (Span, bool) {
	if len(records) < 2 {
		return Span{}, false
	}

	var s Span
	found := false
	for _, b := range records {
		r, ok := ParseRange(b.LifeSpan)
		if !ok {
			continue
		}
		if !found {
			s = Span{Min: r.Low, Max: r.High}
			found = true
			continue
		}
		s.Min = math.Min(s.Min, r.Low)
		s.Max = math.Max(s.Max, r.High)
	}
	return s, found
}

// MostCommonGroup devuelve el breed_group más frecuente (empates: el primero
// que aparece). Los registros sin grupo no cuentan. Sin grupos: "Unknown".
func MostCommonGroup(records []Breed) string {
	counts := countGroups(records, false)
	if len(counts) == 0 {
		return GroupUnknown
	}
	return counts[0].Group
}

// GroupCounts cuenta registros por grupo para el gráfico de barras. Los
// registros sin grupo van a "Unknown". Orden descendente por cantidad
// (empates por orden de aparición), máximo 10 entradas.
func GroupCounts(records []Breed) []GroupCount {
	counts := countGroups(records, true)
	if len(counts) > maxChartGroups {
		counts = counts[:maxChartGroups]
	}
	return counts
}

// Groups devuelve las etiquetas de grupo presentes, en orden de aparición.
// Se usa para poblar el selector de grupo (que además ofrece "All").
func Groups(records []Breed) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, b := range records {
		if !b.HasGroup() {
			continue
		}
		if _, ok := seen[b.BreedGroup]; ok {
			continue
		}
		seen[b.BreedGroup] = struct{}{}
		out = append(out, b.BreedGroup)
	}
	return out
}

// HeightWeightPairs arma los puntos del scatter con el punto medio de
// height.metric y weight.metric. Si alguno no parsea, el registro se excluye.
func HeightWeightPairs(records []Breed) []HeightWeight {
	out := make([]HeightWeight, 0, len(records))
	for _, b := range records {
		h, ok := ParseRange(b.HeightMetric)
		if !ok {
			continue
		}
		w, ok := ParseRange(b.WeightMetric)
		if !ok {
			continue
		}
		out = append(out, HeightWeight{
			Name:   b.Name,
			Height: h.Midpoint(),
			Weight: w.Midpoint(),
		})
	}
	return out
}

// Summarize calcula el panel de estadísticas sobre records.
func Summarize(records []Breed) Summary {
	s := Summary{
		TotalBreeds:     len(records),
		AverageLifespan: AverageLifespan(records),
		MostCommonGroup: MostCommonGroup(records),
	}
	if span, ok := LifespanRange(records); ok {
		s.LifespanRange = &span
	}
	return s
}

// countGroups cuenta por grupo preservando el orden de primera aparición y
// ordena en forma estable por cantidad descendente.
func countGroups(records []Breed, includeUnknown bool) []GroupCount {
	index := map[string]int{}
	out := make([]GroupCount, 0)

	for _, b := range records {
		g := b.BreedGroup
		if g == "" {
			if !includeUnknown {
				continue
			}
			g = GroupUnknown
		}
		i, ok := index[g]
		if !ok {
			index[g] = len(out)
			out = append(out, GroupCount{Group: g, Count: 1})
			continue
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
