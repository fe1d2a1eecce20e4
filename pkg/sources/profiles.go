package sources

import (
	"regexp"
	"strings"

	"bip-scraper/pkg/models"
)

// Profile is a predefined source selection used to bound a search run.
type Profile struct {
	ID            string
	Name          string
	Description   string
	EstimatedTime string
	SourceTypes   []string // nil means every type
	FilterIDs     []string // nil means every source of the allowed types
	IncludeRDOS   bool
	IncludeGDOS   bool
}

// The ten largest business cities, used by the quick-check profile.
var top10Cities = []string{
	"warszawa", "krakow", "wroclaw", "poznan", "gdansk",
	"lodz", "katowice", "szczecin", "lublin", "bydgoszcz",
}

// Municipalities hosting special economic zones or their subzones.
var sseMunicipalities = []string{
	"gliwice", "zabrze", "tychy", "sosnowiec", "dabrowa-gornicza",
	"jastrzebie-zdroj", "rybnik", "zory", "bielsko-biala", "czechowice-dziedzice",
	"pszczyna", "mikolow", "knurow", "czerwionka-leszczyny", "pyskowice",
	"walbrzych", "swidnica", "dzierzoniow", "klodzko", "nowa-ruda",
	"jelenia-gora", "boleslawiec", "luban", "zgorzelec", "legnica",
	"lodz", "ozorkow", "zgierz", "pabianice", "kutno",
	"lowicz", "rawa-mazowiecka", "tomaszow-mazowiecki", "piotrkow-trybunalski",
	"gdansk", "gdynia", "tczew", "starogard-gdanski", "kwidzyn",
	"malbork", "sztum", "elblag", "koscierzyna",
	"olsztyn", "elk", "ilawa", "ostroda", "szczytno",
	"mragowo", "bartoszyce", "lidzbark-warminski",
	"krakow", "niepolomice", "skawina", "wieliczka", "bochnia",
	"tarnow", "debica", "mielec", "rzeszow", "stalowa-wola",
	"kostrzyn-nad-odra", "slubice", "gorzow-wielkopolski", "rzepin",
	"sulecin", "miedzyrzecz", "strzelce-krajenskie",
	"suwalki",
	"starachowice", "skarzysko-kamienna", "ostrowiec-swietokrzyski",
	"konskie", "kielce",
	"slupsk", "lebork", "bytow", "czluchow", "ustka",
	"tarnobrzeg", "nisko", "sandomierz",
	"lancut",
	"kamienna-gora", "lubawka", "boguszow-gorce",
	"poznan", "kalisz", "konin", "leszno", "pila",
	"gniezno", "sroda-wielkopolska", "swarzedz", "lubon",
	"wroclaw", "olesnica", "oława", "trzebnica", "sroda-slaska",
	"kobierzyce", "siechnice",
}

// All 66 cities with county rights plus cities cataloged without a prefix.
var citiesWithCountyRights = []string{
	"warszawa", "krakow", "lodz", "wroclaw", "poznan", "gdansk", "szczecin",
	"bydgoszcz", "lublin", "bialystok", "katowice", "gdynia", "czestochowa",
	"radom", "torun", "sosnowiec", "rzeszow", "kielce", "gliwice", "zabrze",
	"olsztyn", "bielsko-biala", "bytom", "zielona-gora", "rybnik", "ruda-slaska",
	"opole", "tychy", "gorzow-wielkopolski", "elblag", "plock", "dabrowa-gornicza",
	"walbrzych", "wloclawek", "tarnow", "chorzow", "koszalin", "kalisz",
	"legnica", "grudziadz", "jaworzno", "slupsk", "jastrzebie-zdroj",
	"nowy-sacz", "jelenia-gora", "siedlce", "myslowice", "konin", "piotrkow-trybunalski",
	"inowroclaw", "lubin", "ostrow-wielkopolski", "suwalki", "gniezno",
	"glogow", "stargard", "przemysl", "siemianowice-slaskie", "ostroleka",
	"zamosc", "piekary-slaskie", "leszno", "lomza", "tarnowskie-gory",
	"swietochlowice", "skierniewice", "sopot",
	"pabianice", "zory", "pruszkow", "tarnobrzeg", "stalowa-wola",
}

var profiles = map[string]Profile{
	"top10": {
		ID:            "top10",
		Name:          "Top 10 miast (Quick Check)",
		Description:   "Szybki przegląd największych miast biznesowych w Polsce",
		EstimatedTime: "~5 minut",
		SourceTypes:   []string{"miasta_na_prawach_powiatu"},
		FilterIDs:     top10Cities,
		IncludeRDOS:   false,
		IncludeGDOS:   false,
	},
	"cities": {
		ID:            "cities",
		Name:          "Miasta na prawach powiatu",
		Description:   "Wszystkie 66 miast na prawach powiatu + RDOŚ/GDOŚ",
		EstimatedTime: "~15 minut",
		SourceTypes:   []string{"miasta_na_prawach_powiatu"},
		IncludeRDOS:   true,
		IncludeGDOS:   true,
	},
	"all_municipalities": {
		ID:            "all_municipalities",
		Name:          "Wszystkie gminy",
		Description:   "Wszystkie gminy miejskie, wiejskie i miejsko-wiejskie (~2500)",
		EstimatedTime: "~3-4 godziny",
		SourceTypes:   []string{"miasta_na_prawach_powiatu", "gminy_miejskie", "gminy_miejsko_wiejskie", "gminy_wiejskie"},
		IncludeRDOS:   true,
		IncludeGDOS:   true,
	},
	"urban_municipalities": {
		ID:            "urban_municipalities",
		Name:          "Gminy miejskie i miejsko-wiejskie",
		Description:   "Gminy miejskie + miejsko-wiejskie (~1200)",
		EstimatedTime: "~1.5-2 godziny",
		SourceTypes:   []string{"miasta_na_prawach_powiatu", "gminy_miejskie", "gminy_miejsko_wiejskie"},
		IncludeRDOS:   true,
		IncludeGDOS:   true,
	},
	"sse": {
		ID:            "sse",
		Name:          "Strefy przemysłowe (SSE)",
		Description:   "Gminy ze Specjalnymi Strefami Ekonomicznymi",
		EstimatedTime: "~30 minut",
		SourceTypes:   []string{"miasta_na_prawach_powiatu", "gminy_miejskie", "gminy_miejsko_wiejskie"},
		FilterIDs:     sseMunicipalities,
		IncludeRDOS:   true,
		IncludeGDOS:   true,
	},
	"full": {
		ID:            "full",
		Name:          "Pełne skanowanie",
		Description:   "Wszystkie źródła BIP w Polsce (~2900)",
		EstimatedTime: "~5-6 godzin",
		IncludeRDOS:   true,
		IncludeGDOS:   true,
	},
}

// GetProfile returns the named profile, falling back to "full".
func GetProfile(id string) Profile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return profiles["full"]
}

// AvailableProfiles lists every profile.
func AvailableProfiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, id := range []string{"top10", "cities", "urban_municipalities", "all_municipalities", "sse", "full"} {
		out = append(out, profiles[id])
	}
	return out
}

var diacriticFolds = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`[ąàáâã]`), "a"},
	{regexp.MustCompile(`[ćç]`), "c"},
	{regexp.MustCompile(`[ęèéêë]`), "e"},
	{regexp.MustCompile(`[łľ]`), "l"},
	{regexp.MustCompile(`[ńñ]`), "n"},
	{regexp.MustCompile(`[óòôõ]`), "o"},
	{regexp.MustCompile(`[śš]`), "s"},
	{regexp.MustCompile(`[źżž]`), "z"},
	{regexp.MustCompile(`[ůúùû]`), "u"},
}

var (
	nonAlnumRegex   = regexp.MustCompile(`[^a-z0-9]`)
	repeatDashRegex = regexp.MustCompile(`-+`)
)

// NormalizeID folds Polish diacritics and punctuation so catalog IDs, city
// names and filter lists compare equal regardless of spelling.
func NormalizeID(text string) string {
	text = strings.ToLower(text)
	for _, fold := range diacriticFolds {
		text = fold.pattern.ReplaceAllString(text, fold.repl)
	}
	text = nonAlnumRegex.ReplaceAllString(text, "-")
	text = repeatDashRegex.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// profile type names map to the type strings carried in the catalog.
var typeMapping = map[string][]string{
	"miasta_na_prawach_powiatu": {"miasto_na_prawach_powiatu"},
	"gminy_miejskie":            {"gmina_miejska"},
	"gminy_miejsko_wiejskie":    {"gmina_miejsko_wiejska"},
	"gminy_wiejskie":            {"gmina_wiejska"},
	"powiaty":                   {"powiat"},
	"voivodeships":              {"voivodeship"},
}

// InferSourceType derives a source's type from its explicit type field or,
// failing that, its ID conventions.
func InferSourceType(s models.Source) string {
	if s.Type != "" {
		return s.Type
	}
	id := strings.ToLower(s.ID)
	switch {
	case id == "gdos":
		return "gdos"
	case strings.HasPrefix(id, "rdos-"):
		return "rdos"
	case strings.HasPrefix(id, "woj-"):
		return "voivodeship"
	case strings.HasPrefix(id, "pow-"):
		return "powiat"
	case strings.HasPrefix(id, "gm-"):
		return "gmina_miejska"
	case strings.HasPrefix(id, "gmw-"):
		return "gmina_miejsko_wiejska"
	case strings.HasPrefix(id, "gw-"):
		return "gmina_wiejska"
	}
	// Cities with county rights are cataloged without a prefix.
	normalized := NormalizeID(id)
	for _, city := range citiesWithCountyRights {
		if NormalizeID(city) == normalized {
			return "miasto_na_prawach_powiatu"
		}
	}
	return "unknown"
}

// FilterByProfile narrows the source list to the profile's selection. GDOŚ
// and RDOŚ sources bypass the type and ID filters when the profile includes
// them.
func FilterByProfile(all []models.Source, profileID string) []models.Source {
	profile, ok := profiles[profileID]
	if !ok {
		return all
	}

	var allowedTypes []string
	if profile.SourceTypes != nil {
		for _, pt := range profile.SourceTypes {
			if mapped, ok := typeMapping[pt]; ok {
				allowedTypes = append(allowedTypes, mapped...)
			} else {
				allowedTypes = append(allowedTypes, pt)
			}
		}
	}

	var filtered []models.Source
	for _, source := range all {
		sourceType := InferSourceType(source)

		if sourceType == "gdos" {
			if profile.IncludeGDOS {
				filtered = append(filtered, source)
			}
			continue
		}
		if sourceType == "rdos" {
			if profile.IncludeRDOS {
				filtered = append(filtered, source)
			}
			continue
		}

		if allowedTypes != nil {
			allowed := false
			for _, t := range allowedTypes {
				if sourceType == t {
					allowed = true
					break
				}
			}
			if !allowed {
				continue
			}
		}

		if profile.FilterIDs != nil {
			normalizedID := NormalizeID(source.ID)
			normalizedName := NormalizeID(source.Name)
			matched := false
			for _, filterID := range profile.FilterIDs {
				nf := NormalizeID(filterID)
				if nf == normalizedID || nf == normalizedName {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}

		filtered = append(filtered, source)
	}
	return filtered
}

// CountByVoivodeship tallies sources per region. Sources without a region,
// such as GDOŚ, are counted under "inne".
func CountByVoivodeship(all []models.Source) map[string]int {
	counts := make(map[string]int)
	for _, source := range all {
		region := NormalizeID(source.Voivodeship)
		if region == "" {
			region = "inne"
		}
		counts[region]++
	}
	return counts
}

// FilterByVoivodeship keeps only sources from the named regions. An empty
// region list keeps everything.
func FilterByVoivodeship(all []models.Source, voivodeships []string) []models.Source {
	if len(voivodeships) == 0 {
		return all
	}
	normalized := make(map[string]bool, len(voivodeships))
	for _, v := range voivodeships {
		normalized[NormalizeID(v)] = true
	}

	var filtered []models.Source
	for _, source := range all {
		if source.Voivodeship != "" && normalized[NormalizeID(source.Voivodeship)] {
			filtered = append(filtered, source)
		}
	}
	return filtered
}
