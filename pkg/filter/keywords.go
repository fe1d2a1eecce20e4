package filter

// Keyword tables for the announcement classifier. All phrases are matched as
// substrings against normalized (lowercased, whitespace-collapsed) text, so
// Polish declension is handled by listing stems and common inflections.

// Industry identifies one of the classification categories.
type Industry string

const (
	IndustryRenewables     Industry = "renewables"
	IndustryManufacturing  Industry = "manufacturing"
	IndustryDataCenters    Industry = "data-centers"
	IndustryEnergy         Industry = "energy"
	IndustryLogistics      Industry = "logistics"
	IndustryInfrastructure Industry = "infrastructure"
	IndustryMining         Industry = "mining"
	IndustryAgriculture    Industry = "agriculture"
	IndustryOther          Industry = "other"
)

// Stage identifies how far a proceeding has progressed.
type Stage string

const (
	StageApplication Stage = "application"
	StageInitiation  Stage = "initiation"
	StageEvidence    Stage = "evidence"
	StageDecision    Stage = "decision"
	StageAmendment   Stage = "amendment"
	StageUnknown     Stage = "unknown"
)

// industryOrder fixes the iteration order so classification output is stable.
var industryOrder = []Industry{
	IndustryRenewables,
	IndustryManufacturing,
	IndustryDataCenters,
	IndustryEnergy,
	IndustryLogistics,
	IndustryInfrastructure,
	IndustryMining,
	IndustryAgriculture,
}

var industryKeywords = map[Industry][]string{
	IndustryRenewables: {
		// photovoltaics
		"fotowoltaik", "fotowoltaiczn", "solar", "pv ", "panel", "paneli słoneczn", "panele słoneczn",
		"elektrownia słoneczna", "instalacja solarna", "ogniwa słoneczne",
		// wind
		"wiatrow", "wiatrak", "turbina wiatrowa", "farma wiatrowa",
		"elektrownia wiatrowa", "siłownia wiatrowa",
		// biomass and biogas
		"biogaz", "biomasa", "biogazownia", "bioelektrownia",
		"odnawialne źródła energii", "oze", "energia odnawialna",
		// energy storage
		"magazyn energii", "magazynu energii", "magazyny energii", "magazynów energii",
		"akumulator", "bess", "bateria energetyczna",
		"storage energii", "magazynowanie energii",
		// hydrogen
		"elektrolizer", "wodór", "hydrogen", "zielony wodór",
		// heat pumps
		"pompa ciepła", "pomp ciepła", "pompy ciepła", "pompą ciepła",
		"geotermia", "geotermaln",
	},

	IndustryManufacturing: {
		"zakład produkcyjn", "zakładu produkcyjn", "zakładzie produkcyjn",
		"zakład przemysłow", "zakładu przemysłow", "zakładzie przemysłow",
		"zakład przetw", "zakładu przetw", "przetwórni", "przetwórnia",
		"hala produkcyjn", "hali produkcyjn", "halę produkcyjn",
		"hala przemysłow", "hali przemysłow", "halę przemysłow",
		"hala magazynowo-produkcyjn", "hali magazynowo-produkcyjn",
		"budynek produkcyjn", "budynku produkcyjn",
		"obiekt produkcyjn", "obiektu produkcyjn",
		"fabryk", "wytwórni", "wytwórnia", "manufaktur",
		"montowni", "montownia",
		"linia produkcyjn", "linii produkcyjn", "linie produkcyjn",
		"linia technologiczn", "linii technologiczn",
		"instalacja produkcyjn", "instalacji produkcyjn",
		"instalacja przemysłow", "instalacji przemysłow",
		"ciąg technologiczn", "ciągu technologiczn",
		"park przemysłow", "parku przemysłow", "parkiem przemysłow",
		"strefa przemysłow", "strefie przemysłow", "strefy przemysłow",
		"teren przemysłow", "terenu przemysłow",
		"zakład obróbki", "zakładu obróbki", "obróbka metal", "obróbki metal",
		"obróbka drew", "obróbki drew", "obróbka plastik", "obróbki plastik",
		"zakład mięsn", "zakładu mięsn", "ubojni", "ubojnia", "rzeźni", "rzeźnia",
		"zakład spożywcz", "zakładu spożywcz", "mleczarni", "mleczarnia",
		"piekarni", "piekarnia", "browar", "gorzelni", "gorzelnia",
		"zakład chemiczn", "zakładu chemiczn", "zakład farmaceutyczn", "zakładu farmaceutyczn",
		"cementowni", "cementownia", "betoniarni", "betoniarnia", "asfaltowni", "asfaltownia",
		"odlewni", "odlewnia", "walcowni", "walcownia", "stalowni", "stalownia",
		"huty", "huta", "hutą",
		"zakład recykling", "zakładu recykling", "sortowni", "sortownia",
		"spalarni", "spalarnia", "instalacja termiczn", "instalacji termiczn",
		"produkcj", "produkować", "produkuje",
		"przedsiębiorstwem produkcyjn", "przedsiębiorstwa produkcyjn",
		"zakład prefabrykat", "zakładu prefabrykat", "wytwórni prefabrykat",
		"zakład materiałów budowlan", "wytwórni materiałów",
		"centrum produkcyjn", "centra produkcyjn",
		"produkcyjno-logistyczn", "produkcyjno logistyczn",
		"lakierni", "lakiernia", "lakierowanie",
		"spawalni", "spawalnia", "spawalniczej",
		"galwanizerni", "galwanizernia", "galwanizacyjn",
		"hartowni", "hartownia",
		"cynkowni", "cynkownia", "cynkowniczej",
		"tłoczni", "tłocznia",
		"stolarni", "stolarnia",
		"ślusarni", "ślusarnia",
		"warsztatu produkcyjn", "warsztatem produkcyjn",
	},

	IndustryDataCenters: {
		"centrum danych", "centrów danych", "centra danych",
		"data center", "data centre", "datacenter",
		"serwerowni", "serwerownia", "serwerów",
		"infrastruktura it", "kolokacj", "colocation",
		"cloud computing", "chmura obliczeniow", "chmurze obliczeniow",
		"centrum obliczeniow", "centrów obliczeniow",
		"centrum przetwarzania danych",
		"hyperscale", "edge computing",
	},

	IndustryEnergy: {
		"elektrowni", "elektrownia", "elektrociepłowni", "elektrociepłownia",
		"ciepłowni", "ciepłownia",
		"linia energetyczn", "linii energetyczn", "linie energetyczn",
		"sieć energetyczn", "sieci energetyczn",
		"linia elektroenergetyczn", "linii elektroenergetyczn",
		"sieć elektroenergetyczn", "sieci elektroenergetyczn",
		"kabel energetyczn", "kabla energetyczn",
		"stacja transformatorow", "stacji transformatorow",
		"gpz", "główny punkt zasilania",
		"110 kv", "220 kv", "400 kv", "110kv", "220kv", "400kv",
		"przesył energii", "przesyłu energii",
		"rozdzielni", "rozdzielnia", "podstacj", "transformator",
		"blok energetyczn", "bloku energetyczn", "turbogenerator",
		"elektrownia jądrow", "elektrowni jądrow", "reaktor jądrow", "reaktora jądrow",
		"elektrownia gazow", "elektrowni gazow", "turbina gazow", "turbiny gazow",
		"kogeneracj", "trigeneracj",
	},

	IndustryLogistics: {
		"centrum logistyczn", "centrów logistyczn", "centra logistyczn",
		"hub logistyczn", "park logistyczn", "parku logistyczn",
		"centrum dystrybucj", "centrum dystrybucji",
		"magazyn", "magazynu", "magazynie", "magazynow",
		"hala magazynow", "hali magazynow", "halę magazynow",
		"obiekt magazynow", "obiektu magazynow",
		"składowisk", "plac składow", "placu składow",
		"terminal", "terminalu", "terminale",
		"centrum przeładunkow", "przeładunk",
		"cross-dock", "cross dock",
		"chłodni", "chłodnia", "mroźni", "mroźnia", "cold storage",
		"depot",
	},

	IndustryInfrastructure: {
		"droga ", "drogi ", "drogę ", "drogą ", "drodze ", "dróg ",
		"drogow", "autostrad", "obwodnic", "węzeł drogow", "węzła drogow",
		"skrzyżowani", "rondo", "chodnik", "ścieżk",
		"linia kolejow", "linii kolejow", "kolej", "tory kolejow", "torów kolejow",
		"przejazd kolejow",
		"most", "mostu", "wiadukt", "tunel", "estakad",
		"port", "portu", "terminal portow", "nabrzeż",
		"lotnisk", "pas startow", "terminal lotnicz",
		"oczyszczalni", "stacja uzdatniani", "uzdatniania wody",
		"wodociąg", "kanalizacj", "kolektor", "sieć wodociągow", "sieci kanalizacyj",
		"gazociąg", "rurociąg", "tłoczni gaz",
	},

	IndustryMining: {
		"kopaln", "odkrywk", "odkrywkow",
		"złoż", "wydobyci", "wydobywani", "eksploatacj",
		"kruszyw", "żwirowni", "żwirownia", "piaskowni", "piaskownia",
		"kamieniołom", "kamieniołomu",
		"górnictw", "górniczej", "górniczy",
	},

	IndustryAgriculture: {
		"ferm", "fermy", "fermie",
		"chlewni", "chlewnia", "tucznik", "trzody chlewnej", "trzoda chlewna",
		"kurnik", "drobiu", "brojler", "niosek",
		"obora", "obory", "bydła", "bydło",
		"hodowl", "chów ", "chowu ",
		"budynek inwentarsk", "budynku inwentarsk", "inwentarsk",
		"djp",
	},
}

// stageOrder fixes precedence from most to least advanced. A text that
// mentions both application and decision vocabulary is tagged by the more
// advanced stage.
var stageOrder = []Stage{
	StageAmendment,
	StageDecision,
	StageEvidence,
	StageInitiation,
	StageApplication,
}

var stageKeywords = map[Stage][]string{
	StageApplication: {
		"wniosek o wydanie", "wniosku o wydanie",
		"złożenie wniosku", "wpłynął wniosek",
		"wniosek o ustalenie", "wniosek o zmianę",
	},
	StageInitiation: {
		"wszczęcie postępowania", "wszczęciu postępowania",
		"wszczyna postępowanie", "wszczęto postępowanie",
		"zawiadomienie o wszczęciu",
	},
	StageEvidence: {
		"zebranie materiału dowodowego", "zebraniu materiału dowodowego",
		"zakończenie zbierania", "zakończono zbieranie",
		"zgromadzenie materiału", "materiał dowodowy",
		"możliwość zapoznania się", "możliwość wypowiedzenia",
	},
	StageDecision: {
		"decyzja o środowiskowych", "decyzję o środowiskowych",
		"wydanie decyzji", "wydano decyzję",
		"decyzja nr", "decyzja znak",
		"decyzja z dnia", "ostateczna decyzja",
		"decyzja odmowna", "decyzja pozytywna",
	},
	StageAmendment: {
		"zmiana decyzji", "zmieniająca decyzję",
		"zmianę decyzji", "przeniesienie decyzji",
	},
}

// environmentalKeywords accept a candidate as an environmental-conditions
// proceeding. Case-reference prefix "6220" covers the signature convention
// used for these decisions nationwide.
var environmentalKeywords = []string{
	"decyzja o środowiskowych uwarunkowaniach",
	"decyzji o środowiskowych uwarunkowaniach",
	"decyzję o środowiskowych uwarunkowaniach",
	"decyzje o środowiskowych uwarunkowaniach",
	"środowiskowych uwarunkowań",
	"środowiskowe uwarunkowania",
	"duś", "ooś",
	"obowiązek przeprowadzenia ooś",
	"wniosek o wydanie decyzji o środowiskowych",
	"wniosku o wydanie decyzji o środowiskowych",
	"wniosek o ustalenie środowiskowych",
	"wszczęcie postępowania w sprawie wydania decyzji",
	"wszczęciu postępowania w sprawie wydania decyzji",
	"wszczęto postępowanie w sprawie wydania decyzji",
	"postępowania w sprawie wydania decyzji",
	"postępowanie administracyjne w sprawie wydania decyzji",
	"postępowania administracyjnego w sprawie",
	"podjęcie postępowania",
	"wszczęcie postępowania",
	"wszczęciu postępowania",
	"wznowienie postępowania",
	"zawieszenie postępowania",
	"umorzenie postępowania",
	"zebraniu materiału dowodowego",
	"zakończeniu zbierania materiału dowodowego",
	"możliwości zapoznania się z materiałem dowodowym",
	"możliwości wypowiedzenia się co do zebranych dowodów",
	"materiału dowodowego",
	"materiał dowodowy",
	"zapoznania się z aktami",
	"zapoznania się oraz wypowiedzenia",
	"możliwości zapoznania",
	"ocena oddziaływania na środowisko",
	"oceny oddziaływania na środowisko",
	"oddziaływania na środowisko",
	"raport o oddziaływaniu przedsięwzięcia na środowisko",
	"raportu o oddziaływaniu na środowisko",
	"raport o oddziaływaniu",
	"raportu o oddziaływaniu",
	"karta informacyjna przedsięwzięcia",
	"przedsięwzięcie mogące znacząco oddziaływać na środowisko",
	"przedsięwzięcia mogącego znacząco oddziaływać",
	"przedsięwzięciu mogącym znacząco oddziaływać",
	"przedsięwzięciu mogącym",
	"planowanym przedsięwzięciu",
	"planowanego przedsięwzięcia",
	"w sprawie przedsięwzięcia",
	"dla przedsięwzięcia",
	"przedsięwzięcia polegającego",
	"uzupełnienia dokumentacji",
	"uzupełnienie dokumentacji",
	"wezwanie inwestora",
	"wezwaniu inwestora",
	"uzupełnienie wniosku",
	"uzupełnienia wniosku",
	"wystąpienie o opinie",
	"wystąpienie o uzgodnienia",
	"przedłużenie terminu",
	"przedłużeniu terminu",
	"wydaniu decyzji",
	"wydania decyzji",
	"wydanie decyzji",
	"6220",
	"przedsięwzięcia mogące potencjalnie znacząco oddziaływać",
	"przedsięwzięcia mogące zawsze znacząco oddziaływać",
}

// blacklistKeywords reject a candidate outright. These cover documents that
// share vocabulary with environmental decisions but belong to different
// procedures (zoning, building permits, water permits) or are not decisions
// at all (programmes, tenders, elections). Blacklist always wins.
var blacklistKeywords = []string{
	"program ochrony środowiska",
	"programu ochrony środowiska",
	"projekt programu ochrony środowiska",
	"konsultacje społeczne programu",
	"konsultacji społecznych projektu",
	"odszkodowanie za grunt",
	"odszkodowania za grunt",
	"ustalenie odszkodowania",
	"ustalenia odszkodowania",
	"wysokość odszkodowania",
	"wypłata odszkodowania",
	"informacja o stanie środowiska",
	"stan środowiska",
	"raport o stanie środowiska",
	"sprawozdanie z realizacji programu",
	"strategia rozwoju",
	"plan zagospodarowania przestrzennego",
	"studium uwarunkowań",
	"wybory",
	"referendum",
	"nabór wniosków",
	"konkurs",
	"przetarg",
	"zamówienie publiczne",
	"decyzja o warunkach zabudowy",
	"decyzji o warunkach zabudowy",
	"pozwolenie na budowę",
	"pozwolenia na budowę",
	"decyzja o lokalizacji inwestycji celu publicznego",
	"decyzja o zezwoleniu na realizację inwestycji drogowej",
	"pozwolenie wodnoprawne",
	"pozwolenia wodnoprawnego",
	"pozwolenie zintegrowane",
	"pozwolenia zintegrowanego",
	"zgłoszenie instalacji",
}

// AllIndustries returns the full category set, including "other".
func AllIndustries() []Industry {
	out := make([]Industry, 0, len(industryOrder)+1)
	out = append(out, industryOrder...)
	out = append(out, IndustryOther)
	return out
}
