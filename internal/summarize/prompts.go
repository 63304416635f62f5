package summarize

import (
	"strings"

	"github.com/JiriTill/lekarprolidi/internal/gate"
)

// Section is one heading of the structured output. The model is told to
// open each section with "## <Title>" and the response is parsed back by
// those headings. The section set has drifted between prompt versions, so
// it is configuration, not a fixed contract.
type Section struct {
	Title string
	Hint  string
}

// ReportSections structure the medical-report translation.
var ReportSections = []Section{
	{"Oddělení / specializace", "např. neurologie, urologie; pokud není uvedeno, napiš „Není uvedeno“"},
	{"Kdo je pacient", "věk, pohlaví, důvod návštěvy; pokud není uvedeno, napiš „Informace chybí“"},
	{"Co se zjistilo", "stručně popiš hlavní zjištění ze zprávy"},
	{"Jaká vyšetření proběhla", "např. ultrazvuk, krevní testy, RTG; pokud nejsou zmíněny, napiš „Není uvedeno“"},
	{"Shrnutí lékařského nálezu", "převyprávěj nález jednoduše, bez lékařské terminologie a bez domněnek"},
	{"Vysvětlení klíčových pojmů", "přehled použitých odborných termínů a co znamenají, např. „CRP – zánětlivý ukazatel v krvi“"},
	{"Závěrem", "shrň závěr nebo doporučení zprávy; pokud chybí, napiš „Závěr není uveden“"},
}

// BloodworkSections structure the blood-test explanation.
var BloodworkSections = []Section{
	{"Přehled parametrů", "pro každý parametr uveď název (včetně překladu zkratky), naměřenou hodnotu, 1–2 věty co parametr znamená, a zda je „v normě“, „mírně mimo normu“ nebo „výrazně mimo normu“; zachovej pořadí parametrů tak, jak jsou ve vstupu"},
	{"Hodnoty mimo normu", "vypiš parametry mimo běžné rozmezí; u výrazných odchylek neutrálně dodej, že je vhodná konzultace s lékařem; pokud žádné nejsou, napiš „Všechny hodnoty jsou v normě“"},
	{"Závěrem", "krátké klidné shrnutí bez alarmujících slov"},
}

const reportPreamble = `Tento překlad slouží pouze k lepšímu pochopení obsahu lékařské zprávy a nenahrazuje konzultaci s lékařem.

Přelož následující lékařskou zprávu nebo zdravotní dokument (např. výpis z vyšetření, propouštěcí zprávu, zprávu od specialisty) do jednoduché, srozumitelné češtiny vhodné pro běžného člověka bez lékařského vzdělání.

Drž se výhradně informací uvedených ve zprávě – nepřidávej vlastní diagnózy, rady ani vysvětlení mimo text.
Přelož odborné pojmy nebo zkratky do běžného jazyka a připoj stručné vysvětlení.
Pokud nějaké údaje chybí, uveď „Informace chybí“ nebo „Není uvedeno“.
Pokud zpráva obsahuje důležité nálezy, můžeš neutrálně doporučit konzultaci s lékařem.`

const bloodworkPreamble = `Tento výstup slouží pouze k lepšímu pochopení výsledků krevního testu a nenahrazuje konzultaci s lékařem.

Vysvětli následující výsledky krevního rozboru jednoduše a přehledně. Výstup má být srozumitelný i pro běžného člověka bez lékařského vzdělání.

Drž se výhradně uvedených hodnot – nepřidávej žádné diagnózy ani návrhy léčby.
Pokud je k dispozici referenční rozmezí, použij ho pro orientační určení, zda je hodnota v normě.
Pokud referenční hodnoty chybí, vycházej ze standardních rozmezí podle pohlaví a věku, pokud jsou uvedeny; jinak napiš „Není uvedeno“.
Nepoužívej žádná alarmující slova – zachovej neutrální a klidný tón.`

const closingNote = `Na konec připoj poznámku: „Tento výstup slouží pouze pro informativní účely a nenahrazuje lékařskou konzultaci. V případě nejasností se obraťte na svého lékaře.“`

// BuildPrompt renders the instruction template for a category: the
// category preamble, then the required output structure from the section
// list, then the closing disclaimer.
func BuildPrompt(category gate.Category, sections []Section) string {
	var sb strings.Builder
	switch category {
	case gate.CategoryBloodwork:
		sb.WriteString(bloodworkPreamble)
	default:
		sb.WriteString(reportPreamble)
	}
	sb.WriteString("\n\nVýstup rozděl přesně do následujících částí. Každou část uveď na samostatném řádku nadpisem ve tvaru \"## <název části>\":\n")
	for _, s := range sections {
		sb.WriteString("\n## ")
		sb.WriteString(s.Title)
		sb.WriteString("\n(")
		sb.WriteString(s.Hint)
		sb.WriteString(")\n")
	}
	sb.WriteString("\n")
	sb.WriteString(closingNote)
	return sb.String()
}
