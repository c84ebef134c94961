package classifier

// Word-count threshold for the no-keyword fallback: fewer tokens than
// this classifies as simple, anything at or above as complex.
const SimpleWordLimit = 10

// sensitiveTerms is the denylist that forces privacy-preserving routing.
// Matching is plain substring containment over the lower-cased query, so
// a term inside a longer word still matches.
var sensitiveTerms = []string{
	"password",
	"contraseña",
	"contrasena",
	"card",
	"tarjeta",
	"bank",
	"banco",
	"social security",
	"seguro social",
	"ssn",
	"pin",
}

// Keyword sets checked in priority order: medical advice first, then
// emotional support, health analysis, and reminders. The first set with
// any hit wins, so a query that is both medical and emotional in
// phrasing resolves to medical advice.
var (
	medicalAdviceKeywords = []string{
		"medicin",
		"medication",
		"pastilla",
		"píldora",
		"pildora",
		"dosis",
		"dose",
		"side effect",
		"efecto secundario",
		"dolor",
		"pain",
		"síntoma",
		"sintoma",
		"symptom",
		"receta",
		"prescription",
	}

	emotionalSupportKeywords = []string{
		"lonely",
		"solo",
		"sola",
		"triste",
		"sad",
		"ansiedad",
		"ansios",
		"anxiety",
		"anxious",
		"miedo",
		"afraid",
		"deprim",
		"depress",
		"nervios",
		"nervous",
	}

	healthAnalysisKeywords = []string{
		"presión",
		"presion",
		"blood pressure",
		"tensión arterial",
		"tension arterial",
		"heart rate",
		"pulso",
		"pulse",
		"glucosa",
		"glucose",
		"azúcar",
		"azucar",
		"oxígeno",
		"oxigeno",
		"oxygen",
		"peso",
		"weight",
		"analiz",
		"analy",
		"tendencia",
		"trend",
	}

	reminderKeywords = []string{
		"remind",
		"recuérda",
		"recuerda",
		"recordatorio",
		"reminder",
		"cita",
		"appointment",
		"agenda",
		"no olvid",
		"forget",
	}
)
