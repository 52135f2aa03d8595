package language

import (
	"strings"

	xtext "golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
	{"cs", "ces", "cze", "Czech", []string{"czech"}},
	{"hu", "hun", "", "Hungarian", []string{"hungarian"}},
	{"tr", "tur", "", "Turkish", []string{"turkish"}},
	{"th", "tha", "", "Thai", []string{"thai"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// TrackTag converts a two-letter ISO 639-1 code to the three-letter form
// used by container language tags. Chinese maps to "chi" rather than the
// standard "zho" because that is the tag ffprobe reports for the vast
// majority of Chinese audio tracks. Returns empty string when the code has
// no known three-letter mapping.
func TrackTag(code2 string) string {
	code2 = strings.ToLower(strings.TrimSpace(code2))
	if code2 == "" {
		return ""
	}
	if code2 == "zh" {
		return "chi"
	}
	if e, ok := byCode2[code2]; ok {
		return e.code3
	}
	base, err := xtext.ParseBase(code2)
	if err != nil {
		return ""
	}
	iso3 := base.ISO3()
	if len(iso3) != 3 {
		return ""
	}
	return iso3
}

// Equivalent reports whether two language tags refer to the same language,
// treating ISO 639-2/B and 639-2/T pairs (fre/fra, ger/deu, chi/zho) as
// equal. Unrecognized tags compare by case-insensitive equality.
func Equivalent(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	ea, eb := lookup(a), lookup(b)
	return ea != nil && ea == eb
}

// IsEnglish reports whether the tag names English in any recognized form.
func IsEnglish(tag string) bool {
	e := lookup(tag)
	return e != nil && e.code2 == "en"
}

// IsUnknown reports whether the tag carries no usable language information.
func IsUnknown(tag string) bool {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "unknown", "und":
		return true
	default:
		return false
	}
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized
// input.
func DisplayName(code string) string {
	if IsUnknown(code) {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}
